// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/models"
	sq "github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

// Columns of the documents table.
const (
	colCollection = "collection"
	colID         = "id"
	colOwnerID    = "owner_id"
	colData       = "data"
	colCreatedAt  = "created_at"
	colUpdatedAt  = "updated_at"
)

// fieldColumns maps document fields that live in their own column.
var fieldColumns = map[string]string{
	models.FieldID:        colID,
	models.FieldOwnerID:   colOwnerID,
	models.FieldCreatedAt: colCreatedAt,
	models.FieldUpdatedAt: colUpdatedAt,
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresCollection implements [Repository] on the documents table. Each
// document is stored whole as JSONB; id, owner and timestamps are mirrored
// into columns for indexing.
type postgresCollection[T models.Document] struct {
	db   *DB
	name string
}

func newPostgresCollection[T models.Document](db *DB, name string) *postgresCollection[T] {
	return &postgresCollection[T]{db: db, name: name}
}

func (p *postgresCollection[T]) Insert(ctx context.Context, doc T) error {
	return p.InsertMany(ctx, []T{doc})
}

func (p *postgresCollection[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}

	insert := psql.Insert(documentsTable).
		Columns(colCollection, colID, colOwnerID, colData, colCreatedAt, colUpdatedAt)

	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		createdAt, updatedAt := doc.DocumentTimes()
		insert = insert.Values(p.name, doc.DocumentID(), doc.DocumentOwner(), data, createdAt, updatedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		p.log(ctx, err, "InsertMany")
		return p.db.classify(err)
	}
	return nil
}

func (p *postgresCollection[T]) Get(ctx context.Context, ownerID, id string) (T, error) {
	return p.selectOne(ctx, sq.Eq{colCollection: p.name, colID: id, colOwnerID: ownerID})
}

func (p *postgresCollection[T]) FindOne(ctx context.Context, field, value string) (T, error) {
	cond, err := fieldEquals(field, value)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.selectOne(ctx, sq.And{sq.Eq{colCollection: p.name}, cond})
}

func (p *postgresCollection[T]) selectOne(ctx context.Context, where sq.Sqlizer) (T, error) {
	var doc T

	query, args, err := psql.Select(colData).From(documentsTable).Where(where).Limit(1).ToSql()
	if err != nil {
		return doc, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err = p.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		return doc, p.db.classify(err)
	}

	if err = json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	return doc, nil
}

func (p *postgresCollection[T]) List(ctx context.Context, q models.ListQuery) ([]T, int64, error) {
	where, err := p.where(q, true)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From(documentsTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = p.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		p.log(ctx, err, "List")
		return nil, 0, p.db.classify(err)
	}

	selectBuilder := psql.Select(colData).From(documentsTable).Where(where)
	if q.SortField != "" {
		direction := "ASC"
		if q.SortDesc {
			direction = "DESC"
		}
		selectBuilder = selectBuilder.OrderBy(orderColumn(q.SortField)+" "+direction, colID+" "+direction)
	}
	if q.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(q.Limit))
	}
	if q.Skip > 0 {
		selectBuilder = selectBuilder.Offset(uint64(q.Skip))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		p.log(ctx, err, "List")
		return nil, 0, p.db.classify(err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var doc T
		if err = json.Unmarshal(raw, &doc); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		items = append(items, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, p.db.classify(err)
	}

	return items, total, nil
}

func (p *postgresCollection[T]) Replace(ctx context.Context, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	_, updatedAt := doc.DocumentTimes()

	query, args, err := psql.Update(documentsTable).
		Set(colData, data).
		Set(colUpdatedAt, updatedAt).
		Where(sq.Eq{colCollection: p.name, colID: doc.DocumentID(), colOwnerID: doc.DocumentOwner()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := p.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *postgresCollection[T]) Delete(ctx context.Context, ownerID, id string) error {
	query, args, err := psql.Delete(documentsTable).
		Where(sq.Eq{colCollection: p.name, colID: id, colOwnerID: ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := p.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *postgresCollection[T]) DeleteMany(ctx context.Context, q models.ListQuery) (int64, error) {
	where, err := p.where(q, false)
	if err != nil {
		return 0, err
	}

	query, args, err := psql.Delete(documentsTable).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.exec(ctx, query, args...)
}

func (p *postgresCollection[T]) SetField(ctx context.Context, q models.ListQuery, field, value string) (int64, error) {
	if !validField(field) {
		return 0, ErrInvalidQuery
	}
	if _, ok := fieldColumns[field]; ok {
		return 0, ErrInvalidQuery
	}

	where, err := p.where(q, false)
	if err != nil {
		return 0, err
	}

	query, args, err := psql.Update(documentsTable).
		Set(colData, sq.Expr("jsonb_set(data, ?::text[], to_jsonb(?::text))", "{"+field+"}", value)).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.exec(ctx, query, args...)
}

func (p *postgresCollection[T]) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		p.log(ctx, err, "exec")
		return 0, p.db.classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected, nil
}

// where translates a list query into a condition on the documents table.
// The search condition is applied only when withSearch is set.
func (p *postgresCollection[T]) where(q models.ListQuery, withSearch bool) (sq.And, error) {
	where := sq.And{sq.Eq{colCollection: p.name}}
	if q.OwnerID != "" {
		where = append(where, sq.Eq{colOwnerID: q.OwnerID})
	}

	for field, value := range q.Equals {
		cond, err := fieldEquals(field, value)
		if err != nil {
			return nil, err
		}
		where = append(where, cond)
	}

	if withSearch && q.SearchField != "" && q.SearchTerm != "" {
		if !validField(q.SearchField) {
			return nil, ErrInvalidQuery
		}
		where = append(where, sq.Expr("data->>(?::text) ILIKE ?", q.SearchField, "%"+escapeLike(q.SearchTerm)+"%"))
	}

	if q.SortField != "" && !validField(q.SortField) {
		return nil, ErrInvalidQuery
	}

	return where, nil
}

func (p *postgresCollection[T]) log(ctx context.Context, err error, op string) {
	logger.FromContext(ctx).Err(err).
		Str("func", "*postgresCollection."+op).
		Str("collection", p.name).
		Msg("postgres query failed")
}

func fieldEquals(field, value string) (sq.Sqlizer, error) {
	if !validField(field) {
		return nil, ErrInvalidQuery
	}
	if column, ok := fieldColumns[field]; ok {
		return sq.Eq{column: value}, nil
	}
	return sq.Expr("data->>(?::text) = ?", field, value), nil
}

// orderColumn returns the ORDER BY expression for a validated field name.
func orderColumn(field string) string {
	if column, ok := fieldColumns[field]; ok {
		return column
	}
	return "data->>'" + field + "'"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
