// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"github.com/MKhiriev/go-quiz-api/models"
	"github.com/xuri/excelize/v2"
)

// RosterSheet is the sheet name used by exported rosters.
const RosterSheet = "Students"

// maxRosterRows bounds a single import, header excluded.
const maxRosterRows = 5000

// rosterColumns is the column order of exported rosters.
var rosterColumns = []string{"name", "email", "studentNumber", "className"}

// Import reads the first sheet of an xlsx workbook. The first row is a
// header naming the columns (name, email, studentNumber, className) in any
// order and case; rows without a name or failing validation are skipped.
func (s *studentService) Import(ctx context.Context, ownerID string, r io.Reader) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return models.ImportResult{}, ErrNoOwner
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidSpreadsheet, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Err(err).Msg("error closing roster workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.ImportResult{}, fmt.Errorf("%w: no sheets", ErrInvalidSpreadsheet)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidSpreadsheet, err)
	}
	if len(rows) == 0 {
		return models.ImportResult{}, ErrMissingNameColumn
	}
	if len(rows)-1 > maxRosterRows {
		return models.ImportResult{}, fmt.Errorf("%w: limit is %d", ErrTooManyRosterRows, maxRosterRows)
	}

	columns := headerColumns(rows[0])
	if _, ok := columns["name"]; !ok {
		return models.ImportResult{}, ErrMissingNameColumn
	}

	result := models.ImportResult{Skipped: []string{}}
	students := make([]models.Student, 0, len(rows)-1)
	now := s.now().UTC()

	for i, row := range rows[1:] {
		line := i + 2
		st := models.Student{
			Name:          cell(row, columns, "name"),
			Email:         cell(row, columns, "email"),
			StudentNumber: cell(row, columns, "studentnumber"),
			ClassName:     cell(row, columns, "classname"),
		}
		normalizeStudent(&st)

		if st.Name == "" {
			result.Skipped = append(result.Skipped, fmt.Sprintf("row %d: name is empty", line))
			continue
		}
		if err = s.validator.Validate(ctx, st); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		st.Stamp(s.ids.Generate(), ownerID, now)
		students = append(students, st)
	}

	if len(students) > 0 {
		if err = s.repo.InsertMany(ctx, students); err != nil {
			return models.ImportResult{}, s.storeError(ctx, "import", err)
		}
	}
	result.Imported = len(students)

	log.Info().Int("imported", result.Imported).Int("skipped", len(result.Skipped)).Msg("roster imported")
	return result, nil
}

// Export writes every student of the owner, oldest first, in the import
// layout.
func (s *studentService) Export(ctx context.Context, ownerID string, w io.Writer) error {
	log := logger.FromContext(ctx)

	students, err := s.listAll(ctx, ownerID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Err(err).Msg("error closing roster workbook")
		}
	}()

	if err = f.SetSheetName("Sheet1", RosterSheet); err != nil {
		return fmt.Errorf("prepare roster sheet: %w", err)
	}

	header := make([]any, len(rosterColumns))
	for i, c := range rosterColumns {
		header[i] = c
	}
	if err = f.SetSheetRow(RosterSheet, "A1", &header); err != nil {
		return fmt.Errorf("write roster header: %w", err)
	}

	for i, st := range students {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("write roster row: %w", err)
		}
		row := []any{st.Name, st.Email, st.StudentNumber, st.ClassName}
		if err = f.SetSheetRow(RosterSheet, cellName, &row); err != nil {
			return fmt.Errorf("write roster row: %w", err)
		}
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("write roster workbook: %w", err)
	}
	return nil
}

func (s *studentService) listAll(ctx context.Context, ownerID string) ([]models.Student, error) {
	var all []models.Student
	q := models.ListQuery{OwnerID: ownerID, SortField: models.FieldCreatedAt, Limit: models.MaxListLimit}

	for {
		page, err := s.List(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		q.Skip += int64(len(page.Items))
		if len(page.Items) == 0 || q.Skip >= page.Total {
			return all, nil
		}
	}
}

// headerColumns maps normalized header names to column indexes.
func headerColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
		if key == "" {
			continue
		}
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	return columns
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
