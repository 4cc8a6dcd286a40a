// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the persisted entities and transport payloads shared
// by the store, service and handler layers.
package models

import "time"

// Document is implemented by every entity kept in the document store.
//
// The store never assigns identifiers or timestamps itself: services stamp
// them before a document is written, so the values returned by these methods
// are authoritative for both the Mongo and the Postgres backends.
type Document interface {
	// DocumentID returns the document's primary key.
	DocumentID() string

	// DocumentOwner returns the id of the user the document belongs to.
	// Users own themselves.
	DocumentOwner() string

	// DocumentTimes returns the creation and last-update timestamps.
	DocumentTimes() (createdAt, updatedAt time.Time)
}

// Base carries the fields shared by all owned documents.
type Base struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"ownerId" bson:"ownerId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// DocumentID implements [Document].
func (b Base) DocumentID() string { return b.ID }

// DocumentOwner implements [Document].
func (b Base) DocumentOwner() string { return b.OwnerID }

// DocumentTimes implements [Document].
func (b Base) DocumentTimes() (time.Time, time.Time) { return b.CreatedAt, b.UpdatedAt }

// Stamp prepares b for its first write.
func (b *Base) Stamp(id, ownerID string, now time.Time) {
	b.ID = id
	b.OwnerID = ownerID
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch carries identity and creation time over from the stored version and
// bumps the update time.
func (b *Base) Touch(stored Document, now time.Time) {
	b.ID = stored.DocumentID()
	b.OwnerID = stored.DocumentOwner()
	b.CreatedAt, _ = stored.DocumentTimes()
	b.UpdatedAt = now
}
