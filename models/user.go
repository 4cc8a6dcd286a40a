// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Roles a user account may hold.
const (
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User represents an account entity used for authentication.
//
// PasswordHash is persisted with the document but must never leave the
// server: handlers answer with [PublicUser] instead.
type User struct {
	// ID is the unique identifier of the user.
	ID string `json:"id" bson:"_id"`

	// Name is the display name of the user.
	Name string `json:"name" bson:"name" validate:"required,max=100"`

	// Email is the unique, lowercased login of the user.
	Email string `json:"email" bson:"email" validate:"required,email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`

	// Role is the account role, [RoleTeacher] unless set otherwise.
	Role string `json:"role" bson:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// UpdatedAt is the timestamp of the last change to the account.
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// DocumentID implements [Document].
func (u User) DocumentID() string { return u.ID }

// DocumentOwner implements [Document]. A user owns its own record.
func (u User) DocumentOwner() string { return u.ID }

// DocumentTimes implements [Document].
func (u User) DocumentTimes() (time.Time, time.Time) { return u.CreatedAt, u.UpdatedAt }

// Public returns the user fields that are safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the client-facing view of [User].
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
