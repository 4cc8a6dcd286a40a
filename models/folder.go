// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder groups quizzes of one owner.
type Folder struct {
	Base `bson:",inline"`

	Name        string `json:"name" bson:"name" validate:"required,max=100"`
	Description string `json:"description" bson:"description" validate:"max=500"`
	Color       string `json:"color" bson:"color" validate:"omitempty,max=32"`
}
