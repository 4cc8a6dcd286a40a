// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Student is a roster entry managed by a teacher.
type Student struct {
	Base `bson:",inline"`

	Name          string `json:"name" bson:"name" validate:"required,max=100"`
	Email         string `json:"email" bson:"email" validate:"omitempty,email"`
	StudentNumber string `json:"studentNumber" bson:"studentNumber" validate:"max=50"`
	ClassName     string `json:"className" bson:"className" validate:"max=100"`
}

// ImportResult summarises a roster import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}
