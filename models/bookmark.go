// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bookmark marks a quiz for quick access. An owner bookmarks a quiz at most
// once.
type Bookmark struct {
	Base `bson:",inline"`

	QuizID string `json:"quizId" bson:"quizId" validate:"required"`
	Note   string `json:"note" bson:"note" validate:"max=500"`
}
