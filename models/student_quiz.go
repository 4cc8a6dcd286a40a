// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Attempt statuses.
const (
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

// StudentQuiz links a student to a quiz and records the attempt.
// Score and MaxScore are supplied by the client.
type StudentQuiz struct {
	Base `bson:",inline"`

	StudentID   string       `json:"studentId" bson:"studentId" validate:"required"`
	QuizID      string       `json:"quizId" bson:"quizId" validate:"required"`
	Status      string       `json:"status" bson:"status" validate:"omitempty,oneof=assigned in_progress submitted"`
	Answers     []QuizAnswer `json:"answers" bson:"answers"`
	Score       *float64     `json:"score,omitempty" bson:"score,omitempty"`
	MaxScore    *float64     `json:"maxScore,omitempty" bson:"maxScore,omitempty"`
	SubmittedAt *time.Time   `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
}

// QuizAnswer is one response within an attempt.
type QuizAnswer struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Response   string `json:"response" bson:"response"`
}
