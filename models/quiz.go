// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Quiz is a teacher-authored set of questions.
//
// Questions are stored exactly as the client sends them; the server does not
// interpret answers or points.
type Quiz struct {
	Base `bson:",inline"`

	Title       string     `json:"title" bson:"title" validate:"required,max=200"`
	Description string     `json:"description" bson:"description" validate:"max=2000"`
	FolderID    string     `json:"folderId" bson:"folderId"`
	Questions   []Question `json:"questions" bson:"questions" validate:"dive"`
	Tags        []string   `json:"tags" bson:"tags" validate:"max=20,dive,max=50"`
	IsPublic    bool       `json:"isPublic" bson:"isPublic"`
}

// Question is a single quiz item.
type Question struct {
	ID      string   `json:"id" bson:"id"`
	Text    string   `json:"text" bson:"text" validate:"required"`
	Type    string   `json:"type" bson:"type"`
	Options []string `json:"options" bson:"options"`
	Answer  string   `json:"answer" bson:"answer"`
	Points  float64  `json:"points" bson:"points" validate:"gte=0"`
}
