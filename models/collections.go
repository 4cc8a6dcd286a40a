// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names used by both store backends.
const (
	UsersCollection          = "users"
	QuizzesCollection        = "quizzes"
	FoldersCollection        = "folders"
	BookmarksCollection      = "bookmarks"
	StudentsCollection       = "students"
	StudentQuizzesCollection = "student_quizzes"
)

// Field names shared by filters, indexes and sort keys. They match the json
// and bson tags of the entities.
const (
	FieldID        = "_id"
	FieldOwnerID   = "ownerId"
	FieldEmail     = "email"
	FieldName      = "name"
	FieldTitle     = "title"
	FieldFolderID  = "folderId"
	FieldQuizID    = "quizId"
	FieldStudentID = "studentId"
	FieldStatus    = "status"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)
