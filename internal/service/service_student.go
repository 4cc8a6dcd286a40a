// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-quiz-api/internal/store"
	"github.com/MKhiriev/go-quiz-api/internal/validators"
	"github.com/MKhiriev/go-quiz-api/models"
)

type studentService struct {
	*resourceService[models.Student, *models.Student]
}

// NewStudentService returns the roster service. Deleting a student removes
// the student's attempts.
func NewStudentService(storages *store.Storages, v validators.Validator, ids IDGenerator) StudentService {
	s := newResourceService[models.Student, *models.Student]("student", storages.Students, v, ids, models.FieldName)

	s.normalize = func(st *models.Student, _ *models.Student) {
		normalizeStudent(st)
	}

	s.afterDelete = func(ctx context.Context, ownerID, id string) error {
		q := models.ListQuery{OwnerID: ownerID}.Where(models.FieldStudentID, id)
		_, err := storages.StudentQuizzes.DeleteMany(ctx, q)
		return err
	}

	return &studentService{resourceService: s}
}

func normalizeStudent(st *models.Student) {
	st.Name = strings.TrimSpace(st.Name)
	st.Email = strings.ToLower(strings.TrimSpace(st.Email))
	st.StudentNumber = strings.TrimSpace(st.StudentNumber)
	st.ClassName = strings.TrimSpace(st.ClassName)
}
