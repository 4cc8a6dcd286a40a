// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
)

func TestNewHandler(t *testing.T) {
	svcs := newTestServices()
	db := &stubDatabase{}
	log := logger.Nop()

	h := NewHandler(svcs, db, nil, testConfig(), log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, db, h.database)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.metrics, "a private registry is created when none is given")
	assert.True(t, h.origins.Allowed("https://app.example.com"))

	assert.Equal(t, "Quiz", h.quizzes.name)
	assert.Equal(t, "Student quiz", h.studentQuizzes.name)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := newTestHandler(t, newTestServices())
	h2 := newTestHandler(t, newTestServices())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.metrics, h2.metrics)
}
