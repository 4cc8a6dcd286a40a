// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quiz-api/internal/config"
)

func TestNormalizeOrigin(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"https://App.Example.com/", "https://app.example.com", true},
		{"  http://localhost:3000  ", "http://localhost:3000", true},
		{"HTTPS://example.com", "https://example.com", true},
		{"example.com", "", false},
		{"", "", false},
		{"null", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := normalizeOrigin(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOriginPolicy_Allowed(t *testing.T) {
	policy := newOriginPolicy(config.CORS{
		ClientURL:   "https://client.example.com/",
		FrontendURL: "https://a.example.com, https://b.example.com",
		VercelURL:   "quiz-app.vercel.app",
		Origins:     []string{"https://extra.example.com"},
	})

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://client.example.com", true},
		{"https://CLIENT.example.com/", true},
		{"https://a.example.com", true},
		{"https://b.example.com", true},
		{"https://quiz-app.vercel.app", true},
		{"https://extra.example.com", true},
		{"http://localhost:3000", true},
		{"http://127.0.0.1:5173", true},
		{"http://client.example.com", false},
		{"https://preview-123.vercel.app", false},
		{"https://evil.example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Allowed(tt.origin))
		})
	}
}

func TestOriginPolicy_VercelPreviews(t *testing.T) {
	policy := newOriginPolicy(config.CORS{AllowVercelPreviews: true})

	assert.True(t, policy.Allowed("https://quiz-git-feature.vercel.app"))
	assert.False(t, policy.Allowed("http://quiz-git-feature.vercel.app"))
	assert.False(t, policy.Allowed("https://vercel.app"))
	assert.False(t, policy.Allowed("https://quiz.vercel.app.evil.com"))
}

func TestOriginPolicy_ListIncludesFallbacks(t *testing.T) {
	policy := newOriginPolicy(config.CORS{})

	assert.ElementsMatch(t, fallbackOrigins, policy.List())
}
