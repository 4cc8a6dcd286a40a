// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Database states reported by the health endpoint.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// Health is the body of GET /api/health.
type Health struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Driver    string    `json:"driver,omitempty"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// MailStatus is the body of the mail configuration debug endpoint.
type MailStatus struct {
	Configured bool   `json:"configured"`
	Host       string `json:"host,omitempty"`
	Port       int    `json:"port,omitempty"`
	User       string `json:"user,omitempty"`
	From       string `json:"from,omitempty"`
}
