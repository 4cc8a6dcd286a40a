// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the quiz API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// metrics, panic recovery, the CORS allow-list, response compression, body
// limits, authentication and the database guard are handled in this package
// before requests are delegated to the service layer.
package http
