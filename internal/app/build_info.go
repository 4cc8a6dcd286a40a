// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-quiz-api/models"
)

// BuildInfoUnknown replaces build metadata the linker did not set.
const BuildInfoUnknown = "N/A"

// NewBuildInfo fills empty linker values with [BuildInfoUnknown].
func NewBuildInfo(version, date, commit string) models.AppBuildInfo {
	return models.NewAppBuildInfo(orUnknown(version), orUnknown(date), orUnknown(commit))
}

// PrintBuildInfo writes the build metadata block printed at startup.
func PrintBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}

func orUnknown(v string) string {
	if v == "" {
		return BuildInfoUnknown
	}
	return v
}
