// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/url"
	"sort"
	"strings"

	"github.com/MKhiriev/go-quiz-api/internal/config"
)

// fallbackOrigins are always allowed so local frontends work without setup.
var fallbackOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

const vercelPreviewSuffix = ".vercel.app"

// originPolicy decides which browser origins may call the API.
// Origins are compared on lowercase scheme and host (with port).
type originPolicy struct {
	allowed        map[string]struct{}
	vercelPreviews bool
}

func newOriginPolicy(cfg config.CORS) *originPolicy {
	p := &originPolicy{
		allowed:        make(map[string]struct{}),
		vercelPreviews: cfg.AllowVercelPreviews,
	}

	sources := []string{cfg.ClientURL, cfg.FrontendURL}
	if vercel := strings.TrimSpace(cfg.VercelURL); vercel != "" {
		if !strings.Contains(vercel, "://") {
			vercel = "https://" + vercel
		}
		sources = append(sources, vercel)
	}
	sources = append(sources, cfg.Origins...)
	sources = append(sources, fallbackOrigins...)

	for _, source := range sources {
		for _, raw := range strings.Split(source, ",") {
			if origin, ok := normalizeOrigin(raw); ok {
				p.allowed[origin] = struct{}{}
			}
		}
	}

	return p
}

// Allowed reports whether origin may make credentialed requests.
func (p *originPolicy) Allowed(origin string) bool {
	normalized, ok := normalizeOrigin(origin)
	if !ok {
		return false
	}
	if _, ok = p.allowed[normalized]; ok {
		return true
	}
	return p.vercelPreviews && isVercelPreview(normalized)
}

// List returns the explicit allow-list, sorted.
func (p *originPolicy) List() []string {
	list := make([]string, 0, len(p.allowed))
	for origin := range p.allowed {
		list = append(list, origin)
	}
	sort.Strings(list)
	return list
}

func normalizeOrigin(raw string) (string, bool) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), true
}

func isVercelPreview(origin string) bool {
	host, ok := strings.CutPrefix(origin, "https://")
	if !ok {
		return false
	}
	return strings.HasSuffix(host, vercelPreviewSuffix) && len(host) > len(vercelPreviewSuffix)
}
