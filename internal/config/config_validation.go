// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied after all sources are merged.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 5000
	DefaultMongoDatabase     = "quiz-app"
	DefaultConnectTimeout    = 10 * time.Second
	DefaultTokenIssuer       = "quiz-api"
	DefaultTokenDuration     = 7 * 24 * time.Hour
	DefaultRequestTimeout    = 30 * time.Second
	DefaultBodyLimit         = 10 << 20
	DefaultVersion           = "1.0.0"
	DefaultDBMonitorInterval = 30 * time.Second
	DefaultSMTPPort          = 587
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = DefaultMongoDatabase
	}
	if cfg.Storage.ConnectTimeout == 0 {
		cfg.Storage.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.BodyLimit == 0 {
		cfg.Server.BodyLimit = DefaultBodyLimit
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = DefaultSMTPPort
	}
	if cfg.Workers.DBMonitorInterval == 0 {
		cfg.Workers.DBMonitorInterval = DefaultDBMonitorInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return ErrInvalidAppConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 || cfg.Server.BodyLimit < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.ConnectTimeout < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.DBMonitorInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
