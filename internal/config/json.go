// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Env               string `json:"env"`
		Version           string `json:"version"`
		EnableDebugRoutes bool   `json:"enable_debug_routes"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"jwt_secret"`
		TokenIssuer   string   `json:"jwt_issuer"`
		TokenDuration Duration `json:"jwt_expires_in"`
		CookieSecure  bool     `json:"cookie_secure"`
	} `json:"auth,omitempty"`

	Storage struct {
		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`

		Postgres struct {
			DSN string `json:"dsn"`
		} `json:"postgres,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`

		ConnectTimeout Duration `json:"connect_timeout"`
	} `json:"storage,omitempty"`

	Server struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		BodyLimit      int64    `json:"body_limit"`
	} `json:"server,omitempty"`

	CORS struct {
		ClientURL           string   `json:"client_url"`
		FrontendURL         string   `json:"frontend_url"`
		Origins             []string `json:"origins"`
		AllowVercelPreviews bool     `json:"allow_vercel_previews"`
	} `json:"cors,omitempty"`

	Mail struct {
		Host string `json:"host"`
		Port int    `json:"port"`
		User string `json:"user"`
		From string `json:"from"`
	} `json:"mail,omitempty"`

	Workers struct {
		DBMonitorInterval Duration `json:"db_monitor_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:               jsonCfg.App.Env,
			Version:           jsonCfg.App.Version,
			EnableDebugRoutes: jsonCfg.App.EnableDebugRoutes,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			CookieSecure:  jsonCfg.Auth.CookieSecure,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:      jsonCfg.Storage.Mongo.URI,
				Database: jsonCfg.Storage.Mongo.Database,
			},
			Postgres:       Postgres{DSN: jsonCfg.Storage.Postgres.DSN},
			Redis:          Redis{URL: jsonCfg.Storage.Redis.URL},
			ConnectTimeout: time.Duration(jsonCfg.Storage.ConnectTimeout),
		},
		Server: Server{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			BodyLimit:      jsonCfg.Server.BodyLimit,
		},
		CORS: CORS{
			ClientURL:           jsonCfg.CORS.ClientURL,
			FrontendURL:         jsonCfg.CORS.FrontendURL,
			Origins:             jsonCfg.CORS.Origins,
			AllowVercelPreviews: jsonCfg.CORS.AllowVercelPreviews,
		},
		Mail: Mail{
			Host: jsonCfg.Mail.Host,
			Port: jsonCfg.Mail.Port,
			User: jsonCfg.Mail.User,
			From: jsonCfg.Mail.From,
		},
		Workers: Workers{
			DBMonitorInterval: time.Duration(jsonCfg.Workers.DBMonitorInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s", "7d"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
