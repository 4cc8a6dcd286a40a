// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-mongo-uri MongoDB connection string
//	-mongo-db MongoDB database name
//	-d PostgreSQL DSN
//	-redis-url Redis URL for the token denylist
//	-c/-config json file path with configs
//	-jwt-secret token signing key
//	-jwt-issuer token issuer name
//	-jwt-expires-in token duration (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-connect-timeout database connect timeout
//	-env application environment
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("quiz-api", flag.ContinueOnError)

	var serverAddress NetAddress
	var grpcAddress NetAddress
	var mongoURI, mongoDB, databaseDSN, redisURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, connectTimeout time.Duration
	var appEnv string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&mongoDB, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&databaseDSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "jwt-secret", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "jwt-issuer", "", "Token issuer")
	fs.Func("jwt-expires-in", "Token duration (e.g., 1h, 168h, 7d)", func(v string) error {
		d, err := ParseDuration(v)
		if err != nil {
			return err
		}
		tokenDuration = d
		return nil
	})
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Database connect timeout")
	fs.StringVar(&appEnv, "env", "", "Application environment")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env: appEnv,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			Mongo:          Mongo{URI: mongoURI, Database: mongoDB},
			Postgres:       Postgres{DSN: databaseDSN},
			Redis:          Redis{URL: redisURL},
			ConnectTimeout: connectTimeout,
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
