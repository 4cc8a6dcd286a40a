// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quiz-api/internal/logger"
	"golang.org/x/sync/singleflight"
)

const connectKey = "connect"

// Connector owns the process-wide database connection and opens it lazily.
//
// The first [Connector.Get] dials; callers arriving while that dial is in
// flight wait for the same attempt instead of dialing again. A successful
// connection is kept until [Connector.Close]. A failed attempt is not
// remembered, so the next call dials again.
type Connector struct {
	driver   string
	dial     Dialer
	timeout  time.Duration
	observer ConnectObserver
	logger   *logger.Logger

	group singleflight.Group

	mu     sync.RWMutex
	conn   Connection
	closed bool

	attempts atomic.Int64
}

// NewConnector constructs a [Connector]. dial may be nil when no backend is
// configured; Get then fails with [ErrNoBackend]. observer may be nil.
func NewConnector(driver string, dial Dialer, timeout time.Duration, observer ConnectObserver, log *logger.Logger) *Connector {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Connector{
		driver:   driver,
		dial:     dial,
		timeout:  timeout,
		observer: observer,
		logger:   log,
	}
}

// Get returns the shared connection, dialing on first use.
//
// The dial runs on a context detached from ctx and bounded by the connect
// timeout, so one impatient caller cannot abort the attempt for everyone
// waiting on it. ctx still bounds how long this caller waits.
func (c *Connector) Get(ctx context.Context) (Connection, error) {
	conn, closed := c.state()
	if conn != nil {
		return conn, nil
	}
	if closed {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, ErrConnectorClosed)
	}

	if c.dial == nil {
		return nil, ErrNoBackend
	}

	ch := c.group.DoChan(connectKey, func() (any, error) {
		if conn := c.current(); conn != nil {
			return conn, nil
		}
		return c.connect(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Connection), nil
	}
}

func (c *Connector) connect(ctx context.Context) (Connection, error) {
	attempt := c.attempts.Add(1)
	log := c.logger.With().Str("driver", c.driver).Int64("attempt", attempt).Logger()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log.Info().Msg("connecting to database")
	started := time.Now()

	conn, err := c.dial(ctx)
	c.observer.ObserveConnectAttempt(c.driver, err)
	if err != nil {
		log.Err(err).Dur("elapsed", time.Since(started)).Msg("database connection failed")
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		if cerr := conn.Close(ctx); cerr != nil {
			log.Err(cerr).Msg("error closing connection dialed after close")
		}
		log.Info().Msg("connector closed during dial, connection discarded")
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, ErrConnectorClosed)
	}
	c.conn = conn
	c.mu.Unlock()

	c.observer.SetDatabaseUp(true)
	log.Info().Dur("elapsed", time.Since(started)).Msg("connected to database")

	return conn, nil
}

func (c *Connector) current() Connection {
	conn, _ := c.state()
	return conn
}

func (c *Connector) state() (Connection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn, c.closed
}

// Connected reports whether a connection has been established. It never
// dials.
func (c *Connector) Connected() bool {
	return c.current() != nil
}

// Driver names the configured backend, empty when none is configured.
func (c *Connector) Driver() string {
	return c.driver
}

// Attempts returns how many dials have been started.
func (c *Connector) Attempts() int64 {
	return c.attempts.Load()
}

// Ping checks the established connection. It returns [ErrNotConnected]
// without dialing when there is none.
func (c *Connector) Ping(ctx context.Context) error {
	conn := c.current()
	if conn == nil {
		return ErrNotConnected
	}

	err := conn.Ping(ctx)
	c.observer.SetDatabaseUp(err == nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}

// Close closes the established connection, if any, and shuts the connector
// down. Later calls to Get fail with [ErrConnectorClosed], and a dial still in
// flight closes its connection instead of publishing it.
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.closed = true
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	c.observer.SetDatabaseUp(false)
	if err := conn.Close(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("error closing database connection: %w", err)
	}

	c.logger.Info().Str("driver", c.driver).Msg("database connection closed")
	return nil
}

type nopObserver struct{}

func (nopObserver) ObserveConnectAttempt(string, error) {}

func (nopObserver) SetDatabaseUp(bool) {}
