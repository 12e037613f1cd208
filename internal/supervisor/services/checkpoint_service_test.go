// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

type mockCheckpointer struct {
	calls atomic.Int32
	err   error
}

func (m *mockCheckpointer) Checkpoint(context.Context) error {
	m.calls.Add(1)
	return m.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCheckpointService_Interface(t *testing.T) {
	var _ suture.Service = (*CheckpointService)(nil)
}

func TestNewCheckpointService_Defaults(t *testing.T) {
	svc := NewCheckpointService(&mockCheckpointer{}, 0, nil)
	if svc.interval != 5*time.Minute {
		t.Errorf("interval = %v, want 5m", svc.interval)
	}
	if svc.logger == nil {
		t.Error("logger should default to slog.Default()")
	}
	if svc.String() != "duckdb-checkpoint" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCheckpointService_Serve(t *testing.T) {
	t.Run("checkpoints on interval and on shutdown", func(t *testing.T) {
		db := &mockCheckpointer{}
		svc := NewCheckpointService(db, 10*time.Millisecond, quietLogger())

		ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
		defer cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() = %v, want deadline exceeded", err)
		}
		// At least a few ticks plus the final checkpoint
		if db.calls.Load() < 3 {
			t.Errorf("Checkpoint called %d times, want >= 3", db.calls.Load())
		}
	})

	t.Run("returns after repeated failures", func(t *testing.T) {
		db := &mockCheckpointer{err: errors.New("disk full")}
		svc := NewCheckpointService(db, 5*time.Millisecond, quietLogger())

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		err := svc.Serve(ctx)
		if err == nil || !errors.Is(err, db.err) {
			t.Fatalf("Serve() = %v, want wrapped checkpoint error", err)
		}
		if got := db.calls.Load(); got != maxCheckpointFailures {
			t.Errorf("Checkpoint called %d times, want %d", got, maxCheckpointFailures)
		}
	})
}
