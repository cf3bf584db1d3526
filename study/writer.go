// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package study

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/lib/pq"

	"github.com/danielhkuo/variety-study/models"
)

// ErrPersistence indicates the insert failed on every attempt. The caller's
// session must stay un-submitted so the participant can retry.
var ErrPersistence = errors.New("failed to record response after retries")

const (
	// writerAttempts and writerBaseDelay shape the retry schedule:
	// 6 attempts with sleeps of 200, 400, 800, 1600, 3200ms between them,
	// enough to absorb a burst of simultaneous classroom submissions.
	writerAttempts  = 6
	writerBaseDelay = 200 * time.Millisecond
)

// Execer is the single store primitive the writer needs. *sql.DB satisfies
// it; tests inject faults through it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Writer persists validated responses with bounded retry and exponential
// backoff. Each attempt is a single atomic insert: a failed attempt leaves
// no partial row. The writer does not deduplicate; if an insert succeeds
// but its acknowledgment is lost, a higher-level retry records a duplicate
// (accepted limitation, see DESIGN.md).
type Writer struct {
	db       Execer
	attempts uint
	delay    time.Duration
}

func NewWriter(db Execer) *Writer {
	return &Writer{db: db, attempts: writerAttempts, delay: writerBaseDelay}
}

// Persist inserts the full response record, retrying transient failures up
// to the attempt bound. The created_at timestamp is whatever the caller
// assigned; the id comes from the database sequence.
func (w *Writer) Persist(ctx context.Context, resp *models.Response) error {
	err := retry.Do(
		func() error {
			_, err := w.db.ExecContext(ctx, `
				INSERT INTO yogurt_variety (created_at, participant_id, condition, choices, variety)
				VALUES ($1, $2, $3, $4, $5)
			`, resp.CreatedAt, resp.ParticipantID, resp.Condition, pq.Array(resp.Choices), resp.Variety)
			return err
		},
		retry.Attempts(w.attempts),
		retry.Delay(w.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("insert failed, retrying",
				"attempt", n+1,
				"participant_id", resp.ParticipantID,
				"error", err,
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
