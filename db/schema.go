// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the response table if it does not exist yet.
// Safe to call on every process start and under concurrent startup -
// everything uses IF NOT EXISTS.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

const schema = `
-- Responses: one row per completed submission
CREATE TABLE IF NOT EXISTS yogurt_variety (
    id BIGSERIAL PRIMARY KEY,
    created_at TIMESTAMPTZ NOT NULL,
    participant_id TEXT NOT NULL,
    condition TEXT NOT NULL CHECK (condition IN ('sequential', 'simultaneous')),
    choices TEXT[] NOT NULL,      -- exactly 3 flavor labels, repeats allowed
    variety TEXT NOT NULL CHECK (variety IN ('Low', 'Medium', 'High'))
);

CREATE INDEX IF NOT EXISTS idx_yogurt_variety_condition ON yogurt_variety(condition);
`
