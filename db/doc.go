// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

EnsureSchema initializes the response table:

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index,
so concurrent startups do not race.

# Table

yogurt_variety holds one row per completed submission:

  - id: BIGSERIAL, server-assigned, monotonically increasing
  - created_at: TIMESTAMPTZ, assigned by the writer in UTC
  - participant_id: opaque per-session identifier
  - condition: 'sequential' or 'simultaneous' (CHECK-constrained)
  - choices: TEXT[] of exactly 3 flavor labels, repeats allowed
  - variety: 'Low', 'Medium' or 'High' (CHECK-constrained)

The condition index supports the aggregator's GROUP BY scan.
*/
package db
