// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package study implements the response ingestion and aggregation pipeline of
the variety study.

# Pipeline

One submission flows through the package like this:

	store := study.NewSessionStore()
	token, sess, _ := store.Assign("")           // random arm + participant id
	choices, err := study.ValidateChoices(raw)   // gate: no placeholders
	variety, err := study.Classify(choices)      // Low / Medium / High
	err = writer.Persist(ctx, response)          // bounded retry insert
	store.MarkSubmitted(token)                   // only after confirmed write

The live results view comes from:

	view, err := study.Aggregate(ctx, db)

# Classification

Variety depends only on the count of distinct flavors in the three choices:
one distinct value is Low, two is Medium, three is High. Order and flavor
identity are irrelevant, so any permutation of the same multiset classifies
identically. Variety is computed once at submission time and stored, never
recomputed at read time.

# Durability

Writer retries transient insert failures up to 6 attempts with exponential
backoff starting at 200ms. Exhaustion surfaces ErrPersistence and leaves the
session un-submitted so the participant may retry. The writer cannot tell a
lost acknowledgment from a true failure, so a higher-level retry can record
a duplicate row; see DESIGN.md.

# Sessions

Sessions live only in process memory. Assignment is idempotent per token and
a condition is never redrawn once set. The store delegates nothing to the
database; the durable store is shared state for responses only.
*/
package study
