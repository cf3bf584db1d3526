// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Condition is the experimental arm a participant is assigned to.
type Condition string

const (
	// ConditionSequential: choose one yogurt each week, three weeks in a row.
	ConditionSequential Condition = "sequential"
	// ConditionSimultaneous: choose all three yogurts at once.
	ConditionSimultaneous Condition = "simultaneous"
)

// Conditions lists both arms in display order. The order is fixed so that
// repeated renders of the results view are visually stable.
var Conditions = []Condition{ConditionSequential, ConditionSimultaneous}

// Variety is the derived category describing how many distinct flavors
// appear in a three-choice response.
type Variety string

const (
	VarietyLow    Variety = "Low"    // one flavor three times
	VarietyMedium Variety = "Medium" // exactly two distinct flavors
	VarietyHigh   Variety = "High"   // three different flavors
)

// Varieties lists the categories in display order (fixed, not data-derived).
var Varieties = []Variety{VarietyLow, VarietyMedium, VarietyHigh}

// Flavors is the fixed choice set shown to every participant.
var Flavors = []string{"Vanilla", "Strawberry", "Banana", "Blueberry", "Apricot", "Coffee"}

const (
	// ChoiceCount is the exact number of selections in a submission.
	ChoiceCount = 3

	// PlaceholderChoice is the unselected sentinel a form slot holds before
	// the participant picks a flavor. It must never reach the database.
	PlaceholderChoice = ""

	// PercentLabelFloor is the smallest within-condition percentage that the
	// results chart labels. Segments below this render unlabeled.
	PercentLabelFloor = 6
)

// ConditionPrompts holds the instructional text variant for each arm.
var ConditionPrompts = map[Condition]string{
	ConditionSequential: "Imagine you are purchasing three cups of yogurt. " +
		"Choose one yogurt each week, for three consecutive weeks, from the same set. " +
		"Which yogurt would you choose each week?",
	ConditionSimultaneous: "Imagine you are purchasing three cups of yogurt. " +
		"Choose three yogurts at the same time, to be consumed over three weeks. " +
		"You may select the same yogurt more than once.",
}

// Request types

type SubmitResponseRequest struct {
	Choices []string `json:"choices"`
}

// Response types

type AssignSessionResponse struct {
	SessionToken  string    `json:"session_token"`
	ParticipantID string    `json:"participant_id"`
	Condition     Condition `json:"condition"`
	Submitted     bool      `json:"submitted"`
}

type SubmitResponseResponse struct {
	Variety Variety `json:"variety"`
	Message string  `json:"message"`
}

type FlavorsResponse struct {
	Flavors []string             `json:"flavors"`
	Prompts map[Condition]string `json:"prompts"`
}

type ResultsResponse struct {
	AggregateView
	LabelFloorPct int `json:"label_floor_pct"`
}

// Domain types

// Response is one persisted submission. Immutable once written.
type Response struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	ParticipantID string    `json:"participant_id"`
	Condition     Condition `json:"condition"`
	Choices       []string  `json:"choices"`
	Variety       Variety   `json:"variety"`
}

// Session is one visitor's in-progress interaction. Held in process memory
// only; a restart drops it and the visitor starts over.
type Session struct {
	ParticipantID string    `json:"participant_id"`
	Condition     Condition `json:"condition"`
	Submitted     bool      `json:"submitted"`
}

// Aggregate types

// VarietyCell is one (condition, variety) cell of the results grid.
type VarietyCell struct {
	Variety Variety `json:"variety"`
	Count   int     `json:"count"`
	Percent int     `json:"percent"`
}

// ConditionBreakdown holds the three variety cells for one arm, with
// percentages computed against the arm's own total.
type ConditionBreakdown struct {
	Condition Condition     `json:"condition"`
	Total     int           `json:"total"`
	Cells     []VarietyCell `json:"cells"`
}

// AggregateView is the dense 2x3 summary of all persisted responses.
// All six cells are always present, zero-filled where no data exists.
type AggregateView struct {
	Conditions []ConditionBreakdown `json:"conditions"`
	Total      int                  `json:"total"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
