// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request, and response types for the
variety study API.

# Domain Constants

Two experimental conditions and three variety categories:

	models.Conditions // [sequential, simultaneous]
	models.Varieties  // [Low, Medium, High]

Both slices are in fixed display order so rendered results never reshuffle
between refreshes.

# Flavors

The choice set is the fixed six-flavor list in models.Flavors. A submission
is exactly ChoiceCount (3) labels drawn from it, repeats allowed.

# Aggregate Shape

AggregateView is always dense: two ConditionBreakdowns, each with three
VarietyCells, zero-filled where no responses exist. Consumers never need to
branch on missing keys.
*/
package models
