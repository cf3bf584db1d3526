// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package study

import (
	"errors"

	"github.com/danielhkuo/variety-study/models"
)

// ErrInvalidChoices indicates a choice slice of the wrong length reached the
// classifier. The validator prevents this in normal operation; hitting it is
// a programming error, not user input.
var ErrInvalidChoices = errors.New("choices must contain exactly 3 items")

// Classify maps a three-choice sequence to its variety category based only
// on the number of distinct values: Low for 1, Medium for 2, High for 3.
// Order and identity of the flavors do not matter.
func Classify(choices []string) (models.Variety, error) {
	if len(choices) != models.ChoiceCount {
		return "", ErrInvalidChoices
	}

	distinct := make(map[string]struct{}, models.ChoiceCount)
	for _, c := range choices {
		distinct[c] = struct{}{}
	}

	switch len(distinct) {
	case 1:
		return models.VarietyLow, nil
	case 2:
		return models.VarietyMedium, nil
	default:
		return models.VarietyHigh, nil
	}
}
