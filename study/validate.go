// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package study

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/danielhkuo/variety-study/models"
)

// IncompleteError reports which slots of a submission still hold the
// unselected placeholder. Slots are numbered from 1 to match the form.
type IncompleteError struct {
	Missing []int
}

func (e *IncompleteError) Error() string {
	slots := make([]string, len(e.Missing))
	for i, n := range e.Missing {
		slots[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("no flavor selected for slot(s) %s", strings.Join(slots, ", "))
}

// UnknownFlavorError reports a label outside the fixed flavor set.
type UnknownFlavorError struct {
	Label string
}

func (e *UnknownFlavorError) Error() string {
	return fmt.Sprintf("unknown flavor %q", e.Label)
}

// ValidateChoices gates persistence. It rejects submissions that are not
// exactly three slots, that still hold the placeholder in any slot, or that
// name a flavor outside the fixed set. A rejected submission must never
// reach the writer.
func ValidateChoices(raw []string) ([]string, error) {
	if len(raw) != models.ChoiceCount {
		return nil, ErrInvalidChoices
	}

	var missing []int
	for i, c := range raw {
		if c == models.PlaceholderChoice {
			missing = append(missing, i+1)
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}

	for _, c := range raw {
		if !slices.Contains(models.Flavors, c) {
			return nil, &UnknownFlavorError{Label: c}
		}
	}

	return raw, nil
}
