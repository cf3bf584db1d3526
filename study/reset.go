// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package study

import (
	"context"
	"fmt"
)

// ResetAll deletes every stored response. This is a bare destructive
// primitive with no confirmation and no undo; the HTTP boundary owns the
// safety gate.
func ResetAll(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM yogurt_variety`); err != nil {
		return fmt.Errorf("failed to reset responses: %w", err)
	}
	return nil
}
