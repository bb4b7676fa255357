package persist

import (
	"fmt"

	"github.com/osse101/Daymon_Go/internal/domain"
)

// CheckDataLoss refuses to write an empty state over rows that are known to
// exist. A player with nothing persisted may save nothing.
func CheckDataLoss(persisted, next int) error {
	if next == 0 && persisted > 0 {
		return fmt.Errorf("%w: %d stored rows", domain.ErrDataLossGuard, persisted)
	}
	return nil
}
