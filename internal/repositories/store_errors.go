package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fixitfast/pkg/utils"
)

// All repository calls run under a bounded timeout so a wedged store surfaces
// as ErrStoreUnavailable instead of hanging the request.
var queryTimeout = 5 * time.Second

func SetQueryTimeout(d time.Duration) {
	if d > 0 {
		queryTimeout = d
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
}

// passErr keeps domain sentinels produced inside transactions intact and
// wraps everything else as a store failure.
func passErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, utils.ErrNotFound) ||
		errors.Is(err, utils.ErrConflict) ||
		errors.Is(err, utils.ErrForbidden) {
		return err
	}
	return storeErr(err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
