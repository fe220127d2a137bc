package drive

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/hearthkeep/hearthkeep/internal/model"
)

// translateErr maps a remote API failure onto the model taxonomy at the
// adapter boundary. Nothing is swallowed: whatever cannot be classified
// propagates wrapped with the operation name.
func translateErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusNotFound:
			return fmt.Errorf("drive %s: %w", op, model.ErrNotFound)
		case gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden:
			return fmt.Errorf("drive %s: %w: %s", op, model.ErrPermission, gerr.Message)
		case gerr.Code == http.StatusTooManyRequests || gerr.Code >= 500:
			return fmt.Errorf("drive %s: %w: http %d", op, model.ErrTransient, gerr.Code)
		}
		return fmt.Errorf("drive %s: http %d: %w", op, gerr.Code, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("drive %s: %w: deadline exceeded", op, model.ErrTransient)
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return fmt.Errorf("drive %s: %w: %v", op, model.ErrTransient, nerr)
	}

	return fmt.Errorf("drive %s: %w", op, err)
}
