package usecase

import (
	"context"
	"errors"
	"regexp"
	"time"

	"gads-manager/internal/core/port"
)

// transientPattern matches Ads API messages that usually clear up on retry.
// Message matching is a fallback for errors without a structured signal.
var transientPattern = regexp.MustCompile(`(?i)quota|rate|timeout|temporar`)

// temporary is implemented by errors that know whether they are transient,
// such as googleads.APIError.
type temporary interface {
	Temporary() bool
}

// IsTransient reports whether a failed creation is worth retrying. An error
// in the chain reporting Temporary is enough; otherwise msg decides, since
// wrapped transport and token errors often answer Temporary false while
// carrying a quota or rate message.
func IsTransient(err error, msg string) bool {
	var t temporary
	if errors.As(err, &t) && t.Temporary() {
		return true
	}
	return transientPattern.MatchString(msg)
}

func failureMessage(res port.CreateResult, err error) string {
	if err != nil {
		return err.Error()
	}
	if res.Error != "" {
		return res.Error
	}
	return "Unknown error"
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
