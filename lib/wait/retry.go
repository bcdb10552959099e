package wait

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// Abort causes Retry function to stop with error
func Abort(err error) AbortRetry {
	return AbortRetry{Err: err}
}

// Continue causes Retry function to continue trying and logging message
func Continue(format string, args ...interface{}) ContinueRetry {
	message := fmt.Sprintf(format, args...)
	return ContinueRetry{Message: message}
}

// AbortRetry if returned from Retry, will lead to retries to be stopped,
// but the Retry function will return internal Error
type AbortRetry struct {
	Err error
}

func (r AbortRetry) Error() string {
	return fmt.Sprintf("Abort(%v)", r.Err)
}

// ContinueRetry if returned from Retry, will be lead to retry next time
type ContinueRetry struct {
	Message string
}

func (r ContinueRetry) Error() string {
	return fmt.Sprintf("ContinueRetry(%v)", r.Message)
}

// RetryWithInterval retries fn according to the given backoff policy until it succeeds,
// returns AbortRetry, the policy gives up or ctx expires.
func RetryWithInterval(ctx context.Context, interval backoff.BackOff, fn func() error, logger logrus.FieldLogger) error {
	if err := ctx.Err(); err != nil {
		return trace.Wrap(err)
	}
	var aborted error
	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		err := fn()
		if abort, ok := err.(AbortRetry); ok {
			aborted = abort.Err
			return nil
		}
		return err
	}, backoff.WithContext(interval, ctx), func(err error, d time.Duration) {
		switch origErr := err.(type) {
		case ContinueRetry:
			logger.Debugf("%v retry in %v", origErr.Message, d)
		default:
			logger.WithError(err).Debugf("unsuccessful attempt %v, retry in %v", attempt, d)
		}
	})
	if aborted != nil {
		logger.WithError(aborted).Error("aborted")
		return trace.Wrap(aborted)
	}
	if err != nil {
		logger.Errorf("all attempts failed:\n%v", trace.DebugReport(err))
		return trace.Wrap(err)
	}
	return nil
}

// Attempts returns an exponential backoff policy that allows at most the given
// number of attempts in total.
// A single attempt never retries: WithMaxRetries treats zero retries as unlimited
func Attempts(attempts int, initial, max time.Duration) backoff.BackOff {
	if attempts <= 1 {
		return &backoff.StopBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = max
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, uint64(attempts-1))
}
