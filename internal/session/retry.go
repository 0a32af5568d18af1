// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"time"

	"github.com/pdiddy/bookfinder/internal/catalog"
)

// RetryBaseDelay is the base duration for exponential backoff between
// attempts. Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

// maxRetries caps the retry budget at 2 retries, 3 total attempts.
const maxRetries = 2

// Backoff decides whether a failed attempt should be retried and how long
// to wait first. attempt is zero-based, so the waits are 1s then 2s.
// Only transient failures (server 5xx, transport faults, malformed
// envelopes) are retried; request- and data-attributed errors surface
// immediately.
func Backoff(err error, attempt int) (time.Duration, bool) {
	if attempt >= maxRetries || !catalog.Retryable(err) {
		return 0, false
	}
	return time.Duration(1<<attempt) * RetryBaseDelay, true
}
