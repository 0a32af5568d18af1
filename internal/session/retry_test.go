// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/bookfinder/internal/catalog"
)

func TestBackoffDelaysDouble(t *testing.T) {
	serverErr := &catalog.Error{Kind: catalog.KindHTTP, StatusCode: 503}

	wait, retry := Backoff(serverErr, 0)
	assert.True(t, retry)
	assert.Equal(t, RetryBaseDelay, wait)

	wait, retry = Backoff(serverErr, 1)
	assert.True(t, retry)
	assert.Equal(t, 2*RetryBaseDelay, wait)

	// Budget exhausted after 2 retries (3 total attempts).
	_, retry = Backoff(serverErr, 2)
	assert.False(t, retry)
}

func TestBackoffTerminalErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"decoding", &catalog.Error{Kind: catalog.KindDecoding}},
		{"http 404", &catalog.Error{Kind: catalog.KindHTTP, StatusCode: 404}},
		{"invalid query", &catalog.Error{Kind: catalog.KindInvalidQuery}},
		{"invalid url", &catalog.Error{Kind: catalog.KindInvalidURL}},
		{"untyped", errors.New("boom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, retry := Backoff(tt.err, 0)
			assert.False(t, retry, "terminal errors must not retry")
		})
	}
}

func TestBackoffTransientErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network", &catalog.Error{Kind: catalog.KindNetwork}},
		{"malformed envelope", &catalog.Error{Kind: catalog.KindInvalidResponse}},
		{"http 500", &catalog.Error{Kind: catalog.KindHTTP, StatusCode: 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait, retry := Backoff(tt.err, 0)
			assert.True(t, retry)
			assert.Equal(t, RetryBaseDelay, wait)
		})
	}
}

func TestBackoffUnaffectedByBase(t *testing.T) {
	// The exported base is a var so tests elsewhere can shrink real waits.
	old := RetryBaseDelay
	defer func() { RetryBaseDelay = old }()

	RetryBaseDelay = 5 * time.Millisecond
	wait, retry := Backoff(&catalog.Error{Kind: catalog.KindNetwork}, 1)
	assert.True(t, retry)
	assert.Equal(t, 10*time.Millisecond, wait)
}
