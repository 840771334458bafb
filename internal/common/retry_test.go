package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func TestWithRetry_SucceedsAfterBusy(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return ErrDatabaseBusy
		}
		return nil
	}, fastRetry)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("no such table")
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return permanent
	}, fastRetry)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return &RetryableError{Err: errors.New("flaky"), Retryable: true}
	}, fastRetry)

	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 3, attempts)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error { return ErrDatabaseBusy }, RetryOptions{MaxAttempts: 5, InitialDelay: time.Hour})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "busy", err: ErrDatabaseBusy, want: true},
		{name: "wrapped busy", err: errors.Join(errors.New("open"), ErrDatabaseBusy), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "retryable wrapper", err: &RetryableError{Err: errors.New("x"), Retryable: true}, want: true},
		{name: "non-retryable wrapper", err: &RetryableError{Err: errors.New("x")}, want: false},
		{name: "plain", err: errors.New("x"), want: false},
		{name: "config", err: ErrInvalidConfig, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewUserError("cannot read fixtures", cause)

	assert.Equal(t, "cannot read fixtures: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "cannot read fixtures", userErr.UserMessage)

	assert.Equal(t, "bare", NewUserError("bare", nil).Error())
}
