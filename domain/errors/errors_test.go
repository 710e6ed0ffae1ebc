package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &QueryError{Operation: "tokenUpgradedEvents", TokenAddress: "0xabc", BlockNumber: 12, Err: cause}

	assert.True(t, errors.Is(err, ErrQuery))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "tokenUpgradedEvents")
	assert.Contains(t, err.Error(), "0xabc")

	wrapped := fmt.Errorf("processing job: %w", err)
	var qe *QueryError
	assert.True(t, errors.As(wrapped, &qe))
	assert.Equal(t, uint64(12), qe.BlockNumber)
}

func TestValidationError(t *testing.T) {
	v := &ValidationError{}
	assert.False(t, v.HasErrors())

	v.AddFieldError("min_amount", "must be an integer")
	v.AddFieldError("min_amount", "must not be negative")
	assert.True(t, v.HasErrors())
	assert.Len(t, v.Fields["min_amount"], 2)
	assert.Equal(t, "validation failed for 1 fields", v.Error())
	assert.True(t, errors.Is(v, ErrInvalidInput))
}

func TestNotifierError(t *testing.T) {
	err := &NotifierError{Channel: "slack", StatusCode: 500, Err: ErrNotConfigured}
	assert.Contains(t, err.Error(), "status 500")
	assert.True(t, errors.Is(err, ErrNotConfigured))

	err = &NotifierError{Channel: "telegram", Err: fmt.Errorf("timeout")}
	assert.Equal(t, "telegram notifier error: timeout", err.Error())
}
