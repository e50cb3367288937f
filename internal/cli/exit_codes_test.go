package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error":            {err: nil, want: ExitSuccess},
		"validation failure":   {err: NewExitError(ExitValidationFailed), want: ExitValidationFailed},
		"usage error":          {err: NewExitError(ExitUsageError), want: ExitUsageError},
		"wrapped usage error":  {err: WrapExitError(ExitUsageError, errors.New("bad type")), want: ExitUsageError},
		"doubly wrapped":       {err: fmt.Errorf("context: %w", NewExitError(ExitValidationFailed)), want: ExitValidationFailed},
		"plain error defaults": {err: errors.New("boom"), want: ExitUsageError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestWrapExitErrorPreservesMessage(t *testing.T) {
	inner := errors.New("invalid implementation type \"desktop\"")
	err := WrapExitError(ExitUsageError, inner)

	assert.Equal(t, inner.Error(), err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestNewExitErrorMessage(t *testing.T) {
	err := NewExitError(ExitValidationFailed)
	assert.Equal(t, "exit code 1", err.Error())
}
