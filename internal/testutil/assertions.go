package testutil

import (
	"math"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tradelog/internal/errors"
)

// floatTolerance absorbs rounding in derived P&L and percentages.
const floatTolerance = 1e-9

// TestingT is the part of *testing.T the assertions need.
type TestingT interface {
	require.TestingT
	Helper()
}

// AssertAppError checks that err is an *AppError with the expected code and
// returns it so callers can inspect the message.
func AssertAppError(t TestingT, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr, "expected AppError with code %q", expectedCode)
	assert.Equal(t, expectedCode, appErr.Code, "message: %s", appErr.Message)
	return appErr
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t TestingT, err error) {
	t.Helper()
	require.NoError(t, err)
}

// AssertFloat compares a derived amount within floatTolerance. Infinities
// must match exactly.
func AssertFloat(t TestingT, name string, got, want float64) {
	t.Helper()

	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		assert.Equal(t, want, got, name)
		return
	}
	assert.InDelta(t, want, got, floatTolerance, name)
}
