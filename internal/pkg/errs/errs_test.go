//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"royal-stay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewf(t *testing.T) {
	err := errs.Newf(errs.ErrRoomUnavailable, "room %d", 101)

	require.ErrorIs(t, err, errs.ErrRoomUnavailable)
	assert.EqualError(t, err, "room 101: room is not available")
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	err := errs.Wrapf(errs.ErrBookingNotFound, "cancel booking %d", 3)
	require.ErrorIs(t, err, errs.ErrBookingNotFound)
	assert.EqualError(t, err, "cancel booking 3: booking not found")
}

func TestMark(t *testing.T) {
	cause := errors.New("Key: 'CreateBookingInput.GuestID' Error:Field validation for 'GuestID' failed on the 'required' tag")
	err := errs.Mark(cause, errs.ErrDomainValidationFailed)

	assert.True(t, errs.Is(err, errs.ErrDomainValidationFailed))
	assert.True(t, errs.Is(err, cause))
	assert.False(t, errs.Is(err, errs.ErrGuestNotFound))
	assert.Equal(t, cause.Error(), err.Error())

	assert.Equal(t, errs.ErrDomainValidationFailed, errs.Mark(nil, errs.ErrDomainValidationFailed))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	err := errs.Wrap(errors.New("disk full"), "store booking")
	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "store booking")
}
