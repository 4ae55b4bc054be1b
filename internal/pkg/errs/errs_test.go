//go:build unit

package errs_test

import (
	"testing"

	"hotel-booking-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	errInternal := errs.New("internal")
	errSoldOut := errs.New("sold out")

	err := errs.Kind(errs.Newf("no rooms left for %s", "H1"), errSoldOut, errs.ErrConflict)

	assert.True(t, errs.Is(err, errSoldOut))
	assert.True(t, errs.IsConflict(err))
	assert.False(t, errs.IsNotFound(err))
	assert.False(t, errs.Is(err, errInternal))
	assert.Equal(t, "no rooms left for H1", err.Error())
}

func TestWrapKeepsMarks(t *testing.T) {
	err := errs.Wrap(errs.NotFound(errs.New("booking missing")), "load booking")

	assert.True(t, errs.IsNotFound(err))
	assert.Contains(t, err.Error(), "booking missing")
	assert.Nil(t, errs.Wrap(nil, "noop"))
}

func TestMessage(t *testing.T) {
	err := errs.Wrap(errs.Wrap(errs.Conflict(errs.New("room sold out")), "confirm"), "handler")

	assert.Equal(t, "room sold out", errs.Message(err))
	assert.Equal(t, "", errs.Message(nil))
}
