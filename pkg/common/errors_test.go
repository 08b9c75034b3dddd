package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(NewValidationError("bad")))
	assert.Equal(t, KindNotFound, KindOf(NewNotFoundError("missing")))
	assert.Equal(t, KindConflict, KindOf(NewConflictError("dup")))
	assert.Equal(t, KindIntegrity, KindOf(NewIntegrityError("dangling")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))

	wrapped := fmt.Errorf("create battery: %w", NewConflictError("dup"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Battery not found.", MessageOf(NewNotFoundError("Battery not found."), "fallback"))

	cause := errors.New("disk I/O error")
	internal := NewInternalError("Failed to add battery.", cause)
	assert.Equal(t, "fallback", MessageOf(internal, "fallback"))
	assert.ErrorIs(t, internal, cause)
	assert.Contains(t, internal.Error(), "disk I/O error")

	assert.Equal(t, "fallback", MessageOf(errors.New("plain"), "fallback"))
}
