package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := E(NotFound, "profile not found", "p1", nil)
	assert.Equal(t, "profile not found: p1", err.Error())

	wrapped := E(IOError, "read profile", "/tmp/p1.env", fs.ErrPermission)
	assert.Equal(t, "read profile: /tmp/p1.env: permission denied", wrapped.Error())
	assert.True(t, Is(wrapped, fs.ErrPermission))
}

func TestSentinelMatching(t *testing.T) {
	err := fmt.Errorf("load: %w", E(MalformedRecord, "missing key HOSTNAME", "p1", nil))

	assert.True(t, Is(err, ErrMalformedRecord))
	assert.False(t, Is(err, ErrNotFound))
	assert.Equal(t, MalformedRecord, KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(New("boom")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "remote command failed", RemoteCommandFailure.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
