package irpost_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/irpost"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := irpost.Errorf(irpost.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, irpost.ENOTFOUND, irpost.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", irpost.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("publish: %w", irpost.Errorf(irpost.EUNAUTHORIZED, "bad credentials"))

	assert.Equal(t, irpost.EUNAUTHORIZED, irpost.ErrorCode(err))
	assert.Equal(t, "bad credentials", irpost.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, irpost.EINTERNAL, irpost.ErrorCode(err))
	assert.Equal(t, "Internal error.", irpost.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, irpost.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, irpost.ErrorMessage(nil))
}
