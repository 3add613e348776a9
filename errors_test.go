package freshrag_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/freshrag"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application error", func(t *testing.T) {
		t.Parallel()

		err := freshrag.Errorf(freshrag.ENOTFOUND, "snapshot not found")

		assert.Equal(t, freshrag.ENOTFOUND, freshrag.ErrorCode(err))
	})

	t.Run("returns code for wrapped application error", func(t *testing.T) {
		t.Parallel()

		inner := freshrag.Errorf(freshrag.EINVALID, "bad input")
		err := errors.Join(errors.New("outer"), inner)

		assert.Equal(t, freshrag.EINVALID, freshrag.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, freshrag.EINTERNAL, freshrag.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", freshrag.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application error", func(t *testing.T) {
		t.Parallel()

		err := freshrag.Errorf(freshrag.EINVALID, "query required")

		assert.Equal(t, "query required", freshrag.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", freshrag.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", freshrag.ErrorMessage(nil))
	})
}
