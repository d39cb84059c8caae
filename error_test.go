package mcplibrary_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Vikramardham/mcplibrary"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := mcplibrary.Errorf(mcplibrary.ENOTFOUND, "no crawl for %q", "https://example.com")
		assert.Equal(t, mcplibrary.ENOTFOUND, mcplibrary.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("loading result: %w", mcplibrary.Errorf(mcplibrary.EINVALID, "bad root URL"))
		assert.Equal(t, mcplibrary.EINVALID, mcplibrary.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, mcplibrary.EINTERNAL, mcplibrary.ErrorCode(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, mcplibrary.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := mcplibrary.Errorf(mcplibrary.EINVALID, "query required")
		assert.Equal(t, "query required", mcplibrary.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", mcplibrary.ErrorMessage(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, mcplibrary.ErrorMessage(nil))
	})
}
