package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Message format", func(t *testing.T) {
		err := NewNotFound(KindPost, 42)
		assert.EqualError(t, err, "Post with id 42 not found")
	})

	t.Run("IsNotFound sees through wrapping", func(t *testing.T) {
		err := fmt.Errorf("could not delete comment: %w", NewNotFound(KindComment, 7))
		assert.True(t, IsNotFound(err))

		nf := AsNotFound(err)
		require.NotNil(t, nf)
		assert.Equal(t, KindComment, nf.Kind)
		assert.Equal(t, uint(7), nf.ID)
	})

	t.Run("Other errors are not NotFound", func(t *testing.T) {
		assert.False(t, IsNotFound(errors.New("boom")))
		assert.Nil(t, AsNotFound(errors.New("boom")))
	})
}
