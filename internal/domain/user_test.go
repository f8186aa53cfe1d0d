package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Zelda", "princess zelda", "")
	require.NoError(t, err)
	assert.Equal(t, "zelda", user.Username, "username should be lower-cased")
	assert.Equal(t, DefaultAvatarURL, user.AvatarURL, "missing avatar should be defaulted")
	assert.Equal(t, "princess zelda", user.Name)

	user, err = NewUser("zelda", "princess zelda", "https://example.com/zelda.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/zelda.png", user.AvatarURL)

	_, err = NewUser("zelda", "", "")
	assert.ErrorIs(t, err, ErrIncompleteBody)

	_, err = NewUser(" ", "princess zelda", "")
	assert.ErrorIs(t, err, ErrIncompleteBody)

	_, err = NewUser("123", "princess zelda", "")
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestNewComment(t *testing.T) {
	comment, err := NewComment(2, "Mallionaire", "hi")
	require.NoError(t, err)
	assert.Equal(t, 2, comment.ReviewID)
	assert.Equal(t, "mallionaire", comment.Author)
	assert.Equal(t, "hi", comment.Body)

	_, err = NewComment(2, "mallionaire", "   ")
	assert.ErrorIs(t, err, ErrIncompleteBody)
}

func TestAPIError(t *testing.T) {
	wrapped := wrap(ErrIDNotFound)
	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "ID does not exist.", apiErr.Error())

	_, ok = AsAPIError(assert.AnError)
	assert.False(t, ok)
}

type wrappedErr struct{ err error }

func (w wrappedErr) Error() string { return "lookup failed: " + w.err.Error() }
func (w wrappedErr) Unwrap() error { return w.err }

func wrap(err error) error { return wrappedErr{err: err} }
