package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleComment() *domain.Comment {
	return &domain.Comment{
		CommentID: 1,
		Author:    "bainesface",
		ReviewID:  2,
		Votes:     16,
		CreatedAt: time.Date(2017, 11, 22, 12, 43, 33, 0, time.UTC),
		Body:      "I loved this game too!",
	}
}

func TestCommentHandler_List(t *testing.T) {
	d := newTestDeps(t)
	d.comments.On("List", mock.Anything, domain.ListOptions{SortBy: "votes", Order: "ASC"}).
		Return([]domain.Comment{*sampleComment()}, nil)

	rec := d.do(http.MethodGet, "/api/comments?sort_by=votes&order=ASC&category=ignored", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body CommentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Comments, 1)
}

func TestCommentHandler_Get(t *testing.T) {
	d := newTestDeps(t)
	d.checker.On("EnsureIDExists", mock.Anything, store.CommentRef, "1").Return(nil)
	d.comments.On("GetByID", mock.Anything, 1).Return(sampleComment(), nil)

	rec := d.do(http.MethodGet, "/api/comments/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "I loved this game too!", body.Comment.Body)
}

func TestCommentHandler_PatchVotes(t *testing.T) {
	d := newTestDeps(t)
	updated := sampleComment()
	updated.Votes = 15
	d.checker.On("EnsureIDExists", mock.Anything, store.CommentRef, "1").Return(nil)
	d.comments.On("IncrementVotes", mock.Anything, 1, intPtr(-1)).Return(updated, nil)

	rec := d.do(http.MethodPatch, "/api/comments/1", `{"inc_votes": -1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 15, body.Comment.Votes)
}

func TestCommentHandler_PatchBody(t *testing.T) {
	t.Run("replaces text", func(t *testing.T) {
		d := newTestDeps(t)
		updated := sampleComment()
		updated.Body = "Changed my mind"
		d.checker.On("EnsureIDExists", mock.Anything, store.CommentRef, "1").Return(nil)
		d.comments.On("UpdateBody", mock.Anything, 1, strPtr("Changed my mind")).Return(updated, nil)

		rec := d.do(http.MethodPatch, "/api/comments/1/body", `{"body": "Changed my mind"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("absent text leaves the comment alone", func(t *testing.T) {
		d := newTestDeps(t)
		d.checker.On("EnsureIDExists", mock.Anything, store.CommentRef, "1").Return(nil)
		d.comments.On("UpdateBody", mock.Anything, 1, (*string)(nil)).Return(sampleComment(), nil)

		rec := d.do(http.MethodPatch, "/api/comments/1/body", `{}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestCommentHandler_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		d := newTestDeps(t)
		d.checker.On("EnsureIDExists", mock.Anything, store.CommentRef, "1").Return(nil)
		d.comments.On("Delete", mock.Anything, 1).Return(nil)

		rec := d.do(http.MethodDelete, "/api/comments/1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("out of range id is not found", func(t *testing.T) {
		d := newTestDeps(t)
		d.checker.On("EnsureIDExists", mock.Anything, store.CommentRef, "34985739457").Return(domain.ErrIDNotFound)
		d.comments.On("Delete", mock.Anything, 34985739457).Return(domain.ErrIDNotFound)

		rec := d.do(http.MethodDelete, "/api/comments/34985739457", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"ID does not exist."}`, rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		d := newTestDeps(t)

		rec := d.do(http.MethodDelete, "/api/comments/banana", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"msg":"Bad request. Invalid ID."}`, rec.Body.String())
	})
}

func TestCommentHandler_ListByUser(t *testing.T) {
	t.Run("lists", func(t *testing.T) {
		d := newTestDeps(t)
		d.checker.On("EnsureUserExists", mock.Anything, store.UserRef, "bainesface").Return(nil)
		d.comments.On("ListByAuthor", mock.Anything, "bainesface", domain.ListOptions{}).
			Return([]domain.Comment{*sampleComment(), *sampleComment()}, nil)

		rec := d.do(http.MethodGet, "/api/comments/user/bainesface", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body CommentsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Comments, 2)
	})

	t.Run("unknown user is reported", func(t *testing.T) {
		d := newTestDeps(t)
		d.checker.On("EnsureUserExists", mock.Anything, store.UserRef, "nobody").Return(domain.ErrUserNotFound)
		d.comments.On("ListByAuthor", mock.Anything, "nobody", domain.ListOptions{}).Return([]domain.Comment{}, nil)

		rec := d.do(http.MethodGet, "/api/comments/user/nobody", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"User does not exist."}`, rec.Body.String())
	})

	t.Run("numeric username", func(t *testing.T) {
		d := newTestDeps(t)
		d.checker.On("EnsureUserExists", mock.Anything, store.UserRef, "42").Return(domain.ErrInvalidUsername)
		d.comments.On("ListByAuthor", mock.Anything, "42", domain.ListOptions{}).Return([]domain.Comment{}, nil)

		rec := d.do(http.MethodGet, "/api/comments/user/42", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"msg":"Bad request. Invalid username."}`, rec.Body.String())
	})
}
