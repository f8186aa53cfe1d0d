package api

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tabletop-api/internal/mocks"
)

type testDeps struct {
	categories *mocks.TestifyMockCategoryStore
	reviews    *mocks.TestifyMockReviewStore
	comments   *mocks.TestifyMockCommentStore
	users      *mocks.TestifyMockUserStore
	checker    *mocks.TestifyMockChecker
	router     chi.Router
}

// newTestDeps registers every handler on a router backed by fresh mocks.
// Expectations are asserted when the test ends.
func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	d := &testDeps{
		categories: &mocks.TestifyMockCategoryStore{},
		reviews:    &mocks.TestifyMockReviewStore{},
		comments:   &mocks.TestifyMockCommentStore{},
		users:      &mocks.TestifyMockUserStore{},
		checker:    &mocks.TestifyMockChecker{},
	}
	t.Cleanup(func() {
		d.categories.AssertExpectations(t)
		d.reviews.AssertExpectations(t)
		d.comments.AssertExpectations(t)
		d.users.AssertExpectations(t)
		d.checker.AssertExpectations(t)
	})

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	categoryHandler := NewCategoryHandler(d.categories, log)
	reviewHandler := NewReviewHandler(d.reviews, d.comments, d.checker, log)
	commentHandler := NewCommentHandler(d.comments, d.checker, log)
	userHandler := NewUserHandler(d.users, d.checker, log)

	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)
	r.Get("/api", DescribeAPI)
	r.Get("/api/categories", categoryHandler.List)
	r.Get("/api/reviews", reviewHandler.List)
	r.Get("/api/reviews/{review_id}", reviewHandler.Get)
	r.Patch("/api/reviews/{review_id}", reviewHandler.PatchVotes)
	r.Patch("/api/reviews/{review_id}/body", reviewHandler.PatchBody)
	r.Get("/api/reviews/{review_id}/comments", reviewHandler.ListComments)
	r.Post("/api/reviews/{review_id}/comments", reviewHandler.PostComment)
	r.Get("/api/comments", commentHandler.List)
	r.Get("/api/comments/user/{username}", commentHandler.ListByUser)
	r.Get("/api/comments/{comment_id}", commentHandler.Get)
	r.Patch("/api/comments/{comment_id}", commentHandler.PatchVotes)
	r.Patch("/api/comments/{comment_id}/body", commentHandler.PatchBody)
	r.Delete("/api/comments/{comment_id}", commentHandler.Delete)
	r.Get("/api/users", userHandler.List)
	r.Post("/api/users", userHandler.Create)
	r.Get("/api/users/{username}", userHandler.Get)
	d.router = r

	return d
}

func (d *testDeps) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)
	return rec
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
