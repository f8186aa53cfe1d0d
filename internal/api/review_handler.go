package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tabletop-api/internal/api/shared"
	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// reviewIDParam is the chi URL parameter holding a review ID.
const reviewIDParam = "review_id"

// ReviewHandler handles review requests, including the comments nested
// under a review.
type ReviewHandler struct {
	reviews  store.ReviewStore
	comments store.CommentStore
	checker  store.Checker
	logger   *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(
	reviews store.ReviewStore,
	comments store.CommentStore,
	checker store.Checker,
	logger *slog.Logger,
) *ReviewHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		reviews:  reviews,
		comments: comments,
		checker:  checker,
		logger:   logger.With(slog.String("component", "review_handler")),
	}
}

// List handles GET /api/reviews. The category filter is checked while the
// listing runs.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	opts, err := parseListOptions(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var reviews []domain.Review
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return h.checker.EnsureCategoryValid(ctx, opts.Category)
	})
	g.Go(func() error {
		var err error
		reviews, err = h.reviews.List(ctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("reviews listed", slog.Int("count", len(reviews)))
	shared.RespondWithJSON(w, r, http.StatusOK, ReviewsResponse{Reviews: orEmpty(reviews)})
}

// Get handles GET /api/reviews/{review_id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, reviewIDParam)

	var review *domain.Review
	err := h.withReviewCheck(r, rawID, func(g *errgroup.Group, ctx context.Context, id int) {
		g.Go(func() error {
			var err error
			review, err = h.reviews.GetByID(ctx, id)
			return err
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{Review: review})
}

// PatchVotes handles PATCH /api/reviews/{review_id} with an inc_votes body.
// A body without inc_votes returns the review unchanged.
func (h *ReviewHandler) PatchVotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	inc, err := decodeVoteIncrement(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	rawID := chi.URLParam(r, reviewIDParam)

	var review *domain.Review
	err = h.withReviewCheck(r, rawID, func(g *errgroup.Group, ctx context.Context, id int) {
		g.Go(func() error {
			var err error
			review, err = h.reviews.IncrementVotes(ctx, id, inc)
			return err
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("review votes updated", slog.Int("review_id", review.ReviewID), slog.Int("votes", review.Votes))
	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{Review: review})
}

// PatchBody handles PATCH /api/reviews/{review_id}/body.
func (h *ReviewHandler) PatchBody(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBodyUpdate(r, "review_body")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	rawID := chi.URLParam(r, reviewIDParam)

	var review *domain.Review
	err = h.withReviewCheck(r, rawID, func(g *errgroup.Group, ctx context.Context, id int) {
		g.Go(func() error {
			var err error
			review, err = h.reviews.UpdateBody(ctx, id, body)
			return err
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ReviewResponse{Review: review})
}

// ListComments handles GET /api/reviews/{review_id}/comments.
func (h *ReviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	opts, err := parseListOptions(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	opts.Category = nil

	rawID := chi.URLParam(r, reviewIDParam)

	var comments []domain.Comment
	err = h.withReviewCheck(r, rawID, func(g *errgroup.Group, ctx context.Context, id int) {
		g.Go(func() error {
			var err error
			comments, err = h.comments.ListByReview(ctx, id, opts)
			return err
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: orEmpty(comments)})
}

// PostComment handles POST /api/reviews/{review_id}/comments. The review and
// the author are both checked before the comment is inserted.
func (h *ReviewHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	fields, err := shared.DecodeFields(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	username, err := fields.Username("username")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	body, ok, err := fields.Text("body")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !ok || strings.TrimSpace(body) == "" {
		HandleAPIError(w, r, domain.ErrIncompleteBody)
		return
	}

	rawID := chi.URLParam(r, reviewIDParam)

	var comment *domain.Comment
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return h.checker.EnsureIDExists(ctx, store.ReviewRef, rawID)
	})
	g.Go(func() error {
		return h.checker.EnsureUserExists(ctx, store.UserRef, username)
	})
	g.Go(func() error {
		id, err := domain.ParseID(rawID)
		if err != nil {
			return err
		}
		comment, err = domain.NewComment(id, username, body)
		return err
	})
	if err := g.Wait(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.Create(r.Context(), comment); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("comment posted",
		slog.Int("comment_id", comment.CommentID),
		slog.Int("review_id", comment.ReviewID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: comment})
}

// withReviewCheck runs the existence check for rawID next to whatever work
// schedule adds to the group once the ID has parsed.
func (h *ReviewHandler) withReviewCheck(
	r *http.Request,
	rawID string,
	schedule func(g *errgroup.Group, ctx context.Context, id int),
) error {
	return withIDCheck(r, h.checker, store.ReviewRef, rawID, schedule)
}
