package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tabletop-api/internal/api/shared"
	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/store"
	"golang.org/x/sync/errgroup"
)

const (
	commentIDParam = "comment_id"
	usernameParam  = "username"
)

// CommentHandler handles comment requests.
type CommentHandler struct {
	comments store.CommentStore
	checker  store.Checker
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments store.CommentStore, checker store.Checker, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}

	return &CommentHandler{
		comments: comments,
		checker:  checker,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// List handles GET /api/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := parseListOptions(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	opts.Category = nil

	comments, err := h.comments.List(r.Context(), opts)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: orEmpty(comments)})
}

// Get handles GET /api/comments/{comment_id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	var comment *domain.Comment
	err := h.withCommentCheck(r, func(g *errgroup.Group, ctx context.Context, id int) {
		g.Go(func() error {
			var err error
			comment, err = h.comments.GetByID(ctx, id)
			return err
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentResponse{Comment: comment})
}

// PatchVotes handles PATCH /api/comments/{comment_id} with an inc_votes body.
func (h *CommentHandler) PatchVotes(w http.ResponseWriter, r *http.Request) {
	inc, err := decodeVoteIncrement(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var comment *domain.Comment
	err = h.withCommentCheck(r, func(g *errgroup.Group, ctx context.Context, id int) {
		g.Go(func() error {
			var err error
			comment, err = h.comments.IncrementVotes(ctx, id, inc)
			return err
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentResponse{Comment: comment})
}

// PatchBody handles PATCH /api/comments/{comment_id}/body.
func (h *CommentHandler) PatchBody(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBodyUpdate(r, "body")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var comment *domain.Comment
	err = h.withCommentCheck(r, func(g *errgroup.Group, ctx context.Context, id int) {
		g.Go(func() error {
			var err error
			comment, err = h.comments.UpdateBody(ctx, id, body)
			return err
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: comment})
}

// Delete handles DELETE /api/comments/{comment_id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var deletedID int
	err := h.withCommentCheck(r, func(g *errgroup.Group, ctx context.Context, id int) {
		deletedID = id
		g.Go(func() error {
			return h.comments.Delete(ctx, id)
		})
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("comment deleted", slog.Int("comment_id", deletedID))
	shared.RespondNoContent(w)
}

// ListByUser handles GET /api/comments/user/{username}.
func (h *CommentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	opts, err := parseListOptions(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	opts.Category = nil

	username := chi.URLParam(r, usernameParam)

	var comments []domain.Comment
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return h.checker.EnsureUserExists(ctx, store.UserRef, username)
	})
	g.Go(func() error {
		var err error
		comments, err = h.comments.ListByAuthor(ctx, username, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: orEmpty(comments)})
}

func (h *CommentHandler) withCommentCheck(
	r *http.Request,
	schedule func(g *errgroup.Group, ctx context.Context, id int),
) error {
	return withIDCheck(r, h.checker, store.CommentRef, chi.URLParam(r, commentIDParam), schedule)
}
