package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tabletop-api/internal/api/shared"
	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// UserHandler handles user requests.
type UserHandler struct {
	users   store.UserStore
	checker store.Checker
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, checker store.Checker, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		users:   users,
		checker: checker,
		logger:  logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := parseListOptions(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	opts.Category = nil

	users, err := h.users.List(r.Context(), opts)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: orEmpty(users)})
}

// Get handles GET /api/users/{username}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, usernameParam)

	var user *domain.User
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return h.checker.EnsureUserExists(ctx, store.UserRef, username)
	})
	g.Go(func() error {
		var err error
		user, err = h.users.GetByUsername(ctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// Create handles POST /api/users. Unknown body fields are ignored.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
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
	name, _, err := fields.Text("name")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	avatarURL, _, err := fields.Text("avatar_url")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := domain.NewUser(username, name, avatarURL)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.checker.EnsureNewUserAvailable(r.Context(), store.UserRef, user.Username); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.users.Create(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("user created", slog.String("username", created.Username))
	shared.RespondWithJSON(w, r, http.StatusCreated, UserResponse{User: created})
}
