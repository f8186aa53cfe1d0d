package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tabletop-api/internal/api/shared"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/store"
)

// CategoryHandler handles category requests.
type CategoryHandler struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories store.CategoryStore, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}

	return &CategoryHandler{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_handler")),
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categories, err := h.categories.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("categories listed", slog.Int("count", len(categories)))
	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{Categories: orEmpty(categories)})
}
