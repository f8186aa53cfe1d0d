package api

import (
	"net/http"

	"github.com/phrazzld/tabletop-api/internal/api/shared"
	"github.com/phrazzld/tabletop-api/internal/domain"
)

// InternalErrorMessage is the only text a client sees for unexpected failures.
const InternalErrorMessage = "Internal server error."

// PageNotFoundMessage is served as plain text for unknown routes.
const PageNotFoundMessage = "Page not found."

// HandleAPIError writes the response for err. Client errors keep their status
// and message; anything else is logged and reported as a 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if apiErr, ok := domain.AsAPIError(err); ok {
		shared.RespondWithErrorAndLog(w, r, apiErr.Status, apiErr.Msg, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, InternalErrorMessage, err)
}

// NotFound answers unmatched routes and unsupported methods.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	shared.RespondWithText(w, http.StatusNotFound, PageNotFoundMessage)
}
