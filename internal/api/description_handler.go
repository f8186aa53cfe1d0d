package api

import (
	_ "embed"
	"net/http"
)

//go:embed endpoints.json
var endpointsJSON []byte

// DescribeAPI handles GET /api.
func DescribeAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(endpointsJSON)
}
