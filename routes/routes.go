package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	ContactPath          = "/api/contact"
	PostContactRouteName = "PostContact"

	HealthPath         = "/api/health"
	GetHealthRouteName = "GetHealth"
)

// ContactAPIRoutes returns a fresh router with every public route registered
// but no handlers attached. Callers bind handlers by route name.
func ContactAPIRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Path(ContactPath).Methods(http.MethodPost).Name(PostContactRouteName)
	r.Path(HealthPath).Methods(http.MethodGet).Name(GetHealthRouteName)
	return r
}
