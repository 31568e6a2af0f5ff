package server

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// checkMethod is registered as the router's MethodNotAllowed handler. It
// answers 405 with an Allow header listing the methods the matched route
// serves, and 404 when no route pattern equals the request path.
func checkMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var found *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = &route
				break
			}
		}
		if found == nil || len(found.Handlers) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		allowed := make([]string, 0, len(found.Handlers))
		for method := range found.Handlers {
			allowed = append(allowed, method)
		}
		sort.Strings(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
