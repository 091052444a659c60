package handle

import "net/http"

// Health reports process liveness only; it does not touch the store.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
