package handlers

import (
	"net/http"

	"github.com/go-chi/render"
)

// Healthcheck answers liveness probes. It does not touch the database.
func Healthcheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{
			"status":  "ok",
			"service": "entrepreneur-tracker",
		})
	}
}
