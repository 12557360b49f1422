package routes

import (
	"encoding/json"
	"net/http"

	"messenger-relay/internal/infra/handlers"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux             *mux.Router
	WebhookHandlers *handlers.WebhookHandlers
}

func NewRoutes(mux *mux.Router, webhookHandlers *handlers.WebhookHandlers) *Routes {
	return &Routes{mux, webhookHandlers}
}

func (r *Routes) Init() {
	r.Mux.HandleFunc("/webhook", r.WebhookHandlers.Webhook).Methods(http.MethodGet, http.MethodPost)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
