package presentation

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pizza-orders/internal/application"
)

// NewRouter assembles the complete HTTP surface: API routes, middleware
// and the static page.
func NewRouter(svc *application.OrdersService) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	h := NewOrdersHandler(svc)
	h.Register(r)

	MountStatic(r)
	return r
}
