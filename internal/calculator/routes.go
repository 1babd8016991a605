package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/add", svc.Add)
		r.Post("/subtract", svc.Subtract)
		r.Post("/multiply", svc.Multiply)
		r.Post("/divide", svc.Divide)
		r.Post("/chain", svc.Chain)
		r.Get("/history", svc.HistoryHandler)
	})
}
