package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Routes mounts the catalog API for every scope under /{scope}. Schema
// mutations and the audit history pass through admin; reads and value
// writes do not. auditLogs may be nil when no history is kept.
func Routes(schema *SchemaHandler, values *ValueHandler, auditLogs *SchemaAuditLogHandler, admin func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/{scope}", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Get("/modules", schema.ListModules)
			r.Get("/modules/{id}", schema.GetModule)
			r.Get("/modules/{id}/fields", schema.ListFields)
			r.Get("/fields/{id}", schema.GetField)

			r.Get("/entities/{entityID}/values", values.GetValues)
			r.Put("/entities/{entityID}/values", values.SetValues)
			r.Delete("/entities/{entityID}/values", values.DeleteEntity)
			r.Get("/entities/{entityID}/response", values.Response)
			r.Post("/responses/assemble", values.Assemble)

			r.Group(func(r chi.Router) {
				r.Use(admin)

				r.Post("/modules", schema.CreateModule)
				r.Post("/modules/reorder", schema.ReorderModules)
				r.Patch("/modules/{id}", schema.UpdateModule)
				r.Delete("/modules/{id}", schema.DeleteModule)
				r.Post("/modules/{id}/move", schema.MoveModule)
				r.Post("/modules/{id}/fields", schema.CreateField)
				r.Post("/modules/{id}/fields/reorder", schema.ReorderFields)
				r.Post("/modules/{id}/fields/{fieldID}/move", schema.MoveField)
				r.Patch("/fields/{id}", schema.UpdateField)
				r.Delete("/fields/{id}", schema.DeleteField)

				if auditLogs != nil {
					r.Get("/audit", auditLogs.GetAuditLogs)
				}
			})
		})
	}
}
