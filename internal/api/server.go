package api

import (
	"net/http"

	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	db         DatabaseService
	lifecycle  LifecycleService
	tokens     TokenService
	authorizer *auth.Authorizer
}

func NewServer(db DatabaseService, lifecycleSvc LifecycleService, tokens TokenService, authorizer *auth.Authorizer) *Server {
	return &Server{
		db:         db,
		lifecycle:  lifecycleSvc,
		tokens:     tokens,
		authorizer: authorizer,
	}
}

// Routes assembles the router. authn attaches the principal to the request
// context; it runs before the request-context middleware so request logs can
// carry the user.
func (s *Server) Routes(corsCfg *config.CORSConfig, authn func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewCORSHandler(corsCfg))
	r.Use(authn)
	r.Use(middleware.RequestContext)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", s.GetHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.Login)
		r.Post("/refresh", s.RefreshToken)
		r.Post("/logout", s.Logout)
	})

	r.Get("/me", s.GetMe)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", s.ListItems)
		r.Post("/", s.CreateItem)
		r.Get("/{id}", s.GetItem)
		r.Patch("/{id}", s.UpdateItem)
		r.Delete("/{id}", s.DeleteItem)
		r.Post("/{id}/attributes", s.AttachItemAttributes)
		r.Post("/{id}/verify", s.VerifyItem)
		r.Post("/{id}/issue", s.IssueItem)
		r.Get("/{id}/borrow-records", s.ListItemBorrowRecords)
	})

	r.Route("/borrow-records", func(r chi.Router) {
		r.Get("/", s.ListBorrowRecords)
		r.Get("/{id}", s.GetBorrowRecord)
		r.Post("/{id}/return", s.ReturnBorrowRecord)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.ListUsers)
		r.Get("/{id}/borrow-records", s.ListUserBorrowRecords)
	})

	r.Route("/catalogue", func(r chi.Router) {
		r.Get("/", s.ListCatalogue)
		r.Post("/", s.CreateCatalogueEntry)
		r.Get("/{id}/attributes", s.ListCatalogueAttributes)
	})

	r.Get("/districts", s.ListDistricts)
	r.Get("/departments", s.ListDepartments)

	return r
}
