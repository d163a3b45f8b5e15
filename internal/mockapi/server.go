// Package mockapi is an in-memory stand-in for the OSEEK backend. It exists
// so the client can be developed and tested offline; it is not a product
// backend and deliberately persists nothing.
package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/mehmetcc/oseek/internal/person"
	"go.uber.org/zap"
	"moul.io/chizap"
)

type Server struct {
	logger    *zap.Logger
	validator *validator.Validate
	secret    []byte
	state     *state
	tokenTTL  time.Duration
}

func New(secret string, logger *zap.Logger) *Server {
	s := &Server{
		logger:    logger,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		secret:    []byte(secret),
		state:     newState(),
		tokenTTL:  24 * time.Hour,
	}
	s.seed()
	return s
}

// Routes wires the whole REST surface under one router, mounted at /api in
// production-shaped deployments.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chizap.New(s.logger, &chizap.Opts{
		WithReferer:   false,
		WithUserAgent: false,
	}))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Route("/auth", func(r chi.Router) {
		r.With(httprate.LimitByIP(10, time.Minute)).Post("/login", s.handleLogin)
		r.Post("/signup", s.handleSignup)
		r.With(s.withAuth).Get("/me", s.handleMe)
		r.With(s.withAuth).Post("/change-password", s.handleChangePassword)
		r.With(s.withAuth).Delete("/delete-account", s.handleDeleteAccount)
	})

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", s.handleListJobs)
		r.With(s.withAuth, s.requireRole(person.RoleCompany)).Post("/", s.handleCreateJob)
		r.With(s.withAuth, s.requireRole(person.RoleCompany)).Get("/company/my-jobs", s.handleMyJobs)
		r.With(s.withAuth, s.requireRole(person.RoleSeeker)).Get("/recommendations", s.handleRecommendations)
		r.Get("/{id}", s.handleGetJob)
		r.With(s.withAuth, s.requireRole(person.RoleCompany)).Put("/{id}", s.handleUpdateJob)
		r.With(s.withAuth, s.requireRole(person.RoleCompany)).Delete("/{id}", s.handleDeleteJob)
	})

	r.Route("/applications", func(r chi.Router) {
		r.Use(s.withAuth)
		r.With(s.requireRole(person.RoleSeeker)).Post("/jobs/{jobID}", s.handleApply)
		r.With(s.requireRole(person.RoleSeeker)).Get("/my", s.handleMyApplications)
		r.With(s.requireRole(person.RoleCompany)).Get("/jobs/{jobID}", s.handleJobApplications)
		r.With(s.requireRole(person.RoleCompany)).Put("/{id}/status", s.handleUpdateApplicationStatus)
		r.With(s.requireRole(person.RoleSeeker)).Delete("/{id}", s.handleWithdraw)
		r.With(s.requireRole(person.RoleCompany)).Post("/{id}/interview", s.handleInterview)
		r.With(s.requireRole(person.RoleCompany)).Post("/{id}/email", s.handleApplicationEmail)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Use(s.withAuth)
		r.With(s.requireRole(person.RoleSeeker)).Get("/seeker", s.handleSeekerProfile)
		r.With(s.requireRole(person.RoleSeeker)).Put("/seeker", s.handleUpdateSeekerProfile)
		r.With(s.requireRole(person.RoleSeeker)).Post("/seeker/skills", s.handleAddSkill)
		r.With(s.requireRole(person.RoleSeeker)).Delete("/seeker/skills/{id}", s.handleRemoveSkill)
		r.With(s.requireRole(person.RoleSeeker)).Post("/seeker/experience", s.handleAddExperience)
		r.With(s.requireRole(person.RoleSeeker)).Put("/seeker/experience/{id}", s.handleUpdateExperience)
		r.With(s.requireRole(person.RoleSeeker)).Delete("/seeker/experience/{id}", s.handleRemoveExperience)
		r.With(s.requireRole(person.RoleSeeker)).Post("/seeker/education", s.handleAddEducation)
		r.With(s.requireRole(person.RoleSeeker)).Delete("/seeker/education/{id}", s.handleRemoveEducation)
		r.With(s.requireRole(person.RoleSeeker)).Get("/seeker/cv", s.handleDownloadCV)
		r.With(s.requireRole(person.RoleCompany)).Get("/company", s.handleCompanyProfile)
		r.With(s.requireRole(person.RoleCompany)).Put("/company", s.handleUpdateCompanyProfile)
		r.With(s.requireRole(person.RoleCompany)).Get("/company/pdf", s.handleCompanyPDF)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Use(s.withAuth)
		r.Get("/", s.handleNotifications)
		r.Get("/unread-count", s.handleUnreadCount)
		r.Put("/{id}/read", s.handleMarkRead)
		r.Put("/read-all", s.handleMarkAllRead)
		r.Delete("/{id}", s.handleDeleteNotification)
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Use(s.withAuth, s.requireRole(person.RoleSeeker))
		r.Get("/", s.handleWishlist)
		r.Get("/status/{jobID}", s.handleWishlistStatus)
		r.Post("/{jobID}", s.handleAddWishlist)
		r.Delete("/{jobID}", s.handleRemoveWishlist)
	})

	r.Route("/connections", func(r chi.Router) {
		r.Use(s.withAuth)
		r.Get("/", s.handleConnections)
		r.Post("/{userID}", s.handleRequestConnection)
		r.Put("/{id}/accept", s.handleAcceptConnection)
		r.Put("/{id}/reject", s.handleRejectConnection)
		r.Delete("/{id}", s.handleRemoveConnection)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.withAuth, s.requireRole(person.RoleAdmin))
		r.Get("/users", s.handleAdminUsers)
		r.Put("/users/{id}/role", s.handleUpdateRole)
		r.Delete("/users/{id}", s.handleAdminDeleteUser)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(s.withAuth)
		r.With(s.requireRole(person.RoleSeeker)).Get("/seeker", s.handleSeekerDashboard)
		r.With(s.requireRole(person.RoleCompany)).Get("/company", s.handleCompanyDashboard)
		r.With(s.requireRole(person.RoleAdmin)).Get("/admin", s.handleAdminDashboard)
	})

	return r
}

// decode unmarshals and validates a JSON request body, writing the failure
// response itself when the body does not hold up.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB
	if err := dec.Decode(dst); err != nil {
		s.logger.Warn("failed to decode request body", zap.Error(err))
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorBody{
			Message:     "invalid request body",
			MessageCode: httpx.CodeInvalidJSON,
		})
		return false
	}

	if err := s.validator.Struct(dst); err != nil {
		fields := httpx.ValidationDetails(err)
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.ErrorBody{
			Message:     httpx.ValidationMessage(fields),
			MessageCode: httpx.CodeValidationFailed,
			Fields:      fields,
		})
		return false
	}
	return true
}

func notFound(w http.ResponseWriter, what string) {
	httpx.WriteError(w, http.StatusNotFound, httpx.ErrorBody{
		Message:     what + " not found",
		MessageCode: httpx.CodeNotFound,
	})
}
