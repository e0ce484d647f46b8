package http

import (
	"net/http"

	"portfolio/internal/appointment"
	"portfolio/internal/auth"
	"portfolio/internal/blog"
	"portfolio/internal/chatbot"
	"portfolio/internal/config"
	"portfolio/internal/contact"
	"portfolio/internal/experience"
	"portfolio/internal/http/handler"
	mw "portfolio/internal/http/middleware"
	"portfolio/internal/mailer"
	"portfolio/internal/newsletter"
	"portfolio/internal/project"
	"portfolio/internal/settings"
	"portfolio/internal/testimonial"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, m mailer.Mailer, bot *chatbot.Responder) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// public writes share one limiter so a single client cannot spray the
	// contact form, signups and chatbot at full speed
	publicLimit := mw.NewRateLimiter(1, 5)

	authSvc := &auth.Service{DB: db, JWT: jwtSvc}
	ah := &handler.AuthHandler{Svc: authSvc}
	r.With(publicLimit.Limit).Post("/auth/login", ah.Login)

	requireAuth := auth.RequireAuth(jwtSvc)
	requireSuper := auth.RequireRole(auth.RoleSuperAdmin)

	r.With(requireAuth).Get("/auth/me", ah.Me)

	r.Route("/admins", func(r chi.Router) {
		r.Use(requireAuth, requireSuper)
		r.Get("/", ah.ListAdmins)
		r.Post("/", ah.CreateAdmin)
		r.Delete("/{id}", ah.DeleteAdmin)
	})

	aptH := &handler.AppointmentHandler{Svc: &appointment.Service{DB: db}}
	r.Route("/appointments", func(r chi.Router) {
		r.Get("/available", aptH.Available)
		r.With(publicLimit.Limit).Post("/", aptH.Create)

		r.With(requireAuth).Get("/", aptH.List)
		r.With(requireAuth).Patch("/{id}", aptH.UpdateStatus)
		r.With(requireAuth).Delete("/{id}", aptH.Delete)
	})

	projH := &handler.ProjectHandler{Svc: project.NewService(db)}
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", projH.List)
		r.Get("/{id}", projH.Get)

		r.With(requireAuth).Post("/", projH.Create)
		r.With(requireAuth).Put("/{id}", projH.Update)
		r.With(requireAuth).Delete("/{id}", projH.Delete)
	})

	expH := &handler.ExperienceHandler{Svc: experience.NewService(db)}
	r.Route("/experiences", func(r chi.Router) {
		r.Get("/", expH.List)
		r.Get("/{id}", expH.Get)

		r.With(requireAuth).Post("/", expH.Create)
		r.With(requireAuth).Put("/{id}", expH.Update)
		r.With(requireAuth).Delete("/{id}", expH.Delete)
	})

	blogH := &handler.BlogHandler{Svc: blog.NewService(db)}
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", blogH.List)
		r.Get("/stats", blogH.Stats)
		r.Get("/slug/{slug}", blogH.GetBySlug)
		r.Get("/{id}", blogH.Get)
		r.Get("/{id}/comments", blogH.Comments)
		r.With(publicLimit.Limit).Post("/{id}/comments", blogH.AddComment)
		r.Post("/{id}/view", blogH.View)
		r.Post("/{id}/share", blogH.Share)

		r.With(requireAuth).Get("/all", blogH.ListAll)
		r.With(requireAuth).Post("/", blogH.Create)
		r.With(requireAuth).Put("/{id}", blogH.Update)
		r.With(requireAuth).Delete("/{id}", blogH.Delete)
	})

	contactH := &handler.ContactHandler{Svc: contact.NewService(db, cfg.AdminEmail)}
	r.Route("/contact", func(r chi.Router) {
		r.With(publicLimit.Limit).Post("/", contactH.Submit)

		r.With(requireAuth).Get("/", contactH.List)
		r.With(requireAuth).Get("/unread", contactH.UnreadCount)
		r.With(requireAuth).Get("/{id}", contactH.Get)
		r.With(requireAuth).Patch("/{id}/read", contactH.MarkAsRead)
		r.With(requireAuth).Delete("/{id}", contactH.Delete)
	})

	newsH := &handler.NewsletterHandler{Svc: &newsletter.Service{DB: db, Mailer: m}}
	r.Route("/newsletter", func(r chi.Router) {
		r.With(publicLimit.Limit).Post("/subscribe", newsH.Subscribe)
		r.Post("/unsubscribe", newsH.Unsubscribe)

		r.With(requireAuth).Get("/subscribers", newsH.Subscribers)
		r.With(requireAuth).Get("/stats", newsH.Stats)
		r.With(requireAuth).Post("/send", newsH.SendArticle)
	})

	testiH := &handler.TestimonialHandler{Svc: testimonial.NewService(db)}
	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", testiH.ListPublic)

		r.With(requireAuth).Get("/all", testiH.ListAll)
		r.With(requireAuth).Post("/", testiH.Create)
		r.With(requireAuth).Put("/{id}", testiH.Update)
		r.With(requireAuth).Patch("/{id}/visibility", testiH.ToggleVisibility)
		r.With(requireAuth).Delete("/{id}", testiH.Delete)
	})

	settingsH := &handler.SettingsHandler{Svc: &settings.Service{DB: db, LocalOverrides: cfg.ProfileOverrides}}
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", settingsH.GetAll)
		r.Get("/effective", settingsH.Effective)
		r.Get("/{key}", settingsH.Get)

		r.With(requireAuth).Put("/{key}", settingsH.Put)
		r.With(requireAuth).Delete("/{key}", settingsH.Delete)
	})

	botH := &handler.ChatbotHandler{Responder: bot}
	r.With(publicLimit.Limit).Post("/chatbot/message", botH.Message)

	return r
}
