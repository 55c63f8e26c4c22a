package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/careerpilot-lambda/internal/assessment"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/chat"
	"github.com/saulo-duarte/careerpilot-lambda/internal/coverletter"
	"github.com/saulo-duarte/careerpilot-lambda/internal/insights"
	"github.com/saulo-duarte/careerpilot-lambda/internal/middlewares"
	"github.com/saulo-duarte/careerpilot-lambda/internal/resume"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	AssessmentHandler  *assessment.Handler
	InsightsHandler    *insights.Handler
	ResumeHandler      *resume.Handler
	CoverLetterHandler *coverletter.Handler
	ChatHandler        *chat.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/assessments", assessment.Routes(cfg.AssessmentHandler))
		r.Mount("/insights", insights.Routes(cfg.InsightsHandler))
		r.Mount("/resume", resume.Routes(cfg.ResumeHandler))
		r.Mount("/cover-letters", coverletter.Routes(cfg.CoverLetterHandler))
		r.Mount("/chat", chat.Routes(cfg.ChatHandler))
	})
	return r
}
