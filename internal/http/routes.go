package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	middleware "skill-share.com/skill-share/internal/http/middlewares"
	"skill-share.com/skill-share/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, tokens middleware.TokenValidator, limiter ratelimit.Limiter, log *zap.Logger) {
	e.HTTPErrorHandler = NewErrorHandler(log)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.RateLimiter(limiter, log))

	e.GET("/health", h.Health)

	accounts := e.Group("/accounts")
	accounts.POST("/create", h.CreateAccount)
	accounts.POST("/authenticate", h.Authenticate)
	accounts.GET("/me", h.CurrentAccount, middleware.Authenticate(tokens))

	authenticated := middleware.Authenticate(tokens)

	tasks := e.Group("/task", authenticated)
	tasks.POST("/create", h.CreateTask)
	tasks.GET("/get/:accountId", h.GetTasks)
	tasks.POST("/update-progress", h.UpdateProgress)
	tasks.POST("/update-status", h.UpdateStatus)

	offers := e.Group("/offer", authenticated)
	offers.POST("/make", h.MakeOffer)
	offers.GET("/get/:accountId", h.GetOffers)
	offers.POST("/accept", h.AcceptOffer)

	skills := e.Group("/skills", authenticated)
	skills.POST("/add-update", h.AddOrUpdateSkill)
	skills.POST("/get", h.GetSkills)
}
