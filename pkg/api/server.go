// Package api exposes the HTTP surface: identity, configuration listings,
// conversation CRUD and the SSE message stream.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stanley-ops/stanley/pkg/cache"
	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/database"
	"github.com/stanley-ops/stanley/pkg/orchestrator"
	"github.com/stanley-ops/stanley/pkg/services"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	convs    *services.ConversationService
	orch     *orchestrator.Orchestrator
	models   *config.ModelRegistry
	agents   *config.SubAgentRegistry
	settings config.Settings

	// Optional: nil in local history mode.
	db    *database.Client
	cache *cache.ConversationCache
}

// Config wires the server's collaborators.
type Config struct {
	Conversations *services.ConversationService
	Orchestrator  *orchestrator.Orchestrator
	Models        *config.ModelRegistry
	Agents        *config.SubAgentRegistry
	Settings      config.Settings
	DB            *database.Client
	Cache         *cache.ConversationCache
}

// NewServer creates the API server.
func NewServer(cfg Config) *Server {
	return &Server{
		convs:    cfg.Conversations,
		orch:     cfg.Orchestrator,
		models:   cfg.Models,
		agents:   cfg.Agents,
		settings: cfg.Settings,
		db:       cfg.DB,
		cache:    cfg.Cache,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/user", s.GetUser)
		apiGroup.GET("/models", s.GetModels)
		apiGroup.GET("/agents", s.GetAgents)
		apiGroup.GET("/settings", s.GetSettings)

		apiGroup.GET("/conversations", s.ListConversations)
		apiGroup.POST("/conversations", s.CreateConversation)
		apiGroup.GET("/conversations/:id", s.GetConversation)
		apiGroup.PUT("/conversations/:id", s.UpdateConversation)
		apiGroup.DELETE("/conversations/:id", s.DeleteConversation)

		apiGroup.POST("/conversations/:id/messages", s.SendMessage)
		apiGroup.PATCH("/conversations/:id/messages/:seq/evaluation", s.SetEvaluation)
		apiGroup.PATCH("/conversations/:id/messages/:seq/evaluation/clear", s.ClearEvaluation)
	}
	return r
}

// Health reports process and dependency status.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := gin.H{"status": "healthy"}
	code := http.StatusOK

	if s.db != nil {
		if _, err := database.Health(ctx, s.db.DB()); err != nil {
			status["status"] = "unhealthy"
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		} else {
			status["database"] = "ok"
		}
	}
	if s.cache != nil {
		if err := s.cache.Health(ctx); err != nil {
			status["status"] = "unhealthy"
			status["cache"] = err.Error()
			code = http.StatusServiceUnavailable
		} else {
			status["cache"] = "ok"
		}
	}
	c.JSON(code, status)
}
