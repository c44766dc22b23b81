package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stanley-ops/stanley/pkg/models"
)

// CreateConversationRequest is the body of POST /api/conversations.
type CreateConversationRequest struct {
	Model string `json:"model"`
}

// ListConversations handles GET /api/conversations.
func (s *Server) ListConversations(c *gin.Context) {
	user := currentUser(c, s.settings.ChatHistoryMode)
	metas, err := s.convs.ListConversations(c.Request.Context(), user.UserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if metas == nil {
		metas = []models.ConversationMeta{}
	}
	c.JSON(http.StatusOK, metas)
}

// CreateConversation handles POST /api/conversations.
func (s *Server) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c, s.settings.ChatHistoryMode)
	meta, err := s.convs.CreateConversation(c.Request.Context(), user.UserID, req.Model, s.settings.DefaultModel)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

// GetConversation handles GET /api/conversations/:id.
func (s *Server) GetConversation(c *gin.Context) {
	user := currentUser(c, s.settings.ChatHistoryMode)
	conv, err := s.convs.GetConversation(c.Request.Context(), user.UserID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// UpdateConversation handles PUT /api/conversations/:id.
func (s *Server) UpdateConversation(c *gin.Context) {
	var req models.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c, s.settings.ChatHistoryMode)
	meta, err := s.convs.UpdateConversation(c.Request.Context(), user.UserID, c.Param("id"), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

// DeleteConversation handles DELETE /api/conversations/:id.
func (s *Server) DeleteConversation(c *gin.Context) {
	user := currentUser(c, s.settings.ChatHistoryMode)
	if err := s.convs.DeleteConversation(c.Request.Context(), user.UserID, c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SetEvaluation handles PATCH /api/conversations/:id/messages/:seq/evaluation.
func (s *Server) SetEvaluation(c *gin.Context) {
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sequence number must be an integer"})
		return
	}
	var req models.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c, s.settings.ChatHistoryMode)
	if err := s.convs.SetEvaluation(c.Request.Context(), user.UserID, c.Param("id"), seq, req); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ClearEvaluation handles PATCH /api/conversations/:id/messages/:seq/evaluation/clear.
func (s *Server) ClearEvaluation(c *gin.Context) {
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sequence number must be an integer"})
		return
	}

	user := currentUser(c, s.settings.ChatHistoryMode)
	if err := s.convs.ClearEvaluation(c.Request.Context(), user.UserID, c.Param("id"), seq); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
