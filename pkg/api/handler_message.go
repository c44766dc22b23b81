package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stanley-ops/stanley/pkg/events"
	"github.com/stanley-ops/stanley/pkg/orchestrator"
)

// SendMessage handles POST /api/conversations/:id/messages: runs one chat
// turn and streams bus events to the client as server-sent events.
func (s *Server) SendMessage(c *gin.Context) {
	var req orchestrator.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := currentUser(c, s.settings.ChatHistoryMode)

	headerWritten := false
	emit := func(ev events.Event) error {
		if !headerWritten {
			// Errors before the first event still go out as plain JSON.
			c.Writer.Header().Set("Content-Type", "text/event-stream")
			c.Writer.Header().Set("Cache-Control", "no-cache")
			c.Writer.Header().Set("Connection", "keep-alive")
			c.Writer.WriteHeader(http.StatusOK)
			headerWritten = true
		}
		if err := events.WriteSSE(c.Writer, ev); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	err := s.orch.HandleMessage(c.Request.Context(), user.UserID, c.Param("id"), req, emit)
	if err != nil && !headerWritten {
		abortWithServiceError(c, err)
	}
}
