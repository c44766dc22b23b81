package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetUser handles GET /api/user.
func (s *Server) GetUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c, s.settings.ChatHistoryMode))
}

// GetModels handles GET /api/models.
func (s *Server) GetModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": s.models.Names()})
}

// GetAgents handles GET /api/agents?react_mode={false|true}: the agent keys
// that accept a per-agent model override, for the selected workflow.
func (s *Server) GetAgents(c *gin.Context) {
	reactMode, err := strconv.ParseBool(c.DefaultQuery("react_mode", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "react_mode must be a boolean"})
		return
	}

	var keys []string
	if reactMode {
		keys = []string{"plan", "replan", "review", "clarify"}
	} else {
		keys = []string{"triage"}
	}
	keys = append(keys, s.agents.Keys()...)
	keys = append(keys, "summary")
	c.JSON(http.StatusOK, gin.H{"agents": keys})
}

// GetSettings handles GET /api/settings.
func (s *Server) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"show_func_result": s.settings.ShowFuncResult})
}
