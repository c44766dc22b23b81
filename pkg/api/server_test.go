package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/memory"
	"github.com/stanley-ops/stanley/pkg/models"
	"github.com/stanley-ops/stanley/pkg/orchestrator"
	"github.com/stanley-ops/stanley/pkg/services"
	"github.com/stanley-ops/stanley/pkg/tools"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *llm.ScriptedClient) {
	t.Helper()
	client := llm.NewScriptedClient()

	convStore := services.NewLocalStore()
	modelReg := config.NewModelRegistry()
	convs := services.NewConversationService(convStore, modelReg, 7)
	memSvc := memory.NewService(memory.NewLocalStore(), convStore, client, memory.Config{
		Model: config.ModelGPT41Mini,
	})

	registry := tools.NewRegistry()
	tools.RegisterBuiltinTools(registry)
	pool := tools.NewPool(4)
	t.Cleanup(pool.Stop)

	settings := config.Settings{
		DefaultModel:     config.ModelGPT41,
		ChatHistoryMode:  config.HistoryModeLocal,
		ShowFuncResult:   true,
		MaxIterations:    10,
		ToolCallBudget:   8,
		EventBusCapacity: 64,
		LLMTimeout:       5 * time.Second,
		ToolTimeout:      5 * time.Second,
		WorkflowTimeout:  10 * time.Second,
	}

	orch := orchestrator.New(orchestrator.Config{
		Conversations: convs,
		Memory:        memSvc,
		Client:        client,
		Agents:        config.NewSubAgentRegistry(),
		Tools:         registry,
		Pool:          pool,
		Settings:      settings,
	})

	srv := NewServer(Config{
		Conversations: convs,
		Orchestrator:  orch,
		Models:        modelReg,
		Agents:        config.NewSubAgentRegistry(),
		Settings:      settings,
	})
	return srv, client
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func createConversation(t *testing.T, srv *Server) string {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/api/conversations", `{"model": "gpt-4.1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var meta models.ConversationMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
	return meta.ConversationID
}

func TestGetUser_LocalMode(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/user", "")
	require.Equal(t, http.StatusOK, w.Code)

	var user UserInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "local-test-user", user.UserID)
	assert.True(t, user.IsAuthenticated)
	assert.Equal(t, "local", user.Mode)
}

func TestGetModels(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/models", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"models": ["gpt-4.1", "gpt-4.1-mini"]}`, w.Body.String())
}

func TestGetAgents_BothModes(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/agents", "")
	require.Equal(t, http.StatusOK, w.Code)
	var triageSet struct {
		Agents []string `json:"agents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &triageSet))
	assert.Contains(t, triageSet.Agents, "triage")
	assert.Contains(t, triageSet.Agents, "servicenow")
	assert.Contains(t, triageSet.Agents, "summary")
	assert.NotContains(t, triageSet.Agents, "plan")

	w = doJSON(t, srv, http.MethodGet, "/api/agents?react_mode=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	var dynamicSet struct {
		Agents []string `json:"agents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dynamicSet))
	assert.Contains(t, dynamicSet.Agents, "plan")
	assert.Contains(t, dynamicSet.Agents, "review")
	assert.NotContains(t, dynamicSet.Agents, "triage")
}

func TestGetSettings(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"show_func_result": true}`, w.Body.String())
}

func TestConversationLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	id := createConversation(t, srv)

	w := doJSON(t, srv, http.MethodGet, "/api/conversations", "")
	require.Equal(t, http.StatusOK, w.Code)
	var metas []models.ConversationMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metas))
	require.Len(t, metas, 1)
	assert.Equal(t, id, metas[0].ConversationID)

	w = doJSON(t, srv, http.MethodPut, "/api/conversations/"+id,
		`{"title": "Payment incident", "agent_level_llm_overwrite": {"servicenow": "gpt-4.1-mini"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.ConversationMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Payment incident", updated.Title)
	assert.Equal(t, "gpt-4.1-mini", updated.AgentLevelLLMOverwrite["servicenow"])

	w = doJSON(t, srv, http.MethodGet, "/api/conversations/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var conv models.Conversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	assert.Equal(t, "Payment incident", conv.Title)
	assert.Empty(t, conv.Messages)

	w = doJSON(t, srv, http.MethodDelete, "/api/conversations/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/conversations/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateConversation_UnknownModelIs400(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/conversations", `{"model": "gpt-nonexistent"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_StreamsSSE(t *testing.T) {
	srv, client := newTestServer(t)
	id := createConversation(t, srv)

	client.AddRouted("triage agent", llm.ScriptEntry{Text: `{"should_reject": false, "reject_reason": "", "tasks": [{"agent": "servicenow", "question": "Look up INC123"}]}`})
	client.AddRouted("ServiceNow specialist", llm.ScriptEntry{Text: "INC123 is resolved."})
	client.AddRouted("senior operations analyst", llm.ScriptEntry{Text: "INC123 is resolved."})

	w := doJSON(t, srv, http.MethodPost, "/api/conversations/"+id+"/messages",
		`{"message": "Check incident INC123 in ServiceNow.", "react_mode": false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "event: message\n")
	assert.Contains(t, body, `"type":"user"`)
	assert.Contains(t, body, "event: thinking\n")
	assert.Contains(t, body, "event: stream\n")
	assert.Contains(t, body, `"type":"assistant"`)
	assert.True(t, strings.HasSuffix(body, "event: done\ndata: {}\n\n"),
		"stream must terminate with the done event, got tail %q", body[max(0, len(body)-80):])

	// The turn is persisted: both messages appear on a follow-up read.
	w = doJSON(t, srv, http.MethodGet, "/api/conversations/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var conv models.Conversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	require.Len(t, conv.Messages, 2)
	assert.Contains(t, conv.Messages[1].Content, "INC123")
}

func TestSendMessage_UnknownConversationIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/conversations/nope/messages", `{"message": "hello"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEvaluationEndpoints(t *testing.T) {
	srv, client := newTestServer(t)
	id := createConversation(t, srv)

	client.AddRouted("triage agent", llm.ScriptEntry{Text: `{"should_reject": false, "reject_reason": "", "tasks": [{"agent": "servicenow", "question": "q"}]}`})
	client.AddRouted("ServiceNow specialist", llm.ScriptEntry{Text: "data"})
	client.AddRouted("senior operations analyst", llm.ScriptEntry{Text: "answer"})
	w := doJSON(t, srv, http.MethodPost, "/api/conversations/"+id+"/messages", `{"message": "question"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPatch,
		fmt.Sprintf("/api/conversations/%s/messages/1/evaluation", id),
		`{"is_satisfy": true, "comment": "helpful"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Evaluating the user message is rejected.
	w = doJSON(t, srv, http.MethodPatch,
		fmt.Sprintf("/api/conversations/%s/messages/0/evaluation", id),
		`{"is_satisfy": true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodPatch,
		fmt.Sprintf("/api/conversations/%s/messages/1/evaluation/clear", id), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/conversations/"+id, "")
	var conv models.Conversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	assert.Nil(t, conv.Messages[1].IsSatisfy)
}
