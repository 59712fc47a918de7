package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	crmx "github.com/fieldsync/crm-copilot/agent/crm"
)

type Handler struct {
	assistant contractx.Assistant
	store     *crmx.Store
}

func NewHandler(assistant contractx.Assistant, store *crmx.Store) *Handler {
	return &Handler{
		assistant: assistant,
		store:     store,
	}
}

type chatResponse struct {
	Response string            `json:"response"`
	ToolUsed bool              `json:"tool_used"`
	FormData map[string]string `json:"form_data"`
}

// Chat runs one assistant turn for the incoming message plus client-side
// history. Action-level errors ("Interaction 7 not found") come back inside
// the conversation text; only structural faults surface as HTTP errors.
func (h *Handler) Chat(c *gin.Context) {
	var req contractx.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.assistant.HandleChat(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("chat turn failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Aborted {
		log.Warn().Msg("chat turn hit the model call budget")
	}

	c.JSON(http.StatusOK, chatResponse{
		Response: result.Reply,
		ToolUsed: result.ToolUsed,
		FormData: result.FormData,
	})
}

// Interactions returns the current in-memory records verbatim.
func (h *Handler) Interactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Interactions())
}

// HCPs returns the static HCP reference list.
func (h *Handler) HCPs(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.HCPs())
}
