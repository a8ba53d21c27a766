package handlers

import (
	"github.com/gin-gonic/gin"

	"tatdocs/internal/chat"
	"tatdocs/internal/infrastructure/http/v1/dto"
	"tatdocs/internal/metrics"
	"tatdocs/internal/shipment"
)

// ChatHandler serves the shipment assistant.
type ChatHandler struct {
	*BaseHandler
	service *chat.Service
	session *shipment.Session
	metrics *metrics.Metrics
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(base *BaseHandler, service *chat.Service, session *shipment.Session, m *metrics.Metrics) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		service:     service,
		session:     session,
		metrics:     m,
	}
}

// Send handles POST /chat
func (h *ChatHandler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if !h.BindJSON(c, &req) {
		return
	}

	reply, err := h.service.Send(ctx, req.History, req.Message)
	h.metrics.RecordChatTurn(err)
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := dto.ChatResponse{Reply: reply}
	if reply.Applied {
		h.metrics.RecordChatCommand(string(reply.Action))
		form, calc := h.session.Snapshot()
		h.metrics.RecordRecomputation(calc.IsOverweight)
		resp.Form = &dto.FormResponse{Form: form, Calculations: calc}
	}
	h.OK(c, resp)
}

// RegisterRoutes registers chat routes.
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Send)
}
