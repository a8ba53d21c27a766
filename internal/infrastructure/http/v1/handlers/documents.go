package handlers

import (
	"github.com/gin-gonic/gin"

	"tatdocs/internal/core/apperror"
	"tatdocs/internal/documents"
	"tatdocs/internal/shipment"
)

// DocumentsHandler serves the export document projections.
type DocumentsHandler struct {
	*BaseHandler
	projector *documents.Projector
	session   *shipment.Session
}

// NewDocumentsHandler creates a new documents handler.
func NewDocumentsHandler(base *BaseHandler, projector *documents.Projector, session *shipment.Session) *DocumentsHandler {
	return &DocumentsHandler{
		BaseHandler: base,
		projector:   projector,
		session:     session,
	}
}

// ListTabs handles GET /documents
// The hazmat tab is hidden while the shipment carries no regulated
// product.
func (h *DocumentsHandler) ListTabs(c *gin.Context) {
	_, calc := h.session.Snapshot()
	h.OK(c, gin.H{"items": h.projector.Tabs(calc)})
}

// GetDocument handles GET /documents/:tab
func (h *DocumentsHandler) GetDocument(c *gin.Context) {
	tab := documents.Tab(c.Param("tab"))

	form, calc := h.session.Snapshot()
	doc, ok := h.projector.Build(tab, form, calc)
	if !ok {
		h.Error(c, apperror.NewNotFound("document", string(tab)))
		return
	}
	h.OK(c, doc)
}

// RegisterRoutes registers document routes.
func (h *DocumentsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListTabs)
	rg.GET("/:tab", h.GetDocument)
}
