package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tatdocs/internal/infrastructure/http/v1/dto"
	"tatdocs/internal/metrics"
	"tatdocs/internal/shipment"
	"tatdocs/pkg/numerator"
)

// ShipmentHandler serves the live shipment form and its derived view.
type ShipmentHandler struct {
	*BaseHandler
	session   *shipment.Session
	numerator *numerator.Service
	metrics   *metrics.Metrics
}

// NewShipmentHandler creates a new shipment handler.
func NewShipmentHandler(base *BaseHandler, session *shipment.Session, num *numerator.Service, m *metrics.Metrics) *ShipmentHandler {
	return &ShipmentHandler{
		BaseHandler: base,
		session:     session,
		numerator:   num,
		metrics:     m,
	}
}

// snapshot returns the matching form and calculations pair and records
// the recomputation.
func (h *ShipmentHandler) snapshot() dto.FormResponse {
	form, calc := h.session.Snapshot()
	h.metrics.RecordRecomputation(calc.IsOverweight)
	return dto.FormResponse{Form: form, Calculations: calc}
}

// GetForm handles GET /shipment
func (h *ShipmentHandler) GetForm(c *gin.Context) {
	h.OK(c, h.snapshot())
}

// ReplaceForm handles PUT /shipment
func (h *ShipmentHandler) ReplaceForm(c *gin.Context) {
	var form shipment.ShipmentFormData
	if !h.BindJSON(c, &form) {
		return
	}

	if err := h.session.Update(func(f *shipment.ShipmentFormData) error {
		if err := f.ReplaceItems(form.Items); err != nil {
			return err
		}
		// Keep the normalized items, take every scalar field from the
		// request wholesale.
		items := f.Items
		*f = form
		f.Items = items
		return nil
	}); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.snapshot())
}

// Reset handles POST /shipment/reset
func (h *ShipmentHandler) Reset(c *gin.Context) {
	h.session.Reset()
	h.OK(c, h.snapshot())
}

// GetCalculations handles GET /shipment/calculations
func (h *ShipmentHandler) GetCalculations(c *gin.Context) {
	_, calc := h.session.Snapshot()
	h.metrics.RecordRecomputation(calc.IsOverweight)
	h.OK(c, calc)
}

// AddItem handles POST /shipment/items
func (h *ShipmentHandler) AddItem(c *gin.Context) {
	item := h.session.AddItem()
	snap := h.snapshot()
	c.JSON(http.StatusCreated, gin.H{"item": item, "form": snap.Form, "calculations": snap.Calculations})
}

// UpdateItem handles PATCH /shipment/items/:id
func (h *ShipmentHandler) UpdateItem(c *gin.Context) {
	var patch shipment.ItemPatch
	if !h.BindJSON(c, &patch) {
		return
	}

	if err := h.session.UpdateItem(c.Param("id"), patch); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.snapshot())
}

// RemoveItem handles DELETE /shipment/items/:id
func (h *ShipmentHandler) RemoveItem(c *gin.Context) {
	if err := h.session.RemoveItem(c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.snapshot())
}

// SuggestSequence handles GET /shipment/next-sequence
// Advisory: proposes the next unused sequence for the form's base
// invoice without changing the form.
func (h *ShipmentHandler) SuggestSequence(c *gin.Context) {
	form := h.session.Form()
	h.OK(c, dto.SequenceSuggestion{
		BaseInvoice:  form.BaseInvoice,
		NextSequence: h.numerator.Suggest(form.BaseInvoice),
	})
}

// RegisterRoutes registers shipment form routes.
func (h *ShipmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetForm)
	rg.PUT("", h.ReplaceForm)
	rg.POST("/reset", h.Reset)
	rg.GET("/calculations", h.GetCalculations)
	rg.GET("/next-sequence", h.SuggestSequence)
	rg.POST("/items", h.AddItem)
	rg.PATCH("/items/:id", h.UpdateItem)
	rg.DELETE("/items/:id", h.RemoveItem)
}
