package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"tatdocs/internal/infrastructure/http/v1/dto"
	"tatdocs/internal/metrics"
	"tatdocs/internal/shipment"
	"tatdocs/internal/store"
	"tatdocs/pkg/logger"
	"tatdocs/pkg/numerator"
)

// ShipmentsHandler serves the saved-shipment archive.
type ShipmentsHandler struct {
	*BaseHandler
	store     store.Store
	session   *shipment.Session
	numerator *numerator.Service
	metrics   *metrics.Metrics
}

// NewShipmentsHandler creates a new saved-shipments handler.
func NewShipmentsHandler(base *BaseHandler, st store.Store, session *shipment.Session, num *numerator.Service, m *metrics.Metrics) *ShipmentsHandler {
	return &ShipmentsHandler{
		BaseHandler: base,
		store:       st,
		session:     session,
		numerator:   num,
		metrics:     m,
	}
}

// Save handles POST /shipments
// Snapshots the live form and its derived view into the archive.
func (h *ShipmentsHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	form, calc := h.session.Snapshot()
	saved := store.NewSavedShipment(form, calc, time.Now())

	err := h.store.Save(ctx, saved)
	h.metrics.RecordStoreOperation("save", err)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.numerator.ObserveInvoice(saved.InvoiceNumber)
	logger.Info(ctx, "shipment saved",
		"id", saved.ID,
		"invoice", saved.InvoiceNumber,
	)
	h.Created(c, saved.ID)
}

// List handles GET /shipments
func (h *ShipmentsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.store.List(ctx)
	h.metrics.RecordStoreOperation("list", err)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": items})
}

// Get handles GET /shipments/:id
func (h *ShipmentsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	saved, err := h.store.Load(ctx, c.Param("id"))
	h.metrics.RecordStoreOperation("load", err)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, saved)
}

// Restore handles POST /shipments/:id/restore
// Replaces the live form with the archived snapshot.
func (h *ShipmentsHandler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	saved, err := h.store.Load(ctx, c.Param("id"))
	h.metrics.RecordStoreOperation("load", err)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.session.Replace(saved.FormData)
	form, calc := h.session.Snapshot()
	h.metrics.RecordRecomputation(calc.IsOverweight)

	logger.Info(ctx, "shipment restored",
		"id", saved.ID,
		"invoice", saved.InvoiceNumber,
	)
	h.OK(c, dto.FormResponse{Form: form, Calculations: calc})
}

// Delete handles DELETE /shipments/:id
func (h *ShipmentsHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	err := h.store.Delete(ctx, c.Param("id"))
	h.metrics.RecordStoreOperation("delete", err)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers saved-shipment routes.
func (h *ShipmentsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Save)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("/:id/restore", h.Restore)
	rg.DELETE("/:id", h.Delete)
}
