package handlers

import (
	"github.com/gin-gonic/gin"

	"tatdocs/internal/catalog"
	"tatdocs/internal/core/apperror"
)

// CatalogHandler serves the product catalog and packaging reference data.
type CatalogHandler struct {
	*BaseHandler
	catalog   *catalog.Catalog
	standards catalog.PackagingStandards
	exporter  catalog.Exporter
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(base *BaseHandler, cat *catalog.Catalog, standards catalog.PackagingStandards, exporter catalog.Exporter) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: base,
		catalog:     cat,
		standards:   standards,
		exporter:    exporter,
	}
}

// ListProducts handles GET /catalog/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.OK(c, gin.H{"items": h.catalog.Products()})
}

// GetProduct handles GET /catalog/products/:id
// Strict lookup: unknown ids are a 404 here, unlike the lenient
// resolution inside the calculation engine.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	product, ok := h.catalog.Lookup(id)
	if !ok {
		h.Error(c, apperror.NewNotFound("product", id))
		return
	}
	h.OK(c, product)
}

// GetPackagingStandards handles GET /catalog/packaging-standards
func (h *CatalogHandler) GetPackagingStandards(c *gin.Context) {
	h.OK(c, h.standards)
}

// GetExporter handles GET /catalog/exporter
func (h *CatalogHandler) GetExporter(c *gin.Context) {
	h.OK(c, h.exporter)
}

// RegisterRoutes registers catalog routes.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
	rg.GET("/packaging-standards", h.GetPackagingStandards)
	rg.GET("/exporter", h.GetExporter)
}
