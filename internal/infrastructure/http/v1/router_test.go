package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatdocs/internal/auth"
	"tatdocs/internal/catalog"
	"tatdocs/internal/documents"
	"tatdocs/internal/metrics"
	"tatdocs/internal/shipment"
	"tatdocs/internal/store"
	"tatdocs/pkg/logger"
	"tatdocs/pkg/numerator"
)

func testRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	hash, err := auth.HashPassword("test-password")
	require.NoError(t, err)

	authService := auth.NewService(auth.Operator{
		Subject:      "operator",
		Email:        "ops@example.com",
		PasswordHash: hash,
	}, auth.NewJWTService(auth.DefaultJWTConfig("test-secret")))

	cat := catalog.Default()
	session := shipment.NewSession(cat, catalog.DefaultPackagingStandards(), catalog.MaxGrossWeightKg)

	router := NewRouter(RouterConfig{
		Logger:      logger.Default(),
		Session:     session,
		Catalog:     cat,
		Standards:   catalog.DefaultPackagingStandards(),
		Exporter:    catalog.DefaultExporter(),
		Projector:   documents.NewProjector(catalog.DefaultExporter(), catalog.DefaultPersonnel(), catalog.Chemtrec()),
		Store:       store.NewMemoryStore(),
		AuthService: authService,
		Numerator:   numerator.New(numerator.DefaultConfig()),
		Metrics:     metrics.New(),
		Version:     "test",
	})

	body := `{"email":"ops@example.com","password":"test-password"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var pair struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.AccessToken)

	return router, pair.AccessToken
}

func do(t *testing.T, router http.Handler, token, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := testRouter(t)

	rec := do(t, router, "", http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, "", http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, "", http.MethodGet, "/health/info", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"store":"memory"`)
}

func TestAuthRequired(t *testing.T) {
	router, _ := testRouter(t)

	rec := do(t, router, "", http.MethodGet, "/api/v1/shipment", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, "garbage", http.MethodGet, "/api/v1/shipment", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	router, _ := testRouter(t)

	rec := do(t, router, "", http.MethodPost, "/api/v1/auth/login",
		`{"email":"ops@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetFormAndCalculations(t *testing.T) {
	router, token := testRouter(t)

	rec := do(t, router, token, http.MethodGet, "/api/v1/shipment", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Form         shipment.ShipmentFormData `json:"form"`
		Calculations shipment.Calculations     `json:"calculations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "9400.1", resp.Calculations.InvoiceNumber)
	require.Len(t, resp.Form.Items, 1)
	assert.Equal(t, "P13", resp.Form.Items[0].ProductID)
	assert.InDelta(t, 18420.0, resp.Calculations.TotalGrossWeight, 0.001)
}

func TestItemLifecycle(t *testing.T) {
	router, token := testRouter(t)

	rec := do(t, router, token, http.MethodPost, "/api/v1/shipment/items", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Item shipment.LineItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Item.ID)

	rec = do(t, router, token, http.MethodPatch, "/api/v1/shipment/items/"+created.Item.ID,
		`{"quantity":5,"unitType":"drums"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, token, http.MethodPatch, "/api/v1/shipment/items/"+created.Item.ID,
		`{"unitType":"barrels"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, token, http.MethodDelete, "/api/v1/shipment/items/"+created.Item.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, token, http.MethodDelete, "/api/v1/shipment/items/"+created.Item.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveLastItemRejected(t *testing.T) {
	router, token := testRouter(t)

	rec := do(t, router, token, http.MethodGet, "/api/v1/shipment", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Form shipment.ShipmentFormData `json:"form"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Form.Items, 1)

	rec = do(t, router, token, http.MethodDelete,
		"/api/v1/shipment/items/"+resp.Form.Items[0].ID, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "LAST_LINE_ITEM")
}

func TestSavedShipmentLifecycle(t *testing.T) {
	router, token := testRouter(t)

	rec := do(t, router, token, http.MethodPost, "/api/v1/shipments", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = do(t, router, token, http.MethodGet, "/api/v1/shipments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)

	rec = do(t, router, token, http.MethodPost, "/api/v1/shipments/"+created.ID+"/restore", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, token, http.MethodDelete, "/api/v1/shipments/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, token, http.MethodGet, "/api/v1/shipments/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentsEndpoints(t *testing.T) {
	router, token := testRouter(t)

	rec := do(t, router, token, http.MethodGet, "/api/v1/documents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Packing List")

	rec = do(t, router, token, http.MethodGet, "/api/v1/documents/invoice", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "9400.1")

	rec = do(t, router, token, http.MethodGet, "/api/v1/documents/nonsense", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router, token := testRouter(t)

	rec := do(t, router, token, http.MethodGet, "/api/v1/catalog/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, token, http.MethodGet, "/api/v1/catalog/products/P13", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, token, http.MethodGet, "/api/v1/catalog/products/P99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNextSequenceSuggestion(t *testing.T) {
	router, token := testRouter(t)

	rec := do(t, router, token, http.MethodGet, "/api/v1/shipment/next-sequence", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nextSequence":"1"`)

	// Saving observes the current invoice, so the next suggestion moves on.
	rec = do(t, router, token, http.MethodPost, "/api/v1/shipments", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, token, http.MethodGet, "/api/v1/shipment/next-sequence", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nextSequence":"2"`)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := testRouter(t)

	rec := do(t, router, "", http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tatdocs_http_requests_total")
}
