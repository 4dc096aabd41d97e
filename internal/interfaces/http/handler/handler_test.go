package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appcart "github.com/shopfront/backend/internal/application/cart"
	appcatalog "github.com/shopfront/backend/internal/application/catalog"
	appcheckout "github.com/shopfront/backend/internal/application/checkout"
	appidentity "github.com/shopfront/backend/internal/application/identity"
	"github.com/shopfront/backend/internal/domain/identity"
	"github.com/shopfront/backend/internal/infrastructure/catalogdata"
	"github.com/shopfront/backend/internal/infrastructure/statestore"
	"github.com/shopfront/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testServer wires the full handler surface against in-memory services
type testServer struct {
	engine *gin.Engine
	store  *statestore.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidations()

	cat, err := catalogdata.Load()
	require.NoError(t, err)

	logger := zap.NewNop()
	store := statestore.NewMemoryStore()

	searchSvc := appcatalog.NewSearchService(cat, logger)
	cartSvc := appcart.NewCartService(cat, logger)
	authSvc := appidentity.NewAuthService(identity.MockVerifier{}, store, time.Millisecond, logger)
	prefsSvc := appidentity.NewPreferenceService(store, logger)
	checkoutSvc := appcheckout.NewCheckoutService(cartSvc, cat, logger)

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewCatalogHandler(searchSvc).RegisterRoutes(api)
	NewCartHandler(cartSvc).RegisterRoutes(api)
	NewAuthHandler(authSvc).RegisterRoutes(api)
	NewCheckoutHandler(checkoutSvc).RegisterRoutes(api)
	NewLocationHandler(prefsSvc).RegisterRoutes(api)
	NewSystemHandler().RegisterRoutes(api)

	return &testServer{engine: engine, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, "expected success response, got %s", w.Body.String())
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// catalogSize keeps list assertions stable against the embedded catalog
func catalogSize(t *testing.T) int {
	t.Helper()
	cat, err := catalogdata.Load()
	require.NoError(t, err)
	return cat.Len()
}
