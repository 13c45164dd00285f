package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/affordable-sports-cars/catalog-indexer/internal/api/middleware"
	"github.com/affordable-sports-cars/catalog-indexer/internal/api/server"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/mocks"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestServer(t *testing.T) (*server.Server, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	return server.New(server.Config{}, st, mocks.NewMockRunner(ctrl)), st
}

func TestRouter_HealthAssignsRequestID(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

func TestRouter_KeepsCallerRequestID(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_CORS(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/cars", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CarsWiredToStore(t *testing.T) {
	srv, st := newTestServer(t)

	st.EXPECT().
		ListCars(gomock.Any(), store.CarsFilter{MaxPrice: 200000, Page: 1, PerPage: 20}).
		Return(&store.CarsPage{Page: 1, PerPage: 20}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cars":[],"total":0,"page":1,"perPage":20,"totalPages":0,"pricedBy":"msrp"}`, w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
