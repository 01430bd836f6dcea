// internal/server/handlers_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/models"
)

type stubService struct {
	resp      *models.ChatResponse
	err       error
	questions []string
	lastReq   models.ChatRequest
}

func (s *stubService) Chat(_ context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func (s *stubService) Suggest(context.Context) []string {
	return s.questions
}

func newTestRouter(t *testing.T, svc *stubService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(NewHandler(svc, logger.NewNoOpLogger()), logger.NewNoOpLogger())
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestChat_Success(t *testing.T) {
	svc := &stubService{
		resp: &models.ChatResponse{
			Response: "Found 1 product:",
			Products: []models.Product{{ID: 1, Name: "Basmati Rice"}},
			Intent:   models.IntentProductSearch,
		},
	}
	router := newTestRouter(t, svc)

	body, _ := json.Marshal(models.ChatRequest{Message: "Show me rice", UserID: "u1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", svc.lastReq.UserID)

	var got models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.IntentProductSearch, got.Intent)
	assert.Len(t, got.Products, 1)
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	router := newTestRouter(t, &stubService{})

	for _, body := range []string{`{}`, `{"message": "   "}`, `not-json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestChat_ServiceError(t *testing.T) {
	router := newTestRouter(t, &stubService{err: assert.AnError})

	body, _ := json.Marshal(models.ChatRequest{Message: "Show me rice"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSuggest(t *testing.T) {
	router := newTestRouter(t, &stubService{questions: []string{"Show me rice", "Who sells dal?"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/suggest", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.SuggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"Show me rice", "Who sells dal?"}, got.Questions)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, &stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
