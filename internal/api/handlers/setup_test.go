package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/llm"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/setup"
)

type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) Complete(_ context.Context, _ *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Text: p.text}, nil
}

func (p *stubProvider) Name() string { return "stub" }

func setupTestRouter(provider llm.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	assembler := setup.NewAssembler(provider, "gpt-4o-mini")
	handler := NewSetupHandler(assembler)

	router := gin.New()
	router.POST("/generate-setup", handler.Generate)
	return router
}

func postSetup(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/generate-setup", bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"car":                  "porsche_963",
		"track":                "le_mans",
		"selectedCarCategory":  "Hypercar",
		"selectedCarDisplay":   "Porsche 963",
		"selectedTrackDisplay": "Circuit de la Sarthe (Le Mans)",
		"setupGoal":            "balanced",
		"sessionGoal":          "race",
		"sessionDuration":      "60",
		"selectedWeather":      "dry",
		"trackTemp":            28.0,
	}
}

func TestGenerateSetupSuccess(t *testing.T) {
	router := setupTestRouter(&stubProvider{text: "[GENERAL]\nSymmetric=1\nFuelSetting=55"})

	w := postSetup(t, router, validBody())
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["setup"], "[GENERAL]")
}

func TestGenerateSetupStripsFence(t *testing.T) {
	router := setupTestRouter(&stubProvider{text: "```ini\n[GENERAL]\nSymmetric=1\n```"})

	w := postSetup(t, router, validBody())
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotContains(t, response["setup"], "```")
}

func TestGenerateSetupMissingFields(t *testing.T) {
	router := setupTestRouter(&stubProvider{text: "[GENERAL]"})

	body := validBody()
	delete(body, "car")
	delete(body, "setupGoal")

	w := postSetup(t, router, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "car")
	assert.Contains(t, response["error"], "setupGoal")
}

func TestGenerateSetupUnknownCategory(t *testing.T) {
	router := setupTestRouter(&stubProvider{text: "[GENERAL]"})

	body := validBody()
	body["selectedCarCategory"] = "Formula 1"

	w := postSetup(t, router, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Formula 1")
}

func TestGenerateSetupUpstreamFailure(t *testing.T) {
	router := setupTestRouter(&stubProvider{err: errors.New("connection refused")})

	w := postSetup(t, router, validBody())
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateSetupMalformedModelOutput(t *testing.T) {
	router := setupTestRouter(&stubProvider{text: "Here's what I'd change on your car..."})

	w := postSetup(t, router, validBody())
	require.Equal(t, http.StatusBadGateway, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "not a valid setup file")
}

func TestGenerateSetupInvalidJSON(t *testing.T) {
	router := setupTestRouter(&stubProvider{text: "[GENERAL]"})

	req, err := http.NewRequest(http.MethodPost, "/generate-setup", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
