package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/cleanse-cli/internal/config"
	"github.com/sells-group/cleanse-cli/internal/model"
)

func testRouter() http.Handler {
	return newRouter(config.CleanConfig{IQRMultiplier: 1.5})
}

func postClean(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/clean", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	testRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestClean_Valid(t *testing.T) {
	records := []model.Customer{
		{ID: 1, Name: "A", Email: model.StringOf("a@example.com"), Amount: model.FloatOf(100)},
		{ID: 2, Name: "B", Email: model.StringOf("b@example.com"), Amount: model.FloatOf(110)},
		{ID: 3, Name: "C", Email: model.StringOf("c@example.com"), Amount: model.FloatOf(120)},
		{ID: 4, Name: "D", Email: model.StringOf("d@example.com"), Amount: model.FloatOf(130)},
		{ID: 5, Name: "E", Email: model.StringOf("e@example.com"), Amount: model.FloatOf(140)},
	}

	rr := postClean(t, testRouter(), cleanRequest{Records: records})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp cleanOutputDoc
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Records, 5)
	assert.Equal(t, 5, resp.Summary.RecordsIn)
	assert.Equal(t, 5, resp.Summary.RecordsOut)
	assert.InDelta(t, 600.0, resp.Summary.TotalAfter, 1e-9)
}

func TestClean_CorrectionsApplied(t *testing.T) {
	records := []model.Customer{
		{ID: 1, Name: "Sue Johson", Email: model.StringOf("sue@example.com"), Amount: model.FloatOf(100)},
		{ID: 2, Name: "B", Email: model.StringOf("b@example.com"), Amount: model.FloatOf(110)},
	}

	rr := postClean(t, testRouter(), cleanRequest{
		Records:     records,
		Corrections: map[string]string{"Sue Johson": "Sue Johnson"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp cleanOutputDoc
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "Sue Johnson", resp.Records[0].Name)
}

func TestClean_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/clean", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	testRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestClean_EmptyRecords(t *testing.T) {
	rr := postClean(t, testRouter(), cleanRequest{})

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "records are required")
}

func TestClean_AllAmountsMissing(t *testing.T) {
	records := []model.Customer{
		{ID: 1, Name: "A", Email: model.StringOf("a@example.com")},
		{ID: 2, Name: "B", Email: model.StringOf("b@example.com")},
	}

	rr := postClean(t, testRouter(), cleanRequest{Records: records})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "purchase_amount")
}
