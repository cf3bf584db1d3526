// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/variety-study/models"
	"github.com/danielhkuo/variety-study/testutil"
)

func TestResetResponses(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(conn, cfg)

	testutil.SeedResponse(t, conn, models.ConditionSequential, []string{"Vanilla", "Vanilla", "Vanilla"}, models.VarietyLow)
	testutil.SeedResponse(t, conn, models.ConditionSimultaneous, []string{"Vanilla", "Banana", "Coffee"}, models.VarietyHigh)

	tests := []struct {
		name           string
		token          string
		confirm        string
		expectedStatus int
		wantRows       int
	}{
		{
			name:           "missing admin token",
			token:          "",
			confirm:        ResetConfirmValue,
			expectedStatus: http.StatusUnauthorized,
			wantRows:       2,
		},
		{
			name:           "wrong admin token",
			token:          "not-the-token",
			confirm:        ResetConfirmValue,
			expectedStatus: http.StatusUnauthorized,
			wantRows:       2,
		},
		{
			name:           "missing confirmation",
			token:          cfg.AdminToken,
			confirm:        "",
			expectedStatus: http.StatusBadRequest,
			wantRows:       2,
		},
		{
			name:           "wrong confirmation value",
			token:          cfg.AdminToken,
			confirm:        "yes",
			expectedStatus: http.StatusBadRequest,
			wantRows:       2,
		},
		{
			name:           "gated reset succeeds",
			token:          cfg.AdminToken,
			confirm:        ResetConfirmValue,
			expectedStatus: http.StatusNoContent,
			wantRows:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/admin/responses"
			if tt.confirm != "" {
				path += "?confirm=" + tt.confirm
			}

			headers := map[string]string{}
			if tt.token != "" {
				headers["X-Admin-Token"] = tt.token
			}

			req := testutil.MakeRequest("DELETE", path, nil, headers)
			w := httptest.NewRecorder()

			handler.ResetResponses(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if n := testutil.CountResponses(t, conn); n != tt.wantRows {
				t.Errorf("Expected %d rows after %s, got %d", tt.wantRows, tt.name, n)
			}
		})
	}
}

// Reset followed by aggregation yields the all-zero dense view.
func TestResetThenResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	adminHandler := NewAdminHandler(conn, cfg)
	resultsHandler := NewResultsHandler(conn)

	testutil.SeedResponse(t, conn, models.ConditionSequential, []string{"Coffee", "Coffee", "Coffee"}, models.VarietyLow)

	req := testutil.MakeRequest("DELETE", "/admin/responses?confirm="+ResetConfirmValue, nil, map[string]string{
		"X-Admin-Token": cfg.AdminToken,
	})
	w := httptest.NewRecorder()
	adminHandler.ResetResponses(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	req = testutil.MakeRequest("GET", "/results", nil, nil)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Conditions) != 2 {
		t.Fatalf("Expected 2 condition breakdowns, got %d", len(resp.Conditions))
	}
	for _, breakdown := range resp.Conditions {
		if len(breakdown.Cells) != 3 {
			t.Fatalf("Expected 3 cells, got %d", len(breakdown.Cells))
		}
		for _, cell := range breakdown.Cells {
			if cell.Count != 0 || cell.Percent != 0 {
				t.Errorf("Expected all-zero cell, got %+v", cell)
			}
		}
	}
}
