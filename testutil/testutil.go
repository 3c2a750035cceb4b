// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/dataset"
	"github.com/danielhkuo/electorate/db"
	"github.com/danielhkuo/electorate/models"
)

// TestDBURL is the in-memory SQLite store used by tests
const TestDBURL = ":memory:"

// SetupTestStore opens a fresh in-memory store seeded with the bundled
// baseline and returns the baseline read back from it
func SetupTestStore(t *testing.T) (*sql.DB, *dataset.Baseline) {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	baseline, _, err := db.EnsureBaseline(conn, dataset.Default())
	if err != nil {
		t.Fatalf("Failed to seed baseline: %v", err)
	}

	return conn, baseline
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		RateLimit:    0,
	}
}

// CollapsibleBaseline returns a single category "tiny" of ten groups G0..G9
// with 10% share each, so turnout shifts of -10 on every group are in range
// but leave no electorate
func CollapsibleBaseline(t *testing.T) *dataset.Baseline {
	t.Helper()

	groups := make(models.Distribution, 10)
	for i := range groups {
		groups[i] = models.Group{
			Name:       fmt.Sprintf("G%d", i),
			GroupStats: models.GroupStats{Share: 10, SupportA: 50, SupportB: 48, SupportOther: 2},
		}
	}

	b, err := dataset.New(dataset.DefaultCandidates, models.Category{Name: "tiny", Baseline: groups})
	if err != nil {
		t.Fatalf("Failed to build baseline: %v", err)
	}
	return b
}

// CollapseShifts returns turnout shifts that zero every group of CollapsibleBaseline
func CollapseShifts() models.ShiftMap {
	shifts := models.ShiftMap{}
	for i := 0; i < 10; i++ {
		shifts[fmt.Sprintf("G%d", i)] = -10
	}
	return shifts
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
