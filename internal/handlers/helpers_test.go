package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portfoliotracker/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func TestParseFlexibleTime(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		got, err := parseFlexibleTime("2024-03-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected time %s", got)
		}
	})

	t.Run("rfc3339 converted to utc", func(t *testing.T) {
		got, err := parseFlexibleTime("2024-03-15T23:30:00-02:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2024, 3, 16, 1, 30, 0, 0, time.UTC)) || got.Location() != time.UTC {
			t.Errorf("unexpected time %s", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := parseFlexibleTime("15/03/2024"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestNormalizeTicker(t *testing.T) {
	if got := normalizeTicker("  brk.b "); got != "BRK.B" {
		t.Errorf("expected BRK.B, got %q", got)
	}
}
