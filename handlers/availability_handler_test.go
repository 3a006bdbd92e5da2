package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"availabilityAPI/internal/types/availability"
	"availabilityAPI/services"
)

type fakeStore struct {
	records   []availability.DayRecord
	findErr   error
	upsertErr error
	upserts   []availability.DayRecord
}

func (f *fakeStore) FindInRange(ctx context.Context, start, end time.Time) ([]availability.DayRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.records, nil
}

func (f *fakeStore) Upsert(ctx context.Context, date time.Time, status availability.DayStatus) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, availability.DayRecord{Date: date, Status: status})
	return nil
}

const testPassword = "hunter2"

func newTestHandler(fs *fakeStore) *AvailabilityHandler {
	return NewAvailabilityHandler(services.NewAvailabilityService(fs, testPassword))
}

func TestGetMonthAvailability(t *testing.T) {
	fs := &fakeStore{
		records: []availability.DayRecord{
			{
				Date:   time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
				Status: availability.StatusFinished,
			},
		},
	}
	h := newTestHandler(fs)

	req := httptest.NewRequest("GET", "/api/availability?year=2024&month=6", nil)
	rec := httptest.NewRecorder()
	h.GetMonthAvailability(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp availability.MonthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Days) != 30 {
		t.Errorf("got %d days, want 30", len(resp.Days))
	}
	if resp.Days["2024-06-15"] != availability.StatusFinished {
		t.Errorf("2024-06-15 = %q, want finished", resp.Days["2024-06-15"])
	}
	if resp.Days["2024-06-01"] != availability.StatusAvailable {
		t.Errorf("2024-06-01 = %q, want available", resp.Days["2024-06-01"])
	}
}

func TestGetMonthAvailabilityMissingParams(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	for _, target := range []string{
		"/api/availability",
		"/api/availability?year=2024",
		"/api/availability?month=6",
		"/api/availability?year=abc&month=6",
		"/api/availability?year=2024&month=xyz",
	} {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()
		h.GetMonthAvailability(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestGetMonthAvailabilityStoreFailure(t *testing.T) {
	h := newTestHandler(&fakeStore{findErr: errors.New("connection refused")})

	req := httptest.NewRequest("GET", "/api/availability?year=2024&month=6", nil)
	rec := httptest.NewRecorder()
	h.GetMonthAvailability(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error detail leaked to the client")
	}
}

func putDay(h *AvailabilityHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("PUT", "/api/availability", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.UpdateDayStatus(rec, req)
	return rec
}

func TestUpdateDayStatus(t *testing.T) {
	fs := &fakeStore{}
	h := newTestHandler(fs)

	rec := putDay(h, `{"date":"2024-06-15","status":"limited","password":"hunter2"}`)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
	if len(fs.upserts) != 1 || fs.upserts[0].Status != availability.StatusLimited {
		t.Errorf("upserts = %+v", fs.upserts)
	}
}

func TestUpdateDayStatusBadBody(t *testing.T) {
	fs := &fakeStore{}
	h := newTestHandler(fs)

	for _, body := range []string{
		`not json`,
		`{"date":"2024/06/15","status":"limited","password":"hunter2"}`,
		`{"date":"2024-06-15","status":"busy","password":"hunter2"}`,
		`{}`,
	} {
		rec := putDay(h, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}

	if len(fs.upserts) != 0 {
		t.Error("store was written despite invalid input")
	}
}

func TestUpdateDayStatusWrongPassword(t *testing.T) {
	fs := &fakeStore{}
	h := newTestHandler(fs)

	rec := putDay(h, `{"date":"2024-06-15","status":"limited","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if len(fs.upserts) != 0 {
		t.Error("store was written despite failed auth")
	}
}

func TestUpdateDayStatusStoreFailure(t *testing.T) {
	h := newTestHandler(&fakeStore{upsertErr: errors.New("connection refused")})

	rec := putDay(h, `{"date":"2024-06-15","status":"limited","password":"hunter2"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error detail leaked to the client")
	}
}
