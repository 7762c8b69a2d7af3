package hub_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sremy91/intuis-schedule-card/internal/hub"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func newGatewayStub(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&rec.body)
		}
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClient_TimetableSendsBearerToken(t *testing.T) {
	srv, rec := newGatewayStub(t, http.StatusOK, `{"monday":[{"time":"00:00","zone":"Comfort"}]}`)
	client := hub.NewClient(srv.URL, "secret-token")

	tt, err := client.Timetable(context.Background())
	if err != nil {
		t.Fatalf("Timetable failed: %v", err)
	}
	if rec.method != http.MethodGet || rec.path != "/api/v1/timetable" {
		t.Errorf("request = %s %s, want GET /api/v1/timetable", rec.method, rec.path)
	}
	if rec.auth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", rec.auth)
	}
	if len(tt["monday"]) != 1 || tt["monday"][0].Zone != "Comfort" {
		t.Errorf("unexpected timetable: %+v", tt)
	}
}

func TestClient_SetScheduleSpanEncodesDaysAsStrings(t *testing.T) {
	srv, rec := newGatewayStub(t, http.StatusOK, "")
	client := hub.NewClient(srv.URL, "")

	if err := client.SetScheduleSpan(context.Background(), 5, 0, "22:00", "07:00", "Night"); err != nil {
		t.Fatalf("SetScheduleSpan failed: %v", err)
	}
	if rec.path != "/api/v1/schedule/span" {
		t.Errorf("path = %q", rec.path)
	}
	if rec.body["start_day"] != "5" || rec.body["end_day"] != "0" {
		t.Errorf("day fields = %v, %v, want string-encoded \"5\" and \"0\"", rec.body["start_day"], rec.body["end_day"])
	}
	if rec.auth != "" {
		t.Errorf("Authorization header set without token: %q", rec.auth)
	}
}

func TestClient_SetScheduleSlotEncodesDayAsInt(t *testing.T) {
	srv, rec := newGatewayStub(t, http.StatusOK, "")
	client := hub.NewClient(srv.URL, "tok")

	if err := client.SetScheduleSlot(context.Background(), 3, "06:30", 2); err != nil {
		t.Fatalf("SetScheduleSlot failed: %v", err)
	}
	// JSON numbers decode to float64 on the stub side.
	if day, ok := rec.body["day"].(float64); !ok || day != 3 {
		t.Errorf("day = %v, want numeric 3", rec.body["day"])
	}
	if rec.body["zone_id"].(float64) != 2 {
		t.Errorf("zone_id = %v, want 2", rec.body["zone_id"])
	}
}

func TestClient_SurfacesGatewayError(t *testing.T) {
	srv, _ := newGatewayStub(t, http.StatusBadGateway, "hub offline")
	client := hub.NewClient(srv.URL, "tok")

	err := client.RefreshSchedules(context.Background())
	if err == nil {
		t.Fatal("expected error on 502 response")
	}
}
