package api

import (
	"encoding/json"
	"github.com/gofiber/fiber/v2"
	"io"
	"net/http"
	"net/http/httptest"
	"scheduling-simulator/config"
	"scheduling-simulator/internal/responses"
	"strings"
	"testing"
)

func newApp() *fiber.App {
	app := fiber.New()
	Register(app, NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:         9095,
		Algorithms:   []string{"fcfs", "sjf"},
		OutputFormat: "text",
	}))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, data
}

const classic = `{"jobs":[{"arrival_time":0,"burst_time":8},{"arrival_time":1,"burst_time":4},{"arrival_time":2,"burst_time":9},{"arrival_time":3,"burst_time":5}]}`

func TestShortestJobFirst(t *testing.T) {
	status, body := post(t, newApp(), "/api/v1/sjf", classic)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var response responses.ScheduleResponse
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatal(err)
	}
	if response.Algorithm != "sjf" || response.AverageWaitingTime != 7.75 {
		t.Errorf("unexpected response %+v", response)
	}
	got := []int{}
	for _, s := range response.Timeline {
		got = append(got, s.ProcessId)
	}
	if len(got) != 4 || got[2] != 4 || got[3] != 3 {
		t.Errorf("unexpected execution order %v", got)
	}
}

func TestFirstComeFirstServe(t *testing.T) {
	status, body := post(t, newApp(), "/api/v1/fcfs", `{"jobs":[{"arrival_time":0,"burst_time":2},{"arrival_time":5,"burst_time":1}]}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var response responses.ScheduleResponse
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatal(err)
	}
	if response.IdleTime != 3 || response.TotalTime != 6 || response.Details[1].WaitingTime != 0 {
		t.Errorf("unexpected response %+v", response)
	}
}

func TestAllAlgorithms(t *testing.T) {
	status, body := post(t, newApp(), "/api/v1/all", classic)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var reports []responses.ScheduleResponse
	if err := json.Unmarshal(body, &reports); err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 || reports[0].Algorithm != "fcfs" || reports[1].Algorithm != "sjf" {
		t.Errorf("unexpected reports %+v", reports)
	}
}

func TestBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/api/v1/fcfs", `{"jobs":`},
		{"empty batch", "/api/v1/sjf", `{"jobs":[]}`},
		{"negative burst", "/api/v1/all", `{"jobs":[{"arrival_time":0,"burst_time":-1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, newApp(), tt.path, tt.body)
			if status != fiber.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", status, body)
			}
			if !strings.Contains(string(body), `"error"`) {
				t.Errorf("expected an error body, got %s", body)
			}
		})
	}
}

func TestAlgorithms(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
