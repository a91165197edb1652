package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/events/core/usecase"
	"ai-usage-tracker/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreEventUseCase struct {
	ExecuteFunc         func(ctx context.Context, in usecase.StoreEventInput) (domain.UsageEvent, error)
	BulkCreateFunc      func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
	ListFunc            func(ctx context.Context) (domain.EventTable, error)
	LastExecuteInput    usecase.StoreEventInput
	LastBulkCreateInput usecase.BulkCreateEventsInput
}

func (f *fakeStoreEventUseCase) Execute(ctx context.Context, in usecase.StoreEventInput) (domain.UsageEvent, error) {
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return domain.UsageEvent{}, nil
}

func (f *fakeStoreEventUseCase) BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
	f.LastBulkCreateInput = in
	if f.BulkCreateFunc != nil {
		return f.BulkCreateFunc(ctx, in)
	}
	return usecase.BulkCreateEventsResult{}, nil
}

func (f *fakeStoreEventUseCase) ListEvents(ctx context.Context) (domain.EventTable, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return domain.EventTable{}, nil
}

func intPtr(v int) *int { return &v }

// helper: create fiber app and routes
func setupTestApp(uc StoreEventUseCase) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(uc, logger.NewNop())

	app.Post("/events", h.CreateEvent)
	app.Post("/events/bulk", h.BulkCreateEvents)
	app.Get("/events", h.ListEvents)

	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	return respJSON
}

func TestCreateEvent_Success_Created(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (domain.UsageEvent, error) {
			return domain.UsageEvent{
				TaskDescription:  in.TaskDescription,
				AiTool:           in.AiTool,
				TimeSpentOnAi:    in.TimeSpentOnAi,
				CreativityImpact: *in.CreativityImpact,
				TaskCompletion:   domain.TaskCompleted,
			}, nil
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := CreateEventRequest{
		TaskDescription:  "Developed a marketing report",
		AiTool:           "GPT-3",
		TimeSpentOnAi:    1.5,
		CreativityImpact: intPtr(4),
		TaskCompletion:   "Completed",
	}

	resp, body := doRequest(t, app, http.MethodPost, "/events", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	respJSON := decode(t, body)
	if respJSON["status"] != "created" {
		t.Errorf("expected status=created, got %v", respJSON["status"])
	}
	event, ok := respJSON["event"].(map[string]any)
	if !ok || event["ai_tool"] != "GPT-3" {
		t.Errorf("unexpected event echo: %v", respJSON["event"])
	}
	if fakeUC.LastExecuteInput.TimeSpentOnAi != 1.5 {
		t.Errorf("expected time_spent_on_ai=1.5, got %v", fakeUC.LastExecuteInput.TimeSpentOnAi)
	}
}

func TestCreateEvent_RatingPresenceReachesUsecase(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	body := `{"task_description":"report","creativity_impact":0}`
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	if _, err := app.Test(req, -1); err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	in := fakeUC.LastExecuteInput
	if in.CreativityImpact == nil || *in.CreativityImpact != 0 {
		t.Fatalf("expected explicit creativity_impact=0 to be passed through, got %v", in.CreativityImpact)
	}
	if in.SkillDevelopmentImpact != nil {
		t.Fatalf("expected omitted skill_development_impact to stay nil, got %v", *in.SkillDevelopmentImpact)
	}
}

func TestCreateEvent_InvalidJSON(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"task_description":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

func TestCreateEvent_ValidationError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (domain.UsageEvent, error) {
			return domain.UsageEvent{}, fmt.Errorf("%w: creativity_impact must be between 1 and 5", usecase.ErrInvalidEvent)
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", CreateEventRequest{CreativityImpact: intPtr(7)})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}

	respJSON := decode(t, body)
	if respJSON["error"] != "invalid_event" {
		t.Errorf("expected error=%q, got %v", "invalid_event", respJSON["error"])
	}
}

func TestCreateEvent_CorruptTable(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (domain.UsageEvent, error) {
			return domain.UsageEvent{}, &domain.ParseError{Line: 4, Column: "Time Saved", Err: errors.New("invalid syntax")}
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", CreateEventRequest{})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}
	if decode(t, body)["error"] != "corrupt_event_table" {
		t.Errorf("expected corrupt_event_table, got %s", body)
	}
}

func TestCreateEvent_InternalError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (domain.UsageEvent, error) {
			return domain.UsageEvent{}, errors.New("disk full")
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", CreateEventRequest{})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}
	if decode(t, body)["error"] != "internal_server_error" {
		t.Errorf("expected internal_server_error, got %s", body)
	}
}

// ------------------------------------------------------------
// BULK
// ------------------------------------------------------------

func TestBulkCreateEvents_Success(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{Created: len(in.Events)}, nil
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := BulkCreateEventsRequest{
		Events: []CreateEventRequest{
			{TaskDescription: "report", AiTool: "GPT-3"},
			{TaskDescription: "email", AiTool: "Claude"},
		},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	if decode(t, body)["created"] != float64(2) {
		t.Errorf("expected created=2, got %s", body)
	}
	if fakeUC.LastBulkCreateInput.Events[1].AiTool != "Claude" {
		t.Errorf("unexpected bulk input: %+v", fakeUC.LastBulkCreateInput)
	}
}

func TestBulkCreateEvents_EmptyList(t *testing.T) {
	app := setupTestApp(&fakeStoreEventUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", BulkCreateEventsRequest{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
	if decode(t, body)["error"] != "events_list_required" {
		t.Errorf("expected events_list_required, got %s", body)
	}
}

// ------------------------------------------------------------
// LIST
// ------------------------------------------------------------

func TestListEvents(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ListFunc: func(ctx context.Context) (domain.EventTable, error) {
			return domain.EventTable{
				{TaskDescription: "report", TaskCompletion: domain.TaskCompleted},
				{TaskDescription: "email", TaskCompletion: domain.TaskIncomplete},
			}, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodGet, "/events", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	var out ListEventsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Count != 2 || out.Events[1].TaskCompletion != "Incomplete" {
		t.Fatalf("unexpected response: %+v", out)
	}
}
