package fiber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-usage-tracker/internal/goals/core/domain"
	"ai-usage-tracker/internal/goals/core/usecase"
	"ai-usage-tracker/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type fakeEvaluateGoalUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.EvaluateGoalInput) (domain.GoalStatus, error)
	lastInput usecase.EvaluateGoalInput
}

func (f *fakeEvaluateGoalUseCase) Execute(ctx context.Context, in usecase.EvaluateGoalInput) (domain.GoalStatus, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return domain.Evaluate(3, in.TargetPercent), nil
}

func setupApp(uc EvaluateGoalUseCase) *fiber.App {
	app := fiber.New()
	h := NewGoalHandler(uc, logger.NewNop())
	app.Get("/goals", h.GetGoal)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func TestGetGoal_Success(t *testing.T) {
	uc := &fakeEvaluateGoalUseCase{}
	app := setupApp(uc)

	resp, body := get(t, app, "/goals?target=25")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}
	if uc.lastInput.TargetPercent != 25 {
		t.Fatalf("expected target 25, got %d", uc.lastInput.TargetPercent)
	}

	var out GoalResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.CurrentScoreDisplay != "3.00%" || !out.Met || out.TargetPercent != 25 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestGetGoal_DefaultTarget(t *testing.T) {
	uc := &fakeEvaluateGoalUseCase{}
	app := setupApp(uc)

	resp, _ := get(t, app, "/goals")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if uc.lastInput.TargetPercent != 0 {
		t.Fatalf("expected default target 0, got %d", uc.lastInput.TargetPercent)
	}
}

func TestGetGoal_BadTargetParam(t *testing.T) {
	app := setupApp(&fakeEvaluateGoalUseCase{})

	resp, body := get(t, app, "/goals?target=ten")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body: %s)", resp.StatusCode, body)
	}
}

func TestGetGoal_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: target must be between 0 and 100", usecase.ErrInvalidTarget), http.StatusBadRequest, "invalid_target"},
		{usecase.ErrNoData, http.StatusNotFound, "no_data"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tc := range tests {
		app := setupApp(&fakeEvaluateGoalUseCase{
			ExecuteFn: func(ctx context.Context, in usecase.EvaluateGoalInput) (domain.GoalStatus, error) {
				return domain.GoalStatus{}, tc.err
			},
		})

		resp, body := get(t, app, "/goals?target=10")
		if resp.StatusCode != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, resp.StatusCode)
		}
		var out ErrorResponse
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.Error != tc.code {
			t.Fatalf("%v: expected %s, got %s", tc.err, tc.code, out.Error)
		}
	}
}
