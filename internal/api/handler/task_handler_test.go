package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
)

type stubTaskService struct {
	createInput   *ports.CreateTaskInput
	eligibleInput *ports.EligibleTasksInput
	tasks         []*domain.Task
}

func (s *stubTaskService) CreateTask(_ context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	s.createInput = &input
	return &domain.Task{ID: "task-1", Domain: input.Domain, Description: input.Description, Deadline: input.Deadline}, nil
}

func (s *stubTaskService) ListEligible(_ context.Context, input ports.EligibleTasksInput) ([]*domain.Task, error) {
	s.eligibleInput = &input
	return s.tasks, nil
}

func TestTaskHandler_Create(t *testing.T) {
	svc := &stubTaskService{}
	h := NewTaskHandler(svc)

	body := `{"domain":"design","description":"banner","deadline":"2026-09-15"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/admin/createTask", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.createInput == nil || svc.createInput.Domain != "design" || svc.createInput.Deadline != "2026-09-15" {
		t.Fatalf("input not forwarded: %+v", svc.createInput)
	}

	var resp createTaskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "task-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTaskHandler_Create_MissingFields(t *testing.T) {
	svc := &stubTaskService{}
	h := NewTaskHandler(svc)

	c, _ := newJSONContext(t, http.MethodPost, "/api/admin/createTask", `{"domain":"design"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.createInput != nil {
		t.Fatalf("service must not be called for an invalid request")
	}
}

func TestTaskHandler_ListEligible_UsesTokenClaims(t *testing.T) {
	svc := &stubTaskService{tasks: []*domain.Task{{
		ID: "task-1", Domain: "design", Description: "banner", Deadline: "2026-09-15", CreatedAt: time.Now().UTC(),
	}}}
	h := NewTaskHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/user/tasks", "")
	setUserClaims(c)
	if err := h.ListEligible(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if svc.eligibleInput == nil || svc.eligibleInput.AccountID != "acc-1" || svc.eligibleInput.Domain != "design" {
		t.Fatalf("claims not forwarded: %+v", svc.eligibleInput)
	}

	var resp []taskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "task-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTaskHandler_ListEligible_NoClaims(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{})

	c, _ := newJSONContext(t, http.MethodGet, "/api/user/tasks", "")
	err := h.ListEligible(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}
