package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/backend/internal/core/ports"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Domain      string `json:"domain"      validate:"required"`
	Description string `json:"description" validate:"required"`
	Deadline    string `json:"deadline"    validate:"required"`
}

type createTaskResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Domain      string    `json:"domain"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}

// Create publishes a new task for a domain. Admin only.
//
// @Summary      Create a task
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  createTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/createTask [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		Domain:      req.Domain,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createTaskResponse{Message: "task created", ID: task.ID})
}

// ListEligible returns the tasks the caller can still submit against.
//
// @Summary      List eligible tasks for the caller
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   taskResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/tasks [get]
func (h *TaskHandler) ListEligible(c echo.Context) error {
	caller, err := ctxClaims(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListEligible(c.Request().Context(), ports.EligibleTasksInput{
		AccountID: caller.AccountID,
		Domain:    caller.Domain,
	})
	if err != nil {
		return err
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskResponse{
			ID:          t.ID,
			Domain:      t.Domain,
			Description: t.Description,
			Deadline:    t.Deadline,
			CreatedAt:   t.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
