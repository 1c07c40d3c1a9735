package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/backend/internal/api/metrics"
	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
)

// TaskService implements task publication and the eligibility query.
type TaskService struct {
	tasks       ports.TaskRepository
	submissions ports.SubmissionRepository
	log         zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, submissions ports.SubmissionRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, submissions: submissions, log: log}
}

// CreateTask publishes a new task for a domain.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		Domain:      input.Domain,
		Description: input.Description,
		Deadline:    input.Deadline,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.log.Error().Err(err).Str("domain", input.Domain).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.log.Info().Str("task_id", task.ID).Str("domain", task.Domain).Msg("task created")

	return task, nil
}

// ListEligible returns the caller's domain tasks excluding every task the
// caller already holds an active (Pending or Approved) submission for. A task
// whose only submission by the caller was Rejected shows up again.
func (s *TaskService) ListEligible(ctx context.Context, input ports.EligibleTasksInput) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindByDomain(ctx, input.Domain)
	if err != nil {
		return nil, err
	}

	activeTaskIDs, err := s.submissions.FindActiveTaskIDs(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(activeTaskIDs))
	for _, id := range activeTaskIDs {
		taken[id] = struct{}{}
	}

	eligible := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := taken[t.ID]; ok {
			continue
		}
		eligible = append(eligible, t)
	}

	return eligible, nil
}
