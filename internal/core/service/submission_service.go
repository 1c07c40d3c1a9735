package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskvault/backend/internal/api/metrics"
	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
)

// SubmissionService implements submission creation, listing and review.
type SubmissionService struct {
	submissions ports.SubmissionRepository
	tasks       ports.TaskRepository
	accounts    ports.AccountRepository
	files       ports.FileStore
	log         zerolog.Logger
}

func NewSubmissionService(
	submissions ports.SubmissionRepository,
	tasks ports.TaskRepository,
	accounts ports.AccountRepository,
	files ports.FileStore,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		submissions: submissions,
		tasks:       tasks,
		accounts:    accounts,
		files:       files,
		log:         log,
	}
}

// Submit creates a Pending submission for the caller. When a file was
// uploaded it is transferred to the file store first; the subsequent insert is
// the atomic eligibility check (partial unique index on active submissions),
// so every post-upload failure path runs a compensating delete to avoid
// orphaning the stored object.
func (s *SubmissionService) Submit(ctx context.Context, input ports.SubmitInput) (*ports.SubmitResult, error) {
	if _, err := s.tasks.FindByID(ctx, input.TaskID); err != nil {
		return nil, err
	}

	fileURL := input.LinkURL
	fileKey := ""
	kind := "link"

	if input.Upload != nil {
		key := objectKey(input.TaskID, input.Upload.Filename)
		url, err := s.files.Store(ctx, input.Upload.Content, key, uploadContentType(input.Upload))
		if err != nil {
			return nil, fmt.Errorf("store submission file: %w", err)
		}
		fileURL = url
		fileKey = key
		kind = "file"
	}

	sub := &domain.Submission{
		TaskID:      input.TaskID,
		AccountID:   input.AccountID,
		FileURL:     fileURL,
		FileKey:     fileKey,
		Status:      domain.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.submissions.Create(ctx, sub); err != nil {
		s.compensate(ctx, fileKey)
		if errors.Is(err, domain.ErrAlreadySubmitted) {
			metrics.SubmissionConflictsTotal.Inc()
			s.log.Info().
				Str("task_id", input.TaskID).
				Str("account_id", input.AccountID).
				Msg("submission rejected, active submission exists")
			return nil, err
		}
		s.log.Error().Err(err).Str("task_id", input.TaskID).Msg("failed to create submission")
		return nil, err
	}

	metrics.SubmissionsCreatedTotal.WithLabelValues(kind).Inc()
	s.log.Info().
		Str("submission_id", sub.ID).
		Str("task_id", sub.TaskID).
		Str("account_id", sub.AccountID).
		Str("kind", kind).
		Msg("submission created")

	return &ports.SubmitResult{ID: sub.ID, FileURL: sub.FileURL, SubmittedAt: sub.SubmittedAt}, nil
}

// ListForAccount returns the caller's submissions, newest first, with task
// descriptions joined in.
func (s *SubmissionService) ListForAccount(ctx context.Context, accountID string) ([]ports.SubmissionView, error) {
	subs, err := s.submissions.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, subs, false)
}

// ListAll returns every submission, newest first, with task and submitter
// display fields joined in.
func (s *SubmissionService) ListAll(ctx context.Context) ([]ports.SubmissionView, error) {
	subs, err := s.submissions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, subs, true)
}

// Get returns a single submission by ID.
func (s *SubmissionService) Get(ctx context.Context, id string) (*ports.SubmissionView, error) {
	sub, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.buildViews(ctx, []*domain.Submission{sub}, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Review overwrites the submission's status. The overwrite is unconditional
// when the submission exists, so an already decided submission can be
// re-reviewed.
func (s *SubmissionService) Review(ctx context.Context, input ports.ReviewInput) error {
	if !domain.ValidReviewStatus(input.Status) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidReviewStatus, input.Status)
	}

	if err := s.submissions.UpdateStatus(ctx, input.SubmissionID, input.Status); err != nil {
		return err
	}

	metrics.SubmissionsReviewedTotal.WithLabelValues(string(input.Status)).Inc()
	s.log.Info().Str("submission_id", input.SubmissionID).Str("status", string(input.Status)).Msg("submission reviewed")

	return nil
}

// compensate deletes an already uploaded object after a failed insert. A
// failure here only orphans a stored file; it never masks the insert error.
func (s *SubmissionService) compensate(ctx context.Context, fileKey string) {
	if fileKey == "" {
		return
	}
	if err := s.files.Delete(ctx, fileKey); err != nil {
		metrics.CompensatingDeletesTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("file_key", fileKey).Msg("compensating delete failed, object orphaned")
		return
	}
	metrics.CompensatingDeletesTotal.WithLabelValues("ok").Inc()
}

// buildViews joins submissions with the display fields of their tasks and,
// when withUser is set, their submitters. Missing references degrade to empty
// fields rather than failing the listing.
func (s *SubmissionService) buildViews(ctx context.Context, subs []*domain.Submission, withUser bool) ([]ports.SubmissionView, error) {
	taskIDs := uniqueIDs(subs, func(sub *domain.Submission) string { return sub.TaskID })
	tasks, err := s.tasks.FindByIDs(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	taskByID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		taskByID[t.ID] = t
	}

	accountByID := map[string]*domain.Account{}
	if withUser {
		accountIDs := uniqueIDs(subs, func(sub *domain.Submission) string { return sub.AccountID })
		accounts, err := s.accounts.FindByIDs(ctx, accountIDs)
		if err != nil {
			return nil, err
		}
		for _, a := range accounts {
			accountByID[a.ID] = a
		}
	}

	views := make([]ports.SubmissionView, 0, len(subs))
	for _, sub := range subs {
		view := ports.SubmissionView{
			ID:          sub.ID,
			TaskID:      sub.TaskID,
			AccountID:   sub.AccountID,
			FileURL:     sub.FileURL,
			Status:      sub.Status,
			SubmittedAt: sub.SubmittedAt,
		}
		if t, ok := taskByID[sub.TaskID]; ok {
			view.TaskDescription = t.Description
			view.TaskDeadline = t.Deadline
		}
		if a, ok := accountByID[sub.AccountID]; ok {
			view.Username = a.Username
		}
		views = append(views, view)
	}
	return views, nil
}

func uniqueIDs(subs []*domain.Submission, pick func(*domain.Submission) string) []string {
	seen := make(map[string]struct{}, len(subs))
	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		id := pick(sub)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// objectKey builds a collision-free object-store key for an uploaded file,
// keeping the original extension so the stored URL stays recognisable.
func objectKey(taskID, filename string) string {
	return fmt.Sprintf("submissions/%s/%s%s", taskID, uuid.NewString(), path.Ext(filename))
}

func uploadContentType(u *ports.UploadInput) string {
	if u.ContentType != "" {
		return u.ContentType
	}
	if ct := mime.TypeByExtension(path.Ext(u.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
