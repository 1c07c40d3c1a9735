package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Rendered by the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// submitTaskRequest is the JSON form of a submission. The multipart form uses
// the same field names (taskId, fileUrl) plus an optional "file" part.
type submitTaskRequest struct {
	TaskID  string `json:"taskId"  validate:"required"`
	FileURL string `json:"fileUrl"`
}

type submitTaskResponse struct {
	Message      string    `json:"message"`
	SubmissionID string    `json:"submissionId"`
	FileURL      string    `json:"fileUrl"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// submissionResponse is a submission joined with display fields. Username is
// only populated on admin listings.
type submissionResponse struct {
	ID              string    `json:"id"`
	TaskID          string    `json:"task_id"`
	AccountID       string    `json:"account_id"`
	FileURL         string    `json:"file_url"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
	TaskDescription string    `json:"task_description,omitempty"`
	TaskDeadline    string    `json:"task_deadline,omitempty"`
	Username        string    `json:"username,omitempty"`
}

type reviewRequest struct {
	SubmissionID string `json:"submissionId" validate:"required"`
	Status       string `json:"status"       validate:"required,oneof=Approved Rejected"`
}

type reviewResponse struct {
	Message string `json:"message"`
}
