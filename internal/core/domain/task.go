package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is an assignment published by an admin for a single domain. Tasks are
// immutable after creation and visible only to accounts in the same domain.
// Deadline is a free-form date string supplied by the admin.
type Task struct {
	ID          string    `json:"id"`
	Domain      string    `json:"domain"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}
