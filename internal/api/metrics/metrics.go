// Package metrics defines and registers all custom Prometheus metrics for the
// task portal. It is the single source of truth for metric names, labels, and
// help strings; registration happens implicitly through promauto at import
// time, HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskvault"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountsCreatedTotal counts accounts created through the admin addUser
// operation.
// Label:
//   - role: "admin" or "user"
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts tasks published by admins.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// ── Submission metrics ────────────────────────────────────────────────────────

// SubmissionsCreatedTotal counts successfully created submissions.
// Label:
//   - kind: "file" (uploaded through us) or "link" (user-supplied URL)
var SubmissionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_created_total",
		Help:      "Total number of submissions created, by kind.",
	},
	[]string{"kind"},
)

// SubmissionConflictsTotal counts submissions rejected by the
// one-active-submission eligibility rule.
var SubmissionConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_conflicts_total",
		Help:      "Total number of submissions rejected because an active submission already existed.",
	},
)

// SubmissionsReviewedTotal counts admin review verdicts.
// Label:
//   - status: "Approved" or "Rejected"
var SubmissionsReviewedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_reviewed_total",
		Help:      "Total number of review verdicts applied, by resulting status.",
	},
	[]string{"status"},
)

// CompensatingDeletesTotal counts uploaded files deleted from the file store
// because the submission insert failed after the upload.
// Label:
//   - result: "ok" or "error" (a failed compensation orphans the object)
var CompensatingDeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "compensating_deletes_total",
		Help:      "Total number of compensating file deletions, by result.",
	},
	[]string{"result"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactMessagesTotal counts messages received through the public contact
// form.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages stored.",
	},
)
