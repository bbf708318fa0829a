// Package metrics defines and registers all custom Prometheus metrics for
// the academic records API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "academic_records"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts created accounts.
// Label:
//   - role: "student" or "admin"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_user" or "bad_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Enrollment metrics ────────────────────────────────────────────────────────

// EnrollmentsTotal counts successful student-subject registrations.
var EnrollmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of students registered in subjects.",
	},
)

// EnrollmentsRejectedTotal counts registrations that failed a business rule.
// Label:
//   - reason: "duplicate", "subject_limit", "not_found"
var EnrollmentsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_rejected_total",
		Help:      "Total number of rejected enrollment attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Evidence metrics ──────────────────────────────────────────────────────────

// EvidenceUploadsTotal counts stored evidences.
// Label:
//   - format: "png", "jpg" or "pdf"
var EvidenceUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evidence_uploads_total",
		Help:      "Total number of evidences stored, by file format.",
	},
	[]string{"format"},
)

// EvidenceRejectedTotal counts uploads that failed a business rule.
// Label:
//   - reason: "not_enrolled", "invalid_format", "evidence_limit"
var EvidenceRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evidence_rejected_total",
		Help:      "Total number of rejected evidence uploads, by reason.",
	},
	[]string{"reason"},
)
