package domain

import (
	"errors"
	"time"
)

// MaxSubjectsPerStudent caps how many subjects a single student can be
// registered in.
const MaxSubjectsPerStudent = 5

var ErrAlreadyEnrolled = errors.New("student already registered in the subject")
var ErrSubjectLimit = errors.New("student already registered in 5 subjects")
var ErrNotEnrolled = errors.New("student is not registered in the subject")

// Enrollment associates a student with a subject. At most one row exists
// per (student, subject) pair.
type Enrollment struct {
	StudentID string    `json:"studentId"`
	SubjectID string    `json:"subjectId"`
	CreatedAt time.Time `json:"created_at"`
}
