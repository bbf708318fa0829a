package domain

import (
	"errors"
	"time"
)

var ErrSubjectNotFound = errors.New("subject not found")

// Subject is a course students can be registered in.
type Subject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
