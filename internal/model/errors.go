package model

import (
	"fmt"
	"time"
)

// NotFoundError is returned when a remote identity resolves to no data.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// QuotaExceededError is returned when a reservation would exceed the daily
// API quota budget.
type QuotaExceededError struct {
	Used  int
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("YouTube API quota exceeded: %d/%d used, resets at Pacific midnight", e.Used, e.Limit)
}

// ValidationError is returned when an entity is constructed from malformed
// data. Field names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ErrorResponse is the JSON error envelope returned by the HTTP layer.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}
