package util

import (
	"github.com/google/uuid"
)

// NewRunID identifies one process run in the logs.
func NewRunID() string {
	return uuid.New().String()
}
