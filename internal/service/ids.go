package service

import "github.com/google/uuid"

// IDGenerator produces identifiers for new entities
type IDGenerator func() string

// NewID returns a time-ordered UUID v7 string
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
