package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered identifiers (UUIDv7) for trace ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateToken returns an opaque 64-character hex credential.
func (g *UUIDGenerator) GenerateToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
