package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for users and posts. Version 7 UUIDs
// are time-ordered, which keeps primary key indexes append-mostly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s parses as a UUID in any canonical form.
// Used by handlers to reject malformed resource identifiers before any
// database round trip.
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
