package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDv7 identifiers.
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

// canonicalIDLength is the length of the hyphenated xxxxxxxx-xxxx-... form.
const canonicalIDLength = 36

// IsValidID reports whether id is a UUID in canonical hyphenated form.
// The urn:uuid:, braced and undashed spellings are rejected.
func IsValidID(id string) bool {
	return len(id) == canonicalIDLength && uuid.Validate(id) == nil
}
