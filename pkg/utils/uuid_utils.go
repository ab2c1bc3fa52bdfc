package utils

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID is returned by ParseID for anything but a canonical, non-nil UUID
var ErrInvalidID = errors.New("invalid id")

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 returns a time ordered id so primary keys sort by creation.
// It falls back to v4 if the v7 generator fails.
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ParseID accepts only the 36 character hyphenated form. uuid.Parse alone
// also takes urn:uuid: prefixes, braces and the 32 digit form.
func ParseID(s string) (uuid.UUID, error) {
	if len(s) != 36 {
		return uuid.Nil, ErrInvalidID
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
