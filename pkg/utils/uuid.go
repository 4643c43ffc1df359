// pkg/utils/uuid.go
package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUID parses a UUID string and rejects the nil UUID.
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, errors.New("uuid must not be nil")
	}
	return id, nil
}

// ParseUUIDParam parses a UUID from a route parameter.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return ParseUUID(c.Params(name))
}
