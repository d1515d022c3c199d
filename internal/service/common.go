package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/bagdasarian/football-registration/internal/directory"
	"github.com/bagdasarian/football-registration/internal/domain"
)

// Directory - справочник студентов, поиск по логину
type Directory interface {
	Lookup(ctx context.Context, handle string) (directory.Entry, bool)
}

const maxDisplayNameLength = 100

var handlePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,31}$`)

// NormalizeHandle обрезает пробелы и приводит логин к нижнему регистру
func NormalizeHandle(raw string) (string, error) {
	handle := strings.ToLower(strings.TrimSpace(raw))
	if handle == "" {
		return "", domain.NewBadRequestError("login is required")
	}
	if !handlePattern.MatchString(handle) {
		return "", domain.NewBadRequestError("login contains invalid characters")
	}
	return handle, nil
}

func normalizeDisplayName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if len([]rune(name)) > maxDisplayNameLength {
		return "", domain.NewBadRequestError("display name is too long")
	}
	return name, nil
}

func requireAdmin(actor domain.Identity) error {
	if !actor.IsAdmin {
		return domain.ErrUnauthorized
	}
	return nil
}

func actorID(actor domain.Identity) *int64 {
	id := actor.UserID
	return &id
}
