package usecases

import (
	"errors"
	"strings"
	"time"

	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/utils"
)

// nowUTC is the clock used for every audit stamp
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// repoError maps a repository failure to an AppError. Missing rows become
// NotFound with the given message, anything else is internal.
func repoError(err error, notFoundMsg string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(notFoundMsg)
	}
	if errors.Is(err, domainerrors.ErrConflict) {
		return domainerrors.Conflict("resource already exists")
	}
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return domainerrors.InternalError(err)
}

// lifecycleError maps the audit transition sentinels to their AppErrors
func lifecycleError(err error, what string) error {
	switch {
	case errors.Is(err, domainerrors.ErrAlreadyActive):
		return domainerrors.AlreadyActive(what + " is already active")
	case errors.Is(err, domainerrors.ErrAlreadyInactive):
		return domainerrors.AlreadyInactive(what + " is already inactive")
	}
	return domainerrors.InternalError(err)
}

func listFilter(page utils.PageParams, includeInactive bool) repositories.ListFilter {
	page = page.Normalize()
	return repositories.ListFilter{
		Offset:          page.Offset,
		Limit:           page.Limit,
		IncludeInactive: includeInactive,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
