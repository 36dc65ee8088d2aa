package service

import (
	"errors"

	"github.com/academia/malla-api/internal/apperror"
	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/repository"
	"github.com/academia/malla-api/internal/validator"
	"github.com/rs/zerolog"
)

// action tells translate what the failed statement was trying to do. A
// foreign key violation means a missing parent on writes and a remaining
// child on deletes.
type action int

const (
	actionRead action = iota
	actionWrite
	actionDelete
)

// messages are the client-facing texts of one entity.
type messages struct {
	notFound         string
	conflict         string
	invalidReference string
	dependencyExists string
}

// translate maps a repository failure onto an apperror. Unexpected failures
// are logged here and reach the client only as the generic internal message.
func translate(log zerolog.Logger, op string, act action, err error, msgs messages) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(msgs.notFound)
	}

	switch database.ViolationOf(err) {
	case database.UniqueViolation:
		return apperror.Wrap(apperror.KindConflict, msgs.conflict, err)
	case database.ForeignKeyViolation:
		if act == actionDelete {
			return apperror.Wrap(apperror.KindDependencyExists, msgs.dependencyExists, err)
		}
		return apperror.Wrap(apperror.KindInvalidReference, msgs.invalidReference, err)
	}

	log.Error().Err(err).Str("op", op).Msg("storage failure")
	return apperror.Internal(err)
}

// validate runs the validator and converts a field failure into a
// validation apperror carrying the field's message.
func validate(input map[string]any, fields []validator.Field) (validator.Values, error) {
	values, err := validator.Validate(input, fields)
	if err != nil {
		var fe *validator.FieldError
		if errors.As(err, &fe) {
			return nil, apperror.Validation(fe.Message)
		}
		return nil, apperror.Internal(err)
	}
	return values, nil
}

// Deleted is the body returned by every successful delete.
type Deleted struct {
	Message string `json:"message"`
}

// Field rules shared by every entity.
const (
	codeRules        = "max=20"
	descriptionRules = "max=255"
	typeRules        = "max=50"
)
