package postgres

import (
	"errors"
	"fmt"
	"strings"

	"plasmodocking/pkg/serrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueMessages maps unique indexes to the message reported to callers.
var uniqueMessages = map[string]string{ //nolint: gochecknoglobals
	"users_username_uniq":           "a user with that username already exists",
	"users_email_lower_uniq":        "a user with that email already exists",
	"macromolecule_types_name_uniq": "a macromolecule type with that name already exists",
}

// mapError translates constraint violations into semantic errors. Other
// errors are wrapped with msg.
func mapError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if m, ok := uniqueMessages[pgErr.ConstraintName]; ok {
			return serrors.Wrap(serrors.ErrConflict, err, "%s", m)
		}

		return serrors.Wrap(serrors.ErrConflict, err, "%s: duplicate value", msg)
	case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
		if strings.Contains(pgErr.Detail, "still referenced") {
			return serrors.Wrap(serrors.ErrConflict, err, "%s: row is still referenced from %s", msg, pgErr.TableName)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "%s: referenced row does not exist", msg)
	case pgerrcode.CheckViolation, pgerrcode.InvalidTextRepresentation, pgerrcode.StringDataRightTruncationDataException:
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s: invalid value", msg)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

// likePattern escapes s for use in an ILIKE contains match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + r.Replace(s) + "%"
}
