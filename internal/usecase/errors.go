package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDeleteFailed is returned when a delete affects zero records even
	// though the existence check passed. Distinct from NotFound by contract.
	ErrDeleteFailed = errors.New("delete affected no records")

	// ErrInvalidStatus is returned for a status value outside the enumeration
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidCredentials is returned when a credential check fails
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// NotFoundError reports a missing User or Appointment by reference token.
type NotFoundError struct {
	Resource string
	UUID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s uuid=%s not found.", e.Resource, e.UUID)
}

func notFoundUser(id uuid.UUID) error {
	return &NotFoundError{Resource: "User", UUID: id}
}

func notFoundAppointment(id uuid.UUID) error {
	return &NotFoundError{Resource: "Appointment", UUID: id}
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
