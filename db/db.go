package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/contactform/contactapi/healthendpoint"
	"github.com/contactform/contactapi/models"
)

const (
	PostgresDriverName = "pgx"
	LibPQDriverName    = "postgres"
	MysqlDriverName    = "mysql"
	SubmissionDb       = "submission_db"
)

var ErrAlreadyExists = fmt.Errorf("already exists")
var ErrConstraintViolation = fmt.Errorf("constraint violation")
var ErrUnsupportedURL = fmt.Errorf("unsupported database url")

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	PostgresDriver        string        `yaml:"postgres_driver"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
	CreateSchema          bool          `yaml:"create_schema"`
}

type SubmissionDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	SaveSubmission(ctx context.Context, submission models.ContactSubmission) (*models.SubmissionRecord, error)
	io.Closer
}

// ConstraintViolationError is returned when the database refuses a row because
// a column constraint failed. It matches ErrConstraintViolation with errors.Is.
type ConstraintViolationError struct {
	Constraint string
	Column     string
	Message    string
}

func (e *ConstraintViolationError) Error() string {
	var parts []string
	if e.Constraint != "" {
		parts = append(parts, "constraint "+e.Constraint)
	}
	if e.Column != "" {
		parts = append(parts, "column "+e.Column)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", ErrConstraintViolation, strings.Join(parts, ", "), e.Message)
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// AsConstraintViolation finds a ConstraintViolationError in err's chain.
func AsConstraintViolation(err error) (*ConstraintViolationError, bool) {
	var violation *ConstraintViolationError
	if errors.As(err, &violation) {
		return violation, true
	}
	return nil, false
}
