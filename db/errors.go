package db

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation   = "23505"
	pgCheckViolation    = "23514"
	pgNotNullViolation  = "23502"
	pgStringDataTooLong = "22001"

	mysqlDuplicateEntry          = 1062
	mysqlColumnNotNull           = 1048
	mysqlDataTooLong             = 1406
	mysqlCheckConstraintViolated = 3819
	mariadbConstraintFailed      = 4025
)

var quotedName = regexp.MustCompile(`'([^']+)'`)

type driverError struct {
	code       string
	number     uint16
	constraint string
	column     string
	message    string
}

// ClassifyError maps driver specific failures onto ErrAlreadyExists and
// ConstraintViolationError. Anything else is returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	de, ok := asDriverError(err)
	if !ok {
		return err
	}

	switch {
	case de.code == pgUniqueViolation || de.number == mysqlDuplicateEntry:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, de.message)
	case de.code == pgCheckViolation, de.code == pgNotNullViolation, de.code == pgStringDataTooLong,
		de.number == mysqlColumnNotNull, de.number == mysqlDataTooLong,
		de.number == mysqlCheckConstraintViolated, de.number == mariadbConstraintFailed:
		return &ConstraintViolationError{Constraint: de.constraint, Column: de.column, Message: de.message}
	default:
		return err
	}
}

func asDriverError(err error) (driverError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return driverError{code: pgErr.Code, constraint: pgErr.ConstraintName, column: pgErr.ColumnName, message: pgErr.Message}, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return driverError{code: string(pqErr.Code), constraint: pqErr.Constraint, column: pqErr.Column, message: pqErr.Message}, true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		de := driverError{number: myErr.Number, message: myErr.Message}
		if m := quotedName.FindStringSubmatch(myErr.Message); m != nil {
			switch myErr.Number {
			case mysqlColumnNotNull, mysqlDataTooLong:
				de.column = m[1]
			case mysqlCheckConstraintViolated, mariadbConstraintFailed:
				de.constraint = m[1]
			}
		}
		return de, true
	}

	return driverError{}, false
}

// constraintMessages translates the submission table's named constraints and
// columns into messages a caller can act on.
var constraintMessages = map[string]string{
	"contact_submissions_name_length":    "name must be at least 2 characters",
	"contact_submissions_message_length": "message must be at least 10 characters",
	"name":                               "name is required and may not exceed 100 characters",
	"email":                              "email is required and may not exceed 254 characters",
	"subject":                            "subject may not exceed 200 characters",
	"message":                            "message is required",
}

// Details describes the violation in caller facing terms.
func (e *ConstraintViolationError) Details() []string {
	if msg, ok := constraintMessages[e.Constraint]; ok {
		return []string{msg}
	}
	if msg, ok := constraintMessages[e.Column]; ok {
		return []string{msg}
	}
	if e.Column != "" {
		return []string{fmt.Sprintf("%s is invalid", e.Column)}
	}
	return []string{"submission violates a storage constraint"}
}
