package sqldb

import (
	"fmt"

	"github.com/contactform/contactapi/db"
)

const submissionsTable = "contact_submissions"

const postgresSubmissionsSchema = `CREATE TABLE IF NOT EXISTS contact_submissions (
	id VARCHAR(36) PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(254) NOT NULL,
	subject VARCHAR(200) NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	CONSTRAINT contact_submissions_name_length CHECK (char_length(name) >= 2),
	CONSTRAINT contact_submissions_message_length CHECK (char_length(message) >= 10)
)`

const mysqlSubmissionsSchema = `CREATE TABLE IF NOT EXISTS contact_submissions (
	id VARCHAR(36) PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(254) NOT NULL,
	subject VARCHAR(200) NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	created_at DATETIME(6) NOT NULL,
	CONSTRAINT contact_submissions_name_length CHECK (char_length(name) >= 2),
	CONSTRAINT contact_submissions_message_length CHECK (char_length(message) >= 10)
) CHARACTER SET utf8mb4`

func schemaFor(driverName string) (string, error) {
	switch driverName {
	case db.PostgresDriverName, db.LibPQDriverName:
		return postgresSubmissionsSchema, nil
	case db.MysqlDriverName:
		return mysqlSubmissionsSchema, nil
	default:
		return "", fmt.Errorf("no %s schema for driver %q", submissionsTable, driverName)
	}
}
