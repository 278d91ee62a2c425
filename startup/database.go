package startup

import (
	"context"

	"github.com/contactform/contactapi/db"
	"github.com/contactform/contactapi/db/sqldb"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// DatabaseConnection manages a database connection with cleanup
type DatabaseConnection[T any] struct {
	DB     T
	Closer func() error
}

func (c *DatabaseConnection[T]) Close() error {
	if c == nil || c.Closer == nil {
		return nil
	}
	return c.Closer()
}

type SchemaCreator interface {
	CreateSchema(ctx context.Context) error
}

// PrepareSchema creates the submissions table when the configuration asks for it.
func PrepareSchema(ctx context.Context, dbConfig db.DatabaseConfig, creator SchemaCreator, logger lager.Logger) error {
	if !dbConfig.CreateSchema {
		logger.Info("skip-create-schema")
		return nil
	}
	return creator.CreateSchema(ctx)
}

// CreateSubmissionDB connects to the submission database and prepares its schema.
// A missing or unreachable database is fatal.
func CreateSubmissionDB(ctx context.Context, dbConfig db.DatabaseConfig, clock clock.Clock, logger lager.Logger) *DatabaseConnection[*sqldb.SubmissionSQLDB] {
	submissionDB, err := sqldb.NewSubmissionSQLDB(dbConfig, clock, logger.Session("submission-db"))
	ExitOnError(err, logger, "failed to connect submission db")

	err = PrepareSchema(ctx, dbConfig, submissionDB, logger)
	if err != nil {
		_ = submissionDB.Close()
	}
	ExitOnError(err, logger, "failed to create submission schema")

	return &DatabaseConnection[*sqldb.SubmissionSQLDB]{
		DB:     submissionDB,
		Closer: submissionDB.Close,
	}
}

// CleanupDatabases handles cleanup for multiple database connections
func CleanupDatabases(logger lager.Logger, connections ...interface{ Close() error }) {
	for _, conn := range connections {
		if conn == nil {
			continue
		}
		if err := conn.Close(); err != nil {
			logger.Error("failed-to-close-database", err)
		}
	}
}
