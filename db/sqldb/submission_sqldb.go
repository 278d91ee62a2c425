package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/contactform/contactapi/db"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type SubmissionSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
	clock    clock.Clock
}

var _ db.SubmissionDB = &SubmissionSQLDB{}

func NewSubmissionSQLDB(dbConfig db.DatabaseConfig, clock clock.Clock, logger lager.Logger) (*SubmissionSQLDB, error) {
	database, err := db.GetConnection(dbConfig)
	if err != nil {
		return nil, err
	}

	sqldb, err := otelsqlx.Open(database.DriverName, database.DataSourceName, otelsql.WithAttributes(database.OTELAttribute))
	if err != nil {
		logger.Error("open-submission-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-submission-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	return NewSubmissionSQLDBFromConn(sqldb, dbConfig, clock, logger), nil
}

// NewSubmissionSQLDBFromConn wraps an already opened connection pool.
func NewSubmissionSQLDBFromConn(sqldb *sqlx.DB, dbConfig db.DatabaseConfig, clock clock.Clock, logger lager.Logger) *SubmissionSQLDB {
	return &SubmissionSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
		clock:    clock,
	}
}

func (sdb *SubmissionSQLDB) CreateSchema(ctx context.Context) error {
	schema, err := schemaFor(sdb.sqldb.DriverName())
	if err != nil {
		return err
	}
	if _, err := sdb.sqldb.ExecContext(ctx, schema); err != nil {
		sdb.logger.Error("create-schema", err, lager.Data{"table": submissionsTable})
		return errors.Wrap(err, "failed to create schema")
	}
	sdb.logger.Info("schema-ready", lager.Data{"table": submissionsTable})
	return nil
}

func (sdb *SubmissionSQLDB) SaveSubmission(ctx context.Context, submission models.ContactSubmission) (*models.SubmissionRecord, error) {
	record := &models.SubmissionRecord{
		ContactSubmission: submission,
		ID:                uuid.NewString(),
		// Both engines store microseconds; keep the returned value equal to the stored one.
		CreatedAt: sdb.clock.Now().UTC().Truncate(time.Microsecond),
	}

	query := sdb.sqldb.Rebind("INSERT INTO contact_submissions (id, name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	_, err := sdb.sqldb.ExecContext(ctx, query, record.ID, record.Name, record.Email, record.Subject, record.Message, record.CreatedAt)
	if err != nil {
		sdb.logger.Error("save-submission", err, lager.Data{"id": record.ID})
		return nil, errors.WithStack(db.ClassifyError(err))
	}

	sdb.logger.Info("saved-submission", lager.Data{"id": record.ID})
	return record, nil
}

func (sdb *SubmissionSQLDB) Ping() error {
	return sdb.sqldb.Ping()
}

func (sdb *SubmissionSQLDB) GetDBStatus() sql.DBStats {
	return sdb.sqldb.Stats()
}

func (sdb *SubmissionSQLDB) Close() error {
	err := sdb.sqldb.Close()
	if err != nil {
		sdb.logger.Error("close-submission-db", err, lager.Data{"dbConfig": sdb.dbConfig})
		return err
	}
	return nil
}
