package repositories

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")

	// ErrInsufficientStock is returned by the conditional stock decrement
	// when the product exists but does not hold the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// SQLExecutor defines an interface that can be satisfied by *sql.DB or *sql.Tx.
// This allows repository methods to be used within transactions or with a
// direct DB connection.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// Tx is the transactional variant of SQLExecutor. *sql.Tx satisfies it.
type Tx interface {
	SQLExecutor
	Commit() error
	Rollback() error
}

// DB is the store handle services receive. It executes statements directly
// and opens transactions; keeping it an interface lets tests substitute an
// in-memory fake.
type DB interface {
	SQLExecutor
	Begin() (Tx, error)
}

type sqlDB struct {
	*sql.DB
}

// NewDB wraps a *sql.DB in the DB interface.
func NewDB(db *sql.DB) DB {
	return sqlDB{DB: db}
}

func (d sqlDB) Begin() (Tx, error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}
