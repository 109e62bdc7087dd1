package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGorm opens gorm over a sqlmock connection speaking the postgres dialect
func newMockGorm(t *testing.T, monitorPings bool) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(monitorPings))
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestDatabase_Ping(t *testing.T) {
	t.Run("successful ping", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t, true)
		defer mockDB.Close()

		mock.ExpectPing()

		db := &Database{DB: gormDB}
		assert.NoError(t, db.Ping(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed ping", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t, true)
		defer mockDB.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		db := &Database{DB: gormDB}
		err := db.Ping(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ping database")
	})
}

func TestDatabase_Close(t *testing.T) {
	gormDB, mock, _ := newMockGorm(t, false)
	mock.ExpectClose()

	db := &Database{DB: gormDB}
	assert.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
