package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

func newTransferRepo(t *testing.T) (TransferRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewTransferRepository(sqlxDB), mock, func() { db.Close() }
}

func TestTransferRepo_ListTransfers(t *testing.T) {
	repo, mock, cleanup := newTransferRepo(t)
	defer cleanup()

	columns := []string{"id", "item_id", "from_holder", "to_holder", "to_ship", "quantity", "reason", "created_at"}

	t.Run("orders newest first with limit", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(uuid.New(), uuid.New(), "Lumut Armament Depot", "KD Lekiu", true, int64(6), nil, time.Now()).
			AddRow(uuid.New(), uuid.New(), "KD Jebat", "Lumut Armament Depot", false, int64(2), nil, time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM transfers ORDER BY created_at DESC LIMIT \$1`).
			WithArgs(50).
			WillReturnRows(rows)

		result, err := repo.ListTransfers(context.Background(), 50)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "KD Lekiu", result[0].ToHolder)
		assert.True(t, result[0].ToShip)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM transfers ORDER BY created_at DESC LIMIT \$1`).
			WithArgs(100).
			WillReturnRows(sqlmock.NewRows(columns))

		result, err := repo.ListTransfers(context.Background(), 0)
		assert.NoError(t, err)
		assert.Empty(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransferRepo_CreateTransferInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewTransferRepository(sqlxDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO transfers`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := sqlxDB.BeginTxx(ctx, nil)
	require.NoError(t, err)

	reason := "pre-deployment load"
	transfer := &models.Transfer{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		FromHolder: "Lumut Armament Depot",
		ToHolder:   "KD Lekiu",
		ToShip:     true,
		Quantity:   6,
		Reason:     &reason,
		CreatedAt:  time.Now(),
	}

	require.NoError(t, repo.CreateTransferInTransaction(ctx, tx, transfer))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
