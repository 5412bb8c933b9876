package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// transferRepo implements TransferRepository
type transferRepo struct {
	db *sqlx.DB
}

// NewTransferRepository creates a new TransferRepository
func NewTransferRepository(db *sqlx.DB) TransferRepository {
	return &transferRepo{
		db: db,
	}
}

// ListTransfers retrieves transfer history, newest first
func (r *transferRepo) ListTransfers(ctx context.Context, limit int) ([]models.Transfer, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, item_id, from_holder, to_holder, to_ship, quantity, reason, created_at
		FROM transfers
		ORDER BY created_at DESC
		LIMIT $1
	`

	transfers := []models.Transfer{}
	err := r.db.SelectContext(ctx, &transfers, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfers")
	}

	return transfers, nil
}

// CreateTransferInTransaction records a transfer within a transaction
func (r *transferRepo) CreateTransferInTransaction(ctx context.Context, tx *sqlx.Tx, transfer *models.Transfer) error {
	query := `
		INSERT INTO transfers (id, item_id, from_holder, to_holder, to_ship, quantity, reason, created_at)
		VALUES (:id, :item_id, :from_holder, :to_holder, :to_ship, :quantity, :reason, :created_at)
	`

	_, err := tx.NamedExecContext(ctx, query, transfer)
	if err != nil {
		return errors.Wrap(err, "failed to create transfer")
	}
	return nil
}
