package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// ordnanceRepo implements OrdnanceRepository
type ordnanceRepo struct {
	db *sqlx.DB
}

// NewOrdnanceRepository creates a new OrdnanceRepository
func NewOrdnanceRepository(db *sqlx.DB) OrdnanceRepository {
	return &ordnanceRepo{
		db: db,
	}
}

const ordnanceColumns = `id, category, name, quantity, condition, depot, ship,
	       batch_number, manufacture_date, expiry_date, created_at, updated_at`

// ListItems retrieves all ordnance items, optionally filtered by category
func (r *ordnanceRepo) ListItems(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error) {
	query := `
		SELECT ` + ordnanceColumns + `
		FROM ordnance_items
		ORDER BY created_at
	`
	args := []interface{}{}
	if category != nil {
		query = `
		SELECT ` + ordnanceColumns + `
		FROM ordnance_items
		WHERE category = $1
		ORDER BY created_at
	`
		args = append(args, *category)
	}

	items := []models.OrdnanceItem{}
	err := r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ordnance items")
	}

	return items, nil
}

// GetItemByID retrieves an item by its ID
func (r *ordnanceRepo) GetItemByID(ctx context.Context, itemID uuid.UUID) (*models.OrdnanceItem, error) {
	query := `
		SELECT ` + ordnanceColumns + `
		FROM ordnance_items
		WHERE id = $1
	`

	var item models.OrdnanceItem
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get ordnance item by ID")
	}

	return &item, nil
}

// CreateItem inserts a new ordnance item
func (r *ordnanceRepo) CreateItem(ctx context.Context, item *models.OrdnanceItem) error {
	_, err := r.db.NamedExecContext(ctx, insertItemQuery, item)
	if err != nil {
		return errors.Wrap(err, "failed to create ordnance item")
	}
	return nil
}

// UpdateItem persists quantity, condition and holder changes
func (r *ordnanceRepo) UpdateItem(ctx context.Context, item *models.OrdnanceItem) error {
	result, err := r.db.NamedExecContext(ctx, updateItemQuery, item)
	if err != nil {
		return errors.Wrap(err, "failed to update ordnance item")
	}
	return checkRowsAffected(result)
}

// DeleteItem removes an item
func (r *ordnanceRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ordnance_items WHERE id = $1`, itemID)
	if err != nil {
		return errors.Wrap(err, "failed to delete ordnance item")
	}
	return checkRowsAffected(result)
}

// CountItems returns the number of stored items
func (r *ordnanceRepo) CountItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM ordnance_items`)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count ordnance items")
	}
	return count, nil
}

// BeginTransaction starts a new database transaction
func (r *ordnanceRepo) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	return tx, nil
}

// UpdateItemInTransaction persists item changes within a transaction
func (r *ordnanceRepo) UpdateItemInTransaction(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error {
	result, err := tx.NamedExecContext(ctx, updateItemQuery, item)
	if err != nil {
		return errors.Wrap(err, "failed to update ordnance item in transaction")
	}
	return checkRowsAffected(result)
}

// CreateItemInTransaction inserts an item within a transaction
func (r *ordnanceRepo) CreateItemInTransaction(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error {
	_, err := tx.NamedExecContext(ctx, insertItemQuery, item)
	if err != nil {
		return errors.Wrap(err, "failed to create ordnance item in transaction")
	}
	return nil
}

const insertItemQuery = `
	INSERT INTO ordnance_items (id, category, name, quantity, condition, depot, ship,
	                            batch_number, manufacture_date, expiry_date, created_at, updated_at)
	VALUES (:id, :category, :name, :quantity, :condition, :depot, :ship,
	        :batch_number, :manufacture_date, :expiry_date, :created_at, :updated_at)
`

const updateItemQuery = `
	UPDATE ordnance_items
	SET quantity = :quantity, condition = :condition, depot = :depot, ship = :ship,
	    updated_at = :updated_at
	WHERE id = :id
`

func checkRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
