package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/readiness"
)

const (
	readinessCacheKey = "readiness:snapshot"
	readinessCacheTTL = 5 * time.Minute
)

var (
	// ErrInsufficientQuantity indicates a transfer asks for more than the item holds
	ErrInsufficientQuantity = errors.New("insufficient quantity for transfer")

	// ErrSameHolder indicates a transfer to the holder the item is already at
	ErrSameHolder = errors.New("item is already held by the transfer destination")
)

// inventoryService implements InventoryService
type inventoryService struct {
	deps *ServiceDependencies

	now   func() time.Time
	newID func() uuid.UUID
}

// NewInventoryService creates a new inventory service
func NewInventoryService(deps *ServiceDependencies) InventoryService {
	return &inventoryService{
		deps:  deps,
		now:   time.Now,
		newID: uuid.New,
	}
}

// ListItems returns the inventory, optionally filtered by category
func (is *inventoryService) ListItems(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error) {
	return is.deps.Repositories.Ordnance.ListItems(ctx, category)
}

// CreateItem validates and stores a new ordnance item
func (is *inventoryService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.OrdnanceItem, error) {
	if err := models.ValidateCreateItemRequest(req); err != nil {
		return nil, err
	}

	category, _ := models.NormalizeCategory(req.Category)
	manufactureDate, _ := models.ParseDate(req.ManufactureDate)
	expiryDate, _ := models.ParseDate(req.ExpiryDate)

	now := is.now().UTC()
	item := &models.OrdnanceItem{
		ID:              is.newID(),
		Category:        category,
		Name:            req.Name,
		Quantity:        req.Quantity,
		Condition:       models.Condition(req.Condition),
		Depot:           req.Depot,
		Ship:            req.Ship,
		BatchNumber:     req.BatchNumber,
		ManufactureDate: manufactureDate,
		ExpiryDate:      expiryDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := is.deps.Repositories.Ordnance.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	is.invalidateReadiness(ctx)
	return item, nil
}

// UpdateItem applies an in-place edit to an existing item
func (is *inventoryService) UpdateItem(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.OrdnanceItem, error) {
	if err := models.ValidateUpdateItemRequest(req); err != nil {
		return nil, err
	}

	item, err := is.deps.Repositories.Ordnance.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Condition != nil {
		item.Condition = models.Condition(*req.Condition)
	}
	if req.Depot != nil && *req.Depot != "" {
		item.Depot = req.Depot
		item.Ship = nil
	}
	if req.Ship != nil && *req.Ship != "" {
		item.Ship = req.Ship
		item.Depot = nil
	}
	item.UpdatedAt = is.now().UTC()

	if err := is.deps.Repositories.Ordnance.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	is.invalidateReadiness(ctx)
	return item, nil
}

// DeleteItem removes an item from the inventory
func (is *inventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := is.deps.Repositories.Ordnance.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	is.invalidateReadiness(ctx)
	return nil
}

// TransferItem moves a quantity between holders in a single transaction.
// A full-quantity transfer moves the item; a partial transfer splits it,
// leaving the remainder with the current holder.
func (is *inventoryService) TransferItem(ctx context.Context, req *models.TransferRequest) (*models.Transfer, error) {
	item, err := is.deps.Repositories.Ordnance.GetItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if req.Quantity > item.Quantity {
		return nil, ErrInsufficientQuantity
	}
	if item.Holder() == req.ToHolder {
		return nil, ErrSameHolder
	}

	now := is.now().UTC()
	transfer := &models.Transfer{
		ID:         is.newID(),
		ItemID:     item.ID,
		FromHolder: item.Holder(),
		ToHolder:   req.ToHolder,
		ToShip:     req.ToShip,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		CreatedAt:  now,
	}

	tx, err := is.deps.Repositories.Ordnance.BeginTransaction(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if req.Quantity == item.Quantity {
		// Move the whole item to the new holder.
		setHolder(item, req.ToHolder, req.ToShip)
		item.UpdatedAt = now
		if err := is.deps.Repositories.Ordnance.UpdateItemInTransaction(ctx, tx, item); err != nil {
			return nil, err
		}
	} else {
		// Split: decrement the source, create the moved share at the destination.
		item.Quantity -= req.Quantity
		item.UpdatedAt = now
		if err := is.deps.Repositories.Ordnance.UpdateItemInTransaction(ctx, tx, item); err != nil {
			return nil, err
		}

		moved := *item
		moved.ID = is.newID()
		moved.Quantity = req.Quantity
		setHolder(&moved, req.ToHolder, req.ToShip)
		moved.CreatedAt = now
		moved.UpdatedAt = now
		if err := is.deps.Repositories.Ordnance.CreateItemInTransaction(ctx, tx, &moved); err != nil {
			return nil, err
		}
	}

	if err := is.deps.Repositories.Transfer.CreateTransferInTransaction(ctx, tx, transfer); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit transfer")
	}

	if is.deps.Metrics != nil {
		is.deps.Metrics.TransfersTotal.Inc()
	}

	is.invalidateReadiness(ctx)
	return transfer, nil
}

// ListTransfers returns transfer history, newest first
func (is *inventoryService) ListTransfers(ctx context.Context, limit int) ([]models.Transfer, error) {
	return is.deps.Repositories.Transfer.ListTransfers(ctx, limit)
}

// GetReadiness returns the readiness snapshot, computing and caching it on miss
func (is *inventoryService) GetReadiness(ctx context.Context) (*models.ReadinessMetrics, error) {
	var cached models.ReadinessMetrics
	if err := is.deps.Cache.Get(ctx, readinessCacheKey, &cached); err == nil {
		if is.deps.Metrics != nil {
			is.deps.Metrics.CacheHits.WithLabelValues("readiness").Inc()
		}
		return &cached, nil
	}
	if is.deps.Metrics != nil {
		is.deps.Metrics.CacheMisses.WithLabelValues("readiness").Inc()
	}

	items, err := is.deps.Repositories.Ordnance.ListItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	snapshot := readiness.Compute(items)
	if is.deps.Metrics != nil {
		is.deps.Metrics.ReadinessComputationsTotal.Inc()
		is.deps.Metrics.ReadinessOverall.Set(snapshot.Overall)
	}

	if err := is.deps.Cache.Set(ctx, readinessCacheKey, snapshot, readinessCacheTTL); err != nil {
		is.deps.Logger.Warn("failed to cache readiness snapshot", "error", err)
	}

	return &snapshot, nil
}

// SeedIfEmpty loads the demo dataset when the items table is empty
func (is *inventoryService) SeedIfEmpty(ctx context.Context) error {
	count, err := is.deps.Repositories.Ordnance.CountItems(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := is.now().UTC()
	for _, seed := range seedItems {
		item := seed
		item.ID = is.newID()
		item.CreatedAt = now
		item.UpdatedAt = now
		if err := is.deps.Repositories.Ordnance.CreateItem(ctx, &item); err != nil {
			return errors.Wrapf(err, "failed to seed item %s", item.Name)
		}
	}

	is.deps.Logger.Info("seeded demo inventory", "items", len(seedItems))
	is.invalidateReadiness(ctx)
	return nil
}

func (is *inventoryService) invalidateReadiness(ctx context.Context) {
	if err := is.deps.Cache.Delete(ctx, readinessCacheKey); err != nil {
		is.deps.Logger.Warn("failed to invalidate readiness cache", "error", err)
	}
}

func setHolder(item *models.OrdnanceItem, holder string, toShip bool) {
	if toShip {
		item.Ship = &holder
		item.Depot = nil
	} else {
		item.Depot = &holder
		item.Ship = nil
	}
}

var lumutDepot = "Lumut Armament Depot"
var kkMagazine = "Kota Kinabalu Magazine"
var kdLekiu = "KD Lekiu"

// seedItems is the demo dataset loaded into an empty database.
var seedItems = []models.OrdnanceItem{
	{Category: models.CategoryMissile, Name: "Exocet MM40", Quantity: 45, Condition: models.ConditionServiceable, Depot: &lumutDepot, BatchNumber: "BN-2023-101"},
	{Category: models.CategoryMissile, Name: "Sea Skua", Quantity: 20, Condition: models.ConditionNew, Depot: &kkMagazine, BatchNumber: "BN-2024-032"},
	{Category: models.CategoryTorpedo, Name: "A244/S Torpedo", Quantity: 30, Condition: models.ConditionServiceable, Depot: &lumutDepot, BatchNumber: "BN-2023-118"},
	{Category: models.CategoryTorpedo, Name: "Black Shark", Quantity: 18, Condition: models.ConditionNew, Depot: &lumutDepot, BatchNumber: "BN-2024-007"},
	{Category: models.CategorySeamine, Name: "Influence Mine Mk2", Quantity: 25, Condition: models.ConditionServiceable, Depot: &kkMagazine, BatchNumber: "BN-2022-210"},
	{Category: models.CategoryAmmunition, Name: "76mm Naval Gun Rounds", Quantity: 18000, Condition: models.ConditionServiceable, Depot: &lumutDepot, BatchNumber: "BN-2024-044"},
	{Category: models.CategoryAmmunition, Name: "30mm Cannon Rounds", Quantity: 9500, Condition: models.ConditionNew, Ship: &kdLekiu, BatchNumber: "BN-2024-051"},
	{Category: models.CategoryPyrotechnic, Name: "Signal Flare Red", Quantity: 420, Condition: models.ConditionServiceable, Depot: &kkMagazine, BatchNumber: "BN-2023-302"},
	{Category: models.CategoryDemolition, Name: "Demolition Charge M112", Quantity: 160, Condition: models.ConditionServiceable, Depot: &lumutDepot, BatchNumber: "BN-2023-277"},
	{Category: models.CategoryNavalMines, Name: "Moored Contact Mine", Quantity: 12, Condition: models.ConditionServiceable, Depot: &kkMagazine, BatchNumber: "BN-2021-404"},
}
