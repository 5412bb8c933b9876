package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is one of the fixed ordnance categories tracked by the service.
type Category string

const (
	CategoryAmmunition  Category = "Ammunition"
	CategoryMissile     Category = "Missile"
	CategoryTorpedo     Category = "Torpedo"
	CategorySeamine     Category = "Seamine"
	CategoryPyrotechnic Category = "Pyrotechnic"
	CategoryDemolition  Category = "Demolition"
	CategoryNavalMines  Category = "Naval Mines"
)

// Categories lists every valid ordnance category in weight order.
var Categories = []Category{
	CategoryMissile,
	CategoryTorpedo,
	CategorySeamine,
	CategoryAmmunition,
	CategoryPyrotechnic,
	CategoryDemolition,
	CategoryNavalMines,
}

// NormalizeCategory resolves a case-insensitive category name to its
// canonical Category. The second return value reports whether the name
// matched a known category.
func NormalizeCategory(name string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if strings.ToLower(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

// Condition describes the serviceability state of an ordnance item.
type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionServiceable Condition = "Serviceable"
	ConditionDamage      Condition = "Damage"
)

// OrdnanceItem is a single inventory record. Exactly one of Depot or Ship
// is populated: items are either held at a shore depot or embarked on a
// ship.
type OrdnanceItem struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Category        Category   `json:"category" db:"category"`
	Name            string     `json:"name" db:"name"`
	Quantity        int64      `json:"quantity" db:"quantity"`
	Condition       Condition  `json:"condition" db:"condition"`
	Depot           *string    `json:"depot,omitempty" db:"depot"`
	Ship            *string    `json:"ship,omitempty" db:"ship"`
	BatchNumber     string     `json:"batch_number" db:"batch_number"`
	ManufactureDate *time.Time `json:"manufacture_date,omitempty" db:"manufacture_date"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty" db:"expiry_date"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// Holder returns the depot or ship holding the item.
func (i *OrdnanceItem) Holder() string {
	if i.Ship != nil {
		return *i.Ship
	}
	if i.Depot != nil {
		return *i.Depot
	}
	return ""
}

// Transfer records the movement of a quantity of one ordnance item between
// holders (depot to ship, ship to depot, or depot to depot).
type Transfer struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ItemID     uuid.UUID `json:"item_id" db:"item_id"`
	FromHolder string    `json:"from_holder" db:"from_holder"`
	ToHolder   string    `json:"to_holder" db:"to_holder"`
	ToShip     bool      `json:"to_ship" db:"to_ship"`
	Quantity   int64     `json:"quantity" db:"quantity"`
	Reason     *string   `json:"reason,omitempty" db:"reason"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ReadinessMetrics holds the per-category readiness percentages and the
// weighted overall percentage derived from the current inventory.
type ReadinessMetrics struct {
	Missile     float64 `json:"missile"`
	Torpedo     float64 `json:"torpedo"`
	Seamine     float64 `json:"seamine"`
	Ammunition  float64 `json:"ammunition"`
	Pyrotechnic float64 `json:"pyrotechnic"`
	Demolition  float64 `json:"demolition"`
	NavalMines  float64 `json:"naval_mines"`
	Overall     float64 `json:"overall"`
}

// ByCategory returns the readiness percentage for a category.
func (m *ReadinessMetrics) ByCategory(c Category) float64 {
	switch c {
	case CategoryMissile:
		return m.Missile
	case CategoryTorpedo:
		return m.Torpedo
	case CategorySeamine:
		return m.Seamine
	case CategoryAmmunition:
		return m.Ammunition
	case CategoryPyrotechnic:
		return m.Pyrotechnic
	case CategoryDemolition:
		return m.Demolition
	case CategoryNavalMines:
		return m.NavalMines
	}
	return 0
}

// SetCategory stores the readiness percentage for a category.
func (m *ReadinessMetrics) SetCategory(c Category, pct float64) {
	switch c {
	case CategoryMissile:
		m.Missile = pct
	case CategoryTorpedo:
		m.Torpedo = pct
	case CategorySeamine:
		m.Seamine = pct
	case CategoryAmmunition:
		m.Ammunition = pct
	case CategoryPyrotechnic:
		m.Pyrotechnic = pct
	case CategoryDemolition:
		m.Demolition = pct
	case CategoryNavalMines:
		m.NavalMines = pct
	}
}
