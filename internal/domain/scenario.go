package domain

import "time"

// CatalogEntry is one row of the static equipment reference table.
// Entries are loaded once at process start and never mutated.
type CatalogEntry struct {
	Category      string  `json:"category"`
	UnitPrice     float64 `json:"unit_price"`
	EcoScore      float64 `json:"eco_score"`
	LifespanYears int     `json:"lifespan_years"`
}

// LineItem is one priced and scored selection row. Catalog fields are
// denormalized at build time so persisted scenarios round-trip without
// depending on later catalog revisions.
type LineItem struct {
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	EcoScore      float64 `json:"eco_score"`
	LifespanYears int     `json:"lifespan_years"`
}

// Scenario is one saved equipment-purchase evaluation. Scenarios are
// append-only: once persisted they are never updated or deleted.
type Scenario struct {
	ID              int64      `json:"id"`
	OwnerID         int64      `json:"owner_id"`
	Label           string     `json:"label"`
	LineItems       []LineItem `json:"line_items"`
	EcoWeight       float64    `json:"eco_weight"`
	FinancialWeight float64    `json:"financial_weight"`
	FinancialScore  float64    `json:"financial_score"`
	EcologicalScore float64    `json:"ecological_score"`
	GlobalScore     float64    `json:"global_score"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Selection is a raw boundary row as submitted by a client. Quantity stays
// text until the builder parses it, mirroring permissive form input.
type Selection struct {
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

// PurchaseDraft is the server-side intermediate state of a multi-step
// scenario entry flow, addressed by id instead of being round-tripped
// through client storage.
type PurchaseDraft struct {
	ID         string      `json:"id"`
	OwnerID    int64       `json:"owner_id"`
	Label      string      `json:"label"`
	Selections []Selection `json:"selections"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Recommendation is a rule-based tip derived from a scenario's scores.
type Recommendation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
