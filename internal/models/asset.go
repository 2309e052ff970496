package models

// DefaultAssetClasses are the classes seeded into a fresh database.
var DefaultAssetClasses = []string{
	"Equity",
	"Bond",
	"ETF",
	"Mutual Fund",
	"Cryptocurrency",
	"Commodity",
	"Real Estate",
}

// AssetClass groups assets into a category such as Equity or Bond.
// Rows are seeded by migrations and are read-only for the services.
type AssetClass struct {
	Base
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

// Asset is a tracked instrument identified by its ticker.
type Asset struct {
	Base
	Ticker       string `gorm:"not null;uniqueIndex" json:"ticker"`
	AssetClassID uint   `gorm:"not null;index" json:"asset_class_id"`
	Name         string `gorm:"not null" json:"name"`

	// Relationships
	AssetClass   *AssetClass   `gorm:"foreignKey:AssetClassID" json:"asset_class,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:AssetID" json:"transactions,omitempty"`
}
