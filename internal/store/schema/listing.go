package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Listing represents the listings table - a marketplace offer for a used car.
// A listing is identified by its source and the source's native item id.
type Listing struct {
	// Source is the marketplace the listing was fetched from (e.g., "ebay")
	Source string `gorm:"column:source;primaryKey;type:text"`
	// ID is the marketplace native item id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Title is the free-text listing title
	Title string `gorm:"column:title;not null;type:text"`
	// Price is the asking price converted to whole USD
	Price int `gorm:"column:price;not null"`
	// URL is the listing page
	URL string `gorm:"column:url;not null;type:text"`
	// Image is the primary listing image
	Image *string `gorm:"column:image;type:text"`
	// Location is "city, state" of the item
	Location *string `gorm:"column:location;type:text"`
	// PostedAt is the listing end date reported by the marketplace
	PostedAt *time.Time `gorm:"column:posted_at;type:timestamptz"`
	// TrimID is the matched catalog trim, nil when no candidate reached the confidence threshold
	TrimID *uint64 `gorm:"column:trim_id;index"`
	// Confidence is the match confidence in [0, 1], zero when unlinked
	Confidence float64 `gorm:"column:confidence;not null;default:0"`
	// MatchReasons is the JSON list of reasons recorded by the matcher
	MatchReasons datatypes.JSON `gorm:"column:match_reasons;type:jsonb"`
	// CreatedAt is the timestamp when this listing was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this listing was last upserted
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Trim *Trim `gorm:"foreignKey:TrimID"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
