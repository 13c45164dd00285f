package schema

import "time"

// Trim represents the trims table - one model year and trim level with its normalized specs.
// Performance and economy figures are in imperial units; nil means unknown.
type Trim struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Year is the model year
	Year int `gorm:"column:year;not null;uniqueIndex:idx_trims_year_name_model,priority:1"`
	// Name is the trim level, "Base" when the provider has none
	Name string `gorm:"column:name;not null;type:text;uniqueIndex:idx_trims_year_name_model,priority:2"`
	// ModelID references the model this trim belongs to
	ModelID uint64 `gorm:"column:model_id;not null;uniqueIndex:idx_trims_year_name_model,priority:3"`
	// Body is the body style (e.g., "Coupe")
	Body *string `gorm:"column:body;type:text"`
	// Engine describes cylinders and layout (e.g., "6 cyl in-line")
	Engine *string `gorm:"column:engine;type:text"`
	// Horsepower in mechanical horsepower
	Horsepower *int `gorm:"column:horsepower"`
	// Torque in pound-feet
	Torque *int `gorm:"column:torque"`
	// ZeroToSixty in seconds
	ZeroToSixty *float64 `gorm:"column:zero_to_sixty"`
	// MPGCity is the city fuel economy in US miles per gallon
	MPGCity *int `gorm:"column:mpg_city"`
	// MPGHwy is the highway fuel economy in US miles per gallon
	MPGHwy *int `gorm:"column:mpg_hwy"`
	// MSRP is the manufacturer suggested retail price in whole USD
	MSRP *int `gorm:"column:msrp"`
	// ImageURL is a representative image of the trim
	ImageURL *string `gorm:"column:image_url;type:text"`
	// CreatedAt is the timestamp when this trim was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this trim was last upserted
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Model *Model `gorm:"foreignKey:ModelID"`
}

// TableName specifies the table name for the Trim model
func (Trim) TableName() string {
	return "trims"
}
