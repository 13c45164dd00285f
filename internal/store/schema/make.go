package schema

import "time"

// Make represents the makes table - a vehicle manufacturer
type Make struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the manufacturer name as listed in the hero makes (e.g., "Mercedes-Benz")
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// CreatedAt is the timestamp when this make was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this make was last upserted
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Models []Model `gorm:"foreignKey:MakeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Make model
func (Make) TableName() string {
	return "makes"
}
