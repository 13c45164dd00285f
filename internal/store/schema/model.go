package schema

import "time"

// Model represents the models table - a vehicle model of one make
type Model struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the model name as returned by the taxonomy provider
	Name string `gorm:"column:name;not null;type:text;uniqueIndex:idx_models_name_make,priority:1"`
	// MakeID references the make this model belongs to
	MakeID uint64 `gorm:"column:make_id;not null;uniqueIndex:idx_models_name_make,priority:2"`
	// CreatedAt is the timestamp when this model was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this model was last upserted
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Make  *Make  `gorm:"foreignKey:MakeID"`
	Trims []Trim `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Model model
func (Model) TableName() string {
	return "models"
}
