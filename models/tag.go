package models

// Tag ids come from the table sequence, names from a unique index.
type Tag struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
