package models

import "time"

// LocalItem is one key/value pair of the local store, the desktop stand-in for
// browser localStorage.
type LocalItem struct {
	Key       string `gorm:"column:item_key;primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
