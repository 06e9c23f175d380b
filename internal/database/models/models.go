// Package models contains the database model definitions.
package models

import (
	"time"
)

// Setting keys understood by the driver.
const (
	// SettingBroadcastAddress overrides ARTNET_BROADCAST when non-empty.
	SettingBroadcastAddress = "artnet_broadcast_address"
)

// Setting represents a key/value setting.
// Table: settings
type Setting struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Key       string    `gorm:"column:key;uniqueIndex"`
	Value     string    `gorm:"column:value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Setting) TableName() string { return "settings" }
