package models

import (
	"database/sql/driver"
	"encoding/json"
)

// DayConfig is the reward envelope handed to clients for one day of the
// engagement schedule: how many attempts the day allows and the coin range
// each attempt may pay out.
type DayConfig struct {
	Attempts int `json:"attempts"`
	MinCoins int `json:"minCoins"`
	MaxCoins int `json:"maxCoins"`
}

type DayConfigList []DayConfig

func (l DayConfigList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *DayConfigList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// AttemptsConfig is the whole admin-configured schedule, stored as a single
// row and replaced wholesale on every update.
type AttemptsConfig struct {
	ID              uint          `gorm:"primary_key" json:"-"`
	DayConfigs      DayConfigList `gorm:"type:jsonb" json:"dayConfigs"`
	DefaultAttempts int           `gorm:"not null" json:"-"`
	DefaultMinCoins int           `gorm:"not null" json:"-"`
	DefaultMaxCoins int           `gorm:"not null" json:"-"`
	LastUpdated     int64         `gorm:"autoUpdateTime:milli" json:"lastUpdated"`
}

func (c AttemptsConfig) Default() DayConfig {
	return DayConfig{
		Attempts: c.DefaultAttempts,
		MinCoins: c.DefaultMinCoins,
		MaxCoins: c.DefaultMaxCoins,
	}
}
