package services

import (
	"errors"
	"fmt"

	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The schedule is stored as a single row; attemptsConfigID pins it.
const attemptsConfigID = 1

var defaultDayConfig = models.DayConfig{Attempts: 12, MinCoins: 10, MaxCoins: 20}

// GetDayConfig returns the reward envelope for a 1-indexed day, falling
// back to the default envelope beyond the configured range or when no
// schedule has been stored yet.
func GetDayConfig(day int) (models.DayConfig, error) {
	if day < 1 {
		return models.DayConfig{}, utils.ValidationError("INVALID_DAY", "Day must be a positive number")
	}

	stored, err := loadConfig()
	if err != nil {
		return models.DayConfig{}, err
	}
	if stored == nil {
		return defaultDayConfig, nil
	}
	if day <= len(stored.DayConfigs) {
		return stored.DayConfigs[day-1], nil
	}
	return stored.Default(), nil
}

// SetConfig validates and replaces the whole schedule in one write. A
// rejected schedule leaves the stored one untouched.
func SetConfig(dayConfigs []models.DayConfig, defaultConfig models.DayConfig) error {
	for i, cfg := range dayConfigs {
		if err := validateDayConfig(cfg, fmt.Sprintf("Day %d", i+1),
			"INVALID_CONFIG_FORMAT", "INVALID_COIN_RANGE"); err != nil {
			return err
		}
	}
	if err := validateDayConfig(defaultConfig, "Default config",
		"INVALID_DEFAULT_CONFIG", "INVALID_DEFAULT_COIN_RANGE"); err != nil {
		return err
	}

	cfg := models.AttemptsConfig{
		ID:              attemptsConfigID,
		DayConfigs:      models.DayConfigList(dayConfigs),
		DefaultAttempts: defaultConfig.Attempts,
		DefaultMinCoins: defaultConfig.MinCoins,
		DefaultMaxCoins: defaultConfig.MaxCoins,
	}
	// An empty schedule is a legal replacement, so the upsert must not rely
	// on Save's zero-value skipping.
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"day_configs", "default_attempts", "default_min_coins", "default_max_coins", "last_updated"}),
	}).Create(&cfg).Error
	if err != nil {
		return err
	}
	log.Infof("attempts configuration updated: %d day configs set", len(dayConfigs))
	return nil
}

// GetConfig returns the stored schedule, or the built-in defaults when none
// has been configured yet.
func GetConfig() (*models.AttemptsConfig, error) {
	stored, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return &models.AttemptsConfig{
			DayConfigs:      models.DayConfigList{},
			DefaultAttempts: defaultDayConfig.Attempts,
			DefaultMinCoins: defaultDayConfig.MinCoins,
			DefaultMaxCoins: defaultDayConfig.MaxCoins,
		}, nil
	}
	return stored, nil
}

func loadConfig() (*models.AttemptsConfig, error) {
	var cfg models.AttemptsConfig
	err := database.DB.First(&cfg, "id = ?", attemptsConfigID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func validateDayConfig(cfg models.DayConfig, label, formatCode, rangeCode string) error {
	if cfg.Attempts < 1 || cfg.MinCoins < 1 || cfg.MaxCoins < 1 {
		return utils.ValidationError(formatCode,
			fmt.Sprintf("%s must have attempts, minCoins, and maxCoins", label))
	}
	if cfg.MinCoins > cfg.MaxCoins {
		return utils.ValidationError(rangeCode,
			fmt.Sprintf("%s: minCoins cannot be greater than maxCoins", label))
	}
	return nil
}
