package services

import (
	"errors"
	"time"

	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreditResult struct {
	NewBalance    int64               `json:"newBalance"`
	ReferredCoins int64               `json:"referredCoins"`
	DailyEarning  int64               `json:"dailyEarning"`
	Transaction   *models.Transaction `json:"transaction"`
}

type BalanceResult struct {
	CurrentEarning int64 `json:"currentEarning"`
	DailyEarning   int64 `json:"dailyEarning"`
	ReferredCoins  int64 `json:"referredCoins"`
	TotalReferrals int64 `json:"totalReferrals"`
}

// CreditCoins appends one ledger transaction and bumps the cached balance
// fields in the same database transaction. The bumps are SQL-side atomic
// increments, so concurrent credits to one user cannot lose an update: the
// log row and the cache move together or not at all.
func CreditCoins(uid string, coins int64, appName, txType string) (*CreditResult, error) {
	if coins < 0 {
		return nil, utils.ValidationError("INVALID_COIN_AMOUNT", "Coin amount cannot be negative")
	}

	var result CreditResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ensureUser(tx, uid, nil); err != nil {
			return err
		}

		buckets := map[string]interface{}{}
		switch txType {
		case models.TxTypeReferral:
			buckets["referred_coins"] = gorm.Expr("referred_coins + ?", coins)
		case models.TxTypeDaily:
			buckets["daily_earning"] = gorm.Expr("daily_earning + ?", coins)
		}

		txn, err := appendTransaction(tx, uid, coins, appName, txType, buckets)
		if err != nil {
			return err
		}

		var fresh models.User
		if err := tx.First(&fresh, "uid = ?", uid).Error; err != nil {
			return err
		}
		result = CreditResult{
			NewBalance:    fresh.CurrentEarning,
			ReferredCoins: fresh.ReferredCoins,
			DailyEarning:  fresh.DailyEarning,
			Transaction:   txn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBalance returns the cached balance fields, zero-defaulted by the schema.
func GetBalance(uid string) (*BalanceResult, error) {
	var user models.User
	if err := database.DB.First(&user, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	return &BalanceResult{
		CurrentEarning: user.CurrentEarning,
		DailyEarning:   user.DailyEarning,
		ReferredCoins:  user.ReferredCoins,
		TotalReferrals: user.TotalReferrals,
	}, nil
}

// GetTransactionHistory returns every ledger row for the user, newest first.
func GetTransactionHistory(uid string) ([]models.Transaction, error) {
	var count int64
	if err := database.DB.Model(&models.User{}).Where("uid = ?", uid).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, utils.NotFound("USER_NOT_FOUND", "User not found")
	}

	transactions := []models.Transaction{}
	err := database.DB.
		Where("user_uid = ?", uid).
		Order("timestamp desc").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// ensureUser loads the user row, creating the zero-state row on first touch.
// Users are never registered up front; any credit or referral operation may
// be the first observation of a uid.
func ensureUser(tx *gorm.DB, uid string, utm *models.UTMTracking) (*models.User, error) {
	var user models.User
	err := tx.First(&user, "uid = ?", uid).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		UID:          uid,
		PopupControl: models.PopupControl{ShowPopup: false},
	}
	if utm != nil && !utm.IsEmpty() {
		utm.UTMTimestamp = time.Now().UnixMilli()
		user.UTMTracking = utm
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Infof("created new user: %s", uid)
	return &user, nil
}

// appendTransaction writes the ledger row, bumps current_earning plus any
// caller-supplied side buckets, and overwrites the popup hint with the new
// transaction. Callers must already hold a database transaction.
func appendTransaction(tx *gorm.DB, uid string, coins int64, appName, txType string,
	buckets map[string]interface{}) (*models.Transaction, error) {

	txn := &models.Transaction{
		ID:        uuid.New(),
		UserUID:   uid,
		AppName:   appName,
		Coins:     coins,
		Type:      txType,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := tx.Create(txn).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"current_earning": gorm.Expr("current_earning + ?", coins),
		"popup_control":   models.PopupControl{ShowPopup: true, Transaction: txn},
	}
	for column, expr := range buckets {
		updates[column] = expr
	}
	if err := tx.Model(&models.User{}).Where("uid = ?", uid).Updates(updates).Error; err != nil {
		return nil, err
	}
	return txn, nil
}
