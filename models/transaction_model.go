package models

import (
	"github.com/google/uuid"
)

const (
	TxTypeReward        = "reward"
	TxTypeDaily         = "daily"
	TxTypeReferral      = "referral"
	TxTypeReferralBonus = "referralBonus"
)

// Transaction is an append-only ledger row. No update or delete path exists;
// the transaction log is the source of truth for every balance field.
type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	UserUID   string    `gorm:"size:128;not null;index" json:"-"`
	AppName   string    `gorm:"size:255;not null" json:"appName"`
	Coins     int64     `gorm:"not null" json:"coins"`
	Type      string    `gorm:"size:32;not null" json:"type"`
	Timestamp int64     `gorm:"not null;index" json:"timestamp"`
}
