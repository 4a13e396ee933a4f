package models

import (
	"time"

	"github.com/google/uuid"
)

// Referral records one referrer/referee linkage. The unique index on
// ReferredUID enforces the single-referrer rule: a user can be linked at
// most once, no matter who retries or which referrer they name. The bonus
// payout commits in the same transaction as this row, so a duplicate
// insert failing aborts the whole linkage with nothing applied.
type Referral struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReferrerUID  string    `gorm:"size:128;not null;index" json:"referrer_uid"`
	ReferredUID  string    `gorm:"size:128;not null;uniqueIndex" json:"referred_uid"`
	Status       string    `gorm:"size:20;not null;default:'completed'" json:"status"`
	RewardAmount int64     `gorm:"not null" json:"reward_amount"`

	CreatedAt time.Time `json:"created_at"`
}
