package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type User struct {
	UID            string  `gorm:"size:128;primary_key" json:"uid"`
	Name           string  `gorm:"size:255" json:"name"`
	Email          string  `gorm:"size:255" json:"email"`
	ProfilePic     string  `gorm:"size:512" json:"profile_pic"`
	CurrentEarning int64   `gorm:"not null;default:0" json:"current_earning"`
	DailyEarning   int64   `gorm:"not null;default:0" json:"daily_earning"`
	ReferredCoins  int64   `gorm:"not null;default:0" json:"referred_coins"`
	TotalReferrals int64   `gorm:"not null;default:0" json:"total_referrals"`
	ReferredBy     *string `gorm:"size:128;index" json:"referred_by,omitempty"`
	ReferralID     *string `gorm:"size:128" json:"referral_id,omitempty"`
	ReferralLink   *string `gorm:"size:512" json:"referral_link,omitempty"`

	PopupControl PopupControl `gorm:"type:jsonb" json:"popup_control"`
	UTMTracking  *UTMTracking `gorm:"type:jsonb" json:"utm_tracking,omitempty"`

	CreatedAt int64 `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli" json:"-"`
}

// PopupControl is a transient UI hint, overwritten on every credit.
// Last write wins; it carries the transaction that triggered it.
type PopupControl struct {
	ShowPopup   bool         `json:"showPopup"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

func (p PopupControl) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PopupControl) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// UTMTracking holds the Play Store install-referrer attribution captured
// when a referral linkage is recorded.
type UTMTracking struct {
	UTMSource    string `json:"utmSource,omitempty"`
	UTMMedium    string `json:"utmMedium,omitempty"`
	UTMCampaign  string `json:"utmCampaign,omitempty"`
	UTMTerm      string `json:"utmTerm,omitempty"`
	UTMContent   string `json:"utmContent,omitempty"`
	UTMTimestamp int64  `json:"utmTimestamp,omitempty"`
}

func (u UTMTracking) IsEmpty() bool {
	return u.UTMSource == "" && u.UTMMedium == "" && u.UTMCampaign == "" &&
		u.UTMTerm == "" && u.UTMContent == ""
}

func (u UTMTracking) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *UTMTracking) Scan(value interface{}) error {
	return scanJSON(value, u)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}
