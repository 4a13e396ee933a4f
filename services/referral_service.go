package services

import (
	"errors"
	"fmt"
	"time"

	config "github.com/earnkit/rewards_backend/configs"
	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReferralBonus is the fixed payout credited to both sides of a successful
// referral linkage.
const ReferralBonus = 100

const referralAppName = "Referral"

type ReferralLinkResult struct {
	ReferralID   string `json:"referralId"`
	ReferralLink string `json:"referralLink"`
}

type LinkReferralResult struct {
	CurrentUserID     string `json:"currentUserId"`
	ReferrerUID       string `json:"referrerUid"`
	NewTotalReferrals int64  `json:"newTotalReferrals"`
	CoinsAdded        int64  `json:"coinsAdded"`
	UTMTracked        bool   `json:"utmTracked"`
}

type RedirectTarget struct {
	URL        string
	ReferralID string
	Known      bool
}

type ReferredUser struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
	CreatedAt  int64  `json:"createdAt"`
}

// IssueReferralLink returns the user's referral identifier and share link.
// The identifier is the uid itself, so the operation is idempotent: the
// stored pair is written once on first call and never recomputed.
func IssueReferralLink(uid string) (*ReferralLinkResult, error) {
	result := ReferralLinkResult{
		ReferralID:   uid,
		ReferralLink: fmt.Sprintf("%s/r/%s", config.Config("DOMAIN"), uid),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := ensureUser(tx, uid, nil)
		if err != nil {
			return err
		}
		if user.ReferralID != nil && user.ReferralLink != nil {
			result.ReferralID = *user.ReferralID
			result.ReferralLink = *user.ReferralLink
			return nil
		}
		return tx.Model(&models.User{}).Where("uid = ?", uid).Updates(map[string]interface{}{
			"referral_id":   result.ReferralID,
			"referral_link": result.ReferralLink,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ResolveReferral maps a referral id to a redirect destination. It never
// fails: an unknown id or any internal error degrades to the default
// landing page, logged but not surfaced.
func ResolveReferral(referralID string) RedirectTarget {
	fallback := RedirectTarget{URL: config.Config("DEFAULT_LANDING_PAGE")}

	var user models.User
	err := database.DB.First(&user, "uid = ?", referralID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Errorf("referral redirect lookup failed for %s: %v", referralID, err)
		}
		return fallback
	}

	return RedirectTarget{
		URL:        fmt.Sprintf("%s&ref=%s", config.Config("APP_STORE_URL"), referralID),
		ReferralID: referralID,
		Known:      true,
	}
}

// LinkReferral records that currentUID was referred by referrerUID and pays
// the bonus to both sides. Every effect commits in a single database
// transaction keyed on the linkage row, whose unique referee index makes a
// retried or concurrent duplicate fail as a unit with nothing applied.
func LinkReferral(currentUID, referrerUID string, utm *models.UTMTracking) (*LinkReferralResult, error) {
	if referrerUID == "" {
		return nil, utils.ValidationError("MISSING_REFERRER_UID", "referrerUid is required")
	}
	if referrerUID == currentUID {
		return nil, utils.Forbidden("SELF_REFERRAL", "Cannot refer yourself")
	}

	var result LinkReferralResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var referrer models.User
		if err := tx.First(&referrer, "uid = ?", referrerUID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("REFERRER_NOT_FOUND", "Referrer user not found")
			}
			return err
		}

		current, err := ensureUser(tx, currentUID, utm)
		if err != nil {
			return err
		}
		if current.ReferredBy != nil {
			return utils.Conflict("ALREADY_REFERRED", "User is already referred")
		}

		var linked int64
		if err := tx.Model(&models.Referral{}).Where("referred_uid = ?", currentUID).Count(&linked).Error; err != nil {
			return err
		}
		if linked > 0 {
			return utils.Conflict("ALREADY_REFERRED", "User is already referred by this referrer")
		}

		linkage := models.Referral{
			ID:           uuid.New(),
			ReferrerUID:  referrerUID,
			ReferredUID:  currentUID,
			Status:       "completed",
			RewardAmount: ReferralBonus,
		}
		if err := tx.Create(&linkage).Error; err != nil {
			// Lost a race against a concurrent linkage for the same referee.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.Conflict("ALREADY_REFERRED", "User is already referred")
			}
			return err
		}

		if err := tx.Model(&models.User{}).Where("uid = ?", referrerUID).
			Update("total_referrals", gorm.Expr("total_referrals + 1")).Error; err != nil {
			return err
		}

		refereeUpdates := map[string]interface{}{"referred_by": referrerUID}
		if utm != nil && !utm.IsEmpty() && current.UTMTracking == nil {
			if utm.UTMTimestamp == 0 {
				utm.UTMTimestamp = time.Now().UnixMilli()
			}
			refereeUpdates["utm_tracking"] = utm
		}
		if err := tx.Model(&models.User{}).Where("uid = ?", currentUID).
			Updates(refereeUpdates).Error; err != nil {
			return err
		}

		bonusBucket := func() map[string]interface{} {
			return map[string]interface{}{
				"referred_coins": gorm.Expr("referred_coins + ?", ReferralBonus),
			}
		}
		if _, err := appendTransaction(tx, referrerUID, ReferralBonus, referralAppName,
			models.TxTypeReferralBonus, bonusBucket()); err != nil {
			return err
		}
		if _, err := appendTransaction(tx, currentUID, ReferralBonus, referralAppName,
			models.TxTypeReferralBonus, bonusBucket()); err != nil {
			return err
		}

		result = LinkReferralResult{
			CurrentUserID:     currentUID,
			ReferrerUID:       referrerUID,
			NewTotalReferrals: referrer.TotalReferrals + 1,
			CoinsAdded:        ReferralBonus,
			UTMTracked:        utm != nil && !utm.IsEmpty(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("added %d coins to referrer %s and referee %s", ReferralBonus, referrerUID, currentUID)
	return &result, nil
}

// ListReferrals returns the public profile of every user referred by uid,
// in referral order. A referred user whose row cannot be fetched is skipped
// rather than failing the whole listing.
func ListReferrals(uid string) ([]ReferredUser, error) {
	var count int64
	if err := database.DB.Model(&models.User{}).Where("uid = ?", uid).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, utils.NotFound("USER_NOT_FOUND", "User not found")
	}

	var linkages []models.Referral
	err := database.DB.
		Where("referrer_uid = ?", uid).
		Order("created_at asc").
		Find(&linkages).Error
	if err != nil {
		return nil, err
	}

	referrals := make([]ReferredUser, 0, len(linkages))
	for _, linkage := range linkages {
		var referred models.User
		if err := database.DB.First(&referred, "uid = ?", linkage.ReferredUID).Error; err != nil {
			log.Errorf("error fetching referred user %s: %v", linkage.ReferredUID, err)
			continue
		}
		name := referred.Name
		if name == "" {
			name = "Unknown"
		}
		referrals = append(referrals, ReferredUser{
			UID:        referred.UID,
			Name:       name,
			Email:      referred.Email,
			ProfilePic: referred.ProfilePic,
			CreatedAt:  referred.CreatedAt,
		})
	}
	return referrals, nil
}
