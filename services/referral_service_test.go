package services

import (
	"testing"

	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setReferralEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DOMAIN", "https://rewards.example.com")
	t.Setenv("APP_STORE_URL", "https://play.example.com/store?id=com.example.app")
	t.Setenv("DEFAULT_LANDING_PAGE", "https://rewards.example.com/landing")
}

func TestIssueReferralLinkIdempotent(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	first, err := IssueReferralLink("u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", first.ReferralID)
	assert.Equal(t, "https://rewards.example.com/r/u1", first.ReferralLink)

	// A later call must return the stored pair untouched, even if the
	// configured domain has changed in between.
	t.Setenv("DOMAIN", "https://other.example.com")
	second, err := IssueReferralLink("u1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	user := loadUser(t, "u1")
	require.NotNil(t, user.ReferralLink)
	assert.Equal(t, first.ReferralLink, *user.ReferralLink)
}

func TestLinkReferralPaysBothSidesOnce(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := IssueReferralLink("u1")
	require.NoError(t, err)

	result, err := LinkReferral("u2", "u1", &models.UTMTracking{UTMSource: "playstore"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.NewTotalReferrals)
	assert.Equal(t, int64(ReferralBonus), result.CoinsAdded)
	assert.True(t, result.UTMTracked)

	referrer := loadUser(t, "u1")
	referee := loadUser(t, "u2")

	assert.Equal(t, int64(1), referrer.TotalReferrals)
	assert.Equal(t, int64(ReferralBonus), referrer.CurrentEarning)
	assert.Equal(t, int64(ReferralBonus), referrer.ReferredCoins)

	require.NotNil(t, referee.ReferredBy)
	assert.Equal(t, "u1", *referee.ReferredBy)
	assert.Equal(t, int64(ReferralBonus), referee.CurrentEarning)
	assert.Equal(t, int64(ReferralBonus), referee.ReferredCoins)
	require.NotNil(t, referee.UTMTracking)
	assert.Equal(t, "playstore", referee.UTMTracking.UTMSource)
	assert.NotZero(t, referee.UTMTracking.UTMTimestamp)

	for _, uid := range []string{"u1", "u2"} {
		var count int64
		require.NoError(t, database.DB.Model(&models.Transaction{}).
			Where("user_uid = ? AND type = ?", uid, models.TxTypeReferralBonus).
			Count(&count).Error)
		assert.Equal(t, int64(1), count, "one bonus transaction for %s", uid)
	}
}

func TestLinkReferralSelfReferralRejected(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := IssueReferralLink("u1")
	require.NoError(t, err)

	_, err = LinkReferral("u1", "u1", nil)
	assert.Equal(t, "SELF_REFERRAL", apiCode(t, err))

	user := loadUser(t, "u1")
	assert.Equal(t, int64(0), user.CurrentEarning)
	assert.Equal(t, int64(0), user.TotalReferrals)
	assert.Nil(t, user.ReferredBy)
}

func TestLinkReferralMissingReferrer(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := LinkReferral("u2", "", nil)
	assert.Equal(t, "MISSING_REFERRER_UID", apiCode(t, err))
}

func TestLinkReferralUnknownReferrer(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := LinkReferral("u2", "ghost", nil)
	assert.Equal(t, "REFERRER_NOT_FOUND", apiCode(t, err))
}

func TestLinkReferralDuplicatePairRejected(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := IssueReferralLink("u1")
	require.NoError(t, err)

	_, err = LinkReferral("u2", "u1", nil)
	require.NoError(t, err)

	_, err = LinkReferral("u2", "u1", nil)
	assert.Equal(t, "ALREADY_REFERRED", apiCode(t, err))

	// The bonus was applied exactly once per side.
	assert.Equal(t, int64(ReferralBonus), loadUser(t, "u1").CurrentEarning)
	assert.Equal(t, int64(ReferralBonus), loadUser(t, "u2").CurrentEarning)
	assert.Equal(t, int64(1), loadUser(t, "u1").TotalReferrals)
}

func TestLinkReferralSecondReferrerRejected(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := IssueReferralLink("u1")
	require.NoError(t, err)
	_, err = IssueReferralLink("u3")
	require.NoError(t, err)

	_, err = LinkReferral("u2", "u1", nil)
	require.NoError(t, err)

	_, err = LinkReferral("u2", "u3", nil)
	assert.Equal(t, "ALREADY_REFERRED", apiCode(t, err))

	// The would-be second referrer saw no effect at all.
	u3 := loadUser(t, "u3")
	assert.Equal(t, int64(0), u3.TotalReferrals)
	assert.Equal(t, int64(0), u3.CurrentEarning)
}

func TestResolveReferralKnownAndUnknown(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := IssueReferralLink("u1")
	require.NoError(t, err)

	known := ResolveReferral("u1")
	assert.True(t, known.Known)
	assert.Equal(t, "https://play.example.com/store?id=com.example.app&ref=u1", known.URL)

	unknown := ResolveReferral("ghost")
	assert.False(t, unknown.Known)
	assert.Equal(t, "https://rewards.example.com/landing", unknown.URL)
}

func TestListReferralsSkipsUnfetchableUsers(t *testing.T) {
	setupTestDB(t)
	setReferralEnv(t)

	_, err := IssueReferralLink("u1")
	require.NoError(t, err)
	_, err = LinkReferral("u2", "u1", nil)
	require.NoError(t, err)
	_, err = LinkReferral("u3", "u1", nil)
	require.NoError(t, err)

	// A linkage whose referred user row is gone is skipped, not an error.
	require.NoError(t, database.DB.Create(&models.Referral{
		ID:           uuid.New(),
		ReferrerUID:  "u1",
		ReferredUID:  "vanished",
		Status:       "completed",
		RewardAmount: ReferralBonus,
	}).Error)

	referrals, err := ListReferrals("u1")
	require.NoError(t, err)
	require.Len(t, referrals, 2)
	assert.Equal(t, "u2", referrals[0].UID)
	assert.Equal(t, "u3", referrals[1].UID)
	assert.Equal(t, "Unknown", referrals[0].Name)
}

func TestListReferralsUnknownUser(t *testing.T) {
	setupTestDB(t)

	_, err := ListReferrals("nobody")
	assert.Equal(t, "USER_NOT_FOUND", apiCode(t, err))
}
