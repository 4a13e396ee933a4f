package jobs

import (
	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	log "github.com/sirupsen/logrus"
)

// ReconcileLedger recomputes every user's transaction sum and compares it
// against the cached balance. The transaction log is the source of truth;
// any drift in the cache is an operational bug worth alerting on, so it is
// logged loudly rather than silently repaired.
func ReconcileLedger() {
	type ledgerSum struct {
		UserUID string
		Total   int64
	}

	var sums []ledgerSum
	err := database.DB.Model(&models.Transaction{}).
		Select("user_uid, COALESCE(SUM(coins), 0) as total").
		Group("user_uid").
		Scan(&sums).Error
	if err != nil {
		log.Errorf("ledger reconciliation query failed: %v", err)
		return
	}

	drift := 0
	for _, sum := range sums {
		var user models.User
		if err := database.DB.First(&user, "uid = ?", sum.UserUID).Error; err != nil {
			log.Errorf("ledger reconciliation: user %s has transactions but no row: %v", sum.UserUID, err)
			drift++
			continue
		}
		if user.CurrentEarning != sum.Total {
			log.Warnf("ledger drift for user %s: cached balance %d, transaction sum %d",
				user.UID, user.CurrentEarning, sum.Total)
			drift++
		}
	}

	if drift == 0 {
		log.Infof("ledger reconciliation clean: %d users checked", len(sums))
	} else {
		log.Warnf("ledger reconciliation found %d drifted users of %d checked", drift, len(sums))
	}
}
