package handlers

import (
	"github.com/earnkit/rewards_backend/middleware"
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/services"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
)

// GenerateReferralLink issues the caller's referral id and share link.
func GenerateReferralLink(c *fiber.Ctx) error {
	result, err := services.IssueReferralLink(middleware.AuthenticatedUID(c))
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, result)
}

// ReferralRedirect resolves a share link. It never surfaces an error: any
// problem degrades to the default landing page.
func ReferralRedirect(c *fiber.Ctx) error {
	target := services.ResolveReferral(c.Params("referralId"))
	if target.Known {
		// Remember the referral for the visitor's own registration flow.
		c.Cookie(&fiber.Cookie{
			Name:     "referralId",
			Value:    target.ReferralID,
			MaxAge:   24 * 60 * 60,
			HTTPOnly: true,
		})
	}
	return c.Redirect(target.URL, fiber.StatusFound)
}

type UpdateReferralRequest struct {
	ReferrerUID string `json:"referrerUid"`
	UTMSource   string `json:"utmSource"`
	UTMMedium   string `json:"utmMedium"`
	UTMCampaign string `json:"utmCampaign"`
	UTMTerm     string `json:"utmTerm"`
	UTMContent  string `json:"utmContent"`
}

// UpdateReferral links the caller to their referrer and pays the dual bonus.
func UpdateReferral(c *fiber.Ctx) error {
	var req UpdateReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, utils.ValidationError("VALIDATION_ERROR", "Cannot parse JSON"))
	}

	utm := &models.UTMTracking{
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
		UTMTerm:     req.UTMTerm,
		UTMContent:  req.UTMContent,
	}
	result, err := services.LinkReferral(middleware.AuthenticatedUID(c), req.ReferrerUID, utm)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, result)
}

// ListReferrals returns the caller's referred users with public profile
// fields; unfetchable entries are omitted rather than failing the listing.
func ListReferrals(c *fiber.Ctx) error {
	referrals, err := services.ListReferrals(c.Params("uid"))
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"referrals":      referrals,
		"totalReferrals": len(referrals),
	})
}
