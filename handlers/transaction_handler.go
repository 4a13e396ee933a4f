package handlers

import (
	"github.com/earnkit/rewards_backend/services"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
)

// GetTransactionHistory returns the caller's ledger, newest first.
func GetTransactionHistory(c *fiber.Ctx) error {
	transactions, err := services.GetTransactionHistory(c.Params("uid"))
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"transactions":      transactions,
		"totalTransactions": len(transactions),
	})
}
