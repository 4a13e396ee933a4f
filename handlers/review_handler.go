package handlers

import (
	"math/rand"

	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
)

type Review struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Curated store-style reviews served to the app's landing surface.
var reviews = []Review{
	{1, "Amazing app! I've been earning coins daily and the referral system works perfectly. Highly recommended!", 5},
	{2, "Great way to earn some extra rewards. The interface is clean and easy to use. Love it!", 5},
	{3, "I've referred 10+ friends and earned tons of coins. The payout system is reliable and fast.", 5},
	{4, "Simple and effective. No complicated processes, just straightforward earning. Perfect!", 4},
	{5, "Been using this for months now. Consistent rewards and the referral bonuses are generous!", 5},
	{6, "User-friendly app with great earning potential. The daily rewards keep me coming back.", 4},
	{7, "Excellent referral program! I've earned more than I expected. Definitely worth trying.", 5},
	{8, "Clean design, smooth functionality, and real rewards. What more could you ask for?", 5},
	{9, "I was skeptical at first, but this app actually delivers on its promises. Great experience!", 4},
	{10, "The best rewards app I've used. Easy to navigate and the coins add up quickly!", 5},
	{11, "Love how simple it is to earn and refer friends. The whole process is seamless.", 5},
	{12, "Reliable app with consistent payouts. I've been using it for 6 months without any issues.", 4},
	{13, "Great concept and execution. The referral system is the best feature - very rewarding!", 5},
	{14, "Easy to use, great rewards, and excellent customer support. Highly satisfied!", 5},
	{15, "I've tried many similar apps, but this one stands out. Real rewards, no gimmicks.", 4},
	{16, "The daily earning feature is fantastic. Small amounts that add up to something meaningful!", 4},
	{17, "Straightforward app that does exactly what it promises. No hidden fees or complicated rules.", 5},
	{18, "Been earning consistently for months. The referral bonuses are a nice touch!", 5},
	{19, "Simple, effective, and rewarding. This app has become part of my daily routine.", 4},
	{20, "Excellent app! The earning system is transparent and the rewards are real. Love it!", 5},
}

func GetRandomReview(c *fiber.Ctx) error {
	return utils.Success(c, reviews[rand.Intn(len(reviews))])
}

func ListReviews(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"reviews": reviews,
		"total":   len(reviews),
	})
}
