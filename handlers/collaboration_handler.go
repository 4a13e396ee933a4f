package handlers

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
)

type CollaborationRequest struct {
	CollaborationModel string `json:"collaborationModel"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ContactMethod      string `json:"contactMethod"`
	Contact            string `json:"contact"`
	TrafficSourcesType string `json:"trafficSourcesType"`
	TrafficSources     string `json:"trafficSources"`
	AdditionalNotes    string `json:"additionalNotes"`
	Timestamp          string `json:"timestamp"`
}

// AddCollaboration stores a partner-signup form submission.
func AddCollaboration(c *fiber.Ctx) error {
	var req CollaborationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, utils.ValidationError("VALIDATION_ERROR", "Cannot parse JSON"))
	}
	if req.Timestamp == "" {
		req.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	record := models.CollaborationRecord{
		CollaborationModel: req.CollaborationModel,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		ContactMethod:      req.ContactMethod,
		Contact:            req.Contact,
		TrafficSourcesType: req.TrafficSourcesType,
		TrafficSources:     req.TrafficSources,
		AdditionalNotes:    req.AdditionalNotes,
		SubmittedAt:        req.Timestamp,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"message": "Collaboration record saved successfully",
		"id":      record.ID,
	})
}

// ExportCollaborations streams every signup as CSV.
func ExportCollaborations(c *fiber.Ctx) error {
	var records []models.CollaborationRecord
	if err := database.DB.Order("created_at asc").Find(&records).Error; err != nil {
		return utils.Fail(c, err)
	}

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	if err := w.Write([]string{"Model", "Name", "Email", "Phone", "Contact", "Timestamp"}); err != nil {
		return utils.Fail(c, err)
	}
	for _, r := range records {
		row := []string{
			orNotProvided(r.CollaborationModel),
			orNotProvided(r.Name),
			orNotProvided(r.Email),
			orNotProvided(r.Phone),
			orNotProvided(r.Contact),
			r.SubmittedAt,
		}
		if err := w.Write(row); err != nil {
			return utils.Fail(c, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return utils.Fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="collaboration_records.csv"`)
	return c.Send(b.Bytes())
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
