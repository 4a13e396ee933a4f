package models

import "time"

// CollaborationRecord is a flat partner-signup form submission. Pure data;
// exported to CSV from the admin surface.
type CollaborationRecord struct {
	ID                 uint   `gorm:"primary_key" json:"id"`
	CollaborationModel string `gorm:"size:255" json:"collaborationModel"`
	Name               string `gorm:"size:255" json:"name"`
	Email              string `gorm:"size:255" json:"email"`
	Phone              string `gorm:"size:64" json:"phone"`
	ContactMethod      string `gorm:"size:64" json:"contactMethod"`
	Contact            string `gorm:"size:255" json:"contact"`
	TrafficSourcesType string `gorm:"size:255" json:"trafficSourcesType"`
	TrafficSources     string `gorm:"type:text" json:"trafficSources"`
	AdditionalNotes    string `gorm:"type:text" json:"additionalNotes"`
	SubmittedAt        string `gorm:"size:64" json:"timestamp"`

	CreatedAt time.Time `json:"created_at"`
}
