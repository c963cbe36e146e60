package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration is submitted by the public and only ever deleted by an admin.
// EventTitle and CustomFields are snapshots taken at submission time; a later
// edit or deletion of the event does not touch them.
type Registration struct {
	Base
	EventID      uint              `json:"eventId"`
	EventTitle   string            `json:"eventTitle"`
	FullName     string            `json:"fullName"`
	USN          string            `json:"usn"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	CustomFields map[string]string `json:"customFields" gorm:"serializer:json"`
	RegisteredAt time.Time         `json:"registeredAt"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.RegisteredAt.IsZero() {
		r.RegisteredAt = time.Now()
	}
	return nil
}
