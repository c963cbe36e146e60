package models

import "strings"

type EventCategory string

const (
	EventGeneral   EventCategory = "general"
	EventCultural  EventCategory = "cultural"
	EventTechnical EventCategory = "technical"
	EventHackathon EventCategory = "hackathon"
	EventWorkshop  EventCategory = "workshop"
)

// FieldType tags the variant of a registration form field. The data layer
// never interprets free-text type strings; rendering is the UI's business.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldSelect   FieldType = "select"
	FieldTextArea FieldType = "textarea"
)

// FormField is embedded in an Event and has no identity of its own.
type FormField struct {
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  string    `json:"options,omitempty"`
}

// OptionList splits the comma-joined options of a select field. Other field
// types have no options.
func (f FormField) OptionList() []string {
	if f.Type != FieldSelect || f.Options == "" {
		return nil
	}
	parts := strings.Split(f.Options, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

type Event struct {
	Base
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Date                 string        `json:"date"`
	Time                 string        `json:"time"`
	Venue                string        `json:"venue"`
	Organizer            string        `json:"organizer"`
	Category             EventCategory `json:"category"`
	RequiresRegistration bool          `json:"requiresRegistration"`
	EntranceFee          float64       `json:"entranceFee"`
	QRCodeURL            string        `json:"qrCodeUrl"`
	FormFields           []FormField   `json:"formFields" gorm:"serializer:json"`
}

type EventPatch struct {
	Title                *string        `json:"title,omitempty"`
	Description          *string        `json:"description,omitempty"`
	Date                 *string        `json:"date,omitempty"`
	Time                 *string        `json:"time,omitempty"`
	Venue                *string        `json:"venue,omitempty"`
	Organizer            *string        `json:"organizer,omitempty"`
	Category             *EventCategory `json:"category,omitempty"`
	RequiresRegistration *bool          `json:"requiresRegistration,omitempty"`
	EntranceFee          *float64       `json:"entranceFee,omitempty"`
	QRCodeURL            *string        `json:"qrCodeUrl,omitempty"`
	// FormFields replaces the whole list; the admin form builder always
	// submits the full set.
	FormFields *[]FormField `json:"formFields,omitempty"`
}

func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Venue != nil {
		e.Venue = *p.Venue
	}
	if p.Organizer != nil {
		e.Organizer = *p.Organizer
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.RequiresRegistration != nil {
		e.RequiresRegistration = *p.RequiresRegistration
	}
	if p.EntranceFee != nil {
		e.EntranceFee = *p.EntranceFee
	}
	if p.QRCodeURL != nil {
		e.QRCodeURL = *p.QRCodeURL
	}
	if p.FormFields != nil {
		e.FormFields = *p.FormFields
	}
}
