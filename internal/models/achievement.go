package models

type AchievementType string

const (
	AchievementStudent   AchievementType = "student"
	AchievementFaculty   AchievementType = "faculty"
	AchievementPlacement AchievementType = "placement"
)

type Achievement struct {
	Base
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Person      string          `json:"person"`
	Type        AchievementType `json:"type"`
	Date        string          `json:"date"`
}

type AchievementPatch struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Person      *string          `json:"person,omitempty"`
	Type        *AchievementType `json:"type,omitempty"`
	Date        *string          `json:"date,omitempty"`
}

func (p AchievementPatch) Apply(a *Achievement) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Person != nil {
		a.Person = *p.Person
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
}
