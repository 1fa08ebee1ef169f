package db_models

import "github.com/google/uuid"

type Gym struct {
	BaseModel
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Img         string    `json:"img,omitempty"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	IsIndoor    bool      `gorm:"not null" json:"isIndoor"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user" validate:"required"`
}

func (g *Gym) OwnerID() uuid.UUID { return g.UserID }

func (g *Gym) ValidationMessages() map[string]string {
	return map[string]string{
		"name": "Please add a gym name",
	}
}
