package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Route struct {
	BaseModel
	Name              string         `gorm:"not null" json:"name" validate:"required"`
	Img               string         `json:"img,omitempty"`
	Grade             string         `gorm:"not null" json:"grade" validate:"required"`
	Difficulty        *float64       `json:"difficulty,omitempty" validate:"omitempty,gte=0"`
	GradeSystem       string         `json:"gradeSystem,omitempty"`
	IsProject         bool           `gorm:"not null;default:false" json:"isProject"`
	GymID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"gym" validate:"required"`
	Protection        string         `json:"protection,omitempty"`
	Setter            string         `json:"setter,omitempty"`
	DateSet           *time.Time     `json:"dateSet,omitempty"`
	HoldType          string         `json:"holdType,omitempty"`
	HoldColor         string         `json:"holdColor,omitempty"`
	Attributes        pq.StringArray `gorm:"type:text[]" json:"attributes"`
	Notes             string         `json:"notes,omitempty"`
	Attempts          int            `gorm:"not null;default:0" json:"attempts" validate:"gte=0"`
	MostRecentAttempt *time.Time     `json:"mostRecentAttempt,omitempty"`
	IsComplete        bool           `gorm:"not null;default:false" json:"isComplete"`
	DateComplete      *time.Time     `json:"dateComplete,omitempty"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user" validate:"required"`
}

func (r *Route) OwnerID() uuid.UUID { return r.UserID }

func (r *Route) ValidationMessages() map[string]string {
	return map[string]string{
		"name":  "Please add a route name",
		"grade": "Please add a route grade",
	}
}

// LogAttempt records one more attempt at now.
func (r *Route) LogAttempt(now time.Time) {
	r.Attempts++
	r.MostRecentAttempt = &now
}

func (r *Route) ToggleProject() {
	r.IsProject = !r.IsProject
}

// MarkComplete reports whether anything changed; a completed route is left as is.
func (r *Route) MarkComplete(now time.Time) bool {
	if r.IsComplete {
		return false
	}
	r.IsComplete = true
	r.IsProject = false
	r.DateComplete = &now
	return true
}
