package request_models

import "time"

type CreateRouteRequest struct {
	Name              string     `json:"name" binding:"required"`
	Img               string     `json:"img"`
	Grade             string     `json:"grade" binding:"required"`
	Difficulty        *float64   `json:"difficulty"`
	GradeSystem       string     `json:"gradeSystem"`
	IsProject         *bool      `json:"isProject"`
	Gym               string     `json:"gym" binding:"required"`
	Protection        string     `json:"protection"`
	Setter            string     `json:"setter"`
	DateSet           *time.Time `json:"dateSet"`
	HoldType          string     `json:"holdType"`
	HoldColor         string     `json:"holdColor"`
	Attributes        []string   `json:"attributes"`
	Notes             string     `json:"notes"`
	Attempts          *int       `json:"attempts"`
	MostRecentAttempt *time.Time `json:"mostRecentAttempt"`
	IsComplete        *bool      `json:"isComplete"`
	DateComplete      *time.Time `json:"dateComplete"`
}

type UpdateRouteRequest struct {
	Name              *string    `json:"name"`
	Img               *string    `json:"img"`
	Grade             *string    `json:"grade"`
	Difficulty        *float64   `json:"difficulty"`
	GradeSystem       *string    `json:"gradeSystem"`
	IsProject         *bool      `json:"isProject"`
	Gym               *string    `json:"gym"`
	Protection        *string    `json:"protection"`
	Setter            *string    `json:"setter"`
	DateSet           *time.Time `json:"dateSet"`
	HoldType          *string    `json:"holdType"`
	HoldColor         *string    `json:"holdColor"`
	Attributes        []string   `json:"attributes"`
	Notes             *string    `json:"notes"`
	Attempts          *int       `json:"attempts"`
	MostRecentAttempt *time.Time `json:"mostRecentAttempt"`
	IsComplete        *bool      `json:"isComplete"`
	DateComplete      *time.Time `json:"dateComplete"`
}
