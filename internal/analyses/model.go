package analyses

import (
	"time"

	"skillgap-backend/internal/courses"
	"skillgap-backend/internal/scoring"
)

// Outcome is everything computed for one uploaded resume.
type Outcome struct {
	Analysis scoring.Result           `json:"analysis"`
	Courses  []courses.Recommendation `json:"courses"`
}

// Session is a stored analysis keyed by the ID returned to the client.
type Session struct {
	ID        string    `json:"id"`
	JobRole   string    `json:"jobRole"`
	Outcome   Outcome   `json:"outcome"`
	CreatedAt time.Time `json:"createdAt"`
}
