package domain

import "time"

// PlanStatus enumerates the content-plan lifecycle states.
type PlanStatus string

const (
	StatusPlanned    PlanStatus = "planned"
	StatusGenerating PlanStatus = "generating"
	StatusReview     PlanStatus = "review"
	StatusPublished  PlanStatus = "published"
	StatusCancelled  PlanStatus = "cancelled"
)

// ContentPlan tracks an editorial topic from intent through generation to publication.
type ContentPlan struct {
	ID            int64
	Title         string
	Description   string
	Category      string
	Keywords      []string
	ScheduledDate time.Time
	Status        PlanStatus
	ArticleID     *int64
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Due reports whether the plan is ready for generation on the given day.
func (p ContentPlan) Due(today time.Time) bool {
	if p.Status != StatusPlanned {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	sy, sm, sd := p.ScheduledDate.Date()
	scheduled := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	return !scheduled.After(day)
}

// PlanResult records the outcome of processing a single due plan.
type PlanResult struct {
	PlanID    int64
	ArticleID int64
	Status    string
	Err       string
}
