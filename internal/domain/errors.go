package domain

import "errors"

var (
	// ErrPlanAlreadyClaimed means another run moved the plan out of planned first.
	ErrPlanAlreadyClaimed = errors.New("plan already claimed for generation")

	// ErrArticleNotFound is returned by repositories on slug/id misses.
	ErrArticleNotFound = errors.New("article not found")

	// ErrPlanNotFound is returned when no plan matches the lookup.
	ErrPlanNotFound = errors.New("content plan not found")

	// ErrSessionNotFound is returned when a chat session id is unknown.
	ErrSessionNotFound = errors.New("chat session not found")
)
