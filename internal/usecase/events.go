package usecase

import "github.com/google/uuid"

const (
	EventQuizResultCreated  = "quiz_result_created"
	EventFavoriteAdded      = "favorite_added"
	EventFavoriteRemoved    = "favorite_removed"
	EventApplicationCreated = "application_created"
)

// Publisher delivers an event to every live connection of one user.
type Publisher interface {
	Publish(userID uuid.UUID, eventType string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(uuid.UUID, string, any) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
