package repository

import "mortgage-pulse/domain"

type EventRepository interface {
	Save(event domain.Event) error
	List() ([]domain.Event, error)
}
