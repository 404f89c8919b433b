package stream

import (
	"context"
	"fmt"

	"github.com/buckyapp/bucky/internal/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type StreamService interface {
	GetAll(ctx context.Context) ([]IncomeStream, error)
	Get(ctx context.Context, id string) (*IncomeStream, error)
	Create(ctx context.Context, stream IncomeStream) (IncomeStream, error)
	Update(ctx context.Context, stream IncomeStream) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type StreamServiceImpl struct {
	repo StreamRepo
	bus  *event_bus.EventBus
}

func NewStreamServiceImpl(repo StreamRepo, bus *event_bus.EventBus) *StreamServiceImpl {
	return &StreamServiceImpl{repo: repo, bus: bus}
}

func (s *StreamServiceImpl) GetAll(ctx context.Context) ([]IncomeStream, error) {
	return s.repo.GetAll(ctx)
}

func (s *StreamServiceImpl) Get(ctx context.Context, id string) (*IncomeStream, error) {
	return s.repo.Get(ctx, id)
}

func (s *StreamServiceImpl) Create(ctx context.Context, stream IncomeStream) (IncomeStream, error) {
	if stream.PayRate < 0 {
		return IncomeStream{}, fmt.Errorf("pay rate must not be negative")
	}
	stream.ID = uuid.NewString()
	if err := s.repo.Store(ctx, stream); err != nil {
		return IncomeStream{}, err
	}
	return stream, nil
}

func (s *StreamServiceImpl) Update(ctx context.Context, stream IncomeStream) (bool, error) {
	if stream.PayRate < 0 {
		return false, fmt.Errorf("pay rate must not be negative")
	}
	updated, err := s.repo.Update(ctx, stream)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("stream not updated, probably because it does not exist (%s)", stream.ID)
		return false, nil
	}
	return true, nil
}

func (s *StreamServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		log.Warnf("stream not deleted, probably because it does not exist (%s)", id)
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	// Shifts keep referencing the stream by id only; subscribers decide what
	// to do about the ones that just became orphaned.
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.StreamDeletedEvent, event_bus.StreamDeleted{
		Id:   existing.ID,
		Name: existing.Name,
	})); err != nil {
		log.Warnf("failed to publish stream deleted event: %v", err)
	}
	return true, nil
}
