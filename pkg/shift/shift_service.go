package shift

import (
	"context"
	"fmt"

	"github.com/buckyapp/bucky/internal/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ShiftService interface {
	GetAll(ctx context.Context) ([]Shift, error)
	Create(ctx context.Context, shift Shift) (Shift, error)
	Update(ctx context.Context, shift Shift) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// CountByStream returns how many shifts reference the given stream id.
	CountByStream(ctx context.Context, streamId string) (int, error)
}

type ShiftServiceImpl struct {
	repo ShiftRepo
	bus  *event_bus.EventBus
}

func NewShiftServiceImpl(repo ShiftRepo, bus *event_bus.EventBus) *ShiftServiceImpl {
	return &ShiftServiceImpl{repo: repo, bus: bus}
}

func (s *ShiftServiceImpl) GetAll(ctx context.Context) ([]Shift, error) {
	return s.repo.GetAll(ctx)
}

func (s *ShiftServiceImpl) Create(ctx context.Context, shift Shift) (Shift, error) {
	if err := validate(shift); err != nil {
		return Shift{}, err
	}
	shift.ID = uuid.NewString()
	if err := s.repo.Store(ctx, shift); err != nil {
		return Shift{}, err
	}
	s.publish(ctx, event_bus.ShiftCreatedEvent, shift)
	return shift, nil
}

func (s *ShiftServiceImpl) Update(ctx context.Context, shift Shift) (bool, error) {
	if err := validate(shift); err != nil {
		return false, err
	}
	updated, err := s.repo.Update(ctx, shift)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("shift not updated, probably because it does not exist (%s)", shift.ID)
		return false, nil
	}
	s.publish(ctx, event_bus.ShiftUpdatedEvent, shift)
	return true, nil
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("shift not deleted, probably because it does not exist (%s)", id)
		return false, nil
	}
	return true, nil
}

func (s *ShiftServiceImpl) CountByStream(ctx context.Context, streamId string) (int, error) {
	shifts, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, shift := range shifts {
		if shift.StreamID == streamId {
			count++
		}
	}
	return count, nil
}

func (s *ShiftServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, shift Shift) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.ShiftChanged{
		Id:       shift.ID,
		StreamId: shift.StreamID,
		Date:     shift.Date,
	}))
	if err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}

func validate(shift Shift) error {
	if shift.StreamID == "" {
		return fmt.Errorf("shift must reference an income stream")
	}
	if shift.BreakMinutes < 0 {
		return fmt.Errorf("break minutes must not be negative")
	}
	return nil
}
