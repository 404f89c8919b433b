package expense

import (
	"context"
	"fmt"

	"github.com/buckyapp/bucky/internal/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ExpenseService interface {
	GetAll(ctx context.Context) ([]Expense, error)
	Create(ctx context.Context, expense Expense) (Expense, error)
	Update(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ExpenseServiceImpl struct {
	repo ExpenseRepo
	bus  *event_bus.EventBus
}

func NewExpenseServiceImpl(repo ExpenseRepo, bus *event_bus.EventBus) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{repo: repo, bus: bus}
}

func (s *ExpenseServiceImpl) GetAll(ctx context.Context) ([]Expense, error) {
	return s.repo.GetAll(ctx)
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	if expense.Amount <= 0 {
		return Expense{}, fmt.Errorf("expense amount must be positive")
	}
	expense.ID = uuid.NewString()
	if err := s.repo.Store(ctx, expense); err != nil {
		return Expense{}, err
	}

	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseCreatedEvent, event_bus.ExpenseCreated{
		Id:       expense.ID,
		Category: string(expense.Category),
		Amount:   expense.Amount,
	}))
	if err != nil {
		log.Warnf("failed to publish expense created event: %v", err)
	}
	return expense, nil
}

func (s *ExpenseServiceImpl) Update(ctx context.Context, expense Expense) (bool, error) {
	if expense.Amount <= 0 {
		return false, fmt.Errorf("expense amount must be positive")
	}
	updated, err := s.repo.Update(ctx, expense)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("expense not updated, probably because it does not exist (%s)", expense.ID)
		return false, nil
	}
	return true, nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%s)", id)
		return false, nil
	}
	return true, nil
}
