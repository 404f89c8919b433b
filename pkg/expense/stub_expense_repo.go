package expense

import "context"

type StubExpenseRepo struct {
	data map[string]Expense
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{data: map[string]Expense{}}
}

func (s *StubExpenseRepo) GetAll(ctx context.Context) ([]Expense, error) {
	expenses := make([]Expense, 0, len(s.data))
	for _, expense := range s.data {
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func (s *StubExpenseRepo) Store(ctx context.Context, expense Expense) error {
	s.data[expense.ID] = expense
	return nil
}

func (s *StubExpenseRepo) Update(ctx context.Context, expense Expense) (bool, error) {
	if _, ok := s.data[expense.ID]; !ok {
		return false, nil
	}
	s.data[expense.ID] = expense
	return true, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = map[string]Expense{}
}
