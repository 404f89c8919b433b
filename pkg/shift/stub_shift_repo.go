package shift

import "context"

type StubShiftRepo struct {
	data map[string]Shift
}

func NewStubShiftRepo() *StubShiftRepo {
	return &StubShiftRepo{data: map[string]Shift{}}
}

func (s *StubShiftRepo) GetAll(ctx context.Context) ([]Shift, error) {
	shifts := make([]Shift, 0, len(s.data))
	for _, shift := range s.data {
		shifts = append(shifts, shift)
	}
	return shifts, nil
}

func (s *StubShiftRepo) Get(ctx context.Context, id string) (*Shift, error) {
	if shift, ok := s.data[id]; ok {
		return &shift, nil
	}
	return nil, nil
}

func (s *StubShiftRepo) Store(ctx context.Context, shift Shift) error {
	s.data[shift.ID] = shift
	return nil
}

func (s *StubShiftRepo) Update(ctx context.Context, shift Shift) (bool, error) {
	if _, ok := s.data[shift.ID]; !ok {
		return false, nil
	}
	s.data[shift.ID] = shift
	return true, nil
}

func (s *StubShiftRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubShiftRepo) Cleanup() {
	s.data = map[string]Shift{}
}
