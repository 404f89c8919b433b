package stream

import "context"

type StubStreamRepo struct {
	data map[string]IncomeStream
}

func NewStubStreamRepo() *StubStreamRepo {
	return &StubStreamRepo{data: map[string]IncomeStream{}}
}

func (s *StubStreamRepo) GetAll(ctx context.Context) ([]IncomeStream, error) {
	streams := make([]IncomeStream, 0, len(s.data))
	for _, stream := range s.data {
		streams = append(streams, stream)
	}
	return streams, nil
}

func (s *StubStreamRepo) Get(ctx context.Context, id string) (*IncomeStream, error) {
	if stream, ok := s.data[id]; ok {
		return &stream, nil
	}
	return nil, nil
}

func (s *StubStreamRepo) Store(ctx context.Context, stream IncomeStream) error {
	s.data[stream.ID] = stream
	return nil
}

func (s *StubStreamRepo) Update(ctx context.Context, stream IncomeStream) (bool, error) {
	if _, ok := s.data[stream.ID]; !ok {
		return false, nil
	}
	s.data[stream.ID] = stream
	return true, nil
}

func (s *StubStreamRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubStreamRepo) Cleanup() {
	s.data = map[string]IncomeStream{}
}
