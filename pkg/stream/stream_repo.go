package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/buntdb"
)

const streamsKey = "streams"

type StreamRepo interface {
	GetAll(ctx context.Context) ([]IncomeStream, error)
	// Get returns nil when no stream with the given id exists.
	Get(ctx context.Context, id string) (*IncomeStream, error)
	Store(ctx context.Context, stream IncomeStream) error
	Update(ctx context.Context, stream IncomeStream) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// StreamRepoImpl keeps the whole stream collection as a single JSON value
// under a fixed key, rewritten on every mutation. Last write wins.
type StreamRepoImpl struct {
	db *buntdb.DB
}

func NewStreamRepo(db *buntdb.DB) *StreamRepoImpl {
	return &StreamRepoImpl{db: db}
}

func (r *StreamRepoImpl) GetAll(ctx context.Context) ([]IncomeStream, error) {
	var streams []IncomeStream
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(streamsKey)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &streams)
	})
	if err != nil {
		err := fmt.Errorf("could not read streams: %w", err)
		log.Error(err)
		return nil, err
	}
	return streams, nil
}

func (r *StreamRepoImpl) Get(ctx context.Context, id string) (*IncomeStream, error) {
	streams, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range streams {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *StreamRepoImpl) Store(ctx context.Context, stream IncomeStream) error {
	streams, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	return r.save(append(streams, stream))
}

func (r *StreamRepoImpl) Update(ctx context.Context, stream IncomeStream) (bool, error) {
	streams, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i, s := range streams {
		if s.ID == stream.ID {
			streams[i] = stream
			return true, r.save(streams)
		}
	}
	return false, nil
}

func (r *StreamRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	streams, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i, s := range streams {
		if s.ID == id {
			streams = append(streams[:i], streams[i+1:]...)
			return true, r.save(streams)
		}
	}
	return false, nil
}

func (r *StreamRepoImpl) save(streams []IncomeStream) error {
	err := r.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(streams)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(streamsKey, string(bs), nil)
		return err
	})
	if err != nil {
		err := fmt.Errorf("could not write streams: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
