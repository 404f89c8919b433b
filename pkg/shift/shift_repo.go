package shift

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/buntdb"
)

const shiftsKey = "shifts"

type ShiftRepo interface {
	GetAll(ctx context.Context) ([]Shift, error)
	// Get returns nil when no shift with the given id exists.
	Get(ctx context.Context, id string) (*Shift, error)
	Store(ctx context.Context, shift Shift) error
	Update(ctx context.Context, shift Shift) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ShiftRepoImpl keeps the whole shift collection as a single JSON value under
// a fixed key, rewritten on every mutation. Last write wins.
type ShiftRepoImpl struct {
	db *buntdb.DB
}

func NewShiftRepo(db *buntdb.DB) *ShiftRepoImpl {
	return &ShiftRepoImpl{db: db}
}

func (r *ShiftRepoImpl) GetAll(ctx context.Context) ([]Shift, error) {
	var shifts []Shift
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(shiftsKey)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &shifts)
	})
	if err != nil {
		err := fmt.Errorf("could not read shifts: %w", err)
		log.Error(err)
		return nil, err
	}
	return shifts, nil
}

func (r *ShiftRepoImpl) Get(ctx context.Context, id string) (*Shift, error) {
	shifts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range shifts {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *ShiftRepoImpl) Store(ctx context.Context, shift Shift) error {
	shifts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	return r.save(append(shifts, shift))
}

func (r *ShiftRepoImpl) Update(ctx context.Context, shift Shift) (bool, error) {
	shifts, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i, s := range shifts {
		if s.ID == shift.ID {
			shifts[i] = shift
			return true, r.save(shifts)
		}
	}
	return false, nil
}

func (r *ShiftRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	shifts, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i, s := range shifts {
		if s.ID == id {
			shifts = append(shifts[:i], shifts[i+1:]...)
			return true, r.save(shifts)
		}
	}
	return false, nil
}

func (r *ShiftRepoImpl) save(shifts []Shift) error {
	err := r.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(shifts)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(shiftsKey, string(bs), nil)
		return err
	})
	if err != nil {
		err := fmt.Errorf("could not write shifts: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
