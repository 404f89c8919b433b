package expense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/buntdb"
)

const expensesKey = "expenses"

type ExpenseRepo interface {
	GetAll(ctx context.Context) ([]Expense, error)
	Store(ctx context.Context, expense Expense) error
	Update(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ExpenseRepoImpl keeps the whole expense collection as a single JSON value
// under a fixed key, rewritten on every mutation. Last write wins.
type ExpenseRepoImpl struct {
	db *buntdb.DB
}

func NewExpenseRepo(db *buntdb.DB) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r *ExpenseRepoImpl) GetAll(ctx context.Context) ([]Expense, error) {
	var expenses []Expense
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(expensesKey)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &expenses)
	})
	if err != nil {
		err := fmt.Errorf("could not read expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepoImpl) Store(ctx context.Context, expense Expense) error {
	expenses, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	return r.save(append(expenses, expense))
}

func (r *ExpenseRepoImpl) Update(ctx context.Context, expense Expense) (bool, error) {
	expenses, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i, e := range expenses {
		if e.ID == expense.ID {
			expenses[i] = expense
			return true, r.save(expenses)
		}
	}
	return false, nil
}

func (r *ExpenseRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	expenses, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i, e := range expenses {
		if e.ID == id {
			expenses = append(expenses[:i], expenses[i+1:]...)
			return true, r.save(expenses)
		}
	}
	return false, nil
}

func (r *ExpenseRepoImpl) save(expenses []Expense) error {
	err := r.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(expenses)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(expensesKey, string(bs), nil)
		return err
	})
	if err != nil {
		err := fmt.Errorf("could not write expenses: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
