package stats

import (
	"context"
	"time"

	"github.com/buckyapp/bucky/internal/utils"
	"github.com/buckyapp/bucky/pkg/expense"
	"github.com/buckyapp/bucky/pkg/payroll"
	"github.com/buckyapp/bucky/pkg/shift"
	"github.com/buckyapp/bucky/pkg/stream"
	log "github.com/sirupsen/logrus"
)

type StatsService interface {
	Summary(ctx context.Context) (Summary, error)
}

type StatsServiceImpl struct {
	streamRepo  stream.StreamRepo
	shiftRepo   shift.ShiftRepo
	expenseRepo expense.ExpenseRepo
	clock       utils.Clock
}

func NewStatsServiceImpl(
	streamRepo stream.StreamRepo,
	shiftRepo shift.ShiftRepo,
	expenseRepo expense.ExpenseRepo,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		streamRepo:  streamRepo,
		shiftRepo:   shiftRepo,
		expenseRepo: expenseRepo,
		clock:       &utils.SystemClock{},
	}
}

// Summary computes the dashboard figures for the current calendar month plus
// the lifetime tax/super totals. Shifts whose stream no longer exists are
// excluded from every figure.
func (s *StatsServiceImpl) Summary(ctx context.Context) (Summary, error) {
	now := s.clock.Now()
	year, month := now.Year(), now.Month()

	streams, err := s.streamRepo.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	shifts, err := s.shiftRepo.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	streamsById := make(map[string]stream.IncomeStream, len(streams))
	for _, st := range streams {
		streamsById[st.ID] = st
	}

	summary := Summary{Year: year, Month: month}
	netByStreamId := make(map[string]float64)

	orphaned := 0
	for _, sh := range shifts {
		st, ok := streamsById[sh.StreamID]
		if !ok {
			orphaned++
			continue
		}
		breakdown := payroll.Calculate(sh, st)

		// Lifetime window: cumulative, never resets.
		summary.LifetimeTax += breakdown.Tax
		summary.LifetimeSuper += breakdown.Super + breakdown.SuperEmployer

		// Monthly window: current calendar month only.
		if inMonth(sh.Date, year, month) {
			summary.MonthlyGross += breakdown.Gross
			summary.MonthlyNet += breakdown.Net
			netByStreamId[st.ID] += breakdown.Net
		}
	}
	if orphaned > 0 {
		log.Debugf("excluded %d shift(s) referencing deleted streams from stats", orphaned)
	}

	expenseByCategory := make(map[expense.Category]float64)
	for _, e := range expenses {
		if inMonth(e.Date, year, month) {
			summary.MonthlyExpenses += e.Amount
			expenseByCategory[e.Category] += e.Amount
		}
	}
	summary.NetPosition = summary.MonthlyNet - summary.MonthlyExpenses

	for _, st := range streams {
		if net := netByStreamId[st.ID]; net > 0 {
			summary.NetByStream = append(summary.NetByStream, StreamNet{
				StreamID: st.ID,
				Name:     st.Name,
				Net:      net,
			})
		}
	}
	for _, category := range expense.Categories {
		if amount := expenseByCategory[category]; amount > 0 {
			summary.ExpensesByCategory = append(summary.ExpensesByCategory, CategoryTotal{
				Category: category,
				Amount:   amount,
			})
		}
	}

	return summary, nil
}

func inMonth(date time.Time, year int, month time.Month) bool {
	return date.Year() == year && date.Month() == month
}
