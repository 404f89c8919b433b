package export

import (
	"context"
	"sort"
	"time"

	"github.com/buckyapp/bucky/pkg/expense"
	"github.com/buckyapp/bucky/pkg/shift"
	"github.com/buckyapp/bucky/pkg/stream"
)

// AuditRow is one line of the audit export: an expense or a paid shift.
type AuditRow struct {
	Date time.Time
	Type string
	// Label is the expense category or the income stream name.
	Label  string
	Amount float64
	Note   string
}

const (
	rowTypeExpense = "Expense"
	rowTypeIncome  = "Income"
)

type ExportService interface {
	AuditRows(ctx context.Context) ([]AuditRow, error)
}

type ExportServiceImpl struct {
	streamRepo  stream.StreamRepo
	shiftRepo   shift.ShiftRepo
	expenseRepo expense.ExpenseRepo
}

func NewExportServiceImpl(
	streamRepo stream.StreamRepo,
	shiftRepo shift.ShiftRepo,
	expenseRepo expense.ExpenseRepo,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		streamRepo:  streamRepo,
		shiftRepo:   shiftRepo,
		expenseRepo: expenseRepo,
	}
}

// AuditRows builds the export record set: every expense, followed by every
// paid shift with the amount that actually hit the bank. Unpaid shifts are
// not part of the audit; a paid shift whose stream was deleted is labelled
// Unknown. Each section is ordered by date.
func (s *ExportServiceImpl) AuditRows(ctx context.Context) ([]AuditRow, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	shifts, err := s.shiftRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	streams, err := s.streamRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	streamNamesById := make(map[string]string, len(streams))
	for _, st := range streams {
		streamNamesById[st.ID] = st.Name
	}

	sort.Slice(expenses, func(i, j int) bool { return expenses[i].Date.Before(expenses[j].Date) })
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].Date.Before(shifts[j].Date) })

	rows := make([]AuditRow, 0, len(expenses)+len(shifts))
	for _, e := range expenses {
		rows = append(rows, AuditRow{
			Date:   e.Date,
			Type:   rowTypeExpense,
			Label:  string(e.Category),
			Amount: e.Amount,
			Note:   e.Note,
		})
	}
	for _, sh := range shifts {
		if !sh.IsPaid {
			continue
		}
		name, ok := streamNamesById[sh.StreamID]
		if !ok {
			name = "Unknown"
		}
		amount := 0.0
		if sh.ActualPaidAmount != nil {
			amount = *sh.ActualPaidAmount
		}
		rows = append(rows, AuditRow{
			Date:   sh.Date,
			Type:   rowTypeIncome,
			Label:  name,
			Amount: amount,
			Note:   "Shift",
		})
	}
	return rows, nil
}
