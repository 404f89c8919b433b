package stats

import (
	"time"

	"github.com/buckyapp/bucky/pkg/expense"
)

// Summary is the dashboard roll-up. Monthly figures cover the current
// calendar month and reset each month; lifetime figures are cumulative over
// every shift ever recorded. The two windows are independent.
type Summary struct {
	Year  int
	Month time.Month

	MonthlyGross    float64
	MonthlyNet      float64
	MonthlyExpenses float64
	// NetPosition is the monthly net minus the monthly expenses.
	NetPosition float64

	LifetimeTax   float64
	LifetimeSuper float64

	NetByStream        []StreamNet
	ExpensesByCategory []CategoryTotal
}

// StreamNet is the net received from one income stream in the current month.
type StreamNet struct {
	StreamID string
	Name     string
	Net      float64
}

type CategoryTotal struct {
	Category expense.Category
	Amount   float64
}
