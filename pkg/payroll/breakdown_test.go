package payroll

import (
	"testing"
	"time"

	shift "github.com/buckyapp/bucky/internal/shiftcore"
	"github.com/buckyapp/bucky/pkg/stream"
	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func hourlyStream() stream.IncomeStream {
	return stream.IncomeStream{
		ID:           "stream-1",
		Name:         "Cafe",
		Type:         stream.IncomeTypeHourly,
		PayRate:      28.50,
		TaxEnabled:   true,
		TaxMethod:    stream.MethodPercent,
		TaxValue:     15,
		SuperEnabled: true,
		SuperMethod:  stream.MethodPercent,
		SuperValue:   11.5,
		SuperType:    stream.SuperEmployerPaid,
	}
}

// 09:00 to 17:00 with a 30 minute break is 7.5 worked hours.
func standardShift() shift.Shift {
	return shift.Shift{
		ID:           "shift-1",
		StreamID:     "stream-1",
		Date:         time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    shift.ClockTime{Hour: 9, Minute: 0},
		EndTime:      shift.ClockTime{Hour: 17, Minute: 0},
		BreakMinutes: 30,
	}
}

func TestCalculate_HourlyWithEmployerSuper(t *testing.T) {
	b := Calculate(standardShift(), hourlyStream())

	assert.InDelta(t, 213.75, b.Gross, delta)
	assert.InDelta(t, 32.0625, b.Tax, delta)
	assert.InDelta(t, 0, b.Super, delta)
	assert.InDelta(t, 24.58125, b.SuperEmployer, delta)
	// Employer super sits on top of gross and never reduces net.
	assert.InDelta(t, 181.6875, b.Net, delta)
}

func TestCalculate_SuperIncludedInGrossReducesNet(t *testing.T) {
	st := hourlyStream()
	st.SuperType = stream.SuperIncludedInGross

	b := Calculate(standardShift(), st)

	assert.InDelta(t, 213.75, b.Gross, delta)
	assert.InDelta(t, 32.0625, b.Tax, delta)
	assert.InDelta(t, 24.58125, b.Super, delta)
	assert.InDelta(t, 0, b.SuperEmployer, delta)
	assert.InDelta(t, 157.10625, b.Net, delta)
}

func TestCalculate_FixedStreamIgnoresHours(t *testing.T) {
	st := stream.IncomeStream{
		ID:      "stream-2",
		Type:    stream.IncomeTypeFixed,
		PayRate: 500,
	}
	s := standardShift()
	s.StreamID = st.ID

	b := Calculate(s, st)

	assert.InDelta(t, 500, b.Gross, delta)
	assert.InDelta(t, 500, b.Net, delta)
	assert.InDelta(t, 0, b.Tax, delta)
}

func TestCalculate_VariableStreamPaysHoursTimesRate(t *testing.T) {
	st := stream.IncomeStream{
		ID:      "stream-3",
		Type:    stream.IncomeTypeVariable,
		PayRate: 40,
	}
	s := standardShift()
	s.StreamID = st.ID

	b := Calculate(s, st)

	assert.InDelta(t, 300, b.Gross, delta)
	assert.InDelta(t, 300, b.Net, delta)
}

func TestCalculate_NetPayStreamSkipsDeductions(t *testing.T) {
	st := hourlyStream()
	st.IsNetPay = true

	b := Calculate(standardShift(), st)

	// Deduction settings are ignored entirely; gross falls back to net.
	assert.InDelta(t, 213.75, b.Net, delta)
	assert.InDelta(t, 213.75, b.Gross, delta)
	assert.InDelta(t, 0, b.Tax, delta)
	assert.InDelta(t, 0, b.Super, delta)
	assert.InDelta(t, 0, b.SuperEmployer, delta)
}

func TestCalculate_FixedMethodDeductionsAreFlatPerShift(t *testing.T) {
	st := hourlyStream()
	st.TaxMethod = stream.MethodFixed
	st.TaxValue = 50
	st.SuperEnabled = false

	b := Calculate(standardShift(), st)

	assert.InDelta(t, 213.75, b.Gross, delta)
	assert.InDelta(t, 50, b.Tax, delta)
	assert.InDelta(t, 163.75, b.Net, delta)
}

func TestCalculate_DisabledDeductionsComputeNothing(t *testing.T) {
	st := hourlyStream()
	st.TaxEnabled = false
	st.SuperEnabled = false

	b := Calculate(standardShift(), st)

	assert.InDelta(t, 213.75, b.Gross, delta)
	assert.InDelta(t, 0, b.Tax, delta)
	assert.InDelta(t, 213.75, b.Net, delta)
}

func TestCalculate_OverridesWin(t *testing.T) {
	s := standardShift()
	s.OverrideGross = ptr(1000.0)
	s.OverrideTax = ptr(100.0)
	s.OverrideNet = ptr(850.0)

	b := Calculate(s, hourlyStream())

	assert.InDelta(t, 1000, b.Gross, delta)
	assert.InDelta(t, 100, b.Tax, delta)
	assert.InDelta(t, 850, b.Net, delta)
	// Employer super is still the computed value.
	assert.InDelta(t, 24.58125, b.SuperEmployer, delta)
}

func TestCalculate_ActualPaidAmountReplacesNet(t *testing.T) {
	s := standardShift()
	s.IsPaid = true
	s.ActualPaidAmount = ptr(150.0)

	b := Calculate(s, hourlyStream())

	assert.InDelta(t, 150, b.Net, delta)
	// Other figures stay computed.
	assert.InDelta(t, 213.75, b.Gross, delta)
	assert.InDelta(t, 32.0625, b.Tax, delta)
}

func TestCalculate_OverrideNetBeatsActualPaidAmount(t *testing.T) {
	s := standardShift()
	s.IsPaid = true
	s.ActualPaidAmount = ptr(150.0)
	s.OverrideNet = ptr(175.0)

	b := Calculate(s, hourlyStream())

	assert.InDelta(t, 175, b.Net, delta)
}

func TestCalculate_UnpaidShiftIgnoresActualPaidAmount(t *testing.T) {
	s := standardShift()
	s.ActualPaidAmount = ptr(150.0)

	b := Calculate(s, hourlyStream())

	assert.InDelta(t, 181.6875, b.Net, delta)
}

func TestBreakdown_Add(t *testing.T) {
	a := Breakdown{Gross: 100, Tax: 10, Super: 5, SuperEmployer: 11, Net: 85}
	b := Breakdown{Gross: 200, Tax: 20, Super: 0, SuperEmployer: 22, Net: 180}

	sum := a.Add(b)

	assert.InDelta(t, 300, sum.Gross, delta)
	assert.InDelta(t, 30, sum.Tax, delta)
	assert.InDelta(t, 5, sum.Super, delta)
	assert.InDelta(t, 33, sum.SuperEmployer, delta)
	assert.InDelta(t, 265, sum.Net, delta)
}

func ptr(f float64) *float64 {
	return &f
}
