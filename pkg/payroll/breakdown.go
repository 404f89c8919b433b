// Package payroll decomposes a shift's pay into gross, tax, superannuation,
// and net figures based on the income stream's deduction configuration.
// Everything here is a pure function of its inputs.
package payroll

import (
	shift "github.com/buckyapp/bucky/internal/shiftcore"
	"github.com/buckyapp/bucky/pkg/stream"
)

// Breakdown is the five-field decomposition of a shift's pay.
// Super is superannuation set aside from the worker's pay; SuperEmployer is
// an employer contribution on top of gross that never reaches net. At most
// one of the two is non-zero for a computed breakdown.
type Breakdown struct {
	Gross         float64
	Tax           float64
	Super         float64
	SuperEmployer float64
	Net           float64
}

// Add sums two breakdowns field-wise.
func (b Breakdown) Add(other Breakdown) Breakdown {
	return Breakdown{
		Gross:         b.Gross + other.Gross,
		Tax:           b.Tax + other.Tax,
		Super:         b.Super + other.Super,
		SuperEmployer: b.SuperEmployer + other.SuperEmployer,
		Net:           b.Net + other.Net,
	}
}

// Calculate derives the pay breakdown for a shift under the given stream
// configuration. The stream must be the one the shift references; callers
// that cannot resolve the reference must skip the shift instead.
//
// Fixed streams pay the rate per period regardless of hours; hourly and
// variable streams pay hours × rate. A net-pay stream's amount is taken as
// what actually hits the bank: no deductions are computed and gross is
// reported equal to net as a display fallback. Fixed-method tax and super
// are flat per-shift amounts, not scaled by hours. Overrides are applied
// last and always win; for net the precedence is override, then the actual
// paid amount of a paid shift, then the computed value.
func Calculate(s shift.Shift, st stream.IncomeStream) Breakdown {
	var baseAmount float64
	if st.Type == stream.IncomeTypeFixed {
		baseAmount = st.PayRate
	} else {
		baseAmount = s.WorkedHours() * st.PayRate
	}

	var gross, tax, superAmount, superEmployer, net float64

	if st.IsNetPay {
		net = baseAmount
		gross = baseAmount
	} else {
		gross = baseAmount

		if st.TaxEnabled {
			tax = deduction(st.TaxMethod, st.TaxValue, gross)
		}

		if st.SuperEnabled {
			calculatedSuper := deduction(st.SuperMethod, st.SuperValue, gross)
			if st.SuperType == stream.SuperIncludedInGross {
				superAmount = calculatedSuper
			} else {
				superEmployer = calculatedSuper
			}
		}

		net = gross - tax - superAmount
	}

	if s.IsPaid && s.ActualPaidAmount != nil {
		net = *s.ActualPaidAmount
	}

	return Breakdown{
		Gross:         override(s.OverrideGross, gross),
		Tax:           override(s.OverrideTax, tax),
		Super:         override(s.OverrideSuper, superAmount),
		SuperEmployer: superEmployer,
		Net:           override(s.OverrideNet, net),
	}
}

func deduction(method stream.DeductionMethod, value, gross float64) float64 {
	if method == stream.MethodPercent {
		return gross * (value / 100)
	}
	return value
}

func override(o *float64, computed float64) float64 {
	if o != nil {
		return *o
	}
	return computed
}
