package stream

import "fmt"

// IncomeType determines how a shift's base pay is derived from the rate.
type IncomeType string

const (
	IncomeTypeHourly   IncomeType = "HOURLY"
	IncomeTypeFixed    IncomeType = "FIXED"
	IncomeTypeVariable IncomeType = "VARIABLE"
)

type PayFrequency string

const (
	FrequencyWeekly      PayFrequency = "WEEKLY"
	FrequencyFortnightly PayFrequency = "FORTNIGHTLY"
	FrequencyMonthly     PayFrequency = "MONTHLY"
	FrequencyIrregular   PayFrequency = "IRREGULAR"
)

// DeductionMethod selects between a percentage of gross and a flat
// per-shift currency amount.
type DeductionMethod string

const (
	MethodPercent DeductionMethod = "PERCENT"
	MethodFixed   DeductionMethod = "FIXED"
)

type SuperType string

const (
	// SuperEmployerPaid is paid on top of gross and never reaches net pay.
	SuperEmployerPaid SuperType = "EMPLOYER_PAID"
	// SuperIncludedInGross is set aside from gross and reduces net pay.
	SuperIncludedInGross SuperType = "INCLUDED_IN_GROSS"
)

// IncomeStream is a named pay configuration, one per income source.
// PayRate is an hourly rate for hourly/variable streams and a fixed
// per-period amount for fixed streams. When IsNetPay is set the rate is the
// amount actually received and no deductions are computed from it.
type IncomeStream struct {
	ID        string
	Name      string
	Type      IncomeType
	PayRate   float64
	Frequency PayFrequency
	Color     string

	IsNetPay   bool
	TaxEnabled bool
	TaxMethod  DeductionMethod
	TaxValue   float64

	SuperEnabled bool
	SuperMethod  DeductionMethod
	SuperValue   float64
	SuperType    SuperType
}

func ParseIncomeType(s string) (IncomeType, error) {
	switch IncomeType(s) {
	case IncomeTypeHourly, IncomeTypeFixed, IncomeTypeVariable:
		return IncomeType(s), nil
	}
	return "", fmt.Errorf("unknown income type: %q", s)
}

func ParsePayFrequency(s string) (PayFrequency, error) {
	switch PayFrequency(s) {
	case FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly, FrequencyIrregular:
		return PayFrequency(s), nil
	}
	return "", fmt.Errorf("unknown pay frequency: %q", s)
}

func ParseDeductionMethod(s string) (DeductionMethod, error) {
	switch DeductionMethod(s) {
	case MethodPercent, MethodFixed:
		return DeductionMethod(s), nil
	}
	return "", fmt.Errorf("unknown deduction method: %q", s)
}

func ParseSuperType(s string) (SuperType, error) {
	switch SuperType(s) {
	case SuperEmployerPaid, SuperIncludedInGross:
		return SuperType(s), nil
	}
	return "", fmt.Errorf("unknown super type: %q", s)
}
