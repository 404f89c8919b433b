package expense

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryRent          Category = "Rent"
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategorySubscriptions Category = "Subscriptions"
	CategoryUtilities     Category = "Utilities"
	CategorySocial        Category = "Social"
	CategoryMisc          Category = "Miscellaneous"
)

// Categories lists every expense category in display order.
var Categories = []Category{
	CategoryRent,
	CategoryFood,
	CategoryTransport,
	CategorySubscriptions,
	CategoryUtilities,
	CategorySocial,
	CategoryMisc,
}

type PaymentMethod string

const (
	MethodCash PaymentMethod = "CASH"
	MethodCard PaymentMethod = "CARD"
	MethodBank PaymentMethod = "BANK"
)

// Expense is a single spend record. It has no relationship to any other
// entity.
type Expense struct {
	ID       string
	Amount   float64
	Category Category
	Date     time.Time
	Method   PaymentMethod
	Note     string
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category: %q", s)
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodCard, MethodBank:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method: %q", s)
}
