package stats

import (
	"encoding/json"
	"net/http"
)

type SummaryDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	MonthlyGross    float64 `json:"monthlyGross"`
	MonthlyNet      float64 `json:"monthlyNet"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	NetPosition     float64 `json:"netPosition"`

	LifetimeTax   float64 `json:"lifetimeTax"`
	LifetimeSuper float64 `json:"lifetimeSuper"`

	NetByStream        []StreamNetDTO     `json:"netByStream"`
	ExpensesByCategory []CategoryTotalDTO `json:"expensesByCategory"`
}

type StreamNetDTO struct {
	StreamID string  `json:"streamId"`
	Name     string  `json:"name"`
	Net      float64 `json:"net"`
}

type CategoryTotalDTO struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type StatsHandler struct {
	statsService StatsService
}

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{statsService}
}

func (handler *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := handler.statsService.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(convertToJsonResponse(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func convertToJsonResponse(summary Summary) SummaryDTO {
	netByStream := make([]StreamNetDTO, 0, len(summary.NetByStream))
	for _, sn := range summary.NetByStream {
		netByStream = append(netByStream, StreamNetDTO{
			StreamID: sn.StreamID,
			Name:     sn.Name,
			Net:      sn.Net,
		})
	}
	expensesByCategory := make([]CategoryTotalDTO, 0, len(summary.ExpensesByCategory))
	for _, ct := range summary.ExpensesByCategory {
		expensesByCategory = append(expensesByCategory, CategoryTotalDTO{
			Category: string(ct.Category),
			Amount:   ct.Amount,
		})
	}

	return SummaryDTO{
		Year:               summary.Year,
		Month:              int(summary.Month),
		MonthlyGross:       summary.MonthlyGross,
		MonthlyNet:         summary.MonthlyNet,
		MonthlyExpenses:    summary.MonthlyExpenses,
		NetPosition:        summary.NetPosition,
		LifetimeTax:        summary.LifetimeTax,
		LifetimeSuper:      summary.LifetimeSuper,
		NetByStream:        netByStream,
		ExpensesByCategory: expensesByCategory,
	}
}
