package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Income streams
	r.HandleFunc("/api/stream", deps.StreamHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/stream", deps.StreamHandler.Register).Methods("POST")
	r.HandleFunc("/api/stream/{id}", deps.StreamHandler.Update).Methods("PUT")
	r.HandleFunc("/api/stream/{id}", deps.StreamHandler.Delete).Methods("DELETE")

	// Shifts
	r.HandleFunc("/api/shift", deps.ShiftHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/shift", deps.ShiftHandler.Register).Methods("POST")
	r.HandleFunc("/api/shift/{id}", deps.ShiftHandler.Update).Methods("PUT")
	r.HandleFunc("/api/shift/{id}", deps.ShiftHandler.Delete).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Register).Methods("POST")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Dashboard stats
	r.HandleFunc("/api/stats/summary", deps.StatsHandler.GetSummary).Methods("GET")

	// Audit export
	r.HandleFunc("/api/export", deps.ExportHandler.GetAudit).Methods("GET")
}
