package expense

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/buckyapp/bucky/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dateFormat = "2006-01-02"

type ExpenseDTO struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Method   string  `json:"method"`
	Note     string  `json:"note,omitempty"`
}

type ExpenseHandler struct {
	expenseService ExpenseService
}

func NewExpenseHandler(expenseService ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService}
}

func (handler *ExpenseHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var expenseDTO ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&expenseDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	expense, err := DTOToExpense(expenseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid expense",
			Details: err.Error(),
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	createdExpense, err := handler.expenseService.Create(r.Context(), expense)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(createdExpense)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expenses, err := handler.expenseService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})

	expensesDTO := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		expensesDTO = append(expensesDTO, ExpenseToDTO(expense))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expensesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	expenseId := vars["id"]

	var expenseDTO ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&expenseDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if expenseDTO.ID == "" || expenseDTO.ID != expenseId {
		http.Error(w, "Invalid expense id in request body", http.StatusBadRequest)
		return
	}

	expense, err := DTOToExpense(expenseDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ok, err := handler.expenseService.Update(r.Context(), expense)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expenseDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	expenseId := vars["id"]

	ok, err := handler.expenseService.Delete(r.Context(), expenseId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:       expense.ID,
		Amount:   expense.Amount,
		Category: string(expense.Category),
		Date:     expense.Date.Format(dateFormat),
		Method:   string(expense.Method),
		Note:     expense.Note,
	}
}

func DTOToExpense(dto ExpenseDTO) (Expense, error) {
	category, err := ParseCategory(dto.Category)
	if err != nil {
		return Expense{}, err
	}
	method, err := ParsePaymentMethod(dto.Method)
	if err != nil {
		return Expense{}, err
	}
	date, err := time.Parse(dateFormat, dto.Date)
	if err != nil {
		return Expense{}, err
	}

	return Expense{
		ID:       dto.ID,
		Amount:   dto.Amount,
		Category: category,
		Date:     date,
		Method:   method,
		Note:     dto.Note,
	}, nil
}
