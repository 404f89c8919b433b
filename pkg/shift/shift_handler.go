package shift

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/buckyapp/bucky/internal/rest"
	"github.com/buckyapp/bucky/pkg/payroll"
	"github.com/buckyapp/bucky/pkg/stream"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dateFormat = "2006-01-02"

// StreamProvider resolves the income streams shifts reference.
type StreamProvider func(ctx context.Context) ([]stream.IncomeStream, error)

type ShiftDTO struct {
	ID           string `json:"id"`
	StreamID     string `json:"streamId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BreakMinutes int    `json:"breakMinutes"`

	IsPaid           bool     `json:"isPaid"`
	ActualPaidAmount *float64 `json:"actualPaidAmount,omitempty"`

	OverrideGross *float64 `json:"overrideGross,omitempty"`
	OverrideTax   *float64 `json:"overrideTax,omitempty"`
	OverrideSuper *float64 `json:"overrideSuper,omitempty"`
	OverrideNet   *float64 `json:"overrideNet,omitempty"`

	// Response-only fields, filled in when the referenced stream resolves.
	Hours     *float64      `json:"hours,omitempty"`
	Breakdown *BreakdownDTO `json:"breakdown,omitempty"`
}

type BreakdownDTO struct {
	Gross         float64 `json:"gross"`
	Tax           float64 `json:"tax"`
	Super         float64 `json:"super"`
	SuperEmployer float64 `json:"superEmployer"`
	Net           float64 `json:"net"`
}

type ShiftHandler struct {
	shiftService   ShiftService
	streamProvider StreamProvider
}

func NewShiftHandler(shiftService ShiftService, streamProvider StreamProvider) *ShiftHandler {
	return &ShiftHandler{shiftService, streamProvider}
}

func (handler *ShiftHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new shift")
	w.Header().Set("Content-Type", "application/json")

	var shiftDTO ShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&shiftDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	shift, err := DTOToShift(shiftDTO)
	if err != nil {
		writeBadRequest(w, "Invalid shift", err)
		return
	}

	createdShift, err := handler.shiftService.Create(r.Context(), shift)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ShiftToDTO(createdShift)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetAll lists all shifts, newest first. When a shift's stream still exists
// the response embeds the worked hours and the computed pay breakdown;
// orphaned shifts are returned without them.
func (handler *ShiftHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	shifts, err := handler.shiftService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	streams, err := handler.streamProvider(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	streamsById := make(map[string]stream.IncomeStream, len(streams))
	for _, s := range streams {
		streamsById[s.ID] = s
	}

	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].Date.After(shifts[j].Date)
	})

	shiftsDTO := make([]ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		dto := ShiftToDTO(s)
		if st, ok := streamsById[s.StreamID]; ok {
			hours := s.WorkedHours()
			breakdown := payroll.Calculate(s, st)
			dto.Hours = &hours
			dto.Breakdown = &BreakdownDTO{
				Gross:         breakdown.Gross,
				Tax:           breakdown.Tax,
				Super:         breakdown.Super,
				SuperEmployer: breakdown.SuperEmployer,
				Net:           breakdown.Net,
			}
		}
		shiftsDTO = append(shiftsDTO, dto)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(shiftsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ShiftHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	shiftId := vars["id"]

	var shiftDTO ShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&shiftDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if shiftDTO.ID == "" || shiftDTO.ID != shiftId {
		http.Error(w, "Invalid shift id in request body", http.StatusBadRequest)
		return
	}

	shift, err := DTOToShift(shiftDTO)
	if err != nil {
		writeBadRequest(w, "Invalid shift", err)
		return
	}
	ok, err := handler.shiftService.Update(r.Context(), shift)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Shift not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(shiftDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ShiftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	shiftId := vars["id"]

	ok, err := handler.shiftService.Delete(r.Context(), shiftId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Shift not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeBadRequest(w http.ResponseWriter, message string, err error) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: err.Error(),
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func ShiftToDTO(shift Shift) ShiftDTO {
	return ShiftDTO{
		ID:               shift.ID,
		StreamID:         shift.StreamID,
		Date:             shift.Date.Format(dateFormat),
		StartTime:        shift.StartTime.String(),
		EndTime:          shift.EndTime.String(),
		BreakMinutes:     shift.BreakMinutes,
		IsPaid:           shift.IsPaid,
		ActualPaidAmount: shift.ActualPaidAmount,
		OverrideGross:    shift.OverrideGross,
		OverrideTax:      shift.OverrideTax,
		OverrideSuper:    shift.OverrideSuper,
		OverrideNet:      shift.OverrideNet,
	}
}

func DTOToShift(dto ShiftDTO) (Shift, error) {
	date, err := time.Parse(dateFormat, dto.Date)
	if err != nil {
		return Shift{}, err
	}
	startTime, err := ParseClockTime(dto.StartTime)
	if err != nil {
		return Shift{}, err
	}
	endTime, err := ParseClockTime(dto.EndTime)
	if err != nil {
		return Shift{}, err
	}

	return Shift{
		ID:               dto.ID,
		StreamID:         dto.StreamID,
		Date:             date,
		StartTime:        startTime,
		EndTime:          endTime,
		BreakMinutes:     dto.BreakMinutes,
		IsPaid:           dto.IsPaid,
		ActualPaidAmount: dto.ActualPaidAmount,
		OverrideGross:    dto.OverrideGross,
		OverrideTax:      dto.OverrideTax,
		OverrideSuper:    dto.OverrideSuper,
		OverrideNet:      dto.OverrideNet,
	}, nil
}
