package stream

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type StreamDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	PayRate   float64 `json:"payRate"`
	Frequency string  `json:"frequency"`
	Color     string  `json:"color,omitempty"`

	IsNetPay   bool    `json:"isNetPay"`
	TaxEnabled bool    `json:"taxEnabled"`
	TaxMethod  string  `json:"taxMethod"`
	TaxValue   float64 `json:"taxValue"`

	SuperEnabled bool    `json:"superEnabled"`
	SuperMethod  string  `json:"superMethod"`
	SuperValue   float64 `json:"superValue"`
	SuperType    string  `json:"superType"`
}

type StreamHandler struct {
	streamService StreamService
}

func NewStreamHandler(streamService StreamService) *StreamHandler {
	return &StreamHandler{streamService}
}

func (handler *StreamHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new income stream")
	w.Header().Set("Content-Type", "application/json")

	var streamDTO StreamDTO
	if err := json.NewDecoder(r.Body).Decode(&streamDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stream, err := DTOToStream(streamDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdStream, err := handler.streamService.Create(r.Context(), stream)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	createdStreamDTO := StreamToDTO(createdStream)

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(createdStreamDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *StreamHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	streams, err := handler.streamService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	streamsDTO := make([]StreamDTO, 0, len(streams))
	for _, stream := range streams {
		streamsDTO = append(streamsDTO, StreamToDTO(stream))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(streamsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *StreamHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	streamId := vars["id"]

	var streamDTO StreamDTO
	if err := json.NewDecoder(r.Body).Decode(&streamDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if streamDTO.ID == "" || streamDTO.ID != streamId {
		http.Error(w, "Invalid stream id in request body", http.StatusBadRequest)
		return
	}

	stream, err := DTOToStream(streamDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ok, err := handler.streamService.Update(r.Context(), stream)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Stream not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(streamDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *StreamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	streamId := vars["id"]

	ok, err := handler.streamService.Delete(r.Context(), streamId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Stream not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func StreamToDTO(stream IncomeStream) StreamDTO {
	return StreamDTO{
		ID:           stream.ID,
		Name:         stream.Name,
		Type:         string(stream.Type),
		PayRate:      stream.PayRate,
		Frequency:    string(stream.Frequency),
		Color:        stream.Color,
		IsNetPay:     stream.IsNetPay,
		TaxEnabled:   stream.TaxEnabled,
		TaxMethod:    string(stream.TaxMethod),
		TaxValue:     stream.TaxValue,
		SuperEnabled: stream.SuperEnabled,
		SuperMethod:  string(stream.SuperMethod),
		SuperValue:   stream.SuperValue,
		SuperType:    string(stream.SuperType),
	}
}

func DTOToStream(dto StreamDTO) (IncomeStream, error) {
	incomeType, err := ParseIncomeType(dto.Type)
	if err != nil {
		return IncomeStream{}, err
	}
	frequency, err := ParsePayFrequency(dto.Frequency)
	if err != nil {
		return IncomeStream{}, err
	}
	// Deduction settings may be omitted when the deduction is disabled.
	taxMethod := MethodPercent
	if dto.TaxMethod != "" {
		if taxMethod, err = ParseDeductionMethod(dto.TaxMethod); err != nil {
			return IncomeStream{}, err
		}
	}
	superMethod := MethodPercent
	if dto.SuperMethod != "" {
		if superMethod, err = ParseDeductionMethod(dto.SuperMethod); err != nil {
			return IncomeStream{}, err
		}
	}
	superType := SuperEmployerPaid
	if dto.SuperType != "" {
		if superType, err = ParseSuperType(dto.SuperType); err != nil {
			return IncomeStream{}, err
		}
	}

	return IncomeStream{
		ID:           dto.ID,
		Name:         dto.Name,
		Type:         incomeType,
		PayRate:      dto.PayRate,
		Frequency:    frequency,
		Color:        dto.Color,
		IsNetPay:     dto.IsNetPay,
		TaxEnabled:   dto.TaxEnabled,
		TaxMethod:    taxMethod,
		TaxValue:     dto.TaxValue,
		SuperEnabled: dto.SuperEnabled,
		SuperMethod:  superMethod,
		SuperValue:   dto.SuperValue,
		SuperType:    superType,
	}, nil
}
