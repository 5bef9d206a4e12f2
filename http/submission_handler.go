package http

import (
	"encoding/json"
	"log"
	"net/http"

	"mortgage-pulse/domain"
	"mortgage-pulse/service"
)

type SubmissionHandler struct {
	service *service.SubmissionService
}

func NewSubmissionHandler(service *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// submissionResponse pairs the stored record with the calculation the wizard
// renders on the confirmation screen.
type submissionResponse struct {
	Submission domain.Submission                `json:"submission"`
	Result     domain.ScenarioCalculationResult `json:"result"`
}

func (h *SubmissionHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	submission, result, err := h.service.Submit(input)
	if err != nil {
		log.Printf("Error submitting lead: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(submissionResponse{
		Submission: submission,
		Result:     result,
	})
}
