package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"mortgage-pulse/domain"
	"mortgage-pulse/service"
)

// AdminHandler serves the dashboard metrics, the CSV export and the
// regulatory policy endpoints. Authentication is handled upstream.
type AdminHandler struct {
	analytics *service.AnalyticsService
	policies  *service.PolicyService
}

func NewAdminHandler(
	analytics *service.AnalyticsService,
	policies *service.PolicyService,
) *AdminHandler {
	return &AdminHandler{analytics: analytics, policies: policies}
}

func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := h.analytics.Summary()
	if err != nil {
		log.Printf("Error building summary: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, summary)
}

func (h *AdminHandler) Funnel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	funnel, err := h.analytics.Funnel()
	if err != nil {
		log.Printf("Error building funnel: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, funnel)
}

func (h *AdminHandler) EventBreakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	breakdown, err := h.analytics.EventBreakdown()
	if err != nil {
		log.Printf("Error building event breakdown: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, breakdown)
}

func (h *AdminHandler) ExportSubmissionsCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Buffer the export so an error mid-query never truncates a 200 download.
	var buf bytes.Buffer
	if err := h.analytics.ExportSubmissionsCSV(&buf); err != nil {
		log.Printf("Error exporting submissions: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="submissions.csv"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing csv response: %v", err)
	}
}

// Policy serves GET (current snapshot) and PUT (replace) on the regulatory
// policy.
func (h *AdminHandler) Policy(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, h.policies.Snapshot())

	case http.MethodPut:
		var policy domain.RegulatoryPolicy
		if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.policies.Update(policy); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, h.policies.Snapshot())

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
