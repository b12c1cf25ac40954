package periodicity

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Post("/periodicity/format", formatHandler())
}

// formatRequest replica cómo se guarda la periodicidad: días como arreglo JSON serializado.
type formatRequest struct {
	Kind               string `json:"kind" enums:"daily,weekly,monthly,custom"`
	CustomIntervalDays *int   `json:"custom_interval_days,omitempty"`
	WeekDays           string `json:"week_days,omitempty"`  // ej: "[1,3,5]"
	MonthDays          string `json:"month_days,omitempty"` // ej: "[1,15]"
}

type formatResponse struct {
	Label string `json:"label"`
}

// formatHandler godoc
// @Summary Describir una periodicidad
// @Description Convierte una periodicidad (daily/weekly/monthly/custom + días serializados) en texto legible. Un payload de días mal formado devuelve la etiqueta genérica del tipo.
// @Tags periodicity
// @Accept json
// @Produce json
// @Param payload body formatRequest true "Periodicidad"
// @Success 200 {object} formatResponse
// @Failure 400 {string} string "invalid json"
// @Router /periodicity/format [post]
func formatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req formatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		label := Format(req.Kind, req.CustomIntervalDays, req.WeekDays, req.MonthDays)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(formatResponse{Label: label})
	}
}
