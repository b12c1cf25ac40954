package dosage

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pet-treatments/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes expone el calculador sin estado (no requiere auth ni persistencia).
func RegisterRoutes(r chi.Router) {
	r.Route("/dosage", func(dr chi.Router) {
		dr.Post("/compute", computeHandler())
		dr.Post("/preview", previewHandler())
		dr.Post("/target", targetHandler())
	})
}

// progressionRequest es el cuerpo común de los endpoints del calculador.
type progressionRequest struct {
	BaseDosage       string    `json:"base_dosage"`
	Direction        Direction `json:"direction" enums:"stable,increase,decrease"`
	Rate             string    `json:"rate"`           // "10%" o "5mg"
	IntervalDoses    int       `json:"interval_doses"` // > 0 salvo stable
	TargetDosage     string    `json:"target_dosage"`  // opcional
	CurrentDoseCount int       `json:"current_dose_count"`
	Count            int       `json:"count,omitempty"` // solo preview; default 10
}

func (r progressionRequest) config() ProgressionConfig {
	return ProgressionConfig{
		Direction:        r.Direction,
		Rate:             r.Rate,
		IntervalDoses:    r.IntervalDoses,
		TargetDosage:     r.TargetDosage,
		CurrentDoseCount: r.CurrentDoseCount,
	}
}

type computeResponse struct {
	Dosage string `json:"dosage"`
}

type previewResponse struct {
	Entries []PreviewEntry `json:"entries"`
}

type targetResponse struct {
	CurrentDosage string `json:"current_dosage"`
	Reached       bool   `json:"reached"`
}

// maxPreviewCount evita proyecciones gigantes por HTTP.
const maxPreviewCount = 100

// computeHandler godoc
// @Summary Calcular dosis vigente
// @Description Calcula la dosis que corresponde después de `current_dose_count` administraciones, aplicando la progresión (stable/increase/decrease), el intervalo de ajuste y el objetivo opcional.
// @Tags dosage
// @Accept json
// @Produce json
// @Param payload body progressionRequest true "Dosis base y configuración de progresión"
// @Success 200 {object} computeResponse
// @Failure 400 {string} string "invalid json / formato de dosis inválido / unidades incompatibles / configuración inválida"
// @Router /dosage/compute [post]
func computeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req progressionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := Compute(req.BaseDosage, req.config())
		metrics.ObserveCalculation("compute", err)
		if err != nil {
			writeCalcError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, computeResponse{Dosage: d})
	}
}

// previewHandler godoc
// @Summary Proyectar próximas dosis
// @Description Devuelve las próximas `count` dosis (1-100, por defecto 10) a partir de `current_dose_count`, en orden ascendente.
// @Tags dosage
// @Accept json
// @Produce json
// @Param payload body progressionRequest true "Dosis base, configuración de progresión y count"
// @Success 200 {object} previewResponse
// @Failure 400 {string} string "invalid json / formato de dosis inválido / unidades incompatibles / configuración inválida"
// @Router /dosage/preview [post]
func previewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req progressionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		count := req.Count
		if count > maxPreviewCount {
			count = maxPreviewCount
		}

		entries, err := Preview(req.BaseDosage, req.config(), count)
		metrics.ObserveCalculation("preview", err)
		if err != nil {
			writeCalcError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, previewResponse{Entries: entries})
	}
}

// targetHandler godoc
// @Summary Verificar si se alcanzó la dosis objetivo
// @Description Indica si la dosis vigente ya llegó (o pasó) `target_dosage`. Sin objetivo o con progresión estable siempre es false.
// @Tags dosage
// @Accept json
// @Produce json
// @Param payload body progressionRequest true "Dosis base y configuración de progresión con target_dosage"
// @Success 200 {object} targetResponse
// @Failure 400 {string} string "invalid json / formato de dosis inválido / unidades incompatibles / configuración inválida"
// @Router /dosage/target [post]
func targetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req progressionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cfg := req.config()
		current, err := Compute(req.BaseDosage, cfg)
		if err == nil {
			var reached bool
			reached, err = HasReachedTarget(req.BaseDosage, cfg)
			if err == nil {
				metrics.ObserveCalculation("target", nil)
				writeJSON(w, http.StatusOK, targetResponse{CurrentDosage: current, Reached: reached})
				return
			}
		}

		metrics.ObserveCalculation("target", err)
		writeCalcError(w, err)
	}
}

func writeCalcError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidFormat), errors.Is(err, ErrUnitMismatch), errors.Is(err, ErrInvalidConfig):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("dosage calculation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (mismo criterio que en treatments).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
