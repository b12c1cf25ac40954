package treatments

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-treatments/internal/domain/dosage"
	"pet-treatments/internal/domain/periodicity"
	"pet-treatments/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/treatments", func(tr chi.Router) {
		tr.Post("/", createTreatmentHandler(svc))
		tr.Get("/", listTreatmentsHandler(svc))
	})

	r.Route("/treatments/{treatmentID}", func(tr chi.Router) {
		tr.Get("/", getTreatmentHandler(svc))
		tr.Post("/doses", recordDoseHandler(svc))
		tr.Post("/finish", finishTreatmentHandler(svc))
		tr.Get("/preview", previewTreatmentHandler(svc))
	})
}

type progressionPayload struct {
	Direction     dosage.Direction `json:"direction" enums:"stable,increase,decrease"`
	Rate          string           `json:"rate"`
	IntervalDoses int              `json:"interval_doses"`
	TargetDosage  string           `json:"target_dosage,omitempty"`
}

type periodicityPayload struct {
	Kind               periodicity.Kind `json:"kind" enums:"daily,weekly,monthly,custom"`
	CustomIntervalDays *int             `json:"custom_interval_days,omitempty"`
	WeekDays           []int            `json:"week_days,omitempty"`  // 0=domingo ... 6=sábado
	MonthDays          []int            `json:"month_days,omitempty"` // 1-31
}

// createTreatmentRequest es el cuerpo para registrar un tratamiento de una mascota.
type createTreatmentRequest struct {
	MedicationName string             `json:"medication_name"`
	BaseDosage     string             `json:"base_dosage"` // "10mg", "2 comprimidos"
	Progression    progressionPayload `json:"progression"` // opcional; por defecto stable
	Periodicity    periodicityPayload `json:"periodicity"` // opcional; por defecto daily
	DosesGiven     int                `json:"doses_given"`
	Notes          string             `json:"notes"`
	StartedAt      string             `json:"started_at"` // RFC3339, opcional
}

// treatmentResponse es un tratamiento con su dosis vigente ya calculada.
type treatmentResponse struct {
	ID             string             `json:"id"`
	PetID          string             `json:"pet_id"`
	OwnerUserID    string             `json:"owner_user_id"`
	MedicationName string             `json:"medication_name"`
	BaseDosage     string             `json:"base_dosage"`
	Progression    progressionPayload `json:"progression"`
	Periodicity    periodicityPayload `json:"periodicity"`
	DosesGiven     int                `json:"doses_given"`
	Status         Status             `json:"status"`
	Notes          string             `json:"notes"`
	StartedAt      time.Time          `json:"started_at"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	CurrentDosage    string `json:"current_dosage"`
	TargetReached    bool   `json:"target_reached"`
	PeriodicityLabel string `json:"periodicity_label"`
}

type doseResponse struct {
	DoseNumber int               `json:"dose_number"`
	Dosage     string            `json:"dosage"`
	Treatment  treatmentResponse `json:"treatment"`
}

type previewResponse struct {
	TreatmentID string                `json:"treatment_id"`
	Entries     []dosage.PreviewEntry `json:"entries"`
}

// createTreatmentHandler godoc
// @Summary Crear tratamiento
// @Description Registra una medicación para la mascota con su dosis base, progresión y periodicidad. El usuario autenticado queda como dueño del tratamiento. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags treatments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body createTreatmentRequest true "Datos del tratamiento; started_at en formato RFC3339"
// @Success 201 {object} treatmentResponse
// @Failure 400 {string} string "invalid json / started_at inválido / dosis o progresión inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /pets/{petID}/treatments [post]
func createTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var started time.Time
		if v := strings.TrimSpace(req.StartedAt); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "started_at must be RFC3339", http.StatusBadRequest)
				return
			}
			started = t
		}

		t, err := svc.Create(r.Context(), claims.UserID, chi.URLParam(r, "petID"), CreateInput{
			MedicationName: req.MedicationName,
			BaseDosage:     req.BaseDosage,
			Progression: Progression{
				Direction:     req.Progression.Direction,
				Rate:          req.Progression.Rate,
				IntervalDoses: req.Progression.IntervalDoses,
				TargetDosage:  req.Progression.TargetDosage,
			},
			Periodicity: periodicity.Config{
				Kind:               req.Periodicity.Kind,
				CustomIntervalDays: req.Periodicity.CustomIntervalDays,
				WeekDays:           req.Periodicity.WeekDays,
				MonthDays:          req.Periodicity.MonthDays,
			},
			DosesGiven: req.DosesGiven,
			Notes:      req.Notes,
			StartedAt:  started,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeTreatment(w, http.StatusCreated, t)
	}
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos de una mascota
// @Description Lista los tratamientos de la mascota que pertenecen al usuario autenticado, con la dosis vigente calculada. Filtro opcional por status.
// @Tags treatments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param status query string false "active | finished"
// @Success 200 {array} treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/treatments [get]
func listTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			slog.Error("list treatments failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		status := Status(strings.TrimSpace(r.URL.Query().Get("status")))

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			if t.OwnerUserID != claims.UserID {
				continue
			}
			if status != "" && t.Status != status {
				continue
			}
			out = append(out, toTreatmentResponse(t))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getTreatmentHandler godoc
// @Summary Obtener tratamiento
// @Description Devuelve el tratamiento con dosis vigente, si alcanzó el objetivo y el texto de periodicidad. Solo el dueño puede verlo.
// @Tags treatments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200 {object} treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "treatment not found"
// @Router /treatments/{treatmentID} [get]
func getTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := loadOwnedTreatment(w, r, svc)
		if !ok {
			return
		}
		writeTreatment(w, http.StatusOK, t)
	}
}

// recordDoseHandler godoc
// @Summary Registrar una administración
// @Description Suma una dosis dada al tratamiento y devuelve la dosis que correspondía a esa administración.
// @Tags treatments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200 {object} doseResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "treatment not found"
// @Failure 409 {string} string "invalid state (tratamiento finalizado)"
// @Router /treatments/{treatmentID}/doses [post]
func recordDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := loadOwnedTreatment(w, r, svc)
		if !ok {
			return
		}

		rec, err := svc.RecordDose(r.Context(), t.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp, err := toDoseResponse(rec)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// finishTreatmentHandler godoc
// @Summary Finalizar tratamiento
// @Description Marca el tratamiento como finalizado; no admite más dosis.
// @Tags treatments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param treatmentID path string true "ID del tratamiento"
// @Success 200 {object} treatmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "treatment not found"
// @Failure 409 {string} string "invalid state"
// @Router /treatments/{treatmentID}/finish [post]
func finishTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := loadOwnedTreatment(w, r, svc)
		if !ok {
			return
		}

		updated, err := svc.Finish(r.Context(), t.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeTreatment(w, http.StatusOK, updated)
	}
}

// previewTreatmentHandler godoc
// @Summary Proyectar próximas dosis del tratamiento
// @Description Devuelve las próximas dosis a partir de las ya administradas.
// @Tags treatments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param treatmentID path string true "ID del tratamiento"
// @Param count query int false "Cantidad de dosis (1-100). Por defecto 10"
// @Success 200 {object} previewResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "treatment not found"
// @Router /treatments/{treatmentID}/preview [get]
func previewTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := loadOwnedTreatment(w, r, svc)
		if !ok {
			return
		}

		count := dosage.DefaultPreviewCount
		if v := r.URL.Query().Get("count"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxPreviewCount {
				count = n
			}
		}

		entries, err := svc.Preview(r.Context(), t.ID, count)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, previewResponse{TreatmentID: t.ID, Entries: entries})
	}
}

// loadOwnedTreatment resuelve claims + tratamiento + dueño; si algo falla ya respondió.
func loadOwnedTreatment(w http.ResponseWriter, r *http.Request, svc *Service) (Treatment, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Treatment{}, false
	}

	t, err := svc.GetByID(r.Context(), chi.URLParam(r, "treatmentID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return Treatment{}, false
		}
		slog.Error("get treatment failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return Treatment{}, false
	}

	if t.OwnerUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Treatment{}, false
	}
	return t, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, dosage.ErrInvalidFormat),
		errors.Is(err, dosage.ErrUnitMismatch),
		errors.Is(err, dosage.ErrInvalidConfig):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "treatment not found", http.StatusNotFound)
	case errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("treatment operation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeTreatment(w http.ResponseWriter, status int, t Treatment) {
	resp, err := buildTreatmentResponse(t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, status, resp)
}

func toDoseResponse(rec DoseRecord) (doseResponse, error) {
	tr, err := buildTreatmentResponse(rec.Treatment)
	if err != nil {
		return doseResponse{}, err
	}
	return doseResponse{DoseNumber: rec.DoseNumber, Dosage: rec.Dosage, Treatment: tr}, nil
}

// toTreatmentResponse se usa en listados: si el cálculo falla (datos viejos
// inconsistentes) se muestra el tratamiento sin dosis vigente.
func toTreatmentResponse(t Treatment) treatmentResponse {
	resp, err := buildTreatmentResponse(t)
	if err != nil {
		slog.Warn("treatment summary unavailable", "treatment_id", t.ID, "error", err)
		resp = baseTreatmentResponse(t)
	}
	return resp
}

func buildTreatmentResponse(t Treatment) (treatmentResponse, error) {
	sum, err := Summarize(t)
	if err != nil {
		return treatmentResponse{}, err
	}
	resp := baseTreatmentResponse(t)
	resp.CurrentDosage = sum.CurrentDosage
	resp.TargetReached = sum.TargetReached
	resp.PeriodicityLabel = sum.PeriodicityLabel
	return resp, nil
}

func baseTreatmentResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:             t.ID,
		PetID:          t.PetID,
		OwnerUserID:    t.OwnerUserID,
		MedicationName: t.MedicationName,
		BaseDosage:     t.BaseDosage,
		Progression: progressionPayload{
			Direction:     t.Progression.Direction,
			Rate:          t.Progression.Rate,
			IntervalDoses: t.Progression.IntervalDoses,
			TargetDosage:  t.Progression.TargetDosage,
		},
		Periodicity: periodicityPayload{
			Kind:               t.Periodicity.Kind,
			CustomIntervalDays: t.Periodicity.CustomIntervalDays,
			WeekDays:           t.Periodicity.WeekDays,
			MonthDays:          t.Periodicity.MonthDays,
		},
		DosesGiven:       t.DosesGiven,
		Status:           t.Status,
		Notes:            t.Notes,
		StartedAt:        t.StartedAt,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
		PeriodicityLabel: periodicity.Describe(t.Periodicity),
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
