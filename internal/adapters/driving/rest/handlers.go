package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"configured": s.configured(),
	})
}

func (s *Server) handleActivationCode(w http.ResponseWriter, r *http.Request) {
	out, err := s.site.GetActivationCode(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func (s *Server) handleGetStaffByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "staff id must be an integer")
		return
	}
	out, err := s.staff.GetStaffByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTeacherSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "staff id must be an integer")
		return
	}
	q := r.URL.Query()
	out, err := s.staff.GetTeacherSchedule(r.Context(), id, q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetClientByID(w http.ResponseWriter, r *http.Request) {
	out, err := s.client.GetClientByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var params domain.ClientUpdate
	params.ClientID = chi.URLParam(r, "id")
	if err := s.decodeValid(r, &params); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// The path is authoritative for the target client.
	params.ClientID = chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, s.client.UpdateClient(r.Context(), params))
}

func (s *Server) handleClientVisits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.VisitFilter{
		ClientID:  chi.URLParam(r, "id"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	out, err := s.client.GetClientVisits(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClientMemberships(w http.ResponseWriter, r *http.Request) {
	locationID, _ := strconv.Atoi(r.URL.Query().Get("locationId"))
	out, err := s.client.GetClientMemberships(r.Context(), chi.URLParam(r, "id"), locationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClientContracts(w http.ResponseWriter, r *http.Request) {
	out, err := s.client.GetClientContracts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClientBalances(w http.ResponseWriter, r *http.Request) {
	out, err := s.client.GetClientAccountBalances(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClientEnrollments(w http.ResponseWriter, r *http.Request) {
	out, err := s.enrollment.GetClientEnrollments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClientArrival(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LocationID int `json:"locationId" validate:"required"`
	}
	if err := s.decodeValid(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result := s.client.AddClientArrival(r.Context(), chi.URLParam(r, "id"), body.LocationID)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetClassByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "class id must be an integer")
		return
	}
	out, err := s.class.GetClassByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "appointment id must be an integer")
		return
	}
	var params domain.AppointmentUpdate
	params.AppointmentID = id
	if err := s.decodeValid(r, &params); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params.AppointmentID = id
	writeJSON(w, http.StatusOK, s.appointment.UpdateAppointment(r.Context(), params))
}

func (s *Server) handleSyncRun(w http.ResponseWriter, r *http.Request) {
	if entity := r.URL.Query().Get("entity"); entity != "" {
		result, err := s.sync.SyncEntity(r.Context(), domain.SyncEntity(entity))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	run, err := s.sync.SyncAll(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSyncInProgress) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	run, states, err := s.sync.Status(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no sync has run yet")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"lastRun": run,
		"states":  states,
	})
}
