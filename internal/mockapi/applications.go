package mockapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
)

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req api.ApplyRequest
	if !s.decode(w, r, &req) {
		return
	}

	jobID := chi.URLParam(r, "jobID")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	j, ok := s.state.jobs[jobID]
	if !ok {
		notFound(w, "job")
		return
	}
	for _, app := range s.state.applications {
		if app.JobID == jobID && app.SeekerID == u.ID && app.Status != api.ApplicationWithdrawn {
			httpx.WriteError(w, http.StatusConflict, httpx.ErrorBody{
				Message:     "you already applied to this job",
				MessageCode: httpx.CodeConflict,
			})
			return
		}
	}

	app := &api.Application{
		ID:         uuid.NewString(),
		JobID:      jobID,
		JobTitle:   j.Title,
		SeekerID:   u.ID,
		SeekerName: u.Name,
		Status:     api.ApplicationApplied,
		AppliedAt:  time.Now().UTC(),
	}
	s.state.applications[app.ID] = app
	s.state.notify(j.CompanyID, u.Name+" applied to "+j.Title, uuid.NewString())

	httpx.WriteJSON(w, http.StatusCreated, app)
}

func (s *Server) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	apps := make([]api.Application, 0)
	for _, app := range s.state.applications {
		if app.SeekerID == u.ID {
			apps = append(apps, *app)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(apps, func(i, k int) bool { return apps[i].AppliedAt.After(apps[k].AppliedAt) })
	httpx.WriteJSON(w, http.StatusOK, apps)
}

func (s *Server) handleJobApplications(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	j, ok := s.state.jobs[jobID]
	if !ok {
		notFound(w, "job")
		return
	}
	if j.CompanyID != u.ID {
		httpx.WriteError(w, http.StatusForbidden, httpx.ErrorBody{
			Message:     "you can only see applicants for your own jobs",
			MessageCode: httpx.CodeForbidden,
		})
		return
	}

	apps := make([]api.Application, 0)
	for _, app := range s.state.applications {
		if app.JobID == jobID {
			apps = append(apps, *app)
		}
	}
	sort.Slice(apps, func(i, k int) bool { return apps[i].AppliedAt.After(apps[k].AppliedAt) })
	httpx.WriteJSON(w, http.StatusOK, apps)
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateApplicationStatusRequest
	if !s.decode(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	app, ok := s.state.applications[id]
	if !ok {
		notFound(w, "application")
		return
	}
	if j, ok := s.state.jobs[app.JobID]; !ok || j.CompanyID != u.ID {
		httpx.WriteError(w, http.StatusForbidden, httpx.ErrorBody{
			Message:     "not your job's application",
			MessageCode: httpx.CodeForbidden,
		})
		return
	}

	app.Status = req.Status
	s.state.notify(app.SeekerID, "your application for "+app.JobTitle+" is now "+req.Status, uuid.NewString())

	httpx.WriteJSON(w, http.StatusOK, app)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	app, ok := s.state.applications[id]
	if !ok || app.SeekerID != u.ID {
		notFound(w, "application")
		return
	}

	app.Status = api.ApplicationWithdrawn
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "application withdrawn"})
}

func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	var req api.InterviewRequest
	if !s.decode(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	app, ok := s.state.applications[id]
	if !ok {
		notFound(w, "application")
		return
	}

	app.Status = api.ApplicationInterview
	s.state.notify(app.SeekerID,
		"interview scheduled for "+app.JobTitle+" at "+req.ScheduledAt.Format(time.RFC3339),
		uuid.NewString())

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "interview scheduled"})
}

func (s *Server) handleApplicationEmail(w http.ResponseWriter, r *http.Request) {
	var req api.ApplicationEmailRequest
	if !s.decode(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	app, ok := s.state.applications[id]
	if !ok {
		notFound(w, "application")
		return
	}

	// no actual mail here, a notification stands in for delivery
	s.state.notify(app.SeekerID, "message about "+app.JobTitle+": "+req.Subject, uuid.NewString())

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "email sent"})
}
