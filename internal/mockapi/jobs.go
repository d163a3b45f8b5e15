package mockapi

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
)

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	location := strings.ToLower(r.URL.Query().Get("location"))

	s.state.mu.Lock()
	jobs := make([]api.Job, 0, len(s.state.jobs))
	for _, j := range s.state.jobs {
		if q != "" &&
			!strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Description), q) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		jobs = append(jobs, *j)
	}
	s.state.mu.Unlock()

	sort.Slice(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })
	httpx.WriteJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.state.mu.Lock()
	j, ok := s.state.jobs[id]
	s.state.mu.Unlock()
	if !ok {
		notFound(w, "job")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, j)
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var form api.JobForm
	if !s.decode(w, r, &form) {
		return
	}

	u := currentUser(r)
	job := &api.Job{
		ID:          uuid.NewString(),
		CompanyID:   u.ID,
		CompanyName: u.Name,
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		SalaryRange: form.SalaryRange,
		TechStack:   form.TechStack,
		Status:      "open",
		CreatedAt:   time.Now().UTC(),
	}

	s.state.mu.Lock()
	s.state.jobs[job.ID] = job
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusCreated, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	var form api.JobForm
	if !s.decode(w, r, &form) {
		return
	}

	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	j, ok := s.state.jobs[id]
	if !ok {
		notFound(w, "job")
		return
	}
	if j.CompanyID != u.ID {
		httpx.WriteError(w, http.StatusForbidden, httpx.ErrorBody{
			Message:     "you can only edit your own jobs",
			MessageCode: httpx.CodeForbidden,
		})
		return
	}

	j.Title = form.Title
	j.Description = form.Description
	j.Location = form.Location
	j.SalaryRange = form.SalaryRange
	j.TechStack = form.TechStack

	httpx.WriteJSON(w, http.StatusOK, j)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	j, ok := s.state.jobs[id]
	if !ok {
		notFound(w, "job")
		return
	}
	if j.CompanyID != u.ID {
		httpx.WriteError(w, http.StatusForbidden, httpx.ErrorBody{
			Message:     "you can only delete your own jobs",
			MessageCode: httpx.CodeForbidden,
		})
		return
	}

	delete(s.state.jobs, id)
	for appID, app := range s.state.applications {
		if app.JobID == id {
			delete(s.state.applications, appID)
		}
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "job deleted"})
}

func (s *Server) handleMyJobs(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	jobs := make([]api.Job, 0)
	for _, j := range s.state.jobs {
		if j.CompanyID == u.ID {
			jobs = append(jobs, *j)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })
	httpx.WriteJSON(w, http.StatusOK, jobs)
}

// handleRecommendations fakes the AI match with a plain skill/tech overlap.
// Shape matters here, not quality: the client treats the whole thing as an
// opaque score plus breakdown.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	if len(u.Skills) == 0 {
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.ErrorBody{
			Message:     "profile is missing skills",
			MessageCode: httpx.CodeProfileIncomplete,
		})
		return
	}

	skills := make(map[string]bool, len(u.Skills))
	for _, sk := range u.Skills {
		skills[strings.ToLower(sk.Name)] = true
	}

	s.state.mu.Lock()
	recs := make([]api.Recommendation, 0)
	for _, j := range s.state.jobs {
		matched := 0
		for _, tech := range j.TechStack {
			if skills[strings.ToLower(tech)] {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		skillScore := float64(matched) / float64(len(j.TechStack)) * 100
		locScore := 0.0
		if u.Location != "" && strings.EqualFold(u.Location, j.Location) {
			locScore = 100
		}
		recs = append(recs, api.Recommendation{
			Job:   *j,
			Score: 0.8*skillScore + 0.2*locScore,
			Breakdown: map[string]float64{
				"skills":   skillScore,
				"location": locScore,
			},
		})
	}
	s.state.mu.Unlock()

	if len(recs) == 0 {
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrorBody{
			Message:     "no matching jobs found",
			MessageCode: httpx.CodeNoRecommendations,
		})
		return
	}

	sort.Slice(recs, func(i, k int) bool { return recs[i].Score > recs[k].Score })
	httpx.WriteJSON(w, http.StatusOK, recs)
}
