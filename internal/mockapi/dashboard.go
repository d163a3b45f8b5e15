package mockapi

import (
	"net/http"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/mehmetcc/oseek/internal/person"
)

func (s *Server) handleSeekerDashboard(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	d := api.SeekerDashboard{
		WishlistCount:       len(s.state.wishlist[u.ID]),
		ProfileCompleteness: profileCompleteness(u),
	}
	for _, app := range s.state.applications {
		if app.SeekerID != u.ID {
			continue
		}
		d.ApplicationsTotal++
		if app.Status == api.ApplicationApplied || app.Status == api.ApplicationReviewed {
			d.ApplicationsPending++
		}
	}
	for _, n := range s.state.notifications[u.ID] {
		if !n.Read {
			d.UnreadNotifications++
		}
	}

	httpx.WriteJSON(w, http.StatusOK, d)
}

func (s *Server) handleCompanyDashboard(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var d api.CompanyDashboard
	mine := make(map[string]bool)
	for id, j := range s.state.jobs {
		if j.CompanyID == u.ID {
			mine[id] = true
			if j.Status == "open" {
				d.OpenJobs++
			}
		}
	}
	for _, app := range s.state.applications {
		if !mine[app.JobID] {
			continue
		}
		d.TotalApplicants++
		if app.Status == api.ApplicationApplied {
			d.NewApplicants++
		}
	}
	for _, n := range s.state.notifications[u.ID] {
		if !n.Read {
			d.UnreadNotifications++
		}
	}

	httpx.WriteJSON(w, http.StatusOK, d)
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	d := api.AdminDashboard{
		TotalUsers:        len(s.state.users),
		JobsTotal:         len(s.state.jobs),
		ApplicationsTotal: len(s.state.applications),
	}
	for _, u := range s.state.users {
		switch u.Role {
		case person.RoleSeeker:
			d.Seekers++
		case person.RoleCompany:
			d.Companies++
		}
	}

	httpx.WriteJSON(w, http.StatusOK, d)
}

// profileCompleteness weighs the profile sections the recommendation engine
// cares about. Rough on purpose.
func profileCompleteness(u *user) float64 {
	total, filled := 5.0, 0.0
	if u.Headline != "" {
		filled++
	}
	if u.Summary != "" {
		filled++
	}
	if len(u.Skills) > 0 {
		filled++
	}
	if len(u.Experience) > 0 {
		filled++
	}
	if len(u.Education) > 0 {
		filled++
	}
	return filled / total * 100
}
