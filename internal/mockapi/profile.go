package mockapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
)

func (s *Server) seekerProfileOf(u *user) api.SeekerProfile {
	return api.SeekerProfile{
		ID:         u.ID,
		User:       u.summary(),
		Headline:   u.Headline,
		Summary:    u.Summary,
		Location:   u.Location,
		Phone:      u.Phone,
		Skills:     append([]api.Skill(nil), u.Skills...),
		Experience: append([]api.Experience(nil), u.Experience...),
		Education:  append([]api.Education(nil), u.Education...),
	}
}

func (s *Server) companyProfileOf(u *user) api.CompanyProfile {
	return api.CompanyProfile{
		ID:       u.ID,
		User:     u.summary(),
		Website:  u.Website,
		Industry: u.Industry,
		Size:     u.Size,
		About:    u.About,
		Location: u.Location,
	}
}

func (s *Server) handleSeekerProfile(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	profile := s.seekerProfileOf(currentUser(r))
	s.state.mu.Unlock()
	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateSeekerProfile(w http.ResponseWriter, r *http.Request) {
	var form api.SeekerProfileForm
	if !s.decode(w, r, &form) {
		return
	}

	u := currentUser(r)
	s.state.mu.Lock()
	u.Headline = form.Headline
	u.Summary = form.Summary
	u.Location = form.Location
	u.Phone = form.Phone
	profile := s.seekerProfileOf(u)
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var skill api.Skill
	if !s.decode(w, r, &skill) {
		return
	}

	skill.ID = uuid.NewString()
	u := currentUser(r)

	s.state.mu.Lock()
	u.Skills = append(u.Skills, skill)
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusCreated, skill)
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i, sk := range u.Skills {
		if sk.ID == id {
			u.Skills = append(u.Skills[:i], u.Skills[i+1:]...)
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "skill removed"})
			return
		}
	}
	notFound(w, "skill")
}

func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	var exp api.Experience
	if !s.decode(w, r, &exp) {
		return
	}

	exp.ID = uuid.NewString()
	u := currentUser(r)

	s.state.mu.Lock()
	u.Experience = append(u.Experience, exp)
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusCreated, exp)
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var exp api.Experience
	if !s.decode(w, r, &exp) {
		return
	}

	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range u.Experience {
		if u.Experience[i].ID == id {
			exp.ID = id
			u.Experience[i] = exp
			httpx.WriteJSON(w, http.StatusOK, exp)
			return
		}
	}
	notFound(w, "experience")
}

func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range u.Experience {
		if u.Experience[i].ID == id {
			u.Experience = append(u.Experience[:i], u.Experience[i+1:]...)
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "experience removed"})
			return
		}
	}
	notFound(w, "experience")
}

func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	var edu api.Education
	if !s.decode(w, r, &edu) {
		return
	}

	edu.ID = uuid.NewString()
	u := currentUser(r)

	s.state.mu.Lock()
	u.Education = append(u.Education, edu)
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusCreated, edu)
}

func (s *Server) handleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range u.Education {
		if u.Education[i].ID == id {
			u.Education = append(u.Education[:i], u.Education[i+1:]...)
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "education removed"})
			return
		}
	}
	notFound(w, "education")
}

// handleDownloadCV fakes the PDF generator with a minimal text body; the
// client only cares that bytes stream back with the right content type.
func (s *Server) handleDownloadCV(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	fmt.Fprintf(w, "%%mock-cv %s <%s>\n", u.Name, u.Email)
}

func (s *Server) handleCompanyProfile(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	profile := s.companyProfileOf(currentUser(r))
	s.state.mu.Unlock()
	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	var form api.CompanyProfileForm
	if !s.decode(w, r, &form) {
		return
	}

	u := currentUser(r)
	s.state.mu.Lock()
	u.Website = form.Website
	u.Industry = form.Industry
	u.Size = form.Size
	u.About = form.About
	u.Location = form.Location
	profile := s.companyProfileOf(u)
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (s *Server) handleCompanyPDF(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="company-profile.pdf"`)
	fmt.Fprintf(w, "%%mock-company-profile %s\n", u.Name)
}
