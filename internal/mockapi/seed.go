package mockapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/person"
	"golang.org/x/crypto/bcrypt"
)

// Seed accounts, all with the password "password123".
const seedPassword = "password123"

// seed loads one account per role plus a couple of jobs so a fresh mock is
// immediately browsable.
func (s *Server) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	if err != nil {
		panic(err) // only fails on a broken cost parameter
	}

	now := time.Now().UTC()

	seeker := &user{
		ID:           uuid.NewString(),
		Name:         "Selin Demir",
		Email:        "seeker@oseek.dev",
		Role:         person.RoleSeeker,
		PasswordHash: hash,
		CreatedAt:    now.Add(-72 * time.Hour),
		Headline:     "Backend developer",
		Summary:      "Five years of building APIs and data pipelines.",
		Location:     "Istanbul",
		Skills: []api.Skill{
			{ID: uuid.NewString(), Name: "Go", Level: "advanced"},
			{ID: uuid.NewString(), Name: "PostgreSQL", Level: "intermediate"},
		},
	}
	company := &user{
		ID:           uuid.NewString(),
		Name:         "Acme Robotics",
		Email:        "company@oseek.dev",
		Role:         person.RoleCompany,
		PasswordHash: hash,
		CreatedAt:    now.Add(-48 * time.Hour),
		Website:      "https://acme.example.com",
		Industry:     "Robotics",
		Size:         "51-200",
		About:        "We build warehouse robots.",
		Location:     "Istanbul",
	}
	admin := &user{
		ID:           uuid.NewString(),
		Name:         "Site Admin",
		Email:        "admin@oseek.dev",
		Role:         person.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    now.Add(-96 * time.Hour),
	}

	s.state.addUser(seeker)
	s.state.addUser(company)
	s.state.addUser(admin)

	jobs := []*api.Job{
		{
			ID:          uuid.NewString(),
			CompanyID:   company.ID,
			CompanyName: company.Name,
			Title:       "Senior Go Engineer",
			Description: "Own the fleet coordination service end to end.",
			Location:    "Istanbul",
			SalaryRange: "70k-90k EUR",
			TechStack:   []string{"Go", "PostgreSQL", "Kafka"},
			Status:      "open",
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			CompanyID:   company.ID,
			CompanyName: company.Name,
			Title:       "Frontend Developer",
			Description: "React dashboards for robot operators.",
			Location:    "Remote",
			TechStack:   []string{"TypeScript", "React"},
			Status:      "open",
			CreatedAt:   now.Add(-12 * time.Hour),
		},
	}
	for _, j := range jobs {
		s.state.jobs[j.ID] = j
	}

	s.state.notify(seeker.ID, "welcome to OSEEK", uuid.NewString())
}
