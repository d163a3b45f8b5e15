package api

import (
	"time"

	"github.com/mehmetcc/oseek/internal/person"
)

/** auth */

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string      `json:"name"     validate:"required,min=2,max=64"`
	Email    string      `json:"email"    validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Role     person.Role `json:"role"     validate:"required,oneof=seeker company"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  person.Person `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
}

// DeleteAccountRequest needs either the re-entered password or the literal
// confirmation phrase.
type DeleteAccountRequest struct {
	Password string `json:"password,omitempty"`
	Confirm  string `json:"confirm,omitempty"`
}

/** jobs */

type Job struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	SalaryRange string    `json:"salaryRange,omitempty"`
	TechStack   []string  `json:"techStack,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type JobSearch struct {
	Query    string
	Location string
}

type JobForm struct {
	Title       string   `json:"title"       validate:"required,min=3,max=120"`
	Description string   `json:"description" validate:"required,min=10"`
	Location    string   `json:"location"    validate:"required"`
	SalaryRange string   `json:"salaryRange" validate:"omitempty,max=64"`
	TechStack   []string `json:"techStack"   validate:"omitempty,dive,min=1"`
}

/** recommendations: consumed opaquely, score plus breakdown fields */

type Recommendation struct {
	Job       Job                `json:"job"`
	Score     float64            `json:"score"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

/** applications */

type Application struct {
	ID         string    `json:"id"`
	JobID      string    `json:"jobId"`
	JobTitle   string    `json:"jobTitle"`
	SeekerID   string    `json:"seekerId"`
	SeekerName string    `json:"seekerName"`
	Status     string    `json:"status"`
	AppliedAt  time.Time `json:"appliedAt"`
}

const (
	ApplicationApplied   = "applied"
	ApplicationReviewed  = "reviewed"
	ApplicationInterview = "interview"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
	ApplicationWithdrawn = "withdrawn"
)

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter" validate:"omitempty,max=4000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied reviewed interview accepted rejected"`
}

type InterviewRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	Location    string    `json:"location"    validate:"required"`
	Notes       string    `json:"notes"       validate:"omitempty,max=2000"`
}

type ApplicationEmailRequest struct {
	Subject string `json:"subject" validate:"required,max=160"`
	Body    string `json:"body"    validate:"required,max=8000"`
}

/** profiles */

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"  validate:"required,min=1,max=64"`
	Level string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"       validate:"required,max=120"`
	Company     string `json:"company"     validate:"required,max=120"`
	StartDate   string `json:"startDate"   validate:"required"`
	EndDate     string `json:"endDate"     validate:"omitempty"`
	Description string `json:"description" validate:"omitempty,max=4000"`
}

type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"    validate:"required,max=120"`
	Degree    string `json:"degree"    validate:"omitempty,max=120"`
	Field     string `json:"field"     validate:"omitempty,max=120"`
	StartYear int    `json:"startYear" validate:"omitempty,min=1900"`
	EndYear   int    `json:"endYear"   validate:"omitempty,min=1900"`
}

type SeekerProfile struct {
	ID         string       `json:"id"`
	User       person.Person `json:"user"`
	Headline   string       `json:"headline"`
	Summary    string       `json:"summary"`
	Location   string       `json:"location"`
	Phone      string       `json:"phone,omitempty"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

type SeekerProfileForm struct {
	Headline string `json:"headline" validate:"omitempty,max=160"`
	Summary  string `json:"summary"  validate:"omitempty,max=4000"`
	Location string `json:"location" validate:"omitempty,max=120"`
	Phone    string `json:"phone"    validate:"omitempty,max=32"`
}

type CompanyProfile struct {
	ID       string        `json:"id"`
	User     person.Person `json:"user"`
	Website  string        `json:"website"`
	Industry string        `json:"industry"`
	Size     string        `json:"size"`
	About    string        `json:"about"`
	Location string        `json:"location"`
}

type CompanyProfileForm struct {
	Website  string `json:"website"  validate:"omitempty,url"`
	Industry string `json:"industry" validate:"omitempty,max=120"`
	Size     string `json:"size"     validate:"omitempty,max=32"`
	About    string `json:"about"    validate:"omitempty,max=4000"`
	Location string `json:"location" validate:"omitempty,max=120"`
}

/** notifications */

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

/** wishlist */

type WishlistItem struct {
	JobID   string    `json:"jobId"`
	Job     Job       `json:"job"`
	AddedAt time.Time `json:"addedAt"`
}

type WishlistStatus struct {
	Saved bool `json:"saved"`
}

/** connections */

type Connection struct {
	ID            string    `json:"id"`
	RequesterID   string    `json:"requesterId"`
	RequesterName string    `json:"requesterName"`
	AddresseeID   string    `json:"addresseeId"`
	AddresseeName string    `json:"addresseeName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
)

/** admin */

type AdminUser struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      person.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

type UpdateRoleRequest struct {
	Role person.Role `json:"role" validate:"required,oneof=seeker company admin"`
}

/** dashboards */

type SeekerDashboard struct {
	ApplicationsTotal   int     `json:"applicationsTotal"`
	ApplicationsPending int     `json:"applicationsPending"`
	WishlistCount       int     `json:"wishlistCount"`
	UnreadNotifications int     `json:"unreadNotifications"`
	ProfileCompleteness float64 `json:"profileCompleteness"`
}

type CompanyDashboard struct {
	OpenJobs            int `json:"openJobs"`
	TotalApplicants     int `json:"totalApplicants"`
	NewApplicants       int `json:"newApplicants"`
	UnreadNotifications int `json:"unreadNotifications"`
}

type AdminDashboard struct {
	TotalUsers        int `json:"totalUsers"`
	Seekers           int `json:"seekers"`
	Companies         int `json:"companies"`
	JobsTotal         int `json:"jobsTotal"`
	ApplicationsTotal int `json:"applicationsTotal"`
}
