package pages

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/mehmetcc/oseek/internal/person"
	"go.uber.org/zap"
)

// ActivityPage is the seeker's application history.
type ActivityPage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Applications []api.Application
	Err          string
	FieldErrors  []httpx.FieldError
}

func NewActivityPage(client *api.Client, store credstore.Store, logger *zap.Logger) *ActivityPage {
	return &ActivityPage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (p *ActivityPage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleSeeker)
}

func (p *ActivityPage) Load(ctx context.Context) {
	p.Err = ""
	apps, err := p.api.MyApplications(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Applications = apps
}

func (p *ActivityPage) Apply(ctx context.Context, jobID string, form api.ApplyRequest) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	app, err := p.api.Apply(ctx, jobID, form)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	p.Applications = append(p.Applications, *app)
	return true
}

func (p *ActivityPage) Withdraw(ctx context.Context, id string, confirmed bool) bool {
	p.Err = ""
	if !confirmed {
		p.Err = "withdrawing an application must be confirmed first"
		return false
	}

	if err := p.api.WithdrawApplication(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	for i := range p.Applications {
		if p.Applications[i].ID == id {
			p.Applications[i].Status = api.ApplicationWithdrawn
		}
	}
	return true
}

// ApplicantsPage is the company's view onto one job's applications.
type ApplicantsPage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Applications []api.Application
	Err          string
	FieldErrors  []httpx.FieldError
}

func NewApplicantsPage(client *api.Client, store credstore.Store, logger *zap.Logger) *ApplicantsPage {
	return &ApplicantsPage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (p *ApplicantsPage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleCompany)
}

func (p *ApplicantsPage) Load(ctx context.Context, jobID string) {
	p.Err = ""
	apps, err := p.api.JobApplications(ctx, jobID)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Applications = apps
}

func (p *ApplicantsPage) UpdateStatus(ctx context.Context, id, status string) bool {
	p.Err, p.FieldErrors = "", nil

	req := api.UpdateApplicationStatusRequest{Status: status}
	if err := p.validator.Struct(req); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	updated, err := p.api.UpdateApplicationStatus(ctx, id, req)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	for i := range p.Applications {
		if p.Applications[i].ID == id {
			p.Applications[i] = *updated
		}
	}
	return true
}

func (p *ApplicantsPage) ScheduleInterview(ctx context.Context, id string, form api.InterviewRequest) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	if err := p.api.ScheduleInterview(ctx, id, form); err != nil {
		p.Err = banner(err)
		return false
	}
	return true
}

func (p *ApplicantsPage) SendEmail(ctx context.Context, id string, form api.ApplicationEmailRequest) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	if err := p.api.SendApplicationEmail(ctx, id, form); err != nil {
		p.Err = banner(err)
		return false
	}
	return true
}
