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

// JobsPage is the public job board: list, search, detail. Works logged out.
type JobsPage struct {
	api    *api.Client
	logger *zap.Logger

	Jobs     []api.Job
	Selected *api.Job
	Err      string
}

func NewJobsPage(client *api.Client, logger *zap.Logger) *JobsPage {
	return &JobsPage{api: client, logger: logger}
}

func (p *JobsPage) Load(ctx context.Context, search api.JobSearch) {
	p.Err = ""
	jobs, err := p.api.ListJobs(ctx, search)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Jobs = jobs
}

func (p *JobsPage) Show(ctx context.Context, id string) {
	p.Err = ""
	job, err := p.api.Job(ctx, id)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Selected = job
}

// MyJobsPage is the company-side posting manager.
type MyJobsPage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Jobs        []api.Job
	Err         string
	FieldErrors []httpx.FieldError
}

func NewMyJobsPage(client *api.Client, store credstore.Store, logger *zap.Logger) *MyJobsPage {
	return &MyJobsPage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// Enter re-verifies the company role from the store before anything renders.
func (p *MyJobsPage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleCompany)
}

func (p *MyJobsPage) Load(ctx context.Context) {
	p.Err = ""
	jobs, err := p.api.MyJobs(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Jobs = jobs
}

func (p *MyJobsPage) Create(ctx context.Context, form api.JobForm) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	job, err := p.api.CreateJob(ctx, form)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	p.Jobs = append(p.Jobs, *job)
	return true
}

func (p *MyJobsPage) Update(ctx context.Context, id string, form api.JobForm) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	updated, err := p.api.UpdateJob(ctx, id, form)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	for i := range p.Jobs {
		if p.Jobs[i].ID == id {
			p.Jobs[i] = *updated
		}
	}
	return true
}

// Delete refuses to fire without an explicit confirmation.
func (p *MyJobsPage) Delete(ctx context.Context, id string, confirmed bool) bool {
	p.Err = ""
	if !confirmed {
		p.Err = "deleting a job must be confirmed first"
		return false
	}

	if err := p.api.DeleteJob(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}

	kept := p.Jobs[:0]
	for _, j := range p.Jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	p.Jobs = kept
	return true
}
