package pages

import (
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/mehmetcc/oseek/internal/person"
	"go.uber.org/zap"
)

type SeekerProfilePage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Profile     *api.SeekerProfile
	Err         string
	FieldErrors []httpx.FieldError
}

func NewSeekerProfilePage(client *api.Client, store credstore.Store, logger *zap.Logger) *SeekerProfilePage {
	return &SeekerProfilePage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (p *SeekerProfilePage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleSeeker)
}

// Load fetches the profile and refreshes the cached user summary, the same
// way the browser client did on every profile fetch.
func (p *SeekerProfilePage) Load(ctx context.Context) {
	p.Err = ""
	profile, err := p.api.SeekerProfile(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Profile = profile

	if err := p.store.UpdateUser(&profile.User); err != nil {
		p.logger.Warn("failed to refresh cached user", zap.Error(err))
	}
}

func (p *SeekerProfilePage) Save(ctx context.Context, form api.SeekerProfileForm) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	profile, err := p.api.UpdateSeekerProfile(ctx, form)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	p.Profile = profile
	return true
}

func (p *SeekerProfilePage) AddSkill(ctx context.Context, skill api.Skill) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(skill); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	added, err := p.api.AddSkill(ctx, skill)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	if p.Profile != nil {
		p.Profile.Skills = append(p.Profile.Skills, *added)
	}
	return true
}

func (p *SeekerProfilePage) RemoveSkill(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.RemoveSkill(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	if p.Profile != nil {
		kept := p.Profile.Skills[:0]
		for _, s := range p.Profile.Skills {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		p.Profile.Skills = kept
	}
	return true
}

func (p *SeekerProfilePage) AddExperience(ctx context.Context, exp api.Experience) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(exp); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	added, err := p.api.AddExperience(ctx, exp)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	if p.Profile != nil {
		p.Profile.Experience = append(p.Profile.Experience, *added)
	}
	return true
}

func (p *SeekerProfilePage) RemoveExperience(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.RemoveExperience(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	if p.Profile != nil {
		kept := p.Profile.Experience[:0]
		for _, e := range p.Profile.Experience {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		p.Profile.Experience = kept
	}
	return true
}

func (p *SeekerProfilePage) AddEducation(ctx context.Context, edu api.Education) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(edu); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	added, err := p.api.AddEducation(ctx, edu)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	if p.Profile != nil {
		p.Profile.Education = append(p.Profile.Education, *added)
	}
	return true
}

func (p *SeekerProfilePage) RemoveEducation(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.RemoveEducation(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	if p.Profile != nil {
		kept := p.Profile.Education[:0]
		for _, e := range p.Profile.Education {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		p.Profile.Education = kept
	}
	return true
}

func (p *SeekerProfilePage) DownloadCV(ctx context.Context, w io.Writer) bool {
	p.Err = ""
	if err := p.api.DownloadCV(ctx, w); err != nil {
		p.Err = banner(err)
		return false
	}
	return true
}

type CompanyProfilePage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Profile     *api.CompanyProfile
	Err         string
	FieldErrors []httpx.FieldError
}

func NewCompanyProfilePage(client *api.Client, store credstore.Store, logger *zap.Logger) *CompanyProfilePage {
	return &CompanyProfilePage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (p *CompanyProfilePage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleCompany)
}

func (p *CompanyProfilePage) Load(ctx context.Context) {
	p.Err = ""
	profile, err := p.api.CompanyProfile(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Profile = profile

	if err := p.store.UpdateUser(&profile.User); err != nil {
		p.logger.Warn("failed to refresh cached user", zap.Error(err))
	}
}

func (p *CompanyProfilePage) Save(ctx context.Context, form api.CompanyProfileForm) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	profile, err := p.api.UpdateCompanyProfile(ctx, form)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	p.Profile = profile
	return true
}

func (p *CompanyProfilePage) DownloadPDF(ctx context.Context, w io.Writer) bool {
	p.Err = ""
	if err := p.api.DownloadCompanyPDF(ctx, w); err != nil {
		p.Err = banner(err)
		return false
	}
	return true
}
