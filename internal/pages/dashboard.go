package pages

import (
	"context"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/guard"
	"github.com/mehmetcc/oseek/internal/person"
	"go.uber.org/zap"
)

// DashboardPage shows whichever widget set the cached role calls for.
type DashboardPage struct {
	api    *api.Client
	store  credstore.Store
	logger *zap.Logger

	Seeker  *api.SeekerDashboard
	Company *api.CompanyDashboard
	Admin   *api.AdminDashboard
	Err     string
}

func NewDashboardPage(client *api.Client, store credstore.Store, logger *zap.Logger) *DashboardPage {
	return &DashboardPage{api: client, store: store, logger: logger}
}

func (p *DashboardPage) Load(ctx context.Context) {
	p.Err = ""
	p.Seeker, p.Company, p.Admin = nil, nil, nil

	cred := p.store.Load()
	if cred.User == nil {
		p.Err = "you need to be logged in to see a dashboard"
		return
	}

	switch cred.User.Role {
	case person.RoleSeeker:
		d, err := p.api.SeekerDashboard(ctx)
		if err != nil {
			p.Err = banner(err)
			return
		}
		p.Seeker = d
	case person.RoleCompany:
		d, err := p.api.CompanyDashboard(ctx)
		if err != nil {
			p.Err = banner(err)
			return
		}
		p.Company = d
	case person.RoleAdmin:
		d, err := p.api.AdminDashboard(ctx)
		if err != nil {
			p.Err = banner(err)
			return
		}
		p.Admin = d
	default:
		p.Err = "unknown account role"
	}
}

// Redirect mirrors the guard's login route for convenience in renderers.
func (p *DashboardPage) Redirect() string {
	return guard.LoginRoute
}
