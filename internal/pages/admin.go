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

// AdminUsersPage manages accounts. Role changes are the only way a role ever
// moves, and only an admin actor gets here.
type AdminUsersPage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Users       []api.AdminUser
	Err         string
	FieldErrors []httpx.FieldError
}

func NewAdminUsersPage(client *api.Client, store credstore.Store, logger *zap.Logger) *AdminUsersPage {
	return &AdminUsersPage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (p *AdminUsersPage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleAdmin)
}

func (p *AdminUsersPage) Load(ctx context.Context) {
	p.Err = ""
	users, err := p.api.AdminUsers(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Users = users
}

func (p *AdminUsersPage) SetRole(ctx context.Context, userID string, role person.Role) bool {
	p.Err, p.FieldErrors = "", nil

	req := api.UpdateRoleRequest{Role: role}
	if err := p.validator.Struct(req); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	updated, err := p.api.UpdateUserRole(ctx, userID, req)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	for i := range p.Users {
		if p.Users[i].ID == userID {
			p.Users[i] = *updated
		}
	}
	return true
}

func (p *AdminUsersPage) Delete(ctx context.Context, userID string, confirmed bool) bool {
	p.Err = ""
	if !confirmed {
		p.Err = "deleting a user must be confirmed first"
		return false
	}

	if err := p.api.AdminDeleteUser(ctx, userID); err != nil {
		p.Err = banner(err)
		return false
	}

	kept := p.Users[:0]
	for _, u := range p.Users {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	p.Users = kept
	return true
}
