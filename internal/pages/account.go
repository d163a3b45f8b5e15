package pages

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/httpx"
	"go.uber.org/zap"
)

// DeleteConfirmPhrase is the literal string a user may type instead of
// re-entering their password when deleting the account.
const DeleteConfirmPhrase = "DELETE"

type AccountPage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Err         string
	FieldErrors []httpx.FieldError
}

func NewAccountPage(client *api.Client, store credstore.Store, logger *zap.Logger) *AccountPage {
	return &AccountPage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (p *AccountPage) ChangePassword(ctx context.Context, form api.ChangePasswordRequest) bool {
	p.Err, p.FieldErrors = "", nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	if err := p.api.ChangePassword(ctx, form); err != nil {
		p.Err = banner(err)
		return false
	}
	return true
}

// DeleteAccount requires either the re-entered password or the literal
// confirmation phrase before any request goes out. Success wipes the store.
func (p *AccountPage) DeleteAccount(ctx context.Context, password, confirmText string) bool {
	p.Err = ""

	if password == "" && confirmText != DeleteConfirmPhrase {
		p.Err = "re-enter your password or type " + DeleteConfirmPhrase + " to confirm"
		return false
	}

	req := api.DeleteAccountRequest{Password: password, Confirm: confirmText}
	if err := p.api.DeleteAccount(ctx, req); err != nil {
		p.Err = banner(err)
		return false
	}

	if err := p.store.Clear(); err != nil {
		p.logger.Warn("failed to clear credentials after account deletion", zap.Error(err))
	}
	return true
}

// Logout only touches local state; there is no server-side session to end.
func (p *AccountPage) Logout() bool {
	p.Err = ""
	if err := p.store.Clear(); err != nil {
		p.Err = "could not clear your local session"
		return false
	}
	return true
}

func (p *AccountPage) Theme() string {
	return p.store.Theme()
}

func (p *AccountPage) SetTheme(theme string) bool {
	p.Err = ""
	if theme != "light" && theme != "dark" {
		p.Err = "theme must be light or dark"
		return false
	}
	if err := p.store.SaveTheme(theme); err != nil {
		p.Err = "could not save theme preference"
		return false
	}
	return true
}
