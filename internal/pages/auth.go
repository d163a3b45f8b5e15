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

type LoginPage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Err         string
	FieldErrors []httpx.FieldError
	User        *person.Person
}

func NewLoginPage(client *api.Client, store credstore.Store, logger *zap.Logger) *LoginPage {
	return &LoginPage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// Submit validates the form locally, then trades credentials for a token.
// Success persists both token and user; any failure leaves the store alone.
func (p *LoginPage) Submit(ctx context.Context, form api.LoginRequest) bool {
	p.Err, p.FieldErrors, p.User = "", nil, nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	resp, err := p.api.Login(ctx, form)
	if err != nil {
		p.Err = banner(err)
		return false
	}

	if err := p.store.Save(resp.Token, &resp.User); err != nil {
		p.logger.Error("failed to persist credentials", zap.Error(err))
		p.Err = "could not save your session"
		return false
	}
	p.User = &resp.User
	return true
}

type SignupPage struct {
	api       *api.Client
	store     credstore.Store
	validator *validator.Validate
	logger    *zap.Logger

	Err         string
	FieldErrors []httpx.FieldError
	User        *person.Person
}

func NewSignupPage(client *api.Client, store credstore.Store, logger *zap.Logger) *SignupPage {
	return &SignupPage{
		api:       client,
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (p *SignupPage) Submit(ctx context.Context, form api.SignupRequest) bool {
	p.Err, p.FieldErrors, p.User = "", nil, nil

	if err := p.validator.Struct(form); err != nil {
		p.FieldErrors = httpx.ValidationDetails(err)
		p.Err = httpx.ValidationMessage(p.FieldErrors)
		return false
	}

	resp, err := p.api.Signup(ctx, form)
	if err != nil {
		p.Err = banner(err)
		return false
	}

	if err := p.store.Save(resp.Token, &resp.User); err != nil {
		p.logger.Error("failed to persist credentials", zap.Error(err))
		p.Err = "could not save your session"
		return false
	}
	p.User = &resp.User
	return true
}
