package mockapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/mehmetcc/oseek/internal/person"
	"github.com/mehmetcc/oseek/internal/token"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type ctxKey int

const userKey ctxKey = iota

func currentUser(r *http.Request) *user {
	u, _ := r.Context().Value(userKey).(*user)
	return u
}

func (s *Server) issueToken(u *user) (string, error) {
	now := time.Now().UTC()
	claims := &token.Claims{
		Role:  u.Role,
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// withAuth authenticates the bearer token and loads the account, answering
// 401 with a message string just like the real backend.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			s.unauthorized(w, "missing bearer token")
			return
		}
		raw := strings.TrimSpace(auth[len(prefix):])

		var claims token.Claims
		parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		tkn, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		})
		if err != nil || !tkn.Valid {
			s.logger.Debug("token rejected", zap.Error(err))
			s.unauthorized(w, "invalid or expired token")
			return
		}

		s.state.mu.Lock()
		u, ok := s.state.users[claims.Subject]
		s.state.mu.Unlock()
		if !ok {
			s.unauthorized(w, "account no longer exists")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

func (s *Server) requireRole(role person.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := currentUser(r)
			if u == nil || u.Role != role {
				httpx.WriteError(w, http.StatusForbidden, httpx.ErrorBody{
					Message:     "this action needs the " + string(role) + " role",
					MessageCode: httpx.CodeForbidden,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) unauthorized(w http.ResponseWriter, msg string) {
	httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrorBody{
		Message:     msg,
		MessageCode: httpx.CodeUnauthorized,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	s.state.mu.Lock()
	u, ok := s.state.userByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	s.state.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		s.unauthorized(w, "invalid email or password")
		return
	}

	s.writeAuthResponse(w, u)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req api.SignupRequest
	if !s.decode(w, r, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.internalError(w, err)
		return
	}

	s.state.mu.Lock()
	if _, exists := s.state.userByEmail(email); exists {
		s.state.mu.Unlock()
		httpx.WriteError(w, http.StatusConflict, httpx.ErrorBody{
			Message:     "email already exists",
			MessageCode: httpx.CodeConflict,
		})
		return
	}
	u := &user{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         req.Role,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	s.state.addUser(u)
	s.state.mu.Unlock()

	s.writeAuthResponse(w, u)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, currentUser(r).summary())
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req api.ChangePasswordRequest
	if !s.decode(w, r, &req) {
		return
	}

	u := currentUser(r)
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.CurrentPassword)) != nil {
		s.unauthorized(w, "current password is wrong")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.internalError(w, err)
		return
	}

	s.state.mu.Lock()
	u.PasswordHash = hashed
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req api.DeleteAccountRequest
	if !s.decode(w, r, &req) {
		return
	}

	u := currentUser(r)
	confirmed := req.Confirm == "DELETE" ||
		bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) == nil
	if !confirmed {
		s.unauthorized(w, "password is wrong")
		return
	}

	s.state.mu.Lock()
	s.state.removeUser(u.ID)
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

func (s *Server) writeAuthResponse(w http.ResponseWriter, u *user) {
	tok, err := s.issueToken(u)
	if err != nil {
		s.internalError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, api.AuthResponse{
		Token: tok,
		User:  u.summary(),
	})
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("internal error", zap.Error(err))
	httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorBody{
		Message:     "internal server error",
		MessageCode: httpx.CodeInternal,
	})
}
