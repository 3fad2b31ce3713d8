package dto

import (
	"roombooking/internal/domains/auth/model"
	sessionModel "roombooking/internal/domains/session/model"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) ToCredentials() model.Credentials {
	return model.Credentials{
		Username: strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

type RegisterRequest struct {
	Username string `json:"username"  validate:"required,max=150"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
}

func (r *RegisterRequest) ToRegistration() model.Registration {
	return model.Registration{
		Username: strings.TrimSpace(r.Username),
		Email:    strings.TrimSpace(r.Email),
		FullName: strings.TrimSpace(r.FullName),
		Password: r.Password,
	}
}

// SessionResponse describes the signed-in user. The token is never echoed back.
type SessionResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func (r *SessionResponse) FromModel(sess sessionModel.Session) {
	r.ID = sess.User.ID.String()
	r.Username = sess.User.Username
	r.Email = sess.User.Email
	r.FullName = sess.User.FullName
}
