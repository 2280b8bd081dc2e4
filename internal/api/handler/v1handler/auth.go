package v1handler

import (
	"net/http"

	"plasmodocking/pkg/serrors"
)

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type recoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type passwordUpdateRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required"`
	Token       string `json:"token"       validate:"required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	res, err := h.deps.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, loginResponse{AccessToken: res.AccessToken, TokenType: res.TokenType})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) error {
	user := UserFromContext(r.Context())
	if user == nil {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}

	return writeJSON(w, http.StatusOK, map[string]userResponse{"user": newUserResponse(user)})
}

func (h *Handler) RecoverPassword(w http.ResponseWriter, r *http.Request) error {
	var req recoveryRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	if err := h.deps.Accounts.RecoverPassword(r.Context(), req.Email); err != nil {
		return err
	}

	return writeMessage(w, http.StatusOK, "message", "Email with recovery code sent successfully")
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) error {
	var req passwordUpdateRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	if err := h.deps.Accounts.UpdatePassword(r.Context(), req.Email, req.NewPassword, req.Token); err != nil {
		return err
	}

	return writeMessage(w, http.StatusOK, "message", "Password updated successfully")
}
