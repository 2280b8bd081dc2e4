package v1handler

import (
	"net/http"
	"strings"

	"plasmodocking/internal/accounts"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/storage"
)

var userOrdering = []string{"username", "date_joined", "last_login"} //nolint: gochecknoglobals

type userCreateRequest struct {
	Username  string `json:"username"   validate:"required,max=150"`
	Email     string `json:"email"      validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name"  validate:"max=150"`
	Password  string `json:"password"`
	Role      string `json:"role"       validate:"omitempty,oneof=USER ADMIN"`
	Deleted   bool   `json:"deleted"`
	IsActive  *bool  `json:"is_active"`
}

type userPatchRequest struct {
	Username  *string `json:"username"   validate:"omitempty,max=150"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=150"`
	Password  *string `json:"password"`
	Role      *string `json:"role"       validate:"omitempty,oneof=USER ADMIN"`
	Deleted   *bool   `json:"deleted"`
	IsActive  *bool   `json:"is_active"`
}

func (req userPatchRequest) patch() accounts.UserPatch {
	p := accounts.UserPatch{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Deleted:   req.Deleted,
		IsActive:  req.IsActive,
		Password:  req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		p.Role = &role
	}

	return p
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) error {
	var req userCreateRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	user, err := h.deps.Accounts.Register(r.Context(), accounts.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
		Deleted:   req.Deleted,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusCreated, newUserResponse(user))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	orders, err := queryOrdering(r, userOrdering, storage.Order{Field: "date_joined", Desc: true})
	if err != nil {
		return err
	}
	page, err := queryPage(r)
	if err != nil {
		return err
	}

	users, err := h.deps.Accounts.List(r.Context(), storage.UserFilter{
		Search:  strings.TrimSpace(r.URL.Query().Get("search")),
		OrderBy: orders,
		Page:    page,
	})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, mapSlice(users, newUserResponse))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	user, err := h.deps.Accounts.Get(r.Context(), domain.UserID(ID))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newUserResponse(user))
}

// ReplaceUser is the PUT variant: username and email must be present.
func (h *Handler) ReplaceUser(w http.ResponseWriter, r *http.Request) error {
	return h.updateUser(w, r, true)
}

func (h *Handler) PatchUser(w http.ResponseWriter, r *http.Request) error {
	return h.updateUser(w, r, false)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, full bool) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	var req userPatchRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if full {
		if err := requireFields(map[string]bool{
			"username": req.Username != nil,
			"email":    req.Email != nil,
		}); err != nil {
			return err
		}
	}

	user, err := h.deps.Accounts.Update(r.Context(), UserFromContext(r.Context()), domain.UserID(ID), req.patch())
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.deps.Accounts.Delete(r.Context(), UserFromContext(r.Context()), domain.UserID(ID)); err != nil {
		return err
	}

	return noContent(w)
}
