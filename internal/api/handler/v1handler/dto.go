package v1handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"plasmodocking/pkg/domain"
)

// optionalUUID tells an absent field apart from an explicit null.
type optionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *optionalUUID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil

		return nil
	}

	var ID uuid.UUID
	if err := json.Unmarshal(b, &ID); err != nil {
		return err
	}
	o.Value = &ID

	return nil
}

type userResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        string     `json:"role"`
	Deleted     bool       `json:"deleted"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	DateJoined  time.Time  `json:"date_joined"`
}

func newUserResponse(u *domain.User) userResponse {
	res := userResponse{
		ID:          uuid.UUID(u.ID),
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		Deleted:     u.Deleted,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined,
	}
	if !u.LastLogin.IsZero() {
		lastLogin := u.LastLogin
		res.LastLogin = &lastLogin
	}

	return res
}

type typeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTypeResponse(t *domain.MacromoleculeType) typeResponse {
	return typeResponse{
		ID:          uuid.UUID(t.ID),
		Name:        t.Name,
		Description: t.Description,
		Active:      t.Active,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type typeDetail struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type macromoleculeResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"nome"`
	Rec            string      `json:"rec"`
	Type           *uuid.UUID  `json:"type"`
	TypeDetail     *typeDetail `json:"type_detail"`
	Redocking      bool        `json:"redocking"`
	GridSize       string      `json:"gridsize"`
	GridCenter     string      `json:"gridcenter"`
	OriginalLigand string      `json:"ligante_original"`
	RedockingRMSD  string      `json:"rmsd_redocking"`
	OriginalEnergy string      `json:"energia_original"`
	FldPath        string      `json:"pathFilefld"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func newMacromoleculeResponse(m *domain.Macromolecule) macromoleculeResponse {
	res := macromoleculeResponse{
		ID:             uuid.UUID(m.ID),
		Name:           m.Name,
		Rec:            m.Rec,
		Redocking:      m.Redocking,
		GridSize:       m.GridSize,
		GridCenter:     m.GridCenter,
		OriginalLigand: m.OriginalLigand,
		RedockingRMSD:  m.RedockingRMSD,
		OriginalEnergy: m.OriginalEnergy,
		FldPath:        m.FldPath,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.TypeID != nil {
		ID := uuid.UUID(*m.TypeID)
		res.Type = &ID
		res.TypeDetail = &typeDetail{ID: ID, Name: m.TypeName}
	}

	return res
}

type userDetail struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type processResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"nome"`
	Type       uuid.UUID       `json:"type"`
	TypeDetail typeDetail      `json:"type_detail"`
	Status     string          `json:"status"`
	Result     json.RawMessage `json:"resultado_final"`
	SDFPath    string          `json:"pathFileSDF"`
	ZIPPath    string          `json:"pathFileZIP"`
	User       uuid.UUID       `json:"user"`
	UserDetail userDetail      `json:"user_detail"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func newProcessResponse(p *domain.Process) processResponse {
	res := processResponse{
		ID:         uuid.UUID(p.ID),
		Name:       p.Name,
		Type:       uuid.UUID(p.TypeID),
		TypeDetail: typeDetail{ID: uuid.UUID(p.TypeID), Name: p.TypeName},
		Status:     string(p.Status),
		Result:     p.Result,
		SDFPath:    p.SDFPath,
		ZIPPath:    p.ZIPPath,
		User:       uuid.UUID(p.UserID),
		UserDetail: userDetail{
			ID:        uuid.UUID(p.UserID),
			Username:  p.Username,
			Email:     p.UserEmail,
			FirstName: p.UserFirstName,
			LastName:  p.UserLastName,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if len(res.Result) == 0 {
		res.Result = json.RawMessage("null")
	}

	return res
}

func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}

	return out
}
