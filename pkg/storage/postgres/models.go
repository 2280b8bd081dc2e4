package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"plasmodocking/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Role      string    `db:"role"`

	PasswordHash string `db:"password_hash"`

	Deleted     bool `db:"deleted"`
	IsActive    bool `db:"is_active"`
	IsStaff     bool `db:"is_staff"`
	IsSuperuser bool `db:"is_superuser"`

	LastLogin  sql.NullTime `db:"last_login"`
	DateJoined time.Time    `db:"date_joined" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Username:     p.Username,
		Email:        p.Email,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Role:         domain.Role(p.Role),
		PasswordHash: p.PasswordHash,
		Deleted:      p.Deleted,
		IsActive:     p.IsActive,
		IsStaff:      p.IsStaff,
		IsSuperuser:  p.IsSuperuser,
		LastLogin:    p.LastLogin.Time,
		DateJoined:   p.DateJoined,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(role),
		PasswordHash: user.PasswordHash,
		Deleted:      user.Deleted,
		IsActive:     user.IsActive,
		IsStaff:      user.IsStaff,
		IsSuperuser:  user.IsSuperuser,
		LastLogin: sql.NullTime{
			Time:  user.LastLogin,
			Valid: !user.LastLogin.IsZero(),
		},
		DateJoined: user.DateJoined,
	}
}

type PgMacromoleculeType struct {
	ID          uuid.UUID `db:"id"          goqu:"skipinsert"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt   time.Time `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgMacromoleculeType) ToDomain() *domain.MacromoleculeType {
	return &domain.MacromoleculeType{
		ID:          domain.MacromoleculeTypeID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgMacromoleculeType) FromDomain(t domain.MacromoleculeType) {
	*p = PgMacromoleculeType{
		ID:          uuid.UUID(t.ID),
		Name:        t.Name,
		Description: t.Description,
		Active:      t.Active,
	}
}

type PgMacromolecule struct {
	ID     uuid.UUID     `db:"id"      goqu:"skipinsert"`
	Name   string        `db:"name"`
	Rec    string        `db:"rec"`
	TypeID uuid.NullUUID `db:"type_id"`

	Redocking  bool   `db:"redocking"`
	GridSize   string `db:"grid_size"`
	GridCenter string `db:"grid_center"`

	OriginalLigand string         `db:"original_ligand"`
	RedockingRMSD  sql.NullString `db:"redocking_rmsd"`
	OriginalEnergy sql.NullString `db:"original_energy"`
	FldPath        string         `db:"fld_path"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

// PgMacromoleculeView is a macromolecule row joined with its type name.
type PgMacromoleculeView struct {
	PgMacromolecule

	TypeName sql.NullString `db:"type_name"`
}

func (p *PgMacromolecule) ToDomain() *domain.Macromolecule {
	m := &domain.Macromolecule{
		ID:             domain.MacromoleculeID(p.ID),
		Name:           p.Name,
		Rec:            p.Rec,
		Redocking:      p.Redocking,
		GridSize:       p.GridSize,
		GridCenter:     p.GridCenter,
		OriginalLigand: p.OriginalLigand,
		RedockingRMSD:  p.RedockingRMSD.String,
		OriginalEnergy: p.OriginalEnergy.String,
		FldPath:        p.FldPath,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.TypeID.Valid {
		typeID := domain.MacromoleculeTypeID(p.TypeID.UUID)
		m.TypeID = &typeID
	}

	return m
}

func (p *PgMacromoleculeView) ToDomain() *domain.Macromolecule {
	m := p.PgMacromolecule.ToDomain()
	m.TypeName = p.TypeName.String

	return m
}

func (p *PgMacromolecule) FromDomain(m domain.Macromolecule) {
	*p = PgMacromolecule{
		ID:             uuid.UUID(m.ID),
		Name:           m.Name,
		Rec:            m.Rec,
		Redocking:      m.Redocking,
		GridSize:       m.GridSize,
		GridCenter:     m.GridCenter,
		OriginalLigand: m.OriginalLigand,
		RedockingRMSD:  nullString(m.RedockingRMSD),
		OriginalEnergy: nullString(m.OriginalEnergy),
		FldPath:        m.FldPath,
	}
	if m.TypeID != nil {
		p.TypeID = uuid.NullUUID{UUID: uuid.UUID(*m.TypeID), Valid: true}
	}
}

type PgProcess struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	Name   string    `db:"name"`
	TypeID uuid.UUID `db:"type_id"`
	UserID uuid.UUID `db:"user_id"`
	Status string    `db:"status"`

	Result  []byte         `db:"result"   goqu:"skipinsert"`
	SDFPath sql.NullString `db:"sdf_path"`
	ZIPPath sql.NullString `db:"zip_path" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

// PgProcessView is a process row joined with its owner and type.
type PgProcessView struct {
	PgProcess

	TypeName      string `db:"type_name"`
	Username      string `db:"username"`
	UserEmail     string `db:"user_email"`
	UserFirstName string `db:"user_first_name"`
	UserLastName  string `db:"user_last_name"`
}

func (p *PgProcessView) ToDomain() *domain.Process {
	var result json.RawMessage
	if len(p.Result) > 0 {
		result = json.RawMessage(p.Result)
	}

	return &domain.Process{
		ID:            domain.ProcessID(p.ID),
		Name:          p.Name,
		TypeID:        domain.MacromoleculeTypeID(p.TypeID),
		UserID:        domain.UserID(p.UserID),
		Status:        domain.ProcessStatus(p.Status),
		Result:        result,
		SDFPath:       p.SDFPath.String,
		ZIPPath:       p.ZIPPath.String,
		TypeName:      p.TypeName,
		Username:      p.Username,
		UserEmail:     p.UserEmail,
		UserFirstName: p.UserFirstName,
		UserLastName:  p.UserLastName,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (p *PgProcess) FromDomain(proc domain.Process) {
	status := proc.Status
	if status == "" {
		status = domain.ProcessStatusQueued
	}

	*p = PgProcess{
		ID:      uuid.UUID(proc.ID),
		Name:    proc.Name,
		TypeID:  uuid.UUID(proc.TypeID),
		UserID:  uuid.UUID(proc.UserID),
		Status:  string(status),
		SDFPath: nullString(proc.SDFPath),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
