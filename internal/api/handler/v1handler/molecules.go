package v1handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"plasmodocking/internal/molecules"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"
)

var (
	typeOrdering          = []string{"name", "created_at", "updated_at"}                //nolint: gochecknoglobals
	macromoleculeOrdering = []string{"created_at", "updated_at", "name", "nome", "rec"} //nolint: gochecknoglobals
)

type typeRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) error {
	var req typeRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if err := requireFields(map[string]bool{"name": req.Name != nil}); err != nil {
		return err
	}

	input := molecules.TypeInput{Name: *req.Name, Active: req.Active}
	if req.Description != nil {
		input.Description = *req.Description
	}

	t, err := h.deps.Molecules.CreateType(r.Context(), UserFromContext(r.Context()), input)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusCreated, newTypeResponse(t))
}

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) error {
	orders, err := queryOrdering(r, typeOrdering, storage.Order{Field: "name"})
	if err != nil {
		return err
	}
	page, err := queryPage(r)
	if err != nil {
		return err
	}

	types, err := h.deps.Molecules.ListTypes(r.Context(), storage.MacromoleculeTypeFilter{
		Search:  strings.TrimSpace(r.URL.Query().Get("search")),
		Active:  queryBool(r, "active"),
		OrderBy: orders,
		Page:    page,
	})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, mapSlice(types, newTypeResponse))
}

func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	t, err := h.deps.Molecules.GetType(r.Context(), domain.MacromoleculeTypeID(ID))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newTypeResponse(t))
}

func (h *Handler) ReplaceType(w http.ResponseWriter, r *http.Request) error {
	return h.updateType(w, r, true)
}

func (h *Handler) PatchType(w http.ResponseWriter, r *http.Request) error {
	return h.updateType(w, r, false)
}

func (h *Handler) updateType(w http.ResponseWriter, r *http.Request, full bool) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	var req typeRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if full {
		if err := requireFields(map[string]bool{"name": req.Name != nil}); err != nil {
			return err
		}
	}

	t, err := h.deps.Molecules.UpdateType(r.Context(), UserFromContext(r.Context()), domain.MacromoleculeTypeID(ID),
		molecules.TypePatch{Name: req.Name, Description: req.Description, Active: req.Active})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newTypeResponse(t))
}

func (h *Handler) DeleteType(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.deps.Molecules.DeleteType(r.Context(), UserFromContext(r.Context()),
		domain.MacromoleculeTypeID(ID)); err != nil {
		return err
	}

	return noContent(w)
}

// parseMultipart bounds and parses a multipart/form-data body.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.With(serrors.ErrBadRequest, "upload exceeds %d bytes", tooLarge.Limit)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form")
	}

	return nil
}

// formFile opens an uploaded file; a missing file yields a nil reader.
func formFile(r *http.Request, key string) (string, io.Reader, func(), error) {
	f, header, err := r.FormFile(key)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil, func() {}, nil
	}
	if err != nil {
		return "", nil, func() {}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", key)
	}

	return header.Filename, f, func() { _ = f.Close() }, nil
}

func formUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "%s is required", key)
	}
	ID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "%s must be a UUID", key)
	}

	return ID, nil
}

func (h *Handler) CreateMacromolecule(w http.ResponseWriter, r *http.Request) error {
	if err := h.parseMultipart(w, r); err != nil {
		return err
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	typeID, err := formUUID(r, "type")
	if err != nil {
		return err
	}

	input := molecules.CreateInput{
		Name:       strings.TrimSpace(r.FormValue("nome")),
		TypeID:     domain.MacromoleculeTypeID(typeID),
		GridSize:   strings.TrimSpace(r.FormValue("gridsize")),
		GridCenter: strings.TrimSpace(r.FormValue("gridcenter")),
	}
	if _, ok := r.MultipartForm.Value["redocking"]; ok {
		redocking := ParseBool(r.FormValue("redocking"))
		input.Redocking = &redocking
	}

	recName, rec, closeRec, err := formFile(r, "recptorFile")
	if err != nil {
		return err
	}
	defer closeRec()
	ligName, lig, closeLig, err := formFile(r, "ligandFile")
	if err != nil {
		return err
	}
	defer closeLig()

	input.Receptor = molecules.Upload{Name: recName, Body: rec}
	input.Ligand = molecules.Upload{Name: ligName, Body: lig}

	m, err := h.deps.Molecules.Create(r.Context(), UserFromContext(r.Context()), input)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusCreated, newMacromoleculeResponse(m))
}

func (h *Handler) ListMacromolecules(w http.ResponseWriter, r *http.Request) error {
	orders, err := queryOrdering(r, macromoleculeOrdering, storage.Order{Field: "created_at", Desc: true})
	if err != nil {
		return err
	}
	page, err := queryPage(r)
	if err != nil {
		return err
	}
	typeID, err := queryUUID(r, "type_id")
	if err != nil {
		return err
	}

	filter := storage.MacromoleculeFilter{
		Search:    strings.TrimSpace(r.URL.Query().Get("search")),
		Redocking: queryBool(r, "redocking"),
		OrderBy:   orders,
		Page:      page,
	}
	if typeID != nil {
		ID := domain.MacromoleculeTypeID(*typeID)
		filter.TypeID = &ID
	}

	ms, err := h.deps.Molecules.List(r.Context(), filter)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, mapSlice(ms, newMacromoleculeResponse))
}

func (h *Handler) GetMacromolecule(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	m, err := h.deps.Molecules.Get(r.Context(), domain.MacromoleculeID(ID))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newMacromoleculeResponse(m))
}

type macromoleculePatchRequest struct {
	Name           *string      `json:"nome"`
	Rec            *string      `json:"rec"`
	Type           optionalUUID `json:"type"`
	Redocking      *bool        `json:"redocking"`
	GridSize       *string      `json:"gridsize"`
	GridCenter     *string      `json:"gridcenter"`
	OriginalLigand *string      `json:"ligante_original"`
	RedockingRMSD  *string      `json:"rmsd_redocking"`
	OriginalEnergy *string      `json:"energia_original"`
	FldPath        *string      `json:"pathFilefld"`
}

func (req macromoleculePatchRequest) patch() molecules.Patch {
	p := molecules.Patch{
		Name:           req.Name,
		Rec:            req.Rec,
		Redocking:      req.Redocking,
		GridSize:       req.GridSize,
		GridCenter:     req.GridCenter,
		OriginalLigand: req.OriginalLigand,
		RedockingRMSD:  req.RedockingRMSD,
		OriginalEnergy: req.OriginalEnergy,
		FldPath:        req.FldPath,
	}
	if req.Type.Set {
		if req.Type.Value == nil {
			p.ClearType = true
		} else {
			ID := domain.MacromoleculeTypeID(*req.Type.Value)
			p.TypeID = &ID
		}
	}

	return p
}

func (h *Handler) ReplaceMacromolecule(w http.ResponseWriter, r *http.Request) error {
	return h.updateMacromolecule(w, r, true)
}

func (h *Handler) PatchMacromolecule(w http.ResponseWriter, r *http.Request) error {
	return h.updateMacromolecule(w, r, false)
}

func (h *Handler) updateMacromolecule(w http.ResponseWriter, r *http.Request, full bool) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	var req macromoleculePatchRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if full {
		if err := requireFields(map[string]bool{
			"nome": req.Name != nil,
			"rec":  req.Rec != nil,
		}); err != nil {
			return err
		}
	}

	m, err := h.deps.Molecules.Update(r.Context(), UserFromContext(r.Context()), domain.MacromoleculeID(ID), req.patch())
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newMacromoleculeResponse(m))
}

func (h *Handler) DeleteMacromolecule(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.deps.Molecules.Delete(r.Context(), UserFromContext(r.Context()), domain.MacromoleculeID(ID)); err != nil {
		return err
	}

	return noContent(w)
}
