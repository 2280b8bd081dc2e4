package v1handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"

	"plasmodocking/internal/processes"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"
)

var processOrdering = []string{"created_at", "updated_at", "name", "nome", "status"} //nolint: gochecknoglobals

func (h *Handler) CreateProcess(w http.ResponseWriter, r *http.Request) error {
	if err := h.parseMultipart(w, r); err != nil {
		return err
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	typeID, err := formUUID(r, "type")
	if err != nil {
		return err
	}

	input := processes.CreateInput{
		Name:   strings.TrimSpace(r.FormValue("nome")),
		TypeID: domain.MacromoleculeTypeID(typeID),
	}
	if strings.TrimSpace(r.FormValue("user")) != "" {
		userID, err := formUUID(r, "user")
		if err != nil {
			return err
		}
		ID := domain.UserID(userID)
		input.UserID = &ID
	}

	sdfName, sdf, closeSDF, err := formFile(r, "sdfFile")
	if err != nil {
		return err
	}
	defer closeSDF()
	input.SDFName = sdfName
	input.SDF = sdf

	p, err := h.deps.Processes.Create(r.Context(), UserFromContext(r.Context()), input)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusCreated, newProcessResponse(p))
}

func (h *Handler) ListProcesses(w http.ResponseWriter, r *http.Request) error {
	orders, err := queryOrdering(r, processOrdering, storage.Order{Field: "created_at", Desc: true})
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
	userID, err := queryUUID(r, "user_id")
	if err != nil {
		return err
	}

	filter := storage.ProcessFilter{
		Search:    strings.TrimSpace(r.URL.Query().Get("search")),
		Status:    domain.ProcessStatus(strings.TrimSpace(r.URL.Query().Get("status"))),
		Redocking: queryBool(r, "redocking"),
		OrderBy:   orders,
		Page:      page,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return serrors.With(serrors.ErrBadRequest, "invalid status %q", filter.Status)
	}
	if typeID != nil {
		ID := domain.MacromoleculeTypeID(*typeID)
		filter.TypeID = &ID
	}
	if userID != nil {
		ID := domain.UserID(*userID)
		filter.UserID = &ID
	}

	ps, err := h.deps.Processes.List(r.Context(), filter)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, mapSlice(ps, newProcessResponse))
}

func (h *Handler) GetProcess(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	p, err := h.deps.Processes.Get(r.Context(), domain.ProcessID(ID))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newProcessResponse(p))
}

type processPatchRequest struct {
	Name    *string         `json:"nome"`
	Type    *uuid.UUID      `json:"type"`
	User    *uuid.UUID      `json:"user"`
	Status  *string         `json:"status"`
	Result  json.RawMessage `json:"resultado_final"`
	SDFPath *string         `json:"pathFileSDF"`
}

func (req processPatchRequest) patch() (processes.Patch, error) {
	p := processes.Patch{Name: req.Name, SDFPath: req.SDFPath}
	if req.Type != nil {
		ID := domain.MacromoleculeTypeID(*req.Type)
		p.TypeID = &ID
	}
	if req.User != nil {
		ID := domain.UserID(*req.User)
		p.UserID = &ID
	}
	if req.Status != nil {
		status := domain.ProcessStatus(*req.Status)
		if !status.Valid() {
			return p, serrors.With(serrors.ErrBadRequest, "invalid status %q", *req.Status)
		}
		p.Status = &status
	}
	if len(req.Result) > 0 {
		result := req.Result
		p.Result = &result
	}

	return p, nil
}

func (h *Handler) ReplaceProcess(w http.ResponseWriter, r *http.Request) error {
	return h.updateProcess(w, r, true)
}

func (h *Handler) PatchProcess(w http.ResponseWriter, r *http.Request) error {
	return h.updateProcess(w, r, false)
}

func (h *Handler) updateProcess(w http.ResponseWriter, r *http.Request, full bool) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	var req processPatchRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if full {
		if err := requireFields(map[string]bool{
			"nome": req.Name != nil,
			"type": req.Type != nil,
		}); err != nil {
			return err
		}
	}
	patch, err := req.patch()
	if err != nil {
		return err
	}

	p, err := h.deps.Processes.Update(r.Context(), UserFromContext(r.Context()), domain.ProcessID(ID), patch)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, newProcessResponse(p))
}

func (h *Handler) DeleteProcess(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.deps.Processes.Delete(r.Context(), UserFromContext(r.Context()), domain.ProcessID(ID)); err != nil {
		return err
	}

	return noContent(w)
}

// DownloadProcess streams the result ZIP as an attachment.
func (h *Handler) DownloadProcess(w http.ResponseWriter, r *http.Request) error {
	ID, err := pathID(r)
	if err != nil {
		return err
	}

	archive, err := h.deps.Processes.Download(r.Context(), UserFromContext(r.Context()), domain.ProcessID(ID))
	if err != nil {
		return err
	}

	f, err := os.Open(archive.Path)
	if errors.Is(err, os.ErrNotExist) {
		return serrors.With(serrors.ErrNotFound, "ZIP file not found")
	}
	if err != nil {
		return fmt.Errorf("could not open archive: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("could not stat archive: %w", err)
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": archive.Name}))
	http.ServeContent(w, r, archive.Name, info.ModTime(), f)

	return nil
}
