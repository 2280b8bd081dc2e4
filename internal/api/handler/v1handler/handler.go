// Package v1handler implements the /api routes: authentication, users,
// the macromolecule catalogue and docking processes.
package v1handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"plasmodocking/internal/accounts"
	"plasmodocking/internal/config"
	"plasmodocking/internal/molecules"
	"plasmodocking/internal/processes"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"
)

// DefaultMaxUploadSize bounds multipart bodies when no limit is configured.
const DefaultMaxUploadSize = 100 << 20

// Deps are the services behind the routes.
type Deps struct {
	Accounts  accounts.Accounts
	Molecules molecules.Molecules
	Processes processes.Processes
}

// Options tune request parsing.
type Options struct {
	MaxUploadSize int64
}

// NewOptions builds the handler options from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxUploadSize: cfg.Files.MaxUploadSize}
}

type Handler struct {
	deps     Deps
	options  Options
	validate *validator.Validate
	sec      *SecHandler
}

func New(deps Deps, options Options) *Handler {
	if options.MaxUploadSize <= 0 {
		options.MaxUploadSize = DefaultMaxUploadSize
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{
		deps:     deps,
		options:  options,
		validate: validate,
		sec:      NewSecHandler(deps.Accounts),
	}
}

// apiFunc is a route whose errors are rendered by NewError.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) public(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

func (h *Handler) private(fn apiFunc) http.HandlerFunc {
	return h.public(func(w http.ResponseWriter, r *http.Request) error {
		ctx, err := h.sec.HandleBearerAuth(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			return err
		}

		return fn(w, r.WithContext(ctx))
	})
}

// handle registers pattern with and without its trailing slash.
func handle(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	path = strings.TrimSuffix(path, "/")
	mux.HandleFunc(method+" "+path, h)
	mux.HandleFunc(method+" "+path+"/{$}", h)
}

// Register mounts every v1 route on mux under prefix (for example "/api").
func (h *Handler) Register(mux *http.ServeMux, prefix string) {
	p := strings.TrimSuffix(prefix, "/")

	handle(mux, http.MethodPost, p+"/auth/login/password", h.public(h.Login))
	handle(mux, http.MethodGet, p+"/auth/login/profile", h.private(h.Profile))
	handle(mux, http.MethodPost, p+"/auth/password/recovery", h.public(h.RecoverPassword))
	handle(mux, http.MethodPost, p+"/auth/password/update", h.public(h.UpdatePassword))

	handle(mux, http.MethodPost, p+"/users", h.public(h.CreateUser))
	handle(mux, http.MethodGet, p+"/users", h.private(h.ListUsers))
	handle(mux, http.MethodGet, p+"/users/{id}", h.private(h.GetUser))
	handle(mux, http.MethodPut, p+"/users/{id}", h.private(h.ReplaceUser))
	handle(mux, http.MethodPatch, p+"/users/{id}", h.private(h.PatchUser))
	handle(mux, http.MethodDelete, p+"/users/{id}", h.private(h.DeleteUser))

	handle(mux, http.MethodPost, p+"/macromolecule-types", h.private(h.CreateType))
	handle(mux, http.MethodGet, p+"/macromolecule-types", h.private(h.ListTypes))
	handle(mux, http.MethodGet, p+"/macromolecule-types/{id}", h.private(h.GetType))
	handle(mux, http.MethodPut, p+"/macromolecule-types/{id}", h.private(h.ReplaceType))
	handle(mux, http.MethodPatch, p+"/macromolecule-types/{id}", h.private(h.PatchType))
	handle(mux, http.MethodDelete, p+"/macromolecule-types/{id}", h.private(h.DeleteType))

	handle(mux, http.MethodPost, p+"/macromolecules", h.private(h.CreateMacromolecule))
	handle(mux, http.MethodGet, p+"/macromolecules", h.private(h.ListMacromolecules))
	handle(mux, http.MethodGet, p+"/macromolecules/{id}", h.private(h.GetMacromolecule))
	handle(mux, http.MethodPut, p+"/macromolecules/{id}", h.private(h.ReplaceMacromolecule))
	handle(mux, http.MethodPatch, p+"/macromolecules/{id}", h.private(h.PatchMacromolecule))
	handle(mux, http.MethodDelete, p+"/macromolecules/{id}", h.private(h.DeleteMacromolecule))

	handle(mux, http.MethodPost, p+"/processes", h.private(h.CreateProcess))
	handle(mux, http.MethodGet, p+"/processes", h.private(h.ListProcesses))
	handle(mux, http.MethodGet, p+"/processes/{id}", h.private(h.GetProcess))
	handle(mux, http.MethodPut, p+"/processes/{id}", h.private(h.ReplaceProcess))
	handle(mux, http.MethodPatch, p+"/processes/{id}", h.private(h.PatchProcess))
	handle(mux, http.MethodDelete, p+"/processes/{id}", h.private(h.DeleteProcess))
	handle(mux, http.MethodGet, p+"/processes/{id}/download", h.private(h.DownloadProcess))
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("could not encode response: %w", err)
	}

	return nil
}

// writeMessage writes {key: msg} with the given status.
func writeMessage(w http.ResponseWriter, status int, key, msg string) error {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart(key)
	e.Str(msg)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		return fmt.Errorf("could not write response: %w", err)
	}

	return nil
}

func noContent(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// decode reads a JSON body into v and validates it.
func (h *Handler) decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, h.options.MaxUploadSize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is empty")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body: %s", err.Error())
	}

	return h.check(v)
}

func (h *Handler) check(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
	}

	return serrors.With(serrors.ErrBadRequest, "%s", strings.Join(msgs, "; "))
}

func pathID(r *http.Request) (uuid.UUID, error) {
	ID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrNotFound, "resource not found")
	}

	return ID, nil
}

// ParseBool accepts 1, true, t, yes, y and on as true, case-insensitively.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func queryBool(r *http.Request, key string) *bool {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := ParseBool(r.URL.Query().Get(key))

	return &v
}

func queryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	ID, err := uuid.Parse(raw)
	if err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "%s must be a UUID", key)
	}

	return &ID, nil
}

func queryPage(r *http.Request) (storage.Page, error) {
	var page storage.Page
	for key, dst := range map[string]*uint{"limit": &page.Limit, "offset": &page.Offset} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return page, serrors.With(serrors.ErrBadRequest, "%s must be a non-negative integer", key)
		}
		*dst = uint(v)
	}

	return page, nil
}

func queryOrdering(r *http.Request, allowed []string, def ...storage.Order) ([]storage.Order, error) {
	orders, err := storage.ParseOrdering(r.URL.Query().Get("ordering"), allowed, def...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "%s", err.Error())
	}

	return orders, nil
}

// requireFields rejects a full update that misses any of the named fields.
func requireFields(present map[string]bool) error {
	var missing []string
	for name, ok := range present {
		if !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	return serrors.With(serrors.ErrBadRequest, "missing required fields: %s", strings.Join(missing, ", "))
}
