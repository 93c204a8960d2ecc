package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and
// strength evaluation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if err.Error() == "http: request body too large" {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case isUnsatisfiableError(err):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests. An empty password is
// a valid request and yields the lowest score.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

// HandleCharset handles GET /api/v1/charset requests. Class flags arrive as
// query parameters; absent class flags default to true.
func (h *GeneratorHandler) HandleCharset(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	classes := password.Classes{
		Uppercase: queryBool(q.Get("uppercase"), true),
		Lowercase: queryBool(q.Get("lowercase"), true),
		Numbers:   queryBool(q.Get("numbers"), true),
		Symbols:   queryBool(q.Get("symbols"), true),
	}
	excludeSimilar := queryBool(q.Get("exclude_similar"), false)

	writeJSON(w, http.StatusOK, h.service.Charset(classes, excludeSimilar))
}

func isValidationError(err error) bool {
	return errors.Is(err, password.ErrLengthTooShort) ||
		errors.Is(err, password.ErrLengthTooLong) ||
		errors.Is(err, password.ErrNoCharacterTypes)
}

func isUnsatisfiableError(err error) bool {
	return errors.Is(err, password.ErrEmptyCharset) ||
		errors.Is(err, password.ErrRepeatImpossible)
}

func queryBool(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
