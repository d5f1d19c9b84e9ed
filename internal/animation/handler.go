package animation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"frame-sequencer/internal/platform/metrics"
	"frame-sequencer/internal/sequence"

	"github.com/go-chi/chi/v5"
)

const textContentType = "text/plain; charset=utf-8"

// Handler exposes animation HTTP endpoints using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler that uses the given Service, Logger, and optional Metrics.
// Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// Routes mounts the handler's endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/parse", h.Parse)
	r.Route("/animations", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Delete)
			r.Get("/frames", h.Frames)
			r.Get("/frames/{index}", h.Frame)
			r.Get("/manifest.txt", h.Manifest)
		})
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type parseRequest struct {
	FramePath  string `json:"frame_path"`
	FrameCount int    `json:"frame_count"`
}

type framesResponse struct {
	ID     AnimationID `json:"id"`
	Frames []string    `json:"frames"`
}

// Parse handles POST /parse.
// Body: { "frame_path": "assets/frame_001.jpg", "frame_count": 10 }.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid parse body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	d, err := h.svc.Parse(req.FramePath, req.FrameCount)
	if err != nil {
		h.rejectParse(w, req.FramePath, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Register handles POST /animations.
// Body: { "id": "boomerang", "frame_path": "assets/frame_001.jpg", "frame_count": 10 }.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid register body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	a, err := h.svc.Register(req)
	switch {
	case err == nil:
	case errors.Is(err, ErrAnimationExists):
		h.log.Info("animation rejected, id taken", slog.String("id", string(req.ID)))
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	case errorKind(err) != "":
		h.rejectParse(w, req.FramePath, err)
		return
	default:
		h.log.Error("register animation failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Info("animation registered",
		slog.String("id", string(a.ID)),
		slog.String("pattern", a.Descriptor.Pattern()),
		slog.Int("frame_count", a.Descriptor.FrameCount))
	if h.metrics != nil {
		h.metrics.IncAnimationsRegistered()
	}
	writeJSON(w, http.StatusCreated, a)
}

// Get handles GET /animations/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := AnimationID(chi.URLParam(r, "id"))
	a, err := h.svc.Get(id)
	if err != nil {
		h.lookupFailed(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Delete handles DELETE /animations/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := AnimationID(chi.URLParam(r, "id"))
	if err := h.svc.Delete(id); err != nil {
		h.lookupFailed(w, id, err)
		return
	}
	h.log.Info("animation deleted", slog.String("id", string(id)))
	w.WriteHeader(http.StatusNoContent)
}

// Frames handles GET /animations/{id}/frames.
func (h *Handler) Frames(w http.ResponseWriter, r *http.Request) {
	id := AnimationID(chi.URLParam(r, "id"))
	frames, err := h.svc.Frames(id)
	if err != nil {
		h.lookupFailed(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, framesResponse{ID: id, Frames: frames})
}

// Frame handles GET /animations/{id}/frames/{index}. The index is 0-based.
func (h *Handler) Frame(w http.ResponseWriter, r *http.Request) {
	id := AnimationID(chi.URLParam(r, "id"))
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "frame index must be an integer"})
		return
	}

	name, err := h.svc.Frame(id, index)
	if errors.Is(err, sequence.ErrFrameOutOfRange) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: sequence.Kind(err)})
		return
	}
	if err != nil {
		h.lookupFailed(w, id, err)
		return
	}

	w.Header().Set("Content-Type", textContentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(name))
}

// Manifest handles GET /animations/{id}/manifest.txt.
func (h *Handler) Manifest(w http.ResponseWriter, r *http.Request) {
	id := AnimationID(chi.URLParam(r, "id"))
	m, err := h.svc.Manifest(id)
	if err != nil {
		h.lookupFailed(w, id, err)
		return
	}

	w.Header().Set("Content-Type", textContentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(m))
}

// errorKind extends sequence.Kind with the service's own validation errors.
func errorKind(err error) string {
	if errors.Is(err, ErrFrameCountTooLarge) {
		return "frame_count_too_large"
	}
	return sequence.Kind(err)
}

func (h *Handler) rejectParse(w http.ResponseWriter, framePath string, err error) {
	kind := errorKind(err)
	h.log.Info("frame path rejected",
		slog.String("frame_path", framePath),
		slog.String("kind", kind),
		slog.String("error", err.Error()))
	if h.metrics != nil {
		h.metrics.IncParseFailures(kind)
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kind})
}

func (h *Handler) lookupFailed(w http.ResponseWriter, id AnimationID, err error) {
	if errors.Is(err, ErrAnimationNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.log.Error("animation lookup failed", slog.String("id", string(id)), slog.String("error", err.Error()))
	w.WriteHeader(http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
