package httpserver

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Vinaypunani/build-gaming/internal/domain"
	"github.com/Vinaypunani/build-gaming/internal/usecase"
)

const (
	sessionCookie = "builder_session"
	// tope del archivo de catálogo subido al import
	defaultMaxImportBytes = 24 << 20
)

type Server struct {
	mux      *http.ServeMux
	catalog  *usecase.CatalogUC
	builder  *usecase.BuilderUC
	quotes   *usecase.QuoteUC
	imports  *usecase.ImportUC
	cart     *usecase.CartUC
	adminTok string
	// vida de la cookie de sesión del armador
	sessionTTL time.Duration
	maxImport  int64
}

type Deps struct {
	Catalog    *usecase.CatalogUC
	Builder    *usecase.BuilderUC
	Quotes     *usecase.QuoteUC
	Imports    *usecase.ImportUC
	Cart       *usecase.CartUC
	AdminToken string
	SessionTTL time.Duration
	// MaxImportBytes limita el xlsx de /admin/import/xlsx; 0 usa 24 MiB
	MaxImportBytes int64
}

func New(d Deps) http.Handler {
	s := &Server{
		mux:        http.NewServeMux(),
		catalog:    d.Catalog,
		builder:    d.Builder,
		quotes:     d.Quotes,
		imports:    d.Imports,
		cart:       d.Cart,
		adminTok:   d.AdminToken,
		sessionTTL: d.SessionTTL,
		maxImport:  d.MaxImportBytes,
	}
	if s.sessionTTL <= 0 {
		s.sessionTTL = 24 * time.Hour
	}
	if s.maxImport <= 0 {
		s.maxImport = defaultMaxImportBytes
	}
	s.routes()
	return Chain(s.mux,
		Recovery,
		RequestID,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/api/components", s.apiComponents)
	s.mux.HandleFunc("/api/components/", s.apiComponentByID)

	// GET /api/builder · POST /api/builder/{select,clear,reset,commit} · GET /api/builder/quote.xlsx
	s.mux.HandleFunc("/api/builder", s.apiBuilder)
	s.mux.HandleFunc("/api/builder/select", s.apiBuilderSelect)
	s.mux.HandleFunc("/api/builder/clear", s.apiBuilderClear)
	s.mux.HandleFunc("/api/builder/reset", s.apiBuilderReset)
	s.mux.HandleFunc("/api/builder/commit", s.apiBuilderCommit)
	s.mux.HandleFunc("/api/builder/quote.xlsx", s.apiBuilderQuote)

	s.mux.HandleFunc("/api/cart", s.apiCart)
	s.mux.HandleFunc("/api/cart/remove", s.apiCartRemove)

	s.mux.HandleFunc("/admin/import/xlsx", s.handleAdminImportXLSX)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

func (s *Server) apiComponents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	qv := r.URL.Query()
	slot, err := domain.ParseSlot(qv.Get("slot"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	list, err := s.catalog.List(r.Context(), slot, usecase.CatalogQuery{
		Query:   qv.Get("q"),
		Sort:    qv.Get("sort"),
		Order:   qv.Get("order"),
		InStock: qv.Get("in_stock"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"slot": slot, "label": slot.Label(), "items": list, "total": len(list)})
}

func (s *Server) apiComponentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/components/"), "/")
	c, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 200, c)
}

func (s *Server) apiBuilder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	snap, err := s.builder.Get(r.Context(), s.session(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 200, snap)
}

type slotRequest struct {
	Slot        string `json:"slot"`
	ComponentID string `json:"component_id"`
}

func (s *Server) apiBuilderSelect(w http.ResponseWriter, r *http.Request) {
	req, slot, ok := readSlotRequest(w, r)
	if !ok {
		return
	}
	snap, err := s.builder.Select(r.Context(), s.session(w, r), slot, req.ComponentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 200, snap)
}

func (s *Server) apiBuilderClear(w http.ResponseWriter, r *http.Request) {
	_, slot, ok := readSlotRequest(w, r)
	if !ok {
		return
	}
	snap, err := s.builder.Clear(r.Context(), s.session(w, r), slot)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 200, snap)
}

func (s *Server) apiBuilderReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	snap, err := s.builder.Reset(r.Context(), s.session(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 200, snap)
}

func (s *Server) apiBuilderCommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	res, err := s.builder.Commit(r.Context(), s.session(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 201, res)
}

func (s *Server) apiBuilderQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	snap, err := s.builder.Get(r.Context(), s.session(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := s.quotes.ExportXLSX(snap.Build, snap.Breakdown, snap.Report, &buf); err != nil {
		log.Error().Err(err).Msg("quote xlsx")
		http.Error(w, "xlsx", 500)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="pc-build-quote.xlsx"`)
	w.WriteHeader(200)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	items, err := s.cart.Items(r.Context(), s.session(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, 200, map[string]any{"items": items, "total": len(items)})
}

func (s *Server) apiCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return
	}
	if err := s.cart.Remove(r.Context(), s.session(w, r), req.ID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(204)
}

func (s *Server) handleAdminImportXLSX(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "multipart", 400)
		return
	}
	fh := r.MultipartForm.File["file"]
	if len(fh) == 0 {
		http.Error(w, "file", 400)
		return
	}
	f, err := fh[0].Open()
	if err != nil {
		http.Error(w, "file", 400)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxImport+1))
	if err != nil {
		http.Error(w, "file", 400)
		return
	}
	if int64(len(data)) > s.maxImport {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"error": "too_large", "limit": s.maxImport})
		return
	}
	if len(data) == 0 {
		http.Error(w, "empty", 400)
		return
	}
	rep, err := s.imports.ImportXLSX(r.Context(), bytes.NewReader(data))
	if err != nil {
		if rep == nil {
			writeJSON(w, 400, map[string]any{"error": "xlsx", "message": err.Error()})
			return
		}
		log.Error().Err(err).Msg("import xlsx")
		writeJSON(w, 500, map[string]any{"error": "import", "report": rep})
		return
	}
	writeJSON(w, 200, rep)
}

// session devuelve el id de sesión del armador; si no hay cookie crea una.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	secure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if s.adminTok != "" && strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		tok := strings.TrimSpace(auth[7:])
		if subtle.ConstantTimeCompare([]byte(tok), []byte(s.adminTok)) == 1 {
			return true
		}
	}
	http.Error(w, "unauthorized", 401)
	return false
}

func readSlotRequest(w http.ResponseWriter, r *http.Request) (slotRequest, domain.Slot, bool) {
	var req slotRequest
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return req, "", false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "json", 400)
		return req, "", false
	}
	slot, err := domain.ParseSlot(req.Slot)
	if err != nil {
		writeError(w, r, err)
		return req, "", false
	}
	return req, slot, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ce *usecase.CommitError
	switch {
	case errors.As(err, &ce):
		writeJSON(w, 422, map[string]any{
			"error":      "build_not_ready",
			"message":    ce.Error(),
			"missing":    ce.Missing,
			"violations": ce.Violations,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, 404, map[string]string{"error": "not_found", "message": err.Error()})
	case errors.Is(err, domain.ErrUnknownSlot), errors.Is(err, domain.ErrSlotMismatch), errors.Is(err, usecase.ErrInvalidInput):
		writeJSON(w, 400, map[string]string{"error": "bad_request", "message": err.Error()})
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Str("req_id", RequestIDFrom(r.Context())).Msg("api")
		writeJSON(w, 500, map[string]string{"error": "internal"})
	}
}
