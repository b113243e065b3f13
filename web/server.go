// Package web serves a localhost-only single-user UI; the only guarded
// operation is import, gated by the session state file when configured.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"guestlist/config"
	"guestlist/guest"
	"guestlist/importer"
	"guestlist/output"
	"guestlist/reconcile"
	"guestlist/session"
	"guestlist/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store       *storage.SQLiteStore
	cfg         config.Config
	sessionPath string
	logger      zerolog.Logger
	mux         *http.ServeMux
}

type statsResponse struct {
	Total           int            `json:"total"`
	Confirmed       int            `json:"confirmed"`
	Pending         int            `json:"pending"`
	NotAttending    int            `json:"notAttending"`
	FridayConfirmed int            `json:"fridayConfirmed"`
	ByGroup         map[string]int `json:"byGroup"`
	ByAccommodation map[string]int `json:"byAccommodation"`
	ByAgeGroup      map[string]int `json:"byAgeGroup"`
}

type importResponse struct {
	FilesProcessed int `json:"filesProcessed"`
	RowsRead       int `json:"rowsRead"`
	Added          int `json:"added"`
	Ignored        int `json:"ignored"`
	Total          int `json:"total"`
}

type arrivedRequest struct {
	Arrived bool `json:"arrived"`
}

type dashboardView struct {
	Title           string
	Location        string
	Days            string
	Stats           guest.Stats
	GroupRows       []breakdownRow
	Accommodations  []breakdownRow
	AgeGroups       []breakdownRow
}

type guestsView struct {
	Title          string
	Guests         []guest.Guest
	Filter         GuestFilter
	Statuses       []guest.Status
	Groups         []guest.Group
	Accommodations []string
}

func NewServer(store *storage.SQLiteStore, cfg config.Config, sessionPath string, logger zerolog.Logger) http.Handler {
	server := &Server{
		store:       store,
		cfg:         cfg,
		sessionPath: sessionPath,
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("GET /dashboard", server.handleDashboard)
	mux.HandleFunc("GET /guests", server.handleGuests)
	mux.HandleFunc("GET /api/stats", server.handleAPIStats)
	mux.HandleFunc("GET /api/guests", server.handleAPIGuests)
	mux.HandleFunc("POST /api/guests/{id}/arrived", server.handleAPIArrived)
	mux.HandleFunc("POST /api/import", server.handleAPIImport)
	mux.HandleFunc("GET /api/export", server.handleAPIExport)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.logger.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Dur("elapsed", time.Since(start)).
		Msg("request served")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	guests, err := s.store.ListGuests()
	if err != nil {
		s.internalError(w, "list guests", err)
		return
	}

	stats := guest.Aggregate(guests)
	view := dashboardView{
		Title:          s.cfg.Event.Title,
		Location:       s.cfg.Event.Location,
		Days:           s.cfg.Event.Days,
		Stats:          stats,
		GroupRows:      groupRows(stats),
		Accommodations: accommodationRows(stats),
		AgeGroups:      ageGroupRows(stats),
	}
	if err := renderTemplate(w, "dashboard.html", view); err != nil {
		s.internalError(w, "render dashboard", err)
	}
}

func (s *Server) handleGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := s.store.ListGuests()
	if err != nil {
		s.internalError(w, "list guests", err)
		return
	}

	filter := GuestFilter{
		Query:         strings.TrimSpace(r.URL.Query().Get("q")),
		Status:        strings.TrimSpace(r.URL.Query().Get("status")),
		Group:         strings.TrimSpace(r.URL.Query().Get("group")),
		Accommodation: strings.TrimSpace(r.URL.Query().Get("accommodation")),
	}

	view := guestsView{
		Title:          s.cfg.Event.Title,
		Guests:         FilterGuests(guests, filter),
		Filter:         filter,
		Statuses:       []guest.Status{guest.StatusConfirmed, guest.StatusPending, guest.StatusNotAttending},
		Groups:         []guest.Group{guest.GroupFamily, guest.GroupFriends},
		Accommodations: s.cfg.Event.Accommodations,
	}
	if err := renderTemplate(w, "guests.html", view); err != nil {
		s.internalError(w, "render guests", err)
	}
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	guests, err := s.store.ListGuests()
	if err != nil {
		s.internalError(w, "list guests", err)
		return
	}

	stats := guest.Aggregate(guests)
	resp := statsResponse{
		Total:           stats.Total,
		Confirmed:       stats.Confirmed,
		Pending:         stats.Pending,
		NotAttending:    stats.NotAttending,
		FridayConfirmed: stats.FridayConfirmed,
		ByGroup:         make(map[string]int, len(stats.ByGroup)),
		ByAccommodation: stats.ByAccommodation,
		ByAgeGroup:      make(map[string]int, len(stats.ByAgeGroup)),
	}
	for group, count := range stats.ByGroup {
		resp.ByGroup[string(group)] = count
	}
	for age, count := range stats.ByAgeGroup {
		resp.ByAgeGroup[string(age)] = count
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPIGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := s.store.ListGuests()
	if err != nil {
		s.internalError(w, "list guests", err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

func (s *Server) handleAPIArrived(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		http.Error(w, "missing guest id", http.StatusBadRequest)
		return
	}

	var body arrivedRequest
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.SetArrived(id, body.Arrived); err != nil {
		if errors.Is(err, storage.ErrGuestNotFound) {
			http.Error(w, "guest not found", http.StatusNotFound)
			return
		}
		s.internalError(w, "set arrived", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIImport(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Auth.Required {
		if err := session.Require(s.sessionPath); err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, fmt.Sprintf("parse multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", tempUploadPattern(header.Filename))
	if err != nil {
		s.internalError(w, "create temp upload", err)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		s.internalError(w, "save upload", err)
		return
	}
	if err := tmp.Close(); err != nil {
		s.internalError(w, "close upload temp file", err)
		return
	}

	result, err := importer.Run([]string{tmpPath}, strings.TrimSpace(r.FormValue("format")))
	if err != nil {
		if errors.Is(err, importer.ErrInvalidFile) {
			http.Error(w, "invalid file", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := s.store.ListGuests()
	if err != nil {
		s.internalError(w, "list guests", err)
		return
	}

	merged := reconcile.Merge(existing, result.Guests)
	if err := s.store.ReplaceGuests(merged.Merged); err != nil {
		s.internalError(w, "persist merged guests", err)
		return
	}

	// Fire-and-forget side effect: a title write failure must not undo the
	// merge that already happened.
	if err := s.store.SetSetting(storage.SettingTitle, s.cfg.Event.Title); err != nil {
		s.logger.Warn().Err(err).Msg("persist event title")
	}

	writeJSON(w, http.StatusOK, importResponse{
		FilesProcessed: result.FilesProcessed,
		RowsRead:       result.RowsRead,
		Added:          len(merged.Added),
		Ignored:        len(merged.Ignored),
		Total:          len(merged.Merged),
	})
}

func (s *Server) handleAPIExport(w http.ResponseWriter, r *http.Request) {
	guests, err := s.store.ListGuests()
	if err != nil {
		s.internalError(w, "list guests", err)
		return
	}

	title := s.cfg.Event.Title
	if stored, err := s.store.GetSetting(storage.SettingTitle); err == nil && stored != "" {
		title = stored
	}
	format := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("format")))

	if format == output.FormatCSV {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", attachmentHeader(title+".csv"))
		if err := output.WriteGuestsCSV(w, guests); err != nil {
			s.logger.Error().Err(err).Msg("stream csv export")
		}
		return
	}

	report, err := output.BuildReport(guests, title, s.cfg.Event.CountryCode)
	if err != nil {
		s.internalError(w, "build report", err)
		return
	}
	defer report.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachmentHeader(title+".xlsx"))
	if _, err := report.WriteTo(w); err != nil {
		s.logger.Error().Err(err).Msg("stream report export")
	}
}

func (s *Server) internalError(w http.ResponseWriter, action string, err error) {
	s.logger.Error().Err(err).Msg(action)
	http.Error(w, fmt.Sprintf("%s: %v", action, err), http.StatusInternalServerError)
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func attachmentHeader(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

func tempUploadPattern(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		return "upload-*"
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	if ext == "" {
		return stem + "-*"
	}
	return stem + "-*" + ext
}
