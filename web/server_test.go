package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"guestlist/config"
	"guestlist/guest"
	"guestlist/session"
	"guestlist/storage"
)

func testConfig() config.Config {
	return config.Config{
		Event: config.EventConfig{
			Title:          "Isola 70",
			Location:       "Ilhabela, SP",
			Days:           "Sexta e Sábado",
			CountryCode:    "55",
			Accommodations: []string{"Sandi", "Aconchego"},
		},
	}
}

func newTestServer(t *testing.T, cfg config.Config) (*storage.SQLiteStore, http.Handler, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.OpenSQLite(filepath.Join(dir, "guests.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})

	sessionPath := filepath.Join(dir, "session.json")
	return store, NewServer(store, cfg, sessionPath, zerolog.Nop()), sessionPath
}

func seedGuests(t *testing.T, store *storage.SQLiteStore, guests []guest.Guest) {
	t.Helper()
	if err := store.ReplaceGuests(guests); err != nil {
		t.Fatalf("seed guests: %v", err)
	}
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestIndexRedirectsToDashboard(t *testing.T) {
	t.Parallel()

	_, handler, _ := newTestServer(t, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusFound)
	}
	if location := rec.Header().Get("Location"); location != "/dashboard" {
		t.Errorf("got Location %q, want /dashboard", location)
	}
}

func TestDashboardRenders(t *testing.T) {
	t.Parallel()

	store, handler, _ := newTestServer(t, testConfig())
	seedGuests(t, store, []guest.Guest{
		{ID: "g1", Name: "Ana", Status: guest.StatusConfirmed, Group: guest.GroupFamily, Accommodation: "Sandi"},
		{ID: "g2", Name: "Beto", Status: guest.StatusPending, Group: guest.GroupFriends},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	page := rec.Body.String()
	for _, want := range []string{"Isola 70", "Ilhabela, SP", "Sandi", "Por Grupo"} {
		if !strings.Contains(page, want) {
			t.Errorf("dashboard page missing %q", want)
		}
	}
}

func TestGuestsPageFilters(t *testing.T) {
	t.Parallel()

	store, handler, _ := newTestServer(t, testConfig())
	seedGuests(t, store, []guest.Guest{
		{ID: "g1", Name: "João Pedro", Status: guest.StatusConfirmed, Group: guest.GroupFamily},
		{ID: "g2", Name: "Maria Clara", Status: guest.StatusPending, Group: guest.GroupFriends},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guests?q=joao", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	page := rec.Body.String()
	if !strings.Contains(page, "João Pedro") {
		t.Error("filtered page missing matching guest")
	}
	if strings.Contains(page, "Maria Clara") {
		t.Error("filtered page contains non-matching guest")
	}
}

func TestAPIStats(t *testing.T) {
	t.Parallel()

	store, handler, _ := newTestServer(t, testConfig())
	seedGuests(t, store, []guest.Guest{
		{ID: "g1", Name: "Ana", Status: guest.StatusConfirmed, Group: guest.GroupFamily, Friday: guest.FridayYes},
		{ID: "g2", Name: "Beto", Status: guest.StatusNotAttending, Group: guest.GroupFriends},
		{ID: "g3", Name: "Caio", Status: "Talvez", Group: guest.GroupFriends},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if resp.Total != 3 || resp.Confirmed != 1 || resp.NotAttending != 1 {
		t.Errorf("got total=%d confirmed=%d notAttending=%d", resp.Total, resp.Confirmed, resp.NotAttending)
	}
	if resp.Pending != 1 {
		t.Errorf("got pending %d, want 1 (derived from unknown status)", resp.Pending)
	}
	if resp.FridayConfirmed != 1 {
		t.Errorf("got fridayConfirmed %d, want 1", resp.FridayConfirmed)
	}
	if resp.ByGroup["Família"] != 1 {
		t.Errorf("got ByGroup[Família] = %d, want 1", resp.ByGroup["Família"])
	}
}

func TestAPIArrived(t *testing.T) {
	t.Parallel()

	store, handler, _ := newTestServer(t, testConfig())
	seedGuests(t, store, []guest.Guest{
		{ID: "g1", Name: "Ana", Status: guest.StatusConfirmed},
	})

	t.Run("toggles the flag", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/guests/g1/arrived",
			strings.NewReader(`{"arrived":true}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusNoContent, rec.Body.String())
		}

		guests, err := store.ListGuests()
		if err != nil {
			t.Fatalf("list guests: %v", err)
		}
		if len(guests) != 1 || !guests[0].Arrived {
			t.Errorf("guest not marked arrived: %+v", guests)
		}
	})

	t.Run("unknown guest is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/guests/nope/arrived",
			strings.NewReader(`{"arrived":true}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("got status %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/guests/g1/arrived",
			strings.NewReader(`{"arrived":true,"extra":1}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("got status %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestAPIImport(t *testing.T) {
	t.Parallel()

	store, handler, _ := newTestServer(t, testConfig())
	seedGuests(t, store, []guest.Guest{
		{ID: "g1", Name: "Ana", Phone: "11 99999-0001", Status: guest.StatusPending},
	})

	payload := []byte(`[
		{"Nome": "Ana", "Telefone": "11 99999-0001", "Status": "Confirmado"},
		{"Nome": "Beto", "Telefone": "11 99999-0002", "Status": "Confirmado"}
	]`)
	body, contentType := multipartUpload(t, "lista.json", payload)

	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp importResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode import response: %v", err)
	}
	if resp.RowsRead != 2 {
		t.Errorf("got rowsRead %d, want 2", resp.RowsRead)
	}
	if resp.Added != 1 || resp.Ignored != 1 {
		t.Errorf("got added=%d ignored=%d, want 1/1", resp.Added, resp.Ignored)
	}
	if resp.Total != 2 {
		t.Errorf("got total %d, want 2", resp.Total)
	}

	guests, err := store.ListGuests()
	if err != nil {
		t.Fatalf("list guests: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("got %d stored guests, want 2", len(guests))
	}
	// Existing Ana keeps her record; Beto is appended after her.
	if guests[0].ID != "g1" || guests[1].Name != "Beto" {
		t.Errorf("unexpected stored order: %+v", guests)
	}
}

func TestAPIImportRejectsInvalidFile(t *testing.T) {
	t.Parallel()

	_, handler, _ := newTestServer(t, testConfig())

	body, contentType := multipartUpload(t, "lista.json", []byte(`{"nome": "não é lista"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "invalid file" {
		t.Errorf("got body %q, want %q", got, "invalid file")
	}
}

func TestAPIImportRequiresSession(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Auth.Required = true
	_, handler, sessionPath := newTestServer(t, cfg)

	payload := []byte(`[{"Nome": "Ana", "Status": "Confirmado"}]`)

	t.Run("rejected without a session", func(t *testing.T) {
		body, contentType := multipartUpload(t, "lista.json", payload)
		req := httptest.NewRequest(http.MethodPost, "/api/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("accepted after sign-in", func(t *testing.T) {
		if _, err := session.SignIn(sessionPath, "anfitrião", session.DefaultTTL); err != nil {
			t.Fatalf("sign in: %v", err)
		}

		body, contentType := multipartUpload(t, "lista.json", payload)
		req := httptest.NewRequest(http.MethodPost, "/api/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})
}

func TestAPIExportCSV(t *testing.T) {
	t.Parallel()

	store, handler, _ := newTestServer(t, testConfig())
	seedGuests(t, store, []guest.Guest{
		{ID: "g1", Name: "Ana", Phone: "11 99999-0001", Status: guest.StatusConfirmed, Group: guest.GroupFamily},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export?format=csv", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if disposition := rec.Header().Get("Content-Disposition"); !strings.Contains(disposition, "Isola 70.csv") {
		t.Errorf("got Content-Disposition %q, want Isola 70.csv attachment", disposition)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Nome") || !strings.Contains(body, "Ana") {
		t.Errorf("csv export missing expected content:\n%s", body)
	}
}

func TestAPIExportWorkbook(t *testing.T) {
	t.Parallel()

	store, handler, _ := newTestServer(t, testConfig())
	seedGuests(t, store, []guest.Guest{
		{ID: "g1", Name: "Ana", Status: guest.StatusConfirmed, Group: guest.GroupFamily},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}
	if contentType := rec.Header().Get("Content-Type"); !strings.Contains(contentType, "spreadsheetml") {
		t.Errorf("got Content-Type %q, want a spreadsheet type", contentType)
	}
	if disposition := rec.Header().Get("Content-Disposition"); !strings.Contains(disposition, "Isola 70.xlsx") {
		t.Errorf("got Content-Disposition %q, want Isola 70.xlsx attachment", disposition)
	}
	workbook, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read workbook body: %v", err)
	}
	if len(workbook) == 0 {
		t.Error("workbook body is empty")
	}
}
