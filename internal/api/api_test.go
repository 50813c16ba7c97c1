package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/starford/findvisor/internal/history"
	"github.com/starford/findvisor/internal/logic"
	"github.com/starford/findvisor/internal/testutil"
)

// testEnv sets up a temp book, SQLite history, engine, and router for testing.
// An empty authToken means disabled mode.
func testEnv(t *testing.T, authToken string) (*logic.Engine, *history.DB, http.Handler) {
	t.Helper()
	_, store := testutil.TestStore(t)
	db := testutil.TestDB(t)
	now := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.Local)
	eng, err := logic.New(store, "addressbook.json",
		logic.WithHistory(db),
		logic.WithClock(testutil.FixedClock(now)))
	if err != nil {
		t.Fatalf("logic.New: %v", err)
	}
	router := NewRouter(eng, db, authToken != "", authToken, nil)
	return eng, db, router
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRunCommand(t *testing.T) {
	_, _, router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/commands", `{"line":"find t/PRUgain365"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp CommandResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK || resp.Feedback != `2 persons listed with Tags containing "PRUgain365"!` {
		t.Errorf("resp = %+v", resp)
	}

	w = do(t, router, http.MethodGet, "/contacts", "")
	var contacts ContactsResponse
	if err := json.NewDecoder(w.Body).Decode(&contacts); err != nil {
		t.Fatal(err)
	}
	if contacts.Total != 5 || len(contacts.Contacts) != 2 {
		t.Fatalf("contacts = %d of %d", len(contacts.Contacts), contacts.Total)
	}
	if contacts.Contacts[1].Index != 2 || contacts.Contacts[1].Name != "David Li" {
		t.Errorf("second contact = %+v", contacts.Contacts[1])
	}
	if contacts.Contacts[0].Meeting == nil || contacts.Contacts[0].Meeting.Start != "16-04-2024 13:00" {
		t.Errorf("meeting = %+v", contacts.Contacts[0].Meeting)
	}
}

func TestRunCommand_RejectedIsOK200(t *testing.T) {
	_, _, router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/commands", `{"line":"reschedule 2 mr/x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp CommandResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if resp.OK || !strings.Contains(resp.Feedback, "first schedule a meeting") {
		t.Errorf("resp = %+v", resp)
	}
}

func TestRunCommand_BadRequest(t *testing.T) {
	_, _, router := testEnv(t, "")
	for _, body := range []string{`{"line":`, `{"line":"   "}`} {
		if w := do(t, router, http.MethodPost, "/commands", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestHistory(t *testing.T) {
	eng, _, router := testEnv(t, "")
	eng.Execute("list")
	eng.Execute("find n/alex")
	eng.Execute("find n/don")

	w := do(t, router, http.MethodGet, "/history?keyword=find&limit=1", "")
	var resp HistoryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Commands) != 1 || !strings.HasPrefix(resp.Commands[0].Line, "find") {
		t.Errorf("history = %+v", resp.Commands)
	}
}

func TestSyntax(t *testing.T) {
	_, _, router := testEnv(t, "")
	w := do(t, router, http.MethodGet, "/syntax", "")
	var resp SyntaxResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Commands) == 0 || !strings.HasPrefix(resp.Commands[0], "find:") {
		t.Errorf("syntax = %v", resp.Commands)
	}
}

func TestAuth(t *testing.T) {
	_, _, router := testEnv(t, "secret")

	if w := do(t, router, http.MethodGet, "/contacts", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", w.Code)
	}
}
