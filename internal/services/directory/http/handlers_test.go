package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"staffdir/internal/core/directory"
	perr "staffdir/internal/platform/errors"
	phttp "staffdir/internal/platform/net/http"
	"staffdir/internal/services/directory/domain"
	dirhttp "staffdir/internal/services/directory/http"
	dirsvc "staffdir/internal/services/directory/service"
)

type stubFetcher struct {
	all  []directory.RawEmployee
	dept map[string][]directory.RawEmployee
	err  error
}

func (s *stubFetcher) FetchAll(context.Context) ([]directory.RawEmployee, error) {
	return s.all, s.err
}

func (s *stubFetcher) FetchByDepartment(_ context.Context, dept string) ([]directory.RawEmployee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.dept[dept], nil
}

func (s *stubFetcher) FetchDynamic(context.Context) ([]directory.RawEmployee, error) {
	return s.all, s.err
}

func (s *stubFetcher) FetchError500(context.Context) ([]directory.RawEmployee, error) {
	return nil, perr.Unavailablef("directory endpoint returned status 500")
}

func newRig(t *testing.T) (http.Handler, *stubFetcher) {
	t.Helper()
	f := &stubFetcher{
		all: []directory.RawEmployee{
			{ID: "a1", FirstName: "Anton", LastName: "Orlov", UserTag: "ao", Department: "ios", Birthday: "1994-03-11", Phone: "89991112233"},
			{ID: "a2", FirstName: "Ivan", LastName: "Volkov", UserTag: "ivanko", Department: "android", Birthday: "1990-06-20"},
		},
		dept: map[string][]directory.RawEmployee{
			"ios": {{ID: "i1", FirstName: "Maria", LastName: "Kuznetsova", Department: "ios", Birthday: "1992-01-10"}},
		},
	}
	svc := dirsvc.New(f, dirsvc.Config{CacheTTL: 5 * time.Minute})

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/directory", func(rr phttp.Router) {
		dirhttp.Register(rr, svc)
	})
	return mux, f
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("envelope decode: %v (%s)", err, rec.Body.String())
	}
	return env
}

func snapshotOf(t *testing.T, rec *httptest.ResponseRecorder) domain.Snapshot {
	t.Helper()
	env := decode(t, rec)
	var snap domain.Snapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("snapshot decode: %v", err)
	}
	return snap
}

func TestFetchThenSnapshot(t *testing.T) {
	h, _ := newRig(t)

	rec := do(t, h, "POST", "/directory/fetch", `{}`)
	if rec.Code != 200 {
		t.Fatalf("fetch status %d: %s", rec.Code, rec.Body.String())
	}
	snap := snapshotOf(t, rec)
	if len(snap.Employees) != 2 || snap.Loading {
		t.Fatalf("fetch snapshot: %+v", snap)
	}

	rec = do(t, h, "GET", "/directory/snapshot", "")
	snap = snapshotOf(t, rec)
	if len(snap.Employees) != 2 || snap.Sorting != domain.SortAlphabet {
		t.Fatalf("snapshot: %+v", snap)
	}
}

func TestQueryEndpointFilters(t *testing.T) {
	h, _ := newRig(t)
	do(t, h, "POST", "/directory/fetch", `{}`)

	snap := snapshotOf(t, do(t, h, "POST", "/directory/query", `{"query":"volk"}`))
	if len(snap.Employees) != 1 || snap.Employees[0].ID != "a2" {
		t.Fatalf("filtered: %+v", snap.Employees)
	}
	if snap.SearchQuery != "volk" {
		t.Fatalf("search query echo: %q", snap.SearchQuery)
	}
}

func TestSortEndpointValidatesMode(t *testing.T) {
	h, _ := newRig(t)
	do(t, h, "POST", "/directory/fetch", `{}`)

	rec := do(t, h, "POST", "/directory/sort", `{"mode":"birthday"}`)
	snap := snapshotOf(t, rec)
	if snap.Sorting != domain.SortBirthday {
		t.Fatalf("sorting: %v", snap.Sorting)
	}

	rec = do(t, h, "POST", "/directory/sort", `{"mode":"zodiac"}`)
	if rec.Code != 400 {
		t.Fatalf("invalid mode must 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDepartmentEndpointScopes(t *testing.T) {
	h, _ := newRig(t)

	snap := snapshotOf(t, do(t, h, "POST", "/directory/department", `{"department":"ios"}`))
	if snap.SelectedDepartment != "ios" {
		t.Fatalf("selected: %q", snap.SelectedDepartment)
	}
	if len(snap.Employees) != 1 || snap.Employees[0].ID != "i1" {
		t.Fatalf("scoped employees: %+v", snap.Employees)
	}
}

func TestEmployeeLookup(t *testing.T) {
	h, _ := newRig(t)
	do(t, h, "POST", "/directory/fetch", `{}`)

	rec := do(t, h, "GET", "/directory/employees/a1", "")
	env := decode(t, rec)
	if rec.Code != 200 {
		t.Fatalf("lookup status %d", rec.Code)
	}
	var e domain.EmployeeDetail
	if err := json.Unmarshal(env.Data, &e); err != nil || e.FirstName != "Anton" {
		t.Fatalf("employee: %+v %v", e, err)
	}
	if e.PhoneFormatted != "8 (999) 111 22 33" {
		t.Fatalf("detail phone: %q", e.PhoneFormatted)
	}
	if e.Age <= 0 {
		t.Fatalf("detail age: %d", e.Age)
	}

	rec = do(t, h, "GET", "/directory/employees/ghost", "")
	if rec.Code != 404 {
		t.Fatalf("missing id must 404, got %d", rec.Code)
	}
	if env := decode(t, rec); env.Error == "" {
		t.Fatal("404 envelope must carry an error message")
	}
}

func TestDynamicFetchSucceeds(t *testing.T) {
	h, _ := newRig(t)

	rec := do(t, h, "POST", "/directory/fetch", `{"dynamic":true}`)
	if rec.Code != 200 {
		t.Fatalf("dynamic fetch status %d: %s", rec.Code, rec.Body.String())
	}
	snap := snapshotOf(t, rec)
	if len(snap.Employees) != 2 || snap.Loading || snap.LastError != "" {
		t.Fatalf("dynamic snapshot: %+v", snap)
	}
}

func TestFetchErrorEndpoint(t *testing.T) {
	h, _ := newRig(t)
	do(t, h, "POST", "/directory/fetch", `{}`)

	rec := do(t, h, "POST", "/directory/fetch/error", "")
	if rec.Code != 503 {
		t.Fatalf("forced failure must 503, got %d: %s", rec.Code, rec.Body.String())
	}
	if env := decode(t, rec); env.Error == "" {
		t.Fatal("failure envelope must carry an error message")
	}

	// the last good data survives the drill
	snap := snapshotOf(t, do(t, h, "GET", "/directory/snapshot", ""))
	if len(snap.Employees) != 2 || snap.LastError == "" {
		t.Fatalf("post-drill snapshot: %+v", snap)
	}
}

func TestNetworkRecoveredEndpoint(t *testing.T) {
	h, f := newRig(t)

	f.err = perr.Unavailablef("directory endpoint unreachable")
	rec := do(t, h, "POST", "/directory/fetch", `{}`)
	if rec.Code == 200 {
		t.Fatalf("offline fetch must fail, got %d", rec.Code)
	}

	f.err = nil
	rec = do(t, h, "POST", "/directory/network/recovered", "")
	if rec.Code != 200 {
		t.Fatalf("recovered status %d: %s", rec.Code, rec.Body.String())
	}
	snap := snapshotOf(t, rec)
	if snap.LastError != "" || len(snap.Employees) != 2 {
		t.Fatalf("recovered snapshot: %+v", snap)
	}
}
