package kodemock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "staffdir/internal/platform/errors"
)

func TestFetchAllDecodesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("__example"); got != "all" {
			t.Errorf("want __example=all got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"e1","firstName":"Ivan","lastName":"Petrov","userTag":"ip","department":"ios","birthday":"1994-03-11","phone":"89991112233"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	got, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" || got[0].Department != "ios" {
		t.Fatalf("decoded: %+v", got)
	}
}

func TestFetchByDepartmentSetsSelector(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query().Get("__example")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	if _, err := c.FetchByDepartment(context.Background(), "android"); err != nil {
		t.Fatalf("FetchByDepartment: %v", err)
	}
	if seen != "android" {
		t.Fatalf("selector: got %q", seen)
	}
}

func TestFetchDynamicRequestsFreshDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("__dynamic") != "true" {
			t.Errorf("query: %q", r.URL.RawQuery)
		}
		if q.Has("__code") {
			t.Errorf("dynamic fetch must not force a status: %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"g1","firstName":"Olga","lastName":"Smirnova","department":"qa","birthday":"1996-02-29"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	got, err := c.FetchDynamic(context.Background())
	if err != nil {
		t.Fatalf("FetchDynamic: %v", err)
	}
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("decoded: %+v", got)
	}
}

func TestFetchError500ForcesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("__dynamic") != "true" || q.Get("__code") != "500" {
			t.Errorf("query: %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.FetchError500(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable error, got %v", err)
	}
}

func TestServerErrorsNormalizeToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.FetchAll(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestTransportErrorNormalizesToUnavailable(t *testing.T) {
	// closed server: dial fails
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.FetchAll(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestRecordsMissingIdentityAreDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[
			{"id":"ok","firstName":"Ivan","lastName":"Petrov"},
			{"id":"","firstName":"Ghost","lastName":"Record"},
			{"id":"nameless","firstName":"","lastName":"Record"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	got, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("invalid records must be dropped, got %+v", got)
	}
}

func TestMalformedBodyIsJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": nope`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.FetchAll(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want json error, got %v", err)
	}
}
