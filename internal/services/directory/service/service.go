// Package service holds the directory state controller: the single writer for
// canonical and displayed employee sets, search query, sort mode, department
// selection, and the fetch lifecycle flags.
package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"staffdir/internal/core/directory"
	perr "staffdir/internal/platform/errors"
	"staffdir/internal/platform/logger"
	"staffdir/internal/services/directory/cache"
	"staffdir/internal/services/directory/domain"
)

// keyAll is the cache key for an unscoped fetch
const keyAll = "all"

// Config tunes the controller
type Config struct {
	// CacheTTL for the per department fetch memo, zero means the default
	CacheTTL time.Duration
	// Locale drives alphabetical collation, empty means Russian
	Locale string
}

// Service is the directory state controller
// all state transitions happen under mu; reads go through Snapshot
type Service struct {
	mu      sync.Mutex
	log     logger.Logger
	fetcher domain.Fetcher
	cache   *cache.Cache
	col     *collate.Collator
	now     func() time.Time

	canonical []directory.Employee
	displayed []directory.Employee

	searchQuery  string
	sortMode     domain.SortMode
	selectedDept string
	loading      bool
	lastErr      string

	// fetch ordering guard: every trigger takes a token, results apply
	// only when newer than the last applied one. inflight carries the
	// token a pending fetch will complete with; re-selecting a pending
	// key re-arms that token so the result stays current.
	reqSeq      uint64
	lastApplied uint64
	inflight    map[string]uint64
}

// New constructs the controller
func New(fetcher domain.Fetcher, cfg Config) *Service {
	tag := language.Russian
	if cfg.Locale != "" {
		if t, err := language.Parse(cfg.Locale); err == nil {
			tag = t
		}
	}
	return &Service{
		log:      *logger.Named("directory"),
		fetcher:  fetcher,
		cache:    cache.New(cfg.CacheTTL),
		col:      collate.New(tag),
		now:      time.Now,
		sortMode: domain.SortAlphabet,
		inflight: make(map[string]uint64),
	}
}

// SetNow swaps the clock, tests only
func (s *Service) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Cache exposes the memo so callers can tune its clock in tests
func (s *Service) Cache() *cache.Cache { return s.cache }

// FetchUsers loads the directory for department (empty means all), serving
// from the TTL cache when fresh. A failed fetch records the error and keeps
// the previously displayed data on screen.
func (s *Service) FetchUsers(ctx context.Context, department string) error {
	department = resolveDept(department)
	key := department
	if key == "" {
		key = keyAll
	}

	s.mu.Lock()
	if _, pending := s.inflight[key]; pending {
		// a fetch for this key is already on the wire; re-arm it with a
		// fresh token so its result applies as the newest trigger rather
		// than being discarded as stale
		s.inflight[key] = s.nextTokenLocked()
		s.mu.Unlock()
		return nil
	}

	token := s.nextTokenLocked()

	if raw, ok := s.cache.Get(key); ok {
		s.applyLocked(token, raw)
		s.mu.Unlock()
		s.log.Debug().Str("key", key).Msg("directory served from cache")
		return nil
	}

	s.inflight[key] = token
	s.mu.Unlock()

	raw, err := s.fetch(ctx, department)

	s.mu.Lock()
	defer s.mu.Unlock()
	// the pending token may have been re-armed while the request ran
	token = s.inflight[key]
	delete(s.inflight, key)

	if err != nil {
		s.rejectLocked(token, err)
		return err
	}
	s.cache.Put(key, raw)
	s.applyLocked(token, raw)
	s.log.Debug().Str("key", key).Int("count", len(raw)).Msg("directory fetched")
	return nil
}

// FetchDynamic pulls the server generated dataset, always over the network
func (s *Service) FetchDynamic(ctx context.Context) error {
	return s.fetchDirect(ctx, s.fetcher.FetchDynamic)
}

// FetchError asks the endpoint for a forced failure; the rejection
// lifecycle runs exactly as it would for a real outage
func (s *Service) FetchError(ctx context.Context) error {
	return s.fetchDirect(ctx, s.fetcher.FetchError500)
}

// fetchDirect runs a single uncached fetch under the token guard
func (s *Service) fetchDirect(ctx context.Context, fetch func(context.Context) ([]directory.RawEmployee, error)) error {
	s.mu.Lock()
	token := s.nextTokenLocked()
	s.mu.Unlock()

	raw, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.rejectLocked(token, err)
		return err
	}
	s.applyLocked(token, raw)
	return nil
}

func (s *Service) fetch(ctx context.Context, department string) ([]directory.RawEmployee, error) {
	if department == "" {
		return s.fetcher.FetchAll(ctx)
	}
	return s.fetcher.FetchByDepartment(ctx, department)
}

// resolveDept maps a display label back to its wire code, so selecting
// "Дизайн" scopes the same as selecting "design". Codes and empty pass
// through untouched.
func resolveDept(department string) string {
	if department == "" || directory.KnownCode(department) {
		return department
	}
	if code := directory.CodeForLabel(department); code != "" {
		return code
	}
	return department
}

// nextTokenLocked starts a fetch lifecycle: pending state plus a fresh token
func (s *Service) nextTokenLocked() uint64 {
	s.reqSeq++
	s.loading = true
	s.lastErr = ""
	return s.reqSeq
}

// applyLocked commits a successful result unless a newer one already landed
func (s *Service) applyLocked(token uint64, raw []directory.RawEmployee) {
	if token > s.lastApplied {
		s.lastApplied = token
		s.canonical = directory.Normalize(raw)
		s.deriveLocked()
	}
	if token == s.reqSeq {
		s.loading = false
	}
}

// rejectLocked records a failure; canonical and displayed data stay put
func (s *Service) rejectLocked(token uint64, err error) {
	if token > s.lastApplied {
		s.lastApplied = token
		s.lastErr = err.Error()
		s.log.Warn().Err(err).Msg("directory fetch rejected")
	}
	if token == s.reqSeq {
		s.loading = false
	}
}

// deriveLocked recomputes displayed from canonical, query, and sort mode
func (s *Service) deriveLocked() {
	filtered := directory.Filter(s.canonical, s.searchQuery)
	switch s.sortMode {
	case domain.SortBirthday:
		s.displayed = directory.SortByBirthday(filtered, s.now())
	default:
		s.displayed = directory.SortAlphabetical(filtered, s.col)
	}
}

// SetSearchQuery updates the filter and re-derives without a network call
func (s *Service) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.deriveLocked()
}

// SetSortMode switches ordering and re-derives without a network call
func (s *Service) SetSortMode(mode domain.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != domain.SortBirthday {
		mode = domain.SortAlphabet
	}
	s.sortMode = mode
	s.deriveLocked()
}

// SetSelectedDepartment switches scope and triggers a cache checked fetch
// for the new department
func (s *Service) SetSelectedDepartment(ctx context.Context, department string) error {
	department = resolveDept(department)
	s.mu.Lock()
	s.selectedDept = department
	s.mu.Unlock()
	return s.FetchUsers(ctx, department)
}

// Snapshot returns the current outbound view; the employee slice is copied
// so callers cannot race the controller
func (s *Service) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]directory.Employee, len(s.displayed))
	copy(out, s.displayed)
	return domain.Snapshot{
		Employees:          out,
		Loading:            s.loading,
		LastError:          s.lastErr,
		Sorting:            s.sortMode,
		SearchQuery:        s.searchQuery,
		SelectedDepartment: s.selectedDept,
	}
}

// EmployeeByID looks a record up in the canonical set and decorates it
// with the display fields the detail page shows
func (s *Service) EmployeeByID(id string) (domain.EmployeeDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.canonical {
		if e.ID == id {
			return domain.EmployeeDetail{
				Employee:       e,
				Age:            directory.Age(e.Birthday, s.now()),
				PhoneFormatted: directory.FormatPhone(e.Phone),
			}, nil
		}
	}
	return domain.EmployeeDetail{}, perr.NotFoundf("employee %s not found", id)
}

// OnNetworkRecovered refetches the selected department when nothing is
// pending. The cached entry for that key is dropped first: a recovery
// signal means the data on screen predates the outage.
func (s *Service) OnNetworkRecovered(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	dept := s.selectedDept
	key := dept
	if key == "" {
		key = keyAll
	}
	s.cache.Drop(key)
	s.mu.Unlock()
	return s.FetchUsers(ctx, dept)
}

var _ domain.ServicePort = (*Service)(nil)
