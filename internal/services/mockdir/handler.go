package mockdir

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"staffdir/internal/core/directory"
	"staffdir/internal/platform/logger"
)

const dynamicCount = 24

// Options tunes the mock endpoint
type Options struct {
	// DynamicDelay is the artificial latency of the __dynamic path
	DynamicDelay time.Duration
}

// Handler serves the directory wire contract on a single route
type Handler struct {
	data  *Dataset
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewHandler builds the endpoint handler around a dataset
func NewHandler(data *Dataset, opts Options) *Handler {
	return &Handler{
		data:  data,
		opts:  opts,
		log:   *logger.Named("mockdir"),
		sleep: time.Sleep,
	}
}

// ServeHTTP answers GET with the dataset selected by the query params
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()

	if q.Get("__dynamic") == "true" {
		if code := q.Get("__code"); code != "" {
			status, err := strconv.Atoi(code)
			if err != nil || status < 100 || status > 599 {
				status = http.StatusInternalServerError
			}
			h.log.Debug().Int("status", status).Msg("forced status")
			http.Error(w, http.StatusText(status), status)
			return
		}
		if h.opts.DynamicDelay > 0 {
			h.sleep(h.opts.DynamicDelay)
		}
		h.write(w, h.data.Dynamic(dynamicCount))
		return
	}

	switch sel := q.Get("__example"); sel {
	case "", "all":
		h.write(w, h.data.All())
	default:
		if !directory.KnownCode(sel) {
			http.Error(w, "unknown department", http.StatusBadRequest)
			return
		}
		h.write(w, h.data.ByDepartment(sel))
	}
}

func (h *Handler) write(w http.ResponseWriter, items []directory.RawEmployee) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(struct {
		Items []directory.RawEmployee `json:"items"`
	}{Items: items})
}
