package api

import (
	"encoding/json"
	"net/http"

	"hltv-crawler/internal/assert"
	"hltv-crawler/internal/chrono"
	"hltv-crawler/internal/telemetry"
	"hltv-crawler/lib/rankingstore"
	"hltv-crawler/lib/scrapers/hltv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hltv-crawler.internal.api")

const (
	report_api_ranking = "api.ranking"
	report_api_search  = "api.search"
	report_api_team    = "api.team"
	report_api_player  = "api.player"
	report_api_history = "api.history"
	report_api_store   = "api.store"
)

const requestIdHeader = "X-Request-Id"

type Options struct {
	Client *hltv.Client
	// optional, rankings are not persisted and /history is unavailable when nil
	Store     *rankingstore.Store
	Time      chrono.API
	Telemetry telemetry.API
}

// Server exposes the crawler as a small json api.
type Server struct {
	client *hltv.Client
	store  *rankingstore.Store
	time   chrono.API
	tel    telemetry.API
}

func NewServer(opts Options) Server {
	assert.NotNil(opts.Client, "hltv client")

	t := opts.Time
	if t == nil {
		t = chrono.StandardImpl{}
	}
	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}

	return Server{
		client: opts.Client,
		store:  opts.Store,
		time:   t,
		tel:    telemetry.NewScopedAPI("api", tel),
	}
}

// Handler returns the router serving every endpoint.
func (s Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIdMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/ranking", s.handleRanking).Methods("GET")
	r.HandleFunc("/search", s.handleSearch).Methods("GET")
	r.HandleFunc("/team/{name}", s.handleTeam).Methods("GET")
	r.HandleFunc("/player/{nickname}", s.handlePlayer).Methods("GET")
	r.HandleFunc("/history", s.handleHistory).Methods("GET")
	r.HandleFunc("/history/player/{nickname}", s.handlePlayerHistory).Methods("GET")

	return r
}

func requestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)
		next.ServeHTTP(w, r)
	})
}

func writeJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeError reports unexpected errors, errors caused by the caller are
// only returned to them.
func (s Server) writeError(w http.ResponseWriter, id string, err error) {
	status := statusOf(err)
	switch status {
	case http.StatusInternalServerError:
		s.tel.ReportBroken(id, err)
	case http.StatusBadGateway:
		s.tel.ReportWarning(id, err)
	}
	writeJson(w, status, errorResponse{Error: err.Error()})
}

func (s Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string]string{"status": "ok"})
}
