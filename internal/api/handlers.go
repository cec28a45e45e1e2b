package api

import (
	"context"
	"fmt"
	"net/http"

	"hltv-crawler/lib/scrapers/hltv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

type RankingResponse struct {
	// empty when the ranking was requested by raw url
	Week    string               `json:"week,omitempty"`
	Url     string               `json:"url"`
	Records []hltv.RankingRecord `json:"records"`
}

type TeamResponse struct {
	Week   string             `json:"week,omitempty"`
	Record hltv.RankingRecord `json:"record"`
}

// rankingWeek is the monday the requested ranking belongs to, an undated
// request is this week's ranking. rankings requested by raw url have no
// known week.
func (s Server) rankingWeek(req hltv.RankingRequest) (*hltv.RankingDate, error) {
	if req.Url != "" {
		return nil, nil
	}
	if req.Date == "" {
		week := hltv.ResolveRankingDate(s.time.Now())
		return &week, nil
	}
	week, err := hltv.ParseRankingDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &week, nil
}

func (s Server) ranking(ctx context.Context, r *http.Request) (RankingResponse, error) {
	query := r.URL.Query()
	req := hltv.RankingRequest{
		Url:    query.Get("url"),
		Date:   query.Get("date"),
		Region: query.Get("region"),
	}

	// validated up front so a bad request never reaches the site
	link, err := s.client.Site().RankingUrl(req)
	if err != nil {
		return RankingResponse{}, err
	}
	week, err := s.rankingWeek(req)
	if err != nil {
		return RankingResponse{}, err
	}

	records, err := s.client.Ranking(ctx, req)
	if err != nil {
		return RankingResponse{}, err
	}

	res := RankingResponse{Url: link, Records: records}
	if week == nil {
		return res, nil
	}
	res.Week = week.String()

	if s.store != nil {
		err = s.store.Save(ctx, *week, records)
		if err != nil {
			// the ranking was still fetched successfully
			s.tel.ReportBroken(report_api_store, fmt.Errorf("save %s: %w", week.String(), err))
		}
	}
	return res, nil
}

func (s Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleRanking")
	defer span.End()

	res, err := s.ranking(ctx, r)
	if err != nil {
		span.RecordError(err)
		s.writeError(w, report_api_ranking, err)
		return
	}
	span.SetAttributes(attribute.Int("records", len(res.Records)))
	writeJson(w, http.StatusOK, res)
}

func (s Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleSearch")
	defer span.End()

	// a missing query is a blank one, which has no results
	result, err := s.client.Search(ctx, r.URL.Query().Get("query"))
	if err != nil {
		span.RecordError(err)
		s.writeError(w, report_api_search, err)
		return
	}
	writeJson(w, http.StatusOK, result)
}

func (s Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleTeam")
	defer span.End()

	name := mux.Vars(r)["name"]
	ranking, err := s.ranking(ctx, r)
	if err != nil {
		span.RecordError(err)
		s.writeError(w, report_api_team, err)
		return
	}

	record, ok := hltv.FindTeam(ranking.Records, name)
	if !ok {
		s.writeError(w, report_api_team, fmt.Errorf("%w: '%s'", ErrTeamNotRanked, name))
		return
	}
	writeJson(w, http.StatusOK, TeamResponse{Week: ranking.Week, Record: record})
}

// handlePlayer finds the ranked team a player is currently on.
func (s Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handlePlayer")
	defer span.End()

	nickname := mux.Vars(r)["nickname"]
	ranking, err := s.ranking(ctx, r)
	if err != nil {
		span.RecordError(err)
		s.writeError(w, report_api_player, err)
		return
	}

	record, ok := hltv.FindPlayer(ranking.Records, nickname)
	if !ok {
		s.writeError(w, report_api_player, fmt.Errorf("%w: '%s'", ErrPlayerNotRanked, nickname))
		return
	}
	writeJson(w, http.StatusOK, TeamResponse{Week: ranking.Week, Record: record})
}

// handleHistory lists stored weeks, or returns the snapshot of one week if
// ?week= is given.
func (s Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleHistory")
	defer span.End()

	if s.store == nil {
		s.writeError(w, report_api_history, ErrStoreDisabled)
		return
	}

	date := r.URL.Query().Get("week")
	if date == "" {
		weeks, err := s.store.Weeks(ctx)
		if err != nil {
			s.writeError(w, report_api_history, err)
			return
		}
		writeJson(w, http.StatusOK, weeks)
		return
	}

	week, err := hltv.ParseRankingDate(date)
	if err != nil {
		s.writeError(w, report_api_history, err)
		return
	}
	snapshot, err := s.store.Get(ctx, week)
	if err != nil {
		s.writeError(w, report_api_history, err)
		return
	}
	writeJson(w, http.StatusOK, snapshot)
}

func (s Server) handlePlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handlePlayerHistory")
	defer span.End()

	if s.store == nil {
		s.writeError(w, report_api_history, ErrStoreDisabled)
		return
	}

	history, err := s.store.PlayerHistory(ctx, mux.Vars(r)["nickname"])
	if err != nil {
		s.writeError(w, report_api_history, err)
		return
	}
	writeJson(w, http.StatusOK, history)
}
