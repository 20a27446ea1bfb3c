package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"planter/advisor"
	"planter/communication"
	"planter/engine"
	"planter/game"

	"github.com/rs/zerolog/log"
)

const maxBodySize = 1 << 20

// ViewOf snapshots a session for a client.
func ViewOf(s *engine.Session, count int) communication.SessionView {
	prefs := communication.FromPreferences(s.Preferences())
	return communication.SessionView{
		ID:              s.ID.String(),
		State:           communication.FromState(s.State()),
		ActingPlayer:    s.ActingPlayer().String(),
		Recommendations: communication.FromCandidates(advisor.Limit(s.Recommend(), count)),
		Preferences:     prefs,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(communication.RawStateSchema())
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	count := s.count
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, errors.New("count must be a non-negative integer"))
			return
		}
		count = n
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state, err := communication.DecodeState(body, s.session.Catalog())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.FromCandidates(advisor.Limit(s.session.RecommendMoves(state), count)))
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ViewOf(s.session, s.count))
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	s.handleMove(w, r, game.You)
}

func (s *Server) handleOpponent(w http.ResponseWriter, r *http.Request) {
	s.handleMove(w, r, game.Opponent)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request, p game.Player) {
	var cmd communication.MoveCommand
	if !readJSON(w, r, &cmd) {
		return
	}
	applied, err := applyMove(s.session, p, cmd)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.ApplyResult{Applied: applied, Session: ViewOf(s.session, s.count)})
}

func (s *Server) handleAffirm(w http.ResponseWriter, r *http.Request) {
	var cmd communication.MoveCommand
	if !readJSON(w, r, &cmd) {
		return
	}
	n, err := affirm(s.session, cmd)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.AffirmResult{Count: n})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var cmd communication.ResetCommand
	if !readJSON(w, r, &cmd) {
		return
	}
	holder, err := cmd.Parse()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.session.ResetSession(holder)
	writeJSON(w, http.StatusOK, ViewOf(s.session, s.count))
}

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	var cmd communication.RoundCommand
	if !readJSON(w, r, &cmd) {
		return
	}
	s.session.StartRound(cmd.Parse())
	writeJSON(w, http.StatusOK, ViewOf(s.session, s.count))
}

func applyMove(s *engine.Session, p game.Player, cmd communication.MoveCommand) (bool, error) {
	role, resource, building, err := cmd.Parse(s.Catalog())
	if err != nil {
		return false, err
	}
	if p == game.Opponent {
		_, ok := s.ApplyOpponentRole(role, resource, building)
		return ok, nil
	}
	_, ok := s.ApplyChosenMove(role, resource, building)
	return ok, nil
}

func affirm(s *engine.Session, cmd communication.MoveCommand) (int, error) {
	role, resource, building, err := cmd.Parse(s.Catalog())
	if err != nil {
		return 0, err
	}
	return s.RecordAffirmedPreference(role, resource, building), nil
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Debug().Err(err).Msgf("request rejected with %d", status)
	writeJSON(w, status, communication.ErrorJSON{Error: err.Error()})
}
