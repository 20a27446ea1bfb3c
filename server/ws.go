package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"planter/advisor"
	"planter/communication"
	"planter/engine"
	"planter/game"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsClient is one websocket connection and the session it owns.
type wsClient struct {
	conn    *websocket.Conn
	session *engine.Session
	count   int
	send    chan []byte
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	count := s.count
	if n, err := strconv.Atoi(r.URL.Query().Get("count")); err == nil && n >= 0 {
		count = n
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	c := &wsClient{
		conn:    conn,
		session: engine.NewSession(s.sessionOptions...),
		count:   count,
		send:    make(chan []byte, 32),
	}
	log.Info().Msgf("ws client %s connected from %s", c.session.ID, r.RemoteAddr)

	go c.writePump()
	go c.readPump()
}

// readPump handles one envelope at a time, so the session sees commands in
// the order the client sent them.
func (c *wsClient) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
		log.Info().Msgf("ws client %s disconnected", c.session.ID)
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("ws read error")
			}
			return
		}
		var env communication.Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			c.sendEnvelope(errorEnvelope(fmt.Errorf("malformed envelope: %w", err)))
			continue
		}
		c.sendEnvelope(dispatch(c.session, c.count, env))
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) sendEnvelope(env communication.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Msg("marshal envelope")
		return
	}
	select {
	case c.send <- data:
	default:
		log.Warn().Msgf("ws client %s send buffer full, dropping %s", c.session.ID, env.Type)
	}
}

// dispatch runs one command against session and builds the reply.
func dispatch(session *engine.Session, count int, env communication.Envelope) communication.Envelope {
	var (
		reply any
		kind  = communication.TypeState
		err   error
	)
	switch env.Type {
	case communication.TypeRecommend:
		kind = communication.TypeRecommendations
		if len(env.Payload) == 0 || string(env.Payload) == "null" {
			reply = communication.FromCandidates(advisor.Limit(session.Recommend(), count))
			break
		}
		var state game.State
		state, err = communication.DecodeState(env.Payload, session.Catalog())
		if err == nil {
			reply = communication.FromCandidates(advisor.Limit(session.RecommendMoves(state), count))
		}
	case communication.TypeApply, communication.TypeOpponent:
		var cmd communication.MoveCommand
		if err = json.Unmarshal(env.Payload, &cmd); err != nil {
			break
		}
		p := game.You
		if env.Type == communication.TypeOpponent {
			p = game.Opponent
		}
		var applied bool
		if applied, err = applyMove(session, p, cmd); err == nil {
			reply = communication.ApplyResult{Applied: applied, Session: ViewOf(session, count)}
		}
	case communication.TypeAffirm:
		var cmd communication.MoveCommand
		if err = json.Unmarshal(env.Payload, &cmd); err != nil {
			break
		}
		if _, err = affirm(session, cmd); err == nil {
			reply = ViewOf(session, count)
		}
	case communication.TypeReset:
		var cmd communication.ResetCommand
		if len(env.Payload) > 0 {
			if err = json.Unmarshal(env.Payload, &cmd); err != nil {
				break
			}
		}
		var holder game.Player
		if holder, err = cmd.Parse(); err == nil {
			session.ResetSession(holder)
			reply = ViewOf(session, count)
		}
	case communication.TypeRound:
		var cmd communication.RoundCommand
		if err = json.Unmarshal(env.Payload, &cmd); err != nil {
			break
		}
		session.StartRound(cmd.Parse())
		reply = ViewOf(session, count)
	case communication.TypeState:
		reply = ViewOf(session, count)
	default:
		err = fmt.Errorf("unknown message type %q", env.Type)
	}

	if err != nil {
		return errorEnvelope(err)
	}
	out, err := communication.NewEnvelope(kind, reply)
	if err != nil {
		return errorEnvelope(err)
	}
	return out
}

func errorEnvelope(err error) communication.Envelope {
	env, _ := communication.NewEnvelope(communication.TypeError, communication.ErrorJSON{Error: err.Error()})
	return env
}
