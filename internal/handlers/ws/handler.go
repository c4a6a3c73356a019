// Package ws exposes battles over a websocket: one connection is one
// player's seat in one battle, one text frame per turn.
package ws

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/mudforge/battle-api/internal/errors"
	"github.com/mudforge/battle-api/internal/services/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Config holds the dependencies for the websocket handler
type Config struct {
	Game game.Service
	// Encounter is the monster lineup every new battle starts with.
	Encounter map[string]int
	// StrikeBackInterval is forwarded to each new battle; zero means the
	// engine default.
	StrikeBackInterval int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Game == nil {
		vb.RequiredField("Game")
	}
	if len(c.Encounter) == 0 {
		vb.RequiredField("Encounter")
	}

	return vb.Build()
}

// Handler serves battles over websocket connections.
type Handler struct {
	game     game.Service
	lineup   map[string]int
	interval int
}

// NewHandler creates a new websocket handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		game:     cfg.Game,
		lineup:   cfg.Encounter,
		interval: cfg.StrikeBackInterval,
	}, nil
}

// ServeBattle upgrades the connection, starts a battle for the ?name=
// player, and then treats every incoming text frame as one turn until the
// battle concludes or the client disconnects.
func (h *Handler) ServeBattle(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "query parameter \"name\" is required",
			errors.CodeInvalidArgument.HTTPStatus())
		return
	}

	hitPoints := 0
	if raw := r.URL.Query().Get("hp"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "query parameter \"hp\" must be a positive integer",
				errors.CodeInvalidArgument.HTTPStatus())
			return
		}
		hitPoints = parsed
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ctx := r.Context()

	start, err := h.game.StartBattle(ctx, &game.StartBattleInput{
		PlayerName:         name,
		PlayerHitPoints:    hitPoints,
		Monsters:           h.lineup,
		StrikeBackInterval: h.interval,
	})
	if err != nil {
		slog.Error("Failed to start battle", "player_name", name, "error", err)
		h.write(conn, fmt.Sprintf("could not start battle: %s", errors.GetCode(err)))
		return
	}

	slog.Info("Websocket battle started",
		"battle_id", start.BattleID,
		"player_id", start.PlayerID,
	)

	if !h.write(conn, start.Opening) {
		return
	}

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			slog.Info("Websocket closed", "battle_id", start.BattleID, "error", err)
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		output, err := h.game.Command(ctx, &game.CommandInput{
			BattleID: start.BattleID,
			PlayerID: start.PlayerID,
			Text:     string(payload),
		})
		if err != nil {
			slog.Error("Turn failed", "battle_id", start.BattleID, "error", err)
			h.write(conn, fmt.Sprintf("turn failed: %s", errors.GetCode(err)))
			return
		}

		for _, text := range output.Narration {
			if !h.write(conn, text) {
				return
			}
		}

		if output.Over {
			h.write(conn, "The battle is over. You are victorious!")
			return
		}
	}
}

// Healthz is a trivial liveness endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) write(conn *websocket.Conn, text string) bool {
	if err := conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		slog.Warn("Websocket write failed", "error", err)
		return false
	}
	return true
}
