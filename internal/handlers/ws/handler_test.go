package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/mudforge/battle-api/internal/commands"
	"github.com/mudforge/battle-api/internal/handlers/ws"
	"github.com/mudforge/battle-api/internal/pkg/clock"
	"github.com/mudforge/battle-api/internal/pkg/idgen"
	"github.com/mudforge/battle-api/internal/pkg/rng"
	"github.com/mudforge/battle-api/internal/repositories/monsters"
	"github.com/mudforge/battle-api/internal/repositories/transcripts"
	"github.com/mudforge/battle-api/internal/services/game"
	"github.com/mudforge/battle-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	server  *httptest.Server
	cleanup func()
}

func (s *HandlerTestSuite) SetupTest() {
	ctx := context.Background()

	templates := monsters.NewInMemory()
	_, err := templates.PutTemplate(ctx, &monsters.PutTemplateInput{
		Template: &monsters.Template{ID: "goblin", Name: "cave goblin", HitPoints: 2, Wound: "1d1"},
	})
	s.Require().NoError(err)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	transcriptRepo, err := transcripts.NewRedisRepository(&transcripts.Config{
		Client: client,
		Clock:  clock.New(),
	})
	s.Require().NoError(err)

	grammar, err := commands.NewGrammar(nil)
	s.Require().NoError(err)

	service, err := game.New(&game.Config{
		Templates:   templates,
		Transcripts: transcriptRepo,
		Grammar:     grammar,
		Roller:      rng.Fixed(0),
		IDGenerator: idgen.NewSequential("id"),
	})
	s.Require().NoError(err)

	handler, err := ws.NewHandler(&ws.Config{
		Game:               service,
		Encounter:          map[string]int{"goblin": 1},
		StrikeBackInterval: 100,
	})
	s.Require().NoError(err)

	router := mux.NewRouter()
	router.HandleFunc("/battle", handler.ServeBattle)
	router.HandleFunc("/healthz", handler.Healthz)
	s.server = httptest.NewServer(router)
}

func (s *HandlerTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *HandlerTestSuite) wsURL(query string) string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + "/battle" + query
}

func (s *HandlerTestSuite) dial(query string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL(query), nil)
	s.Require().NoError(err)
	return conn
}

func (s *HandlerTestSuite) readText(conn *websocket.Conn) string {
	kind, payload, err := conn.ReadMessage()
	s.Require().NoError(err)
	s.Require().Equal(websocket.TextMessage, kind)
	return string(payload)
}

func (s *HandlerTestSuite) TestBattleOverWebsocket() {
	conn := s.dial("?name=Asha")
	defer func() { _ = conn.Close() }()

	s.Equal("cave goblin (2 hp)", s.readText(conn))

	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("kill goblin")))
	s.Equal("Asha wounds cave goblin, who has 1 hit points left.", s.readText(conn))

	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("kill goblin")))
	s.Equal("Asha lands a killing blow on cave goblin!", s.readText(conn))
	s.Equal("The battle is over. You are victorious!", s.readText(conn))

	// Server closes the connection once the battle concludes.
	_, _, err := conn.ReadMessage()
	s.Error(err)
}

func (s *HandlerTestSuite) TestMissingNameRejectsUpgrade() {
	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL(""), nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestInvalidHitPointsRejectsUpgrade() {
	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL("?name=Asha&hp=zero"), nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestHealthz() {
	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
