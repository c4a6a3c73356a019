package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/mudforge/battle-api/internal/commands"
	"github.com/mudforge/battle-api/internal/handlers/ws"
	"github.com/mudforge/battle-api/internal/pkg/clock"
	"github.com/mudforge/battle-api/internal/pkg/idgen"
	"github.com/mudforge/battle-api/internal/pkg/rng"
	redisclient "github.com/mudforge/battle-api/internal/redis"
	"github.com/mudforge/battle-api/internal/repositories/monsters"
	"github.com/mudforge/battle-api/internal/repositories/transcripts"
	"github.com/mudforge/battle-api/internal/services/game"
)

var (
	httpPort           int
	redisEndpoint      string
	strikeBackInterval int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the battle server",
	Long:  `Start the websocket battle server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "localhost:6379", "Redis endpoint for templates and transcripts")
	serverCmd.Flags().IntVar(&strikeBackInterval, "strike-back-interval", 3, "player actions between monster strikes")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	client, err := redisclient.NewClient(redisEndpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	templates, err := monsters.NewRedisRepository(&monsters.Config{
		Client: client,
	})
	if err != nil {
		return fmt.Errorf("failed to create template repository: %w", err)
	}

	if err := seedTemplates(ctx, templates); err != nil {
		return fmt.Errorf("failed to seed monster templates: %w", err)
	}

	transcriptRepo, err := transcripts.NewRedisRepository(&transcripts.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create transcript repository: %w", err)
	}

	grammar, err := commands.NewGrammar(nil)
	if err != nil {
		return fmt.Errorf("failed to compile command grammar: %w", err)
	}

	gameService, err := game.New(&game.Config{
		Templates:   templates,
		Transcripts: transcriptRepo,
		Grammar:     grammar,
		Roller:      rng.New(time.Now().UnixNano()),
		IDGenerator: idgen.NewUUID("battle"),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	handler, err := ws.NewHandler(&ws.Config{
		Game: gameService,
		Encounter: map[string]int{
			"goblin": 2,
			"ogre":   1,
		},
		StrikeBackInterval: strikeBackInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create websocket handler: %w", err)
	}

	router := mux.NewRouter()
	router.HandleFunc("/battle", handler.ServeBattle)
	router.HandleFunc("/healthz", handler.Healthz)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", httpPort),
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed, forcing close", "error", err)
			_ = srv.Close()
		} else {
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// seedTemplates makes sure the default encounter's monsters exist. Existing
// templates are overwritten so flag changes take effect on restart.
func seedTemplates(ctx context.Context, repo monsters.Repository) error {
	defaults := []*monsters.Template{
		{ID: "goblin", Name: "cave goblin", HitPoints: 4, Wound: "1d4"},
		{ID: "ogre", Name: "swamp ogre", HitPoints: 12, Wound: "2d6"},
	}

	for _, tpl := range defaults {
		if _, err := repo.PutTemplate(ctx, &monsters.PutTemplateInput{Template: tpl}); err != nil {
			return err
		}
	}
	return nil
}
