// Package main boots the Luna companion chat and wires application
// dependencies.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Minomoreno86/EMOCIONES/internal/config"
	"github.com/Minomoreno86/EMOCIONES/internal/dialogue"
	"github.com/Minomoreno86/EMOCIONES/internal/memory"
	"github.com/Minomoreno86/EMOCIONES/internal/models"
	"github.com/Minomoreno86/EMOCIONES/internal/mood"
	"github.com/Minomoreno86/EMOCIONES/internal/prompt"
	"github.com/Minomoreno86/EMOCIONES/internal/repository"
	"github.com/Minomoreno86/EMOCIONES/internal/templates"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	slog.Info("configuration loaded", "locale", cfg.Locale, "llm_model", cfg.LLMModel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := dialogue.Deps{
		Provider: templates.ForLocale(cfg.Locale),
		Logger:   logger,
	}

	var moodRepo mood.Repo = mood.NewInMemoryRepo()
	var store *repository.Store
	if cfg.DatabaseURL != "" {
		store, err = repository.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
		deps.Gateway = store.Sessions
		moodRepo = store.Moods
		slog.Info("postgres store connected")
	}

	if cfg.OpenAIAPIKey != "" {
		completion, err := models.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.Temperature)
		if err != nil {
			log.Fatalf("failed to create completion client: %v", err)
		}
		deps.Completion = completion
		deps.Prompt = prompt.NewBuilder()
	}

	if cfg.GoogleAPIKey != "" && store != nil {
		embedder, err := memory.NewGenAIEmbedder(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
		if err != nil {
			log.Fatalf("failed to create embedder: %v", err)
		}
		deps.Recall = memory.NewService(embedder, store.Memories, cfg.TopK, cfg.SimilarityThreshold)
	}

	orch, err := dialogue.NewOrchestrator(ctx, deps, dialogue.DefaultConfig(time.Now()))
	if err != nil {
		log.Fatalf("failed to start conversation: %v", err)
	}
	defer orch.Flush()

	journal := mood.NewJournal(moodRepo, nil)

	if history := orch.History(); len(history) > 0 {
		fmt.Printf("luna> %s\n", history[len(history)-1].Content)
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nhasta pronto")
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Println("hasta pronto")
				return
			}
			handleLine(ctx, orch, journal, strings.TrimSpace(line))
		}
	}
}

func handleLine(ctx context.Context, orch *dialogue.Orchestrator, journal *mood.Journal, line string) {
	switch {
	case line == "":
		return
	case line == "/salir":
		fmt.Println("hasta pronto")
		orch.Flush()
		os.Exit(0)
	case strings.HasPrefix(line, "/animo"):
		recordMood(ctx, journal, line)
	case line == "/estadisticas":
		printAnalytics(orch)
	default:
		reply := orch.SendMessage(ctx, line)
		if reply == nil {
			return
		}
		fmt.Printf("luna> %s\n", reply.Content)
	}
}

// recordMood handles "/animo <1-5> [nota]".
func recordMood(ctx context.Context, journal *mood.Journal, line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		fmt.Println("uso: /animo <1-5> [nota]")
		return
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Println("uso: /animo <1-5> [nota]")
		return
	}

	entry, err := journal.Record(ctx, mood.Entry{
		Score: score,
		Note:  strings.Join(fields[2:], " "),
	})
	if err != nil {
		fmt.Printf("no se pudo registrar: %v\n", err)
		return
	}
	fmt.Printf("luna> %s\n", journal.Suggestion(entry))

	correlations, err := journal.Correlations(ctx)
	if err != nil {
		slog.Warn("failed to compute correlations", "error", err)
		return
	}
	for _, c := range correlations {
		fmt.Printf("  %s: %+.2f\n", c.Variable, c.Coefficient)
	}
}

func printAnalytics(orch *dialogue.Orchestrator) {
	a := orch.Analytics()
	fmt.Printf("mensajes: %d  confianza media: %.0f%%  nivel de adaptación: %.0f%%\n",
		a.TotalMessages, a.AverageConfidence*100, a.AdaptationLevel*100)
	for state, count := range a.EmotionDistribution {
		fmt.Printf("  %s: %d\n", state, count)
	}
}
