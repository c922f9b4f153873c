// Package app wires the stores and services into one runnable application.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/gaps"
	"github.com/praxislearn/praxis/internal/graph"
	"github.com/praxislearn/praxis/internal/llm"
	"github.com/praxislearn/praxis/internal/practice"
	"github.com/praxislearn/praxis/internal/questiongen"
	"github.com/praxislearn/praxis/internal/session"
	"github.com/praxislearn/praxis/internal/store"
	"github.com/praxislearn/praxis/internal/tutor"
)

// App bundles the wired services. LLM-backed fields are nil when no provider
// is configured; everything else works without them.
type App struct {
	Store  *store.Store
	Repos  *store.Repos
	Events store.EventRepo
	Log    *zap.Logger

	Deduper  *concepts.Deduper
	Inserter *graph.Inserter
	Composer *session.Composer
	Practice *practice.Service
	Gaps     *gaps.Detector

	// Provider and the services below require a configured LLM provider.
	Provider  llm.Provider
	Banks     *questiongen.Service
	Suggester *tutor.Suggester
}

// New opens the store at dbPath and wires all services. The returned App must
// be Closed.
func New(ctx context.Context, dbPath string, log *zap.Logger) (*App, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	events, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("open event repo: %w", err)
	}

	repos := st.Repos()
	a := &App{
		Store:    st,
		Repos:    repos,
		Events:   events,
		Log:      log,
		Deduper:  concepts.NewDeduper(repos.Concepts, log),
		Inserter: graph.NewInserter(st, log),
		Composer: session.NewComposer(repos, log),
		Gaps:     gaps.NewDetector(repos.Gaps, log),
	}

	provider, err := llm.NewProviderFromEnv(ctx, events, log)
	if err != nil {
		log.Warn("LLM provider not configured; generation, grading, and suggestions unavailable",
			zap.Error(err))
		a.Practice = practice.NewService(st, nil, log)
		return a, nil
	}

	a.Provider = provider
	a.Practice = practice.NewService(st, tutor.NewGrader(provider, tutor.DefaultGraderConfig()), log)
	a.Banks = questiongen.NewService(repos.Questions, questiongen.New(provider, questiongen.DefaultConfig(), log), log)
	a.Suggester = tutor.NewSuggester(provider)
	return a, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
