package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"worldchronicles/internal/adapter/cache/webhook"
	httpadapter "worldchronicles/internal/adapter/http"
	metricsinmem "worldchronicles/internal/adapter/metrics/inmemory"
	"worldchronicles/internal/adapter/narrative/gemini"
	"worldchronicles/internal/adapter/narrative/scripted"
	gormrepo "worldchronicles/internal/adapter/repo/gorm"
	"worldchronicles/internal/adapter/repo/memory"
	sqliterepo "worldchronicles/internal/adapter/repo/sqlite"
	"worldchronicles/internal/app/game"
	"worldchronicles/internal/app/journal"
	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"
	"worldchronicles/internal/platform/config"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Config struct {
	Addr             string        `env:"WORLDCHRONICLES_ADDR" envDefault:":8080"`
	Storage          string        `env:"WORLDCHRONICLES_STORAGE" envDefault:"memory"`
	SQLitePath       string        `env:"WORLDCHRONICLES_SQLITE_PATH" envDefault:"worldchronicles.sqlite"`
	DBDSN            string        `env:"WORLDCHRONICLES_DB_DSN"`
	MigrationsDir    string        `env:"WORLDCHRONICLES_MIGRATIONS_DIR" envDefault:"db/migrations"`
	NarrativeDriver  string        `env:"NARRATIVE_DRIVER" envDefault:"gemini"`
	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	GeminiModel      string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiEndpoint   string        `env:"GEMINI_ENDPOINT"`
	GeminiTimeout    time.Duration `env:"GEMINI_TIMEOUT" envDefault:"90s"`
	CachePurgeURL    string        `env:"CACHE_PURGE_URL"`
	DevilFruitStrict bool          `env:"DEVIL_FRUIT_STRICT" envDefault:"false"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	hlog.SetLevel(parseLogLevel(cfg.LogLevel))

	ctx := context.Background()
	st, err := buildStores(ctx, cfg)
	if err != nil {
		hlog.Fatalf("build storage: %v", err)
	}
	defer st.close()

	narrative, err := buildNarrative(cfg)
	if err != nil {
		hlog.Fatalf("build narrative backend: %v", err)
	}
	purger, err := buildPurger(cfg)
	if err != nil {
		hlog.Fatalf("build cache purger: %v", err)
	}
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		Game: &game.Service{
			Narrative:  narrative,
			Snapshots:  st.snapshots,
			Journal:    st.journal,
			TxManager:  st.tx,
			Metrics:    kpiRecorder,
			Cache:      purger,
			Reconciler: adventure.Reconciler{RejectSecondDevilFruit: cfg.DevilFruitStrict},
		},
		JournalUC: journal.UseCase{Entries: st.journal},
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	hlog.Infof("world chronicles listening on %s storage=%s narrative=%s", cfg.Addr, cfg.Storage, cfg.NarrativeDriver)
	s.Spin()
}

type stores struct {
	snapshots ports.SnapshotStore
	journal   ports.JournalRepository
	tx        ports.TxManager
	close     func()
}

func buildStores(ctx context.Context, cfg Config) (stores, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage)) {
	case "", "memory":
		store := memory.NewStore()
		return stores{
			snapshots: memory.NewSnapshotStore(store),
			journal:   memory.NewJournalRepo(store),
			tx:        memory.NewTxManager(store),
			close:     func() {},
		}, nil
	case "sqlite":
		store, err := sqliterepo.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{
			snapshots: store,
			journal:   store,
			tx:        store,
			close:     func() { _ = store.Close() },
		}, nil
	case "postgres":
		if strings.TrimSpace(cfg.DBDSN) == "" {
			return stores{}, errors.New("WORLDCHRONICLES_DB_DSN is required for postgres storage")
		}
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return stores{}, fmt.Errorf("open postgres: %w", err)
		}
		applied, err := gormrepo.ApplyMigrations(ctx, db, cfg.MigrationsDir)
		if err != nil {
			return stores{}, fmt.Errorf("apply migrations: %w", err)
		}
		if len(applied) > 0 {
			hlog.Infof("applied migrations: %s", strings.Join(applied, ", "))
		}
		return stores{
			snapshots: gormrepo.NewSnapshotRepo(db),
			journal:   gormrepo.NewJournalRepo(db),
			tx:        gormrepo.NewTxManager(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func buildNarrative(cfg Config) (ports.NarrativeGateway, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.NarrativeDriver)) {
	case "", "gemini":
		return gemini.New(gemini.Config{
			APIKey:   cfg.GeminiAPIKey,
			Model:    cfg.GeminiModel,
			Endpoint: cfg.GeminiEndpoint,
			Timeout:  cfg.GeminiTimeout,
		})
	case "scripted":
		return scripted.Gateway{}, nil
	default:
		return nil, fmt.Errorf("unknown narrative driver %q", cfg.NarrativeDriver)
	}
}

func buildPurger(cfg Config) (ports.CachePurger, error) {
	if strings.TrimSpace(cfg.CachePurgeURL) == "" {
		return webhook.Noop{}, nil
	}
	return webhook.New(cfg.CachePurgeURL)
}

func parseLogLevel(level string) hlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "warn", "warning":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
