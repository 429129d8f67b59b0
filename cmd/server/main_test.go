package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"worldchronicles/internal/adapter/cache/webhook"
	"worldchronicles/internal/adapter/narrative/scripted"
	"worldchronicles/internal/domain/adventure"
	"worldchronicles/internal/platform/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Storage != "memory" || cfg.NarrativeDriver != "gemini" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GeminiTimeout != 90*time.Second || cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected gemini defaults: %+v", cfg)
	}
	if cfg.DevilFruitStrict {
		t.Fatalf("devil fruit policy should default to lenient")
	}
}

func TestBuildStores_Memory(t *testing.T) {
	s, err := buildStores(context.Background(), Config{Storage: "memory"})
	if err != nil {
		t.Fatalf("build memory: %v", err)
	}
	defer s.close()
	if err := s.snapshots.Put(context.Background(), "p1", adventure.SaveKey, []byte("{}")); err != nil {
		t.Fatalf("put: %v", err)
	}
}

func TestBuildStores_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.sqlite")
	s, err := buildStores(context.Background(), Config{Storage: "sqlite", SQLitePath: path})
	if err != nil {
		t.Fatalf("build sqlite: %v", err)
	}
	defer s.close()
	err = s.tx.RunInTx(context.Background(), func(ctx context.Context) error {
		return s.snapshots.Put(ctx, "p1", adventure.SaveKey, []byte("{}"))
	})
	if err != nil {
		t.Fatalf("tx put: %v", err)
	}
	if ok, _ := s.snapshots.Exists(context.Background(), "p1", adventure.SaveKey); !ok {
		t.Fatalf("expected snapshot to exist")
	}
}

func TestBuildStores_Errors(t *testing.T) {
	if _, err := buildStores(context.Background(), Config{Storage: "postgres"}); err == nil {
		t.Fatalf("expected error for postgres without dsn")
	}
	if _, err := buildStores(context.Background(), Config{Storage: "floppy"}); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}

func TestBuildNarrative(t *testing.T) {
	gw, err := buildNarrative(Config{NarrativeDriver: "scripted"})
	if err != nil {
		t.Fatalf("scripted: %v", err)
	}
	if _, ok := gw.(scripted.Gateway); !ok {
		t.Fatalf("expected scripted gateway, got %T", gw)
	}
	if _, err := buildNarrative(Config{NarrativeDriver: "gemini"}); err == nil {
		t.Fatalf("expected gemini without api key to fail")
	}
	if _, err := buildNarrative(Config{NarrativeDriver: "gemini", GeminiAPIKey: "k"}); err != nil {
		t.Fatalf("gemini with key: %v", err)
	}
	if _, err := buildNarrative(Config{NarrativeDriver: "oracle"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}

func TestBuildPurger(t *testing.T) {
	p, err := buildPurger(Config{})
	if err != nil {
		t.Fatalf("noop: %v", err)
	}
	if _, ok := p.(webhook.Noop); !ok {
		t.Fatalf("expected noop purger, got %T", p)
	}
	if err := p.Purge(context.Background()); err != nil {
		t.Fatalf("noop purge: %v", err)
	}
	p, err = buildPurger(Config{CachePurgeURL: "http://cache.local/purge"})
	if err != nil || p == nil {
		t.Fatalf("webhook purger: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]hlog.Level{
		"debug":   hlog.LevelDebug,
		"WARN":    hlog.LevelWarn,
		"error":   hlog.LevelError,
		"":        hlog.LevelInfo,
		"verbose": hlog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q)=%v want %v", in, got, want)
		}
	}
}
