package main

import (
	"flag"
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// tables are the ones backing the snapshot store and the journal.
var tables = []string{"adventure_snapshots", "journal_entries"}

func main() {
	var dsn, out string
	flag.StringVar(&dsn, "dsn", os.Getenv("WORLDCHRONICLES_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.Parse()

	if dsn == "" {
		hlog.Fatal("missing --dsn or WORLDCHRONICLES_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		hlog.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	for _, table := range tables {
		g.GenerateModel(table)
	}
	g.Execute()

	hlog.Infof("generated gorm models for %v at %s", tables, out)
}
