// Command modelgen regenerates gorm models from a migrated watchfloor
// database so the hand-written rows in internal/adapter/repo/gorm/model can
// be diffed against the live schema.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

var tables = []string{
	"operators",
	"public_metrics",
	"reluctance_metrics",
	"citizens",
	"neighborhoods",
	"protests",
	"news_channels",
	"news_articles",
	"operator_actions",
	"citizen_flags",
	"directives",
	"book_publications",
}

func main() {
	var dsn, out string
	flag.StringVar(&dsn, "dsn", os.Getenv("WATCHFLOOR_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "tools/modelgen/out/query", "output dir for generated models")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or WATCHFLOOR_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext | gen.WithDefaultQuery,
	})
	g.UseDB(db)
	models := make([]any, 0, len(tables))
	for _, table := range tables {
		models = append(models, g.GenerateModel(table))
	}
	g.ApplyBasic(models...)
	g.Execute()

	fmt.Printf("generated %d gorm models at %s\n", len(tables), out)
}
