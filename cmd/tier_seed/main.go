// Command tier_seed replaces the fee tier table with the built-in defaults or
// the tiers listed in a YAML file, then prints the table audit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"cosec/internal/config"
	"cosec/internal/logger"
	"cosec/internal/models"
	"cosec/internal/pricing"
	"cosec/internal/repositories"
	"cosec/internal/services/feetier"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code.
func run() int {
	file := flag.String("file", "", "YAML tier file; defaults to the built-in table")
	dryRun := flag.Bool("dry-run", false, "validate and audit without writing")
	step := flag.Float64("step", feetier.DefaultAuditStep, "adjacency tolerance for the audit")
	flag.Parse()

	config.LoadEnv()
	cfg := config.Load()
	log := logger.NewFromEnv()
	defer log.Sync()

	tiers, err := loadTiers(*file)
	if err != nil {
		log.Fatal("failed to load tiers", "file", *file, "error", err)
	}

	if *dryRun {
		printFindings(pricing.Audit(tiers, *step))
		return 0
	}

	if err := repositories.InitDB(cfg); err != nil {
		log.Fatal("failed to initialise storage", "error", err)
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Error("failed to close connections", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := feetier.NewService(repositories.NewFeeTierRepository(repositories.DB), repositories.CacheService, log)
	return seed(ctx, svc, tiers, *step, log)
}

type seeder interface {
	Replace(ctx context.Context, tiers []models.FeeTier) error
	Audit(ctx context.Context, step float64) ([]pricing.Finding, error)
}

func seed(ctx context.Context, svc seeder, tiers []models.FeeTier, step float64, log *logger.Logger) int {
	if err := svc.Replace(ctx, tiers); err != nil {
		log.Error("failed to replace fee tiers", "error", err)
		return 1
	}

	findings, err := svc.Audit(ctx, step)
	if err != nil {
		log.Error("failed to audit fee tiers", "error", err)
		return 1
	}
	log.Info("fee tiers seeded", "count", len(tiers))
	printFindings(findings)
	return 0
}

func loadTiers(path string) ([]models.FeeTier, error) {
	if path == "" {
		return pricing.DefaultTiers(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return feetier.ParseSeed(f)
}

func printFindings(findings []pricing.Finding) {
	if len(findings) == 0 {
		fmt.Println("fee tier table is a clean partition")
		return
	}
	for _, f := range findings {
		fmt.Printf("%-22s %s\n", f.Kind, f.Message)
	}
}
