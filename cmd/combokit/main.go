package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/combokit/core"
	"github.com/jask/combokit/internal/config"
	"github.com/jask/combokit/internal/database"
	"github.com/jask/combokit/internal/database/repository"
	"github.com/jask/combokit/internal/logger"
	"github.com/jask/combokit/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	core.SetLogger(logger.Named("core"))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	items, err := loadItems(ctx, repository.NewItemRepo(db))
	if err != nil {
		log.Fatalf("load items: %v", err)
	}
	logger.L().Info("starting", zap.Int("items", len(items)), zap.String("db", cfg.Database.Path))

	model := tui.New(ctx, items, repository.NewSelectionRepo(db), tui.Options{
		Title:      cfg.UI.Title,
		IDPrefix:   cfg.UI.IDPrefix,
		MenuHeight: cfg.UI.MenuHeight,
		Debounce:   time.Duration(cfg.UI.DebounceMS) * time.Millisecond,
		Keys:       cfg.Keys,
		Logger:     logger.L(),
	})
	p := tea.NewProgram(model)
	model.Attach(p)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if item, ok := model.Chosen(); ok {
		fmt.Println(item.Label)
	}
}

func loadItems(ctx context.Context, repo *repository.ItemRepo) ([]core.PickerItem, error) {
	rows, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.PickerItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, core.PickerItem{
			ID:      r.ID,
			Label:   r.Label,
			Section: r.Section,
			Meta:    r.Meta,
			Search:  r.Search,
		})
	}
	return out, nil
}
