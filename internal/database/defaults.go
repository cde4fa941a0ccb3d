package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/combokit/internal/database/repository"
)

var defaultItems = map[string][]string{
	"Fruit":      {"Apple", "Apricot", "Banana", "Blackberry", "Cherry", "Grape", "Mango", "Orange", "Peach", "Pear"},
	"Vegetables": {"Artichoke", "Broccoli", "Carrot", "Celery", "Kale", "Leek", "Onion", "Pea", "Spinach"},
	"Grains":     {"Barley", "Buckwheat", "Millet", "Oats", "Quinoa", "Rice", "Rye"},
}

var defaultSections = []string{"Fruit", "Vegetables", "Grains"}

// ItemID derives a stable id for a seeded item.
func ItemID(section, label string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("item:"+section+"/"+label)).String()
}

// SeedDefaults inserts the sample items when the items table is empty.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewItemRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		repo := repository.NewItemRepo(tx)
		for _, section := range defaultSections {
			for _, label := range defaultItems[section] {
				item := repository.Item{ID: ItemID(section, label), Label: label, Section: section}
				if err := repo.Upsert(ctx, item); err != nil {
					return fmt.Errorf("seed %s/%s: %w", section, label, err)
				}
			}
		}
		return nil
	})
}
