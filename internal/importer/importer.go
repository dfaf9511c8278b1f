// Package importer loads menu catalogs from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
)

// ItemWriter upserts menu items keyed by (category, name).
type ItemWriter interface {
	UpsertByName(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}

// CategoryEnsurer resolves a category by name inside a menu type,
// creating it when missing.
type CategoryEnsurer interface {
	EnsureByName(ctx context.Context, menuTypeID int64, name string) (*domain.Category, error)
}

// MenuTypeEnsurer resolves a menu type by name, creating it when missing.
type MenuTypeEnsurer interface {
	EnsureByName(ctx context.Context, name string) (*domain.MenuType, error)
}

// CSVImporter reads menu CSV exports and inserts/updates menu items,
// creating menu types and categories on the fly.
type CSVImporter struct {
	reader     *csv.Reader
	items      ItemWriter
	categories CategoryEnsurer
	menuTypes  MenuTypeEnsurer
}

func NewCSVImporter(r io.Reader, items ItemWriter, categories CategoryEnsurer, menuTypes MenuTypeEnsurer) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		items:      items,
		categories: categories,
		menuTypes:  menuTypes,
	}
}

type csvRow struct {
	MenuType    string
	Category    string
	Name        string
	Description string
	Price       string
	ImageURL    string
	IsPopular   bool
	IsAvailable bool
	Preparation int
}

// Run parses CSV rows and upserts menu items. Menu types and categories
// are resolved once per distinct name and cached for the run.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	menuTypeIDs := map[string]int64{}
	categoryIDs := map[string]int64{}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		row := parseRow(record, index)
		if row == nil {
			continue
		}
		if err := i.save(ctx, row, menuTypeIDs, categoryIDs); err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow, menuTypeIDs, categoryIDs map[string]int64) error {
	if row.MenuType == "" || row.Category == "" || row.Name == "" || row.Price == "" {
		return fmt.Errorf("missing required fields for item %q", row.Name)
	}
	price, err := decimal.NewFromString(row.Price)
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("invalid price %q for item %q", row.Price, row.Name)
	}

	menuTypeID, ok := menuTypeIDs[row.MenuType]
	if !ok {
		mt, err := i.menuTypes.EnsureByName(ctx, row.MenuType)
		if err != nil {
			return fmt.Errorf("ensure menu type %q: %w", row.MenuType, err)
		}
		menuTypeID = mt.ID
		menuTypeIDs[row.MenuType] = menuTypeID
	}

	catKey := row.MenuType + "/" + row.Category
	categoryID, ok := categoryIDs[catKey]
	if !ok {
		cat, err := i.categories.EnsureByName(ctx, menuTypeID, row.Category)
		if err != nil {
			return fmt.Errorf("ensure category %q: %w", row.Category, err)
		}
		categoryID = cat.ID
		categoryIDs[catKey] = categoryID
	}

	prep := row.Preparation
	if prep == 0 {
		prep = 30
	}

	_, err = i.items.UpsertByName(ctx, domain.MenuItem{
		CategoryID:         categoryID,
		Name:               row.Name,
		Description:        row.Description,
		Price:              price.Round(2),
		ImageURL:           row.ImageURL,
		IsPopular:          row.IsPopular,
		IsAvailable:        row.IsAvailable,
		PreparationMinutes: prep,
	})
	if err != nil {
		return fmt.Errorf("upsert item %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	name := pick(record, index, "name")
	if name == "" {
		return nil
	}

	prep := 0
	if v := pick(record, index, "preparation_minutes"); v != "" {
		prep, _ = strconv.Atoi(v)
	}

	return &csvRow{
		MenuType:    pick(record, index, "menu_type"),
		Category:    pick(record, index, "category"),
		Name:        name,
		Description: pick(record, index, "description"),
		Price:       pick(record, index, "price"),
		ImageURL:    pick(record, index, "image_url"),
		IsPopular:   parseBool(pick(record, index, "is_popular")),
		IsAvailable: parseBoolDefault(pick(record, index, "is_available"), true),
		Preparation: prep,
	}
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}

func parseBoolDefault(s string, def bool) bool {
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}
