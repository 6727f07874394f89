package domain

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
)

//go:embed default_categories.json
var defaultCategories []byte

// DefaultCategories returns the categories installed when no source file exists.
func DefaultCategories() []byte {
	return append([]byte(nil), defaultCategories...)
}

// installCategories writes <results>/categories.json. A JSON source is copied
// verbatim, a YAML source is converted, and a missing source installs the
// built-in categories.
func (c *coordinator) installCategories() error {
	source := c.layout.Categories
	target := c.layout.Results.Join(m.CategoriesFileName)

	ok, err := c.ReportFSAdapter.Exists(source)
	if err != nil {
		return err
	}

	if !ok {
		c.log.Debug("Categories source not found, installing defaults", logger.Fields{"source": source})
		return c.ReportFSAdapter.WriteFile(target, DefaultCategories())
	}

	switch strings.ToLower(filepath.Ext(string(source))) {
	case ".yaml", ".yml":
		raw, err := c.ReportFSAdapter.ReadFile(source)
		if err != nil {
			return err
		}

		converted, err := CategoriesFromYAML(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}

		return c.ReportFSAdapter.WriteFile(target, converted)
	default:
		return c.ReportFSAdapter.CopyFile(source, target)
	}
}

// CategoriesFromYAML converts a YAML category list into the JSON the report
// generator reads.
func CategoriesFromYAML(raw []byte) ([]byte, error) {
	var categories []m.Category
	if err := yaml.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}

	for i, category := range categories {
		if category.Name == "" {
			return nil, fmt.Errorf("category %d has no name", i)
		}
	}

	return json.MarshalIndent(categories, "", "  ")
}
