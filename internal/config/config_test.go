package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Database.Path != DefaultDatabasePath {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Wikipedia.BaseURL != "https://en.wikipedia.org" {
		t.Errorf("base url = %q", cfg.Wikipedia.BaseURL)
	}
	if cfg.Wikipedia.UserAgent == "" {
		t.Error("user agent default must not be empty")
	}
	if cfg.Importer.DefaultPointValue != 1 {
		t.Errorf("default point value = %d", cfg.Importer.DefaultPointValue)
	}
	if cfg.ImageRefresh.Schedule != "0 */6 * * *" {
		t.Errorf("image refresh schedule = %q", cfg.ImageRefresh.Schedule)
	}
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("DEFAULT_POINT_VALUE", "3")
	t.Setenv("IMAGE_REFRESH_SCHEDULE", "30 * * * *")

	cfg := NewConfig()

	if cfg.Database.Path != "/tmp/other.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Importer.DefaultPointValue != 3 {
		t.Errorf("default point value = %d", cfg.Importer.DefaultPointValue)
	}
	if cfg.ImageRefresh.Schedule != "30 * * * *" {
		t.Errorf("image refresh schedule = %q", cfg.ImageRefresh.Schedule)
	}
}

func TestDefaultCompactLayout(t *testing.T) {
	layout := DefaultCompactLayout()

	if len(layout) == 0 {
		t.Fatal("layout must not be empty")
	}
	row, ok := layout[0]
	if !ok || len(row) != 2 {
		t.Fatalf("row 0 = %v", row)
	}
	if row[0] != "Best Picture" || row[1] != "Best Director" {
		t.Errorf("row 0 = %v", row)
	}
	for idx, names := range layout {
		if len(names) != 2 {
			t.Errorf("row %d carries %d names, expected 2", idx, len(names))
		}
	}
}
