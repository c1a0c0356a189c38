package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Wikipedia
		Importer
		ImageRefresh
	}

	Database struct {
		Path string
	}
	Wikipedia struct {
		BaseURL   string
		UserAgent string
	}
	Importer struct {
		DefaultPointValue int
	}
	ImageRefresh struct {
		Schedule string // Cron format: "0 */6 * * *" = every 6 hours
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("wikipedia_base_url", "https://en.wikipedia.org")
	v.SetDefault("wikipedia_user_agent", "awardpool/1.0 (https://github.com/awardpool/awardpool)")
	v.SetDefault("default_point_value", 1)
	v.SetDefault("image_refresh_schedule", "0 */6 * * *") // Every 6 hours

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Wikipedia: Wikipedia{
			BaseURL:   v.GetString("WIKIPEDIA_BASE_URL"),
			UserAgent: v.GetString("WIKIPEDIA_USER_AGENT"),
		},
		Importer: Importer{
			DefaultPointValue: v.GetInt("DEFAULT_POINT_VALUE"),
		},
		ImageRefresh: ImageRefresh{
			Schedule: v.GetString("IMAGE_REFRESH_SCHEDULE"),
		},
	}
}
