package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jask/carousel/internal/config"
	"github.com/jask/carousel/internal/database"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Play slide decks in the terminal",
	Long: `Carousel plays a deck of slides (images, markdown sections or text files)
in the terminal with autoplay, indicator dots, arrows, swipe gestures and a
full-screen mode. The last slide shown is remembered per deck.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/carousel/config.toml)")
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		if err := os.Setenv("CAROUSEL_CONFIG", cfgFile); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load()
}

// openStore makes sure the database exists and is migrated.
func openStore(cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}
