package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jask/carousel/internal/database/repository"
	"github.com/jask/carousel/internal/deck"
	"github.com/jask/carousel/internal/service"
	"github.com/jask/carousel/internal/tui"
)

var (
	playFresh   bool
	playLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play <path>",
	Short: "Play a deck",
	Long: `Play the deck at path: an image, a markdown file (split on ---), a text
file, a directory of those, or a deck.yaml / deck.toml manifest.

Options come from the config file, then the deck manifest, then flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd.Flags())
	rootCmd.AddCommand(playCmd)
}

func addPlayFlags(f *pflag.FlagSet) {
	f.Bool("nav", false, "show indicator dots")
	f.Bool("arrows", true, "show previous/next arrows")
	f.Bool("fullscreen", true, "show the full-screen toggle")
	f.Bool("autoplay", true, "advance slides on a timer")
	f.Duration("interval", 0, "autoplay interval (default 7s)")
	f.Duration("idleness", 0, "hide controls after this long without pointer movement, 0 disables")
	f.BoolVar(&playFresh, "fresh", false, "start at the first slide instead of resuming")
	f.StringVar(&playLogPath, "log", "", "log file (default from config)")
}

// flagOptions returns only the options given on the command line.
func flagOptions(fs *pflag.FlagSet) (deck.Options, error) {
	var o deck.Options
	for name, dst := range map[string]**bool{
		"nav":        &o.Nav,
		"arrows":     &o.Arrows,
		"fullscreen": &o.FullScreen,
		"autoplay":   &o.Autoplay,
	} {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetBool(name)
		if err != nil {
			return o, err
		}
		*dst = &v
	}
	if fs.Changed("interval") {
		d, err := fs.GetDuration("interval")
		if err != nil {
			return o, err
		}
		if d <= 0 {
			return o, fmt.Errorf("--interval must be positive")
		}
		o.Interval = &d
	}
	if fs.Changed("idleness") {
		d, err := fs.GetDuration("idleness")
		if err != nil {
			return o, err
		}
		o.Idleness = &d
	}
	return o, nil
}

// resolveOptions layers the option sources, later ones winning.
func resolveOptions(cfg, manifest, flags deck.Options) deck.Options {
	return cfg.Merge(manifest).Merge(flags)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	flags, err := flagOptions(cmd.Flags())
	if err != nil {
		return err
	}

	logPath := playLogPath
	if logPath == "" {
		logPath = cfg.UI.LogPath
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("mkdir log dir: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "carousel")
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer logFile.Close()

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := &service.PlaybackService{
		Decks:    repository.NewDeckRepo(db),
		Sessions: repository.NewSessionRepo(db),
	}
	session, err := svc.Open(ctx, args[0], cfg.UI.Resume && !playFresh)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(ctx, session); err != nil {
			log.Printf("end session: %v", err)
		}
	}()

	opts := resolveOptions(cfg.Carousel, session.Deck.Options, flags)
	app := tui.New(ctx, svc, session, tui.Options{
		Accent:   cfg.UI.ThemeAccent,
		Carousel: opts.CarouselOptions(),
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		log.Printf("program: %v", err)
		return err
	}
	return nil
}
