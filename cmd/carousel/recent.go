package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/carousel/internal/database/repository"
	"github.com/jask/carousel/internal/service"
)

var (
	recentLimit  int
	recentClear  bool
	recentForget string
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently played decks",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "number of decks to list, 0 for all")
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "forget every deck and session")
	recentCmd.Flags().StringVar(&recentForget, "forget", "", "forget the deck at `path`")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	if recentClear {
		if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	svc := &service.PlaybackService{Decks: repository.NewDeckRepo(db), Sessions: repository.NewSessionRepo(db)}
	if recentForget != "" {
		if err := svc.Forget(ctx, recentForget); err != nil {
			return fmt.Errorf("forget %s: %w", recentForget, err)
		}
		fmt.Fprintf(out, "Forgot %s.\n", recentForget)
		return nil
	}

	decks, err := svc.Recent(ctx, recentLimit)
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		fmt.Fprintln(out, "No decks played yet.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OPENED\tTITLE\tPOSITION\tPLAYS\tVIEWS\tPATH")
	for _, d := range decks {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d\t%d\t%s\n",
			d.OpenedAt.Local().Format("2006-01-02 15:04"), d.Title, d.LastSlide+1, d.SlideCount, d.Plays, d.Views, d.Path)
	}
	return w.Flush()
}
