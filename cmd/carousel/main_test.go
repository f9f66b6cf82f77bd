package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jask/carousel/internal/config"
	"github.com/jask/carousel/internal/database/repository"
	"github.com/jask/carousel/internal/deck"
	"github.com/jask/carousel/internal/service"
)

func ptr[T any](v T) *T { return &v }

func TestResolveOptionsPrecedence(t *testing.T) {
	cfg := deck.Options{Autoplay: ptr(false), Interval: ptr(4 * time.Second), Nav: ptr(true)}
	manifest := deck.Options{Interval: ptr(2 * time.Second), Arrows: ptr(false)}
	flags := deck.Options{Arrows: ptr(true)}

	got := resolveOptions(cfg, manifest, flags)
	require.False(t, *got.Autoplay)
	require.True(t, *got.Nav)
	require.Equal(t, 2*time.Second, *got.Interval)
	require.True(t, *got.Arrows)
	require.Nil(t, got.FullScreen)
	require.Nil(t, got.Idleness)
}

func TestFlagOptionsOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("play", pflag.ContinueOnError)
	addPlayFlags(fs)
	require.NoError(t, fs.Parse([]string{"--nav", "--autoplay=false", "--idleness=0s"}))

	o, err := flagOptions(fs)
	require.NoError(t, err)
	require.True(t, *o.Nav)
	require.False(t, *o.Autoplay)
	require.Nil(t, o.Arrows)
	require.Nil(t, o.Interval)
	require.Zero(t, *o.Idleness)

	fs = pflag.NewFlagSet("play", pflag.ContinueOnError)
	addPlayFlags(fs)
	require.NoError(t, fs.Parse([]string{"--interval=0s"}))
	_, err = flagOptions(fs)
	require.Error(t, err)
}

func TestInspectPrintsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n\n---\n\n# Two\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"inspect", path})
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	require.NoError(t, rootCmd.Execute())

	require.Contains(t, out.String(), "title: One")
	require.Contains(t, out.String(), "title: Two")
	require.Contains(t, out.String(), "kind: markdown")
}

func TestRecentListsAndClears(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAROUSEL_CONFIG", "")
	t.Cleanup(func() { recentClear, recentForget = false, "" })

	cfg, err := config.Load()
	require.NoError(t, err)
	db, err := openStore(cfg)
	require.NoError(t, err)
	svc := &service.PlaybackService{Decks: repository.NewDeckRepo(db), Sessions: repository.NewSessionRepo(db)}
	path := filepath.Join(t.TempDir(), "Quarterly.md")
	require.NoError(t, os.WriteFile(path, []byte("# Q1\n"), 0o644))
	p, err := svc.Open(context.Background(), path, true)
	require.NoError(t, err)
	require.NoError(t, svc.Record(context.Background(), p, 1, 0))
	other := filepath.Join(t.TempDir(), "Retro.md")
	require.NoError(t, os.WriteFile(other, []byte("# R\n"), 0o644))
	_, err = svc.Open(context.Background(), other, true)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"recent"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "PLAYS")
	require.Contains(t, out.String(), "Quarterly")
	require.Contains(t, out.String(), "Retro")
	require.Regexp(t, `1/1\s+1\s+1\s+`+regexp.QuoteMeta(path), out.String())

	out.Reset()
	rootCmd.SetArgs([]string{"recent", "--forget", other})
	require.NoError(t, rootCmd.Execute())
	recentForget = ""
	out.Reset()
	rootCmd.SetArgs([]string{"recent"})
	require.NoError(t, rootCmd.Execute())
	require.NotContains(t, out.String(), "Retro")
	require.Contains(t, out.String(), "Quarterly")

	out.Reset()
	rootCmd.SetArgs([]string{"recent", "--clear"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "History cleared.")

	recentClear = false
	out.Reset()
	rootCmd.SetArgs([]string{"recent"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "No decks played yet.")
}
