// Command imgsearch is a terminal client for searching Pixabay images.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/imgsearch/internal/application/usecase"
	"github.com/tesso57/imgsearch/internal/infrastructure/config"
	"github.com/tesso57/imgsearch/internal/infrastructure/logging"
	"github.com/tesso57/imgsearch/internal/infrastructure/pixabay"
	"github.com/tesso57/imgsearch/internal/infrastructure/saved"
	"github.com/tesso57/imgsearch/internal/presentation/tui"
)

// CLI is the command line surface.
type CLI struct {
	Config string `help:"Config file path." short:"c" type:"path"`
	APIKey string `help:"Pixabay API key, overrides the config file." name:"api-key"`

	Search SearchCmd `cmd:"" default:"withargs" help:"Search images interactively."`
	Saved  SavedCmd  `cmd:"" help:"List saved images."`
}

// SearchCmd starts the TUI.
type SearchCmd struct {
	Query []string `arg:"" optional:"" help:"Initial search query."`
}

// SavedCmd prints saved images.
type SavedCmd struct{}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("imgsearch"),
		kong.Description("Search Pixabay images from the terminal."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "imgsearch: %v\n", err)
		os.Exit(1)
	}
}

// Run starts the interactive search.
func (c *SearchCmd) Run(cli *CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings
	if key := strings.TrimSpace(cli.APIKey); key != "" {
		cfg.Pixabay.APIKey = key
	}
	if cfg.Pixabay.APIKey == "" {
		return fmt.Errorf("%w: set PIXABAY_API_KEY or pixabay.api_key in %s", pixabay.ErrMissingAPIKey, store.Path())
	}

	logger, logCloser, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	savedStore, err := saved.Open(cfg.SavedFile)
	if err != nil {
		return err
	}
	defer func() { _ = savedStore.Close() }()

	client := pixabay.NewClient(pixabay.Options{
		BaseURL:     cfg.Pixabay.BaseURL,
		APIKey:      cfg.Pixabay.APIKey,
		ImageType:   cfg.Pixabay.ImageType,
		Orientation: cfg.Pixabay.Orientation,
		SafeSearch:  cfg.Pixabay.SafeSearch,
		Timeout:     cfg.RequestTimeout(),
		Logger:      logger,
	})

	logger.Info("starting", slog.String("config", store.Path()))
	model := tui.NewModel(cfg, tui.Options{
		Provider:     client,
		Saved:        usecase.NewSavedService(savedStore, time.Now),
		Logger:       logger,
		InitialQuery: strings.Join(c.Query, " "),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", slog.Any("error", err))
		return err
	}
	return nil
}

// Run prints the saved images.
func (c *SavedCmd) Run(cli *CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	savedStore, err := saved.Open(store.Settings.SavedFile)
	if err != nil {
		return err
	}
	defer func() { _ = savedStore.Close() }()

	return printSaved(os.Stdout, usecase.NewSavedService(savedStore, time.Now))
}

func printSaved(w io.Writer, svc usecase.SavedService) error {
	items, err := svc.List()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No saved images.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSAVED\tTAGS\tURL")
	for _, item := range items {
		url := item.PageURL
		if url == "" {
			url = item.LargeURL
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			item.ID, item.SavedAt.Local().Format("2006-01-02 15:04"), item.Tags, url)
	}
	return tw.Flush()
}
