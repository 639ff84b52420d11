package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/irpost"
	"github.com/fwojciec/irpost/goquery"
	"github.com/fwojciec/irpost/htmltomarkdown"
	irhttp "github.com/fwojciec/irpost/http"
	"github.com/fwojciec/irpost/rod"
	irslog "github.com/fwojciec/irpost/slog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// PrintError prints application errors by message and anything else verbatim.
func PrintError(w io.Writer, err error) {
	var e *irpost.Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "error: %s\n", e.Message)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// Main represents the program.
type Main struct {
	// Stdin is read for the article selection and publish confirmation.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("irpost"),
		kong.Description("Publish a stock exchange press release to WordPress"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if !cli.DryRun && (cli.Username == "" || cli.Password == "") {
		fmt.Fprintln(stderr, "Hint: set IRPOST_WP_USERNAME and IRPOST_WP_APP_PASSWORD, or pass --dry-run")
		return irpost.Errorf(irpost.EINVALID, "WordPress credentials required")
	}

	limiter, err := irhttp.NewDomainLimiter(cli.Rate)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     m.Stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.BaseURL)),
	}

	var fetcher irpost.Fetcher
	if cli.Render {
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithLimiter(limiter),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = irhttp.NewFetcher(
			irhttp.WithTimeout(cli.Timeout),
			irhttp.WithLimiter(limiter),
		)
	}
	deps.Fetcher = irslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	newsCfg := goquery.DefaultNewsConfig()
	newsCfg.SectionLabel = cli.Section
	news, err := goquery.NewNewsExtractor(newsCfg)
	if err != nil {
		return err
	}
	deps.News = irslog.NewLoggingNewsExtractor(news, logger)

	releaseCfg := goquery.DefaultReleaseConfig()
	releaseCfg.TitlePrefix = cli.CompanyPrefix
	releases, err := goquery.NewReleaseExtractor(releaseCfg)
	if err != nil {
		return err
	}
	deps.Releases = irslog.NewLoggingReleaseExtractor(releases, logger)

	if !cli.DryRun {
		deps.Publisher = irslog.NewLoggingPublisher(
			irhttp.NewPublisher(cli.Endpoint, cli.Username, cli.Password),
			logger,
		)
	}

	cmd := &PublishCmd{
		BaseURL:  cli.BaseURL,
		IRPath:   cli.IRPath,
		Category: cli.Category,
		Section:  cli.Section,
		Select:   cli.Select,
		Yes:      cli.Yes,
		DryRun:   cli.DryRun,
	}

	return cmd.Run(deps)
}
