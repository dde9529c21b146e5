// Package main is the prouve-search CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/cli"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/config"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/metrics"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/server"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/service"
	"github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/prouve-search/config.yaml"

// errUsage signals that usage has already been printed.
var errUsage = errors.New("invalid usage")

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development), and falls back to the
// built-in defaults when neither file exists.
// Returns the config and the path that was actually loaded ("" for defaults).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			return config.Default(), "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}
	command, args := os.Args[1], os.Args[2:]
	var err error
	switch command {
	case "server":
		err = runServer(args)
	case "search":
		err = runSearch(args, os.Stdout)
	case "suggest":
		err = runSuggest(args, os.Stdout)
	case "recommend":
		err = runRecommend(args, os.Stdout)
	case "filters":
		err = runFilters(args, os.Stdout)
	case "status":
		err = runStatus(args, os.Stdout)
	case "init":
		err = runInit(args, os.Stdout)
	case "version", "--version", "-v":
		fmt.Printf("prouve-search version %s\n", version)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage(os.Stdout)
		os.Exit(1)
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// openService loads config and corpus for the one-shot commands.
func openService(configPath string, debug bool) (*service.Service, *zap.Logger, error) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if !cfg.Debug && !debug {
		// one-shot commands print results only
		logger = zap.NewNop()
	}
	svc, err := service.New(cfg, service.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return svc, logger, nil
}

func runServer(args []string) error {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (requests, corpus reloads, etc.)")
	_ = fs.Parse(args)

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("corpus_path", cfg.Corpus.Path),
		zap.Bool("watch", cfg.Corpus.Watch),
		zap.Bool("debug", debugMode),
	)

	m := metrics.New()
	svc, err := service.New(cfg, service.WithLogger(logger), service.WithMetrics(m))
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := svc.Watch(ctx)
	if err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	if w != nil {
		defer w.Stop()
	}

	srv := server.NewServer(svc, &cfg.Server, logger, m)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})
	return g.Wait()
}

// printSearchUsage prints search subcommand usage.
func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: prouve-search search [flags] <term>\n\n")
	fmt.Fprintf(fs.Output(), "The term is all remaining arguments joined by spaces. Multi-word terms work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Matching is a case-insensitive substring match over titles, keywords, and body text.
  • List filters (--type, --category, --region) take comma-separated values.
  • --year-min/--year-max bound the year inclusively; undated documents are excluded.
  • --explain shows the title/keyword/body hits behind each score.

Examples:
  prouve-search search 热带
  prouve-search search --type work --category housing,public 住宅
  prouve-search search --sort year --year-min 1950 --year-max 1956 普鲁维
  prouve-search search --output json maison
`)
}

// buildSearchTerm joins all positional args with spaces so multi-word terms
// work the same with or without shell quoting.
func buildSearchTerm(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// argsReorder moves any flags (and their values) that appear after the
// positional arguments to the front of the slice so that flag.Parse() sees
// them. Go's flag package stops at the first non-flag argument.
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// splitList splits comma-separated flag values, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseTypes(s string) []models.DocumentType {
	var types []models.DocumentType
	for _, t := range splitList(s) {
		types = append(types, models.DocumentType(t))
	}
	return types
}

// yearRange builds the year filter from optional bounds; an empty bound is open.
func yearRange(minStr, maxStr string) (*models.YearRange, error) {
	if minStr == "" && maxStr == "" {
		return nil, nil
	}
	r := &models.YearRange{Min: math.MinInt32, Max: math.MaxInt32}
	if minStr != "" {
		n, err := strconv.Atoi(minStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --year-min %q", minStr)
		}
		r.Min = n
	}
	if maxStr != "" {
		n, err := strconv.Atoi(maxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --year-max %q", maxStr)
		}
		r.Max = n
	}
	return r, nil
}

func runSearch(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	types := fs.String("type", "", "document types: work, scholar, biography, publication")
	categories := fs.String("category", "", "work categories")
	regions := fs.String("region", "", "scholar regions")
	yearMin := fs.String("year-min", "", "earliest year (inclusive)")
	yearMax := fs.String("year-max", "", "latest year (inclusive)")
	sortBy := fs.String("sort", "relevance", "sort order: relevance, year, title, or author")
	explain := fs.Bool("explain", false, "show per-field hits behind each score")
	outputFormat := fs.String("output", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() { printSearchUsage(fs) }
	if err := fs.Parse(argsReorder(args)); err != nil {
		return errUsage
	}

	term := buildSearchTerm(fs.Args())
	if term == "" {
		printSearchUsage(fs)
		return errUsage
	}
	years, err := yearRange(*yearMin, *yearMax)
	if err != nil {
		return err
	}
	query := models.SearchQuery{
		Term:   term,
		SortBy: models.SortOrder(*sortBy),
		Filters: models.Filters{
			Types:      parseTypes(*types),
			Categories: splitList(*categories),
			Regions:    splitList(*regions),
			Year:       years,
		},
	}
	if err := query.Validate(); err != nil {
		return err
	}

	svc, logger, err := openService(*configPath, *debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	hits := svc.SearchWithBreakdown(query)
	return cli.WriteSearchResults(out, term, hits, cli.ParseFormat(*outputFormat), *explain)
}

func runSuggest(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	if err := fs.Parse(argsReorder(args)); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(out, "Usage: prouve-search suggest [flags] <partial>")
		return errUsage
	}

	svc, logger, err := openService(*configPath, false)
	if err != nil {
		return err
	}
	defer logger.Sync()
	return cli.WriteSuggestions(out, svc.GetSearchSuggestions(buildSearchTerm(fs.Args())), cli.ParseFormat(*outputFormat))
}

// recommendKinds maps the recommend subcommand's source argument to a type.
var recommendKinds = map[string]models.DocumentType{
	"work":      models.TypeWork,
	"works":     models.TypeWork,
	"scholar":   models.TypeScholar,
	"scholars":  models.TypeScholar,
	"biography": models.TypeBiography,
}

func runRecommend(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	maxResults := fs.Int("max", 0, "maximum number of items (0 = configured default)")
	types := fs.String("types", "", "candidate types to include (default: all)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	if err := fs.Parse(argsReorder(args)); err != nil {
		return errUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(out, "Usage: prouve-search recommend [flags] <work|scholar|biography> <id>")
		return errUsage
	}
	sourceType, ok := recommendKinds[fs.Arg(0)]
	if !ok {
		return fmt.Errorf("unknown recommendation source %q", fs.Arg(0))
	}

	svc, logger, err := openService(*configPath, false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	items := svc.Recommend(sourceType, fs.Arg(1), models.RecommendOptions{
		MaxResults:   *maxResults,
		IncludeTypes: parseTypes(*types),
	})
	return cli.WriteRecommendations(out, items, cli.ParseFormat(*outputFormat))
}

func runFilters(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("filters", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	svc, logger, err := openService(*configPath, false)
	if err != nil {
		return err
	}
	defer logger.Sync()
	return cli.WriteFacets(out, svc.GetGlobalSearchFilters(), cli.ParseFormat(*outputFormat))
}

func runStatus(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	svc, logger, err := openService(*configPath, false)
	if err != nil {
		return err
	}
	defer logger.Sync()
	return cli.WriteStatus(out, svc.Status(), cli.ParseFormat(*outputFormat))
}

// runInit writes a config file populated with every default.
func runInit(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(out)
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	path := "config.yaml"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `prouve-search - Search and recommendations for the Jean Prouvé site

Usage:
  prouve-search server [flags]                         Start the HTTP server
  prouve-search search [flags] <term>                  Search the corpus
  prouve-search suggest [flags] <partial>              Autocomplete suggestions
  prouve-search recommend [flags] <source> <id>        Related content (source: work, scholar, biography)
  prouve-search filters [flags]                        Show filter facets
  prouve-search status [flags]                         Show corpus status
  prouve-search init [--force] [path]                  Write a default config file
  prouve-search version                                Show version
  prouve-search help                                   Show this help

Common Flags:
  --config string    Config file path (default: /usr/local/etc/prouve-search/config.yaml,
                     or ./config.yaml when present; built-in defaults when neither exists)
  --output string    Output format: text or json (default: text)

Server Flags:
  --debug            Enable debug logging (requests, corpus reloads, etc.)

Search Flags:
  --type, --category, --region   Comma-separated filter values
  --year-min, --year-max         Inclusive year bounds
  --sort string                  relevance, year, title, or author (default: relevance)
  --explain                      Show per-field hits behind each score

Recommend Flags:
  --max int          Maximum number of items (default from config: 6)
  --types string     Candidate types to include (default: all)

Examples:
  prouve-search server
  prouve-search search 热带
  prouve-search search --type scholar 热带
  prouve-search suggest 大学
  prouve-search recommend work maison-tropicale
  prouve-search recommend --types scholar biography legacy
  prouve-search filters --output json`)
}
