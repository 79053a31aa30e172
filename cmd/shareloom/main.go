// cmd/shareloom/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"shareloom/internal/catalog"
	"shareloom/internal/config"
	"shareloom/internal/locale"
	"shareloom/internal/scaffold"
	"shareloom/internal/server"
)

type appConfig struct {
	debug bool
	port  int
}

const configFile = "site.yaml"

func main() {
	appCfg := appConfig{}
	// Global flags
	flag.BoolVar(&appCfg.debug, "debug", false, "Enable debug logging.")
	flag.IntVar(&appCfg.port, "port", 1313, "Port for the local panel preview server.")
	flag.Usage = printHelp
	flag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return nil
	}

	switch args[0] {
	case "serve":
		cfg := getPanelConfig()
		logger, err := newLogger(appCfg.debug)
		if err != nil {
			return fmt.Errorf("could not set up logging: %w", err)
		}
		defer logger.Sync()
		return server.New(cfg, logger).Run(appCfg.port)

	case "check":
		cfg := getPanelConfig()
		return runCheck(cfg)

	case "new":
		if len(args) < 3 || args[1] != "panel" {
			flag.Usage()
			return nil
		}
		return scaffold.CreateNewPanel(args[2])

	default:
		flag.Usage()
	}

	return nil
}

// runCheck validates the catalog and locale content and prints a
// summary. Content problems are reported, not fatal: the panel is
// designed to degrade around them.
func runCheck(cfg config.PanelConfig) error {
	fmt.Println("--- Checking panel content ---")

	cat, err := catalog.LoadFile(cfg.CatalogFile)
	var perr *catalog.ParseError
	switch {
	case errors.As(err, &perr):
		fmt.Printf("⚠️  Catalog %s is not valid JSON: %v\n", cfg.CatalogFile, perr.Err)
		fmt.Println("   The panel will run with an empty catalog.")
	case err != nil:
		fmt.Printf("⚠️  Catalog %s could not be read: %v\n", cfg.CatalogFile, err)
	case cat.Len() == 0:
		fmt.Printf("🔎 No stories in %s; pages will run in single-story mode.\n", cfg.CatalogFile)
	default:
		fmt.Printf("📖 Catalog: %d stories loaded from %s.\n", cat.Len(), cfg.CatalogFile)
	}
	if cat.Skipped > 0 {
		fmt.Printf("⚠️  %d catalog entries skipped (missing url or title).\n", cat.Skipped)
	}

	seen := make(map[string]bool)
	for _, ref := range cat.Stories() {
		if seen[ref.URL] {
			fmt.Printf("⚠️  Duplicate story URL (first match wins): %s\n", ref.URL)
		}
		seen[ref.URL] = true
	}

	loc := locale.LoadDir(cfg.LocaleDir, cfg.Language)
	missing := 0
	for _, key := range locale.RequiredKeys() {
		if !loc.Has(key) {
			fmt.Printf("🔎 Locale key %q not provided; using the built-in fallback.\n", key)
			missing++
		}
	}
	if missing == 0 {
		fmt.Printf("🌐 Locale: all panel strings provided for language %q.\n", cfg.Language)
	}

	fmt.Println("✅ Check complete.")
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func getPanelConfig() config.PanelConfig {
	cfg, err := config.Load(configFile)
	if err != nil {
		// Using fmt.Fprintf to stderr for critical errors that halt execution.
		fmt.Fprintf(os.Stderr, "critical error: failed to load panel config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func printHelp() {
	fmt.Println("shareloom - a share/embed panel server for story exhibits")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shareloom [global-flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve              Run the local panel preview server with hot reload")
	fmt.Println("  check              Validate the story catalog and locale files")
	fmt.Println("  new panel <name>   Create a new panel workspace scaffold")
	fmt.Println()
	fmt.Println("Global Flags:")
	flag.PrintDefaults()
}
