// Package main provides tablex, a small CLI that extracts web-table data
// using a YAML table definition: it launches a browser, navigates to the
// page, walks every table page reachable through the defined navigation and
// prints the extracted records as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/ensono/smarttable/pkg/element"
	"github.com/ensono/smarttable/pkg/table"
)

type cliConfig struct {
	url        string
	definition string
	columns    string
	headed     bool
	install    bool
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tablex: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() cliConfig {
	var cfg cliConfig
	flag.StringVar(&cfg.url, "url", "", "URL of the page containing the table (required)")
	flag.StringVar(&cfg.definition, "definition", "", "path to the YAML table definition (required)")
	flag.StringVar(&cfg.columns, "columns", "", "comma-separated column headers to extract (default: all)")
	flag.BoolVar(&cfg.headed, "headed", false, "run the browser with a visible window")
	flag.BoolVar(&cfg.install, "install", false, "install browser binaries before running")
	flag.Parse()

	if cfg.url == "" || cfg.definition == "" {
		flag.Usage()
		os.Exit(2)
	}
	return cfg
}

func run(cfg cliConfig) error {
	def, err := table.LoadDefinition(cfg.definition)
	if err != nil {
		return err
	}

	// Keep the driver quiet so stdout stays valid JSON.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	if cfg.install {
		if err := playwright.Install(runOpts); err != nil {
			return fmt.Errorf("installing browsers: %w", err)
		}
	}
	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("starting playwright: %w", err)
	}
	defer pw.Stop()

	headless := !cfg.headed
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &headless,
	})
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return fmt.Errorf("creating page: %w", err)
	}
	if _, err := page.Goto(cfg.url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return fmt.Errorf("navigating to %s: %w", cfg.url, err)
	}

	t, err := def.Build(element.FromPage(page, "html"))
	if err != nil {
		return err
	}

	var columns []string
	if cfg.columns != "" {
		for _, column := range strings.Split(cfg.columns, ",") {
			columns = append(columns, strings.TrimSpace(column))
		}
	}
	records, err := t.ExtractData(columns...)
	if err != nil {
		return fmt.Errorf("extracting table data: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
