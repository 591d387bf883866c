package main

import (
	"flag"
	"fmt"
	"net/url"
	"strings"

	"github.com/eringen/themekit"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to the site config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	app := themekit.New(cfg, debugViews(cfg))
	return app.Start()
}

func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to the site config file")
	category := fs.String("type", "", "resolve a single template type instead of the full hierarchy")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("resolve expects exactly one URL path")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	app := themekit.New(cfg, nil)
	if err := app.Open(); err != nil {
		return err
	}
	defer app.Store.Close()

	path, rawQuery, _ := strings.Cut(fs.Arg(0), "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}

	ctx := app.Classify(path, query)
	var candidates []string
	if *category != "" {
		candidates = app.Hierarchy.Templates(themekit.TemplateType(*category), ctx)
	} else {
		candidates = app.Hierarchy.Resolve(ctx)
	}
	for _, name := range candidates {
		fmt.Println(name)
	}
	return nil
}
