package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "resolve":
		err = runResolve(os.Args[2:])
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: themekit new <dir>")
			os.Exit(1)
		}
		err = runNew(os.Args[2])
	case "version":
		fmt.Printf("themekit %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`themekit - a template-candidate resolution engine built with Go, Echo, and templ

Usage:
  themekit <command> [arguments]

Commands:
  serve [-config file]            Start the content server
  resolve [-config file] [-type t] <path>
                                  Print the ordered candidate list for a URL path
  new <dir>                       Write a starter config.yaml into <dir>
  version                         Print the themekit version
  help                            Show this help message

Examples:
  themekit serve -config config.yaml
  themekit resolve /category/news/
  themekit resolve -type single /post/hello-world/`)
}
