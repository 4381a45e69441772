package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"xtree/internal/cli"
	"xtree/internal/config"
)

func main() {
	ctx := context.Background()

	opts := config.LoadDefaults()

	allFlag := flag.Bool("all", opts.ShowHidden, "Show hidden files (starting with dot)")
	sizeFlag := flag.Bool("size", false, "Show file sizes")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	depthFlag := flag.Int("depth", opts.MaxDepth, "Limit recursion depth (N levels, -1 for unlimited)")
	ignoreFlag := flag.String("ignore", "", "Ignore files with given extensions or folders with exact names (comma-separated)")
	gitFlag := flag.Bool("git", false, "Show Git status: M(odified), A(dded), D(eleted), R(enamed), C(opied), U(ntracked)")
	duFlag := flag.Bool("du", false, "Show directory sizes (total of all files inside)")
	followFlag := flag.Bool("follow-links", opts.FollowSymlinks, "Follow symbolic links")
	statsFlag := flag.Bool("stats", false, "Show total file and line counts")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [PATH]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Display directory tree with optional features.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nIf PATH is omitted, current directory is used.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xtree\n")
		fmt.Fprintf(os.Stderr, "  xtree --all --size /home/user\n")
		fmt.Fprintf(os.Stderr, "  xtree --ignore=\"txt,json\" --git --du\n")
		fmt.Fprintf(os.Stderr, "  xtree --depth 2 --size --no-color\n")
	}

	flag.Parse()

	opts.ShowHidden = *allFlag
	opts.ShowSize = *sizeFlag
	opts.ShowStats = *statsFlag
	opts.MaxDepth = *depthFlag
	opts.FollowSymlinks = *followFlag
	opts.GitStatus = *gitFlag
	opts.DiskUsage = *duFlag
	opts.IgnorePatterns = append(opts.IgnorePatterns, config.ParseIgnorePatterns(*ignoreFlag)...)
	if *noColorFlag || !isatty.IsTerminal(os.Stdout.Fd()) {
		opts.UseColor = false
	}

	// Any trailing non-flag argument is the target path, last one wins.
	target := "."
	for _, arg := range flag.Args() {
		target = arg
	}

	os.Exit(cli.Run(ctx, opts, target, os.Stdout, os.Stderr))
}
