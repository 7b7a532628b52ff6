package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/minijava/internal/analyzer"
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/config"
	"github.com/funvibe/minijava/internal/history"
	"github.com/funvibe/minijava/internal/lexer"
	"github.com/funvibe/minijava/internal/parser"
	"github.com/funvibe/minijava/internal/pipeline"
	"github.com/funvibe/minijava/internal/report"
)

// Version can be overridden at build time:
// -ldflags "-X main.Version=..."
var Version = "0.2.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("minijavac", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	showTokens := fs.Bool("tokens", false, "print the token table")
	showSymbols := fs.Bool("symbols", false, "print the variable table")
	showAST := fs.Bool("ast", false, "print the abstract syntax tree")
	showUnused := fs.Bool("unused", true, "report unused variables")
	configPath := fs.String("config", "", "path to config file (default "+config.DefaultFileName+")")
	showHistory := fs.Bool("history", false, "print recent analysis runs")
	noColor := fs.Bool("no-color", false, "disable colored output")
	showVersion := fs.Bool("version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: minijavac [flags] <file.java>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("minijavac %s\n", Version)
		return 0
	}

	cfgPath := *configPath
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = config.DefaultFileName
	}
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	colorMode := cfg.Color
	if *noColor {
		colorMode = "never"
	}
	rep := report.New(os.Stdout, colorMode)

	if fs.NArg() < 1 {
		if *showHistory && cfg.HistoryDB != "" {
			return printHistory(rep, cfg.HistoryDB, "")
		}
		fs.Usage()
		return 2
	}

	filename := fs.Arg(0)
	if !isSourceFile(filename) {
		fmt.Fprintf(os.Stderr, "minijavac: %s: unrecognized source extension (want %s)\n",
			filename, strings.Join(config.SourceFileExtensions, ", "))
		return 1
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minijavac: %v\n", err)
		return 1
	}

	ctx := pipeline.NewContext(filename, string(source))
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.AnalyzerProcessor{},
	)
	ctx = p.Run(ctx)

	if ctx.Fatal != nil {
		rep.Fatal(ctx.Fatal)
		return 1
	}

	if *showTokens {
		rep.Section("SYMBOL TABLE (All Tokens)")
		rep.TokenTable(ctx.SymbolTable.Tokens())
		fmt.Println()
	}

	if *showSymbols {
		rep.Section("VARIABLE INFORMATION")
		rep.VariableTable(ctx.SymbolTable.Variables())
		fmt.Println()
	}

	if *showAST {
		rep.Section("ABSTRACT SYNTAX TREE (AST)")
		fmt.Print(ast.Dump(ctx.AstRoot))
		fmt.Println()
	}

	unused := ctx.SymbolTable.UnusedVariables()
	if *showUnused && cfg.Warnings.UnusedVariables {
		rep.UnusedVariables(unused)
	}

	rep.TypeCheckResults(ctx.Errors, ctx.Warnings)

	if cfg.HistoryDB != "" {
		if err := recordRun(cfg.HistoryDB, filename, len(ctx.Errors), len(ctx.Warnings), len(unused)); err != nil {
			fmt.Fprintf(os.Stderr, "minijavac: %v\n", err)
		}
		if *showHistory {
			if code := printHistory(rep, cfg.HistoryDB, filename); code != 0 {
				return code
			}
		}
	}

	if len(ctx.Errors) > 0 {
		return 1
	}
	return 0
}

func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, known := range config.SourceFileExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

func recordRun(dbPath, filename string, errors, warnings, unused int) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(filename, errors, warnings, unused)
	return err
}

func printHistory(rep *report.Reporter, dbPath, filename string) int {
	store, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minijavac: %v\n", err)
		return 1
	}
	defer store.Close()

	runs, err := store.Recent(filename, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minijavac: %v\n", err)
		return 1
	}

	rep.Section("RECENT RUNS")
	for _, r := range runs {
		fmt.Printf("%s  %-20s errors=%d warnings=%d unused=%d\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.File, r.Errors, r.Warnings, r.Unused)
	}
	return 0
}
