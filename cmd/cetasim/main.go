package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"cetasim/internal/registry"
	"cetasim/internal/report"
	"cetasim/internal/scenario"
	"cetasim/internal/store"
	"cetasim/internal/store/sqlite"
)

// defaultEntity is substituted for any invalid menu selection.
const defaultEntity = "France"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		run(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func run(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	entity := fs.String("entity", "", "entity to analyze (empty = interactive menu)")
	outDir := fs.String("out", "output", "output directory for csv and workbook")
	dbPath := fs.String("db", "", "sqlite database path (empty disables persistence)")
	profilesPath := fs.String("profiles", "", "path to YAML profile overrides")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	fs.Parse(args)

	if err := runAnalysis(*entity, *outDir, *dbPath, *profilesPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "cetasim run failed:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cetasim run [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options:")
	fmt.Fprintln(os.Stderr, "  -entity    entity to analyze (default: interactive menu)")
	fmt.Fprintln(os.Stderr, "  -out       output directory (default: output)")
	fmt.Fprintln(os.Stderr, "  -db        sqlite database path (default: disabled)")
	fmt.Fprintln(os.Stderr, "  -profiles  path to YAML profile overrides")
	fmt.Fprintln(os.Stderr, "  -verbose   enable debug logging")
}

func runAnalysis(entity, outDir, dbPath, profilesPath string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg := registry.New()
	if strings.TrimSpace(profilesPath) != "" {
		if err := reg.LoadOverrides(profilesPath); err != nil {
			return err
		}
	}

	if strings.TrimSpace(entity) == "" {
		entity = selectEntity(reg.Names(), os.Stdin, os.Stdout)
	}

	builder := scenario.NewBuilder(reg, logger)
	table, profile := builder.Build(entity)

	csvPath, err := report.NewCSVWriter(outDir, logger).WriteTable(entity, table)
	if err != nil {
		return err
	}
	workbookPath, err := report.NewWorkbookWriter(outDir, logger).WriteWorkbook(entity, table)
	if err != nil {
		return err
	}

	if err := report.WriteSummary(os.Stdout, profile, table); err != nil {
		return err
	}

	st, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	runInfo := store.Run{
		Entity:         entity,
		Classification: profile.Classification,
		GeneratedAt:    time.Now().UTC(),
	}
	if err := st.SaveTable(context.Background(), runInfo, table); err != nil {
		return err
	}

	fmt.Printf("cetasim run complete (entity=%s columns=%d rows=%d)\n",
		entity, len(table.Columns()), table.NumRows(),
	)
	fmt.Printf("data: %s\n", csvPath)
	fmt.Printf("analysis: %s\n", workbookPath)
	return nil
}

// selectEntity prints a numbered menu and reads one selection. Any invalid
// input falls back to the default entity instead of failing.
func selectEntity(names []string, in io.Reader, out io.Writer) string {
	fmt.Fprintf(out, "CETA impact analysis (%d-%d)\n", scenario.StartYear, scenario.EndYear)
	fmt.Fprintln(out, "Available entities:")
	for i, name := range names {
		fmt.Fprintf(out, "%d. %s\n", i+1, name)
	}
	fmt.Fprint(out, "\nSelect an entity number: ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(out, "Invalid selection, defaulting to %s.\n", defaultEntity)
		return defaultEntity
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(names) {
		fmt.Fprintf(out, "Invalid selection, defaulting to %s.\n", defaultEntity)
		return defaultEntity
	}
	return names[choice-1]
}

func openStore(path string) (store.Store, error) {
	if strings.TrimSpace(path) == "" {
		return &store.NopStore{}, nil
	}
	return sqlite.New(path)
}
