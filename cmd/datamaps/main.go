// Command datamaps projects master workbooks into per-project field maps
// and serves them over HTTP.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"datamaps/internal/app"
	"datamaps/internal/config"
	"datamaps/internal/infrastructure"
	"datamaps/internal/services"
	"datamaps/pkg/contracts"
)

const usage = `usage: datamaps [-config FILE] <command> [flags]

commands:
  project   -master FILE (-quarter N | -month N) -year YYYY [-out NAME]
  batch     -quarter N -year YYYY
  check
  serve
  config show
  version
`

// errUsage signals bad arguments; run exits with status 2.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("datamaps", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	configFile := global.String("config", "", "path to a YAML config file")
	if err := global.Parse(args); err != nil {
		return 2
	}

	rest := global.Args()
	if len(rest) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	if rest[0] == "version" {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return 0
	}

	ctx = infrastructure.EnsureTraceID(ctx)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "datamaps: %v\n", err)
		return 1
	}

	switch rest[0] {
	case "project":
		err = runProject(ctx, cfg, rest[1:], stdout, stderr)
	case "batch":
		err = runBatch(ctx, cfg, rest[1:], stdout, stderr)
	case "check":
		err = runCheck(cfg, stdout)
	case "serve":
		err = runServe(cfg)
	case "config":
		err = runConfig(cfg, rest[1:], stdout)
	default:
		fmt.Fprintf(stderr, "datamaps: unknown command %q\n", rest[0])
		err = errUsage
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprint(stderr, usage)
		return 2
	default:
		fmt.Fprintf(stderr, "datamaps: %v\n", err)
		return 1
	}
}

func loadConfig(file string) (*config.Config, error) {
	if file != "" {
		return config.LoadFile(file)
	}
	return config.Load()
}

// newService builds a projection service logging to stderr, leaving stdout
// for results.
func newService(cfg *config.Config, stderr io.Writer) (*services.ProjectionService, func(), error) {
	logger, err := infrastructure.NewLogger(cfg.Logging, stderr)
	if err != nil {
		return nil, nil, err
	}
	svc, err := services.NewProjectionService(cfg, nil, nil, logger)
	if err != nil {
		infrastructure.CloseLogFile()
		return nil, nil, err
	}
	return svc, func() { infrastructure.CloseLogFile() }, nil
}

func runProject(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fs.SetOutput(stderr)
	masterFile := fs.String("master", cfg.Paths.MasterFile, "master workbook; bare names resolve in the input directory")
	quarter := fs.Int("quarter", 0, "financial quarter (1-4)")
	month := fs.Int("month", 0, "calendar month (1-12)")
	year := fs.Int("year", 0, "year of the quarter or month")
	out := fs.String("out", "", "write the projection to this file; bare names resolve in the output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *year == 0 || (*quarter == 0) == (*month == 0) {
		return errUsage
	}

	svc, closeLog, err := newService(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	p, err := svc.ProjectPath(ctx, masterPath(*masterFile, svc.InputDir()), *quarter, *month, *year)
	if err != nil {
		return err
	}
	if *out == "" {
		return writeJSON(stdout, p)
	}

	path := cfg.GetPaths().GetOutputPath(*out)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeJSON(f, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(stdout, path)
	return nil
}

// masterPath returns name as given when it exists, otherwise the same name
// inside the input directory.
func masterPath(name, inputDir string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(inputDir, name)
}

func runBatch(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quarter := fs.Int("quarter", 0, "financial quarter (1-4)")
	year := fs.Int("year", 0, "year of the quarter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *quarter == 0 || *year == 0 {
		return errUsage
	}

	svc, closeLog, err := newService(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	result, err := svc.Batch(ctx, *quarter, *year)
	if err != nil {
		return err
	}
	if err := writeJSON(stdout, result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d workbooks failed", result.Failed, len(result.Items))
	}
	return nil
}

// runCheck reports the expected input files and fails when any is missing.
func runCheck(cfg *config.Config, stdout io.Writer) error {
	files := cfg.GetPaths().CheckInputFiles()
	for _, f := range files {
		status := "ok"
		if !f.Exists {
			status = "missing"
		}
		fmt.Fprintf(stdout, "%-8s %-8s %s\n", f.Role, status, f.Path)
	}

	missing := config.MissingInputFiles(files)
	if len(missing) == 0 {
		return nil
	}
	roles := make([]string, len(missing))
	for i, f := range missing {
		roles[i] = f.Role
	}
	return fmt.Errorf("missing input files: %s", strings.Join(roles, ", "))
}

func runServe(cfg *config.Config) error {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", slog.String("error", err.Error()))
		return err
	}
	return application.Run()
}

func runConfig(cfg *config.Config, args []string, stdout io.Writer) error {
	if len(args) != 1 || args[0] != "show" {
		return errUsage
	}
	out, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
