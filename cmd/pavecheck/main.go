package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/johns/pavecheck/internal/check"
	"github.com/johns/pavecheck/internal/config"
	"github.com/johns/pavecheck/internal/curvefile"
	"github.com/johns/pavecheck/internal/curvestore"
	"github.com/johns/pavecheck/internal/log"
	"github.com/johns/pavecheck/internal/pci"
	"github.com/johns/pavecheck/internal/survey"
	"github.com/johns/pavecheck/internal/watch"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch os.Args[1] {
	case "catalog":
		fmt.Print(pci.FormatCatalog())

	case "sample":
		runSample(cfg, os.Args[2:])

	case "section":
		runSection(cfg, os.Args[2:])

	case "check":
		runCheck(cfg, os.Args[2:])

	case "curves":
		runCurves(cfg, os.Args[2:])

	case "watch":
		runWatch(cfg, os.Args[2:])

	case "version":
		fmt.Printf("pavecheck v%s\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func runSample(cfg config.Config, args []string) {
	if len(args) < 1 {
		fatal("usage: pavecheck sample <survey.toml> [--curves <file>]")
	}
	engine := mustEngine(cfg, flagValue(args, "--curves"))
	sec := mustSection(args[0])

	for _, su := range sec.SampleUnits {
		result, err := engine.CalculateSample(su.Observations, su.Area)
		if err != nil {
			fatal("sample %s: %v", su.ID, err)
		}
		fmt.Println(pci.FormatSample(su, result, cfg.Output.ShowIterations))
	}
}

func runSection(cfg config.Config, args []string) {
	if len(args) < 1 {
		fatal("usage: pavecheck section <survey.toml> [--curves <file>]")
	}
	engine := mustEngine(cfg, flagValue(args, "--curves"))
	sec := mustSection(args[0])

	results := make([]pci.Result, len(sec.SampleUnits))
	for i, su := range sec.SampleUnits {
		result, err := engine.CalculateSample(su.Observations, su.Area)
		if err != nil {
			fatal("sample %s: %v", su.ID, err)
		}
		results[i] = result
	}

	sectionPCI, err := engine.SectionPCI(sec)
	if err != nil {
		fatal("section %s: %v", sec.ID, err)
	}
	fmt.Println(pci.FormatSection(sec, results, sectionPCI))
}

func runCheck(cfg config.Config, args []string) {
	var f *curvefile.File
	var err error
	if len(args) > 0 && args[0][0] != '-' {
		f, err = curvefile.Load(args[0])
		if err != nil {
			fatal("%v", err)
		}
	} else {
		f = mustCurveFile(cfg, flagValue(args, "--curves"))
	}

	report := check.Run(f)
	fmt.Print(report.Format())
	if report.HasFailures() {
		os.Exit(1)
	}
}

func runCurves(cfg config.Config, args []string) {
	if len(args) < 1 {
		fatal("usage: pavecheck curves <import|list|export|delete> ...")
	}

	dbPath := cfg.CurveDB
	if p := flagValue(args, "--db"); p != "" {
		dbPath = p
	}
	store, err := curvestore.Open(dbPath)
	if err != nil {
		fatal("%v", err)
	}
	defer store.Close()

	switch args[0] {
	case "import":
		if len(args) < 2 {
			fatal("usage: pavecheck curves import <file.toml[.zst]>")
		}
		f, err := curvefile.Load(args[1])
		if err != nil {
			fatal("%v", err)
		}
		// Reject sets that would fail at calculation time.
		if _, err := f.CurveSet(); err != nil {
			fatal("invalid curve set: %v", err)
		}
		if err := store.Put(f); err != nil {
			fatal("import: %v", err)
		}
		fmt.Printf("imported %q: %d deduct, %d cdv curves\n", f.Name, len(f.Deduct), len(f.CDV))

	case "list":
		sets, err := store.List()
		if err != nil {
			fatal("list: %v", err)
		}
		if len(sets) == 0 {
			fmt.Println("no curve sets stored")
			return
		}
		for _, info := range sets {
			fmt.Printf("  %-20s %3d deduct  %2d cdv  %s\n",
				info.Name, info.DeductCurves, info.CDVCurves, info.CreatedAt.Format("2006-01-02"))
		}

	case "export":
		if len(args) < 3 {
			fatal("usage: pavecheck curves export <name> <file.toml[.zst]>")
		}
		f, err := store.Get(args[1])
		if err != nil {
			fatal("export: %v", err)
		}
		if err := curvefile.Write(args[2], f); err != nil {
			fatal("export: %v", err)
		}
		fmt.Printf("exported %q to %s\n", args[1], args[2])

	case "delete":
		if len(args) < 2 {
			fatal("usage: pavecheck curves delete <name>")
		}
		if err := store.Delete(args[1]); err != nil {
			fatal("delete: %v", err)
		}
		fmt.Printf("deleted %q\n", args[1])

	default:
		fatal("unknown curves subcommand: %s", args[0])
	}
}

func runWatch(cfg config.Config, args []string) {
	if len(args) < 1 {
		fatal("usage: pavecheck watch <survey.toml> [--curves <file>] [--debug]")
	}
	surveyPath := args[0]
	curvePath := flagValue(args, "--curves")
	if curvePath == "" {
		curvePath = cfg.CurveFile
	}

	if err := log.Init(hasFlag(args, "--debug")); err != nil {
		fatal("%v", err)
	}
	defer log.Sync()

	paths := []string{surveyPath}
	if curvePath != "" {
		paths = append(paths, curvePath)
	}

	recompute := func() error {
		// Fresh engine per round: curve reloads replace the tables
		// wholesale before any calculation starts.
		f, err := loadCurveFile(cfg, curvePath)
		if err != nil {
			return err
		}
		cs, err := f.CurveSet()
		if err != nil {
			return fmt.Errorf("curve set %q: %w", f.Name, err)
		}
		engine := pci.New(cs)
		s, err := survey.Load(surveyPath)
		if err != nil {
			return err
		}
		sec, err := s.Section()
		if err != nil {
			return err
		}

		results := make([]pci.Result, len(sec.SampleUnits))
		for i, su := range sec.SampleUnits {
			results[i], err = engine.CalculateSample(su.Observations, su.Area)
			if err != nil {
				return fmt.Errorf("sample %s: %w", su.ID, err)
			}
		}
		sectionPCI, err := engine.SectionPCI(sec)
		if err != nil {
			return err
		}
		fmt.Println(pci.FormatSection(sec, results, sectionPCI))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watch.Run(ctx, paths, recompute); err != nil {
		fatal("watch: %v", err)
	}
}

// loadCurveFile resolves the curve source: --curves flag, then config
// curve_file, then the configured library set, then the builtin
// example curves.
func loadCurveFile(cfg config.Config, flagPath string) (*curvefile.File, error) {
	path := flagPath
	if path == "" {
		path = cfg.CurveFile
	}
	if path != "" {
		return curvefile.Load(path)
	}

	if cfg.CurveSet != "" {
		store, err := curvestore.Open(cfg.CurveDB)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Get(cfg.CurveSet)
	}

	fmt.Fprintln(os.Stderr, "pavecheck: using builtin example curves; results are illustrative only")
	return curvefile.Builtin(), nil
}

func mustCurveFile(cfg config.Config, flagPath string) *curvefile.File {
	f, err := loadCurveFile(cfg, flagPath)
	if err != nil {
		fatal("%v", err)
	}
	return f
}

func mustEngine(cfg config.Config, flagPath string) *pci.Engine {
	f := mustCurveFile(cfg, flagPath)
	cs, err := f.CurveSet()
	if err != nil {
		fatal("curve set %q: %v", f.Name, err)
	}
	return pci.New(cs)
}

func mustSection(path string) pci.Section {
	s, err := survey.Load(path)
	if err != nil {
		fatal("%v", err)
	}
	sec, err := s.Section()
	if err != nil {
		fatal("%v", err)
	}
	return sec
}

func usage() {
	fmt.Fprintf(os.Stderr, `pavecheck v%s: ASTM D6433 pavement condition index

Usage:
  pavecheck catalog                          List the distress type catalog
  pavecheck sample <survey.toml>             PCI per sample unit
  pavecheck section <survey.toml>            Area-weighted section PCI
  pavecheck check [curves.toml]              Validate a curve set
  pavecheck curves import <file.toml[.zst]>  Store a curve set in the library
  pavecheck curves list                      List stored curve sets
  pavecheck curves export <name> <path>      Write a stored set to a file
  pavecheck curves delete <name>             Remove a stored set
  pavecheck watch <survey.toml>              Recompute on file changes
  pavecheck version                          Print version
  pavecheck help                             Show this help

Options:
  --curves <file>   Curve set file (.toml or .toml.zst)
  --db <file>       Curve library database (curves subcommands)
  --debug           Verbose logging (watch)

Configuration: ~/.config/pavecheck/config.toml
`, version)
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pavecheck: "+format+"\n", args...)
	os.Exit(1)
}
