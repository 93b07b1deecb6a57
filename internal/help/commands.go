package help

import "strings"

// Version is the pavecheck release version, set at build time via -ldflags.
// Defaults to "dev" when built without version injection (e.g. `go run`).
var Version = "dev"

// Flag describes a command-line flag.
type Flag struct {
	Name string // e.g. "--curves <file>"
	Desc string
}

// Arg describes a positional argument.
type Arg struct {
	Name     string // e.g. "survey.toml"
	Desc     string
	Optional bool
}

// Command describes a pavecheck subcommand (or the top-level binary when
// Name is "").
type Command struct {
	Name        string   // "sample", "curves import", etc; "" for top-level
	Synopsis    string   // one-line description (lowercase, for --help header)
	Brief       string   // short description for usage table (capitalized)
	Usage       string   // full usage line, e.g. "pavecheck sample <survey.toml>"
	TableUsage  string   // shortened usage for the top-level table (if different from Usage)
	Args        []Arg
	Flags       []Flag
	Description string   // multi-line prose (stored verbatim)
	Examples    []string // one per line, without leading 2-space indent
	SeeAlso     []string // man page cross-refs, e.g. "pavecheck(1)"
}

// tableUsage returns TableUsage if set, otherwise Usage.
func (c Command) tableUsage() string {
	if c.TableUsage != "" {
		return c.TableUsage
	}
	return c.Usage
}

// ManName returns the man page name: "pavecheck" for top-level,
// "pavecheck-<name>" for subs. Spaces in Name are replaced with hyphens
// (e.g. "curves import" → "pavecheck-curves-import").
func (c Command) ManName() string {
	if c.Name == "" {
		return "pavecheck"
	}
	return "pavecheck-" + strings.ReplaceAll(c.Name, " ", "-")
}

// TopLevel is the top-level pavecheck command (used by FormatUsage).
var TopLevel = Command{
	Name:     "",
	Synopsis: "ASTM D6433 pavement condition index",
}

var CmdCatalog = Command{
	Name:     "catalog",
	Synopsis: "list the distress type catalog",
	Brief:    "List the distress type catalog",
	Usage:    "pavecheck catalog",
	Description: `Prints the asphalt distress catalog: numeric id, name, measurement
unit, and whether the distress takes a severity level. Survey files
and deduct curves reference distresses by these ids.`,
	SeeAlso: []string{"pavecheck(1)", "pavecheck-sample(1)"},
}

var CmdSample = Command{
	Name:       "sample",
	Synopsis:   "compute PCI per sample unit",
	Brief:      "PCI per sample unit",
	Usage:      "pavecheck sample <survey.toml> [--curves <file>]",
	TableUsage: "pavecheck sample <survey.toml>",
	Args: []Arg{
		{Name: "survey.toml", Desc: "Survey file with sample units and observations"},
	},
	Flags: []Flag{
		{Name: "--curves <file>", Desc: "Curve set file (.toml or .toml.zst)"},
	},
	Description: `Computes the pavement condition index for each sample unit in the
survey: deduct values from the curve set, the iterative corrected
deduct value procedure, and the final PCI with its condition rating.

Curve source resolution order: --curves flag, then curve_file from
the config, then the configured library set, then builtin example
curves (with a warning; builtin values are illustrative only).`,
	Examples: []string{
		"pavecheck sample survey.toml",
		"pavecheck sample survey.toml --curves d6433.toml.zst",
	},
	SeeAlso: []string{"pavecheck(1)", "pavecheck-section(1)", "pavecheck-check(1)"},
}

var CmdSection = Command{
	Name:       "section",
	Synopsis:   "compute area-weighted section PCI",
	Brief:      "Area-weighted section PCI",
	Usage:      "pavecheck section <survey.toml> [--curves <file>]",
	TableUsage: "pavecheck section <survey.toml>",
	Args: []Arg{
		{Name: "survey.toml", Desc: "Survey file with sample units and observations"},
	},
	Flags: []Flag{
		{Name: "--curves <file>", Desc: "Curve set file (.toml or .toml.zst)"},
	},
	Description: `Computes PCI for every sample unit and the section PCI as the
area-weighted mean. Sample units with zero area are ignored; a
section with no surveyed area reports PCI 100.`,
	Examples: []string{
		"pavecheck section survey.toml --curves d6433.toml",
	},
	SeeAlso: []string{"pavecheck(1)", "pavecheck-sample(1)"},
}

var CmdCheck = Command{
	Name:     "check",
	Synopsis: "validate a curve set",
	Brief:    "Validate a curve set",
	Usage:    "pavecheck check [curves.toml]",
	Args: []Arg{
		{Name: "curves.toml", Desc: "Curve set to validate (default: configured source)", Optional: true},
	},
	Description: `Runs diagnostic checks against a curve set and prints a
pass/warn/FAIL report:
  - Every deduct curve references a catalog distress id
  - Severity levels match the catalog entry's severity rule
  - Curve points are valid (sorted, strictly increasing, non-negative)
  - CDV q buckets form a contiguous run starting at 1
  - Catalog severity combinations covered by the set

Exit code 0 if all checks pass or warn, 1 if any check fails.`,
	SeeAlso: []string{"pavecheck(1)", "pavecheck-curves-import(1)"},
}

var CmdCurvesImport = Command{
	Name:       "curves import",
	Synopsis:   "store a curve set in the library",
	Brief:      "Store a curve set in the library",
	Usage:      "pavecheck curves import <file.toml[.zst]> [--db <file>]",
	TableUsage: "pavecheck curves import <file>",
	Args: []Arg{
		{Name: "file.toml[.zst]", Desc: "Curve set file to import"},
	},
	Flags: []Flag{
		{Name: "--db <file>", Desc: "Curve library database (default: configured path)"},
	},
	Description: `Validates the curve set and stores it in the sqlite curve library,
keyed by the set's name. Importing a name that already exists replaces
the stored set wholesale.`,
	Examples: []string{
		"pavecheck curves import d6433.toml",
		"pavecheck curves import d6433.toml.zst --db ./curves.db",
	},
	SeeAlso: []string{"pavecheck(1)", "pavecheck-curves-list(1)", "pavecheck-curves-export(1)"},
}

var CmdCurvesList = Command{
	Name:     "curves list",
	Synopsis: "list stored curve sets",
	Brief:    "List stored curve sets",
	Usage:    "pavecheck curves list [--db <file>]",
	Flags: []Flag{
		{Name: "--db <file>", Desc: "Curve library database (default: configured path)"},
	},
	Description: `Lists every curve set in the library with its deduct and CDV curve
counts and import date.`,
	SeeAlso: []string{"pavecheck(1)", "pavecheck-curves-import(1)"},
}

var CmdCurvesExport = Command{
	Name:       "curves export",
	Synopsis:   "write a stored curve set to a file",
	Brief:      "Write a stored set to a file",
	Usage:      "pavecheck curves export <name> <file.toml[.zst]> [--db <file>]",
	TableUsage: "pavecheck curves export <name> <file>",
	Args: []Arg{
		{Name: "name", Desc: "Stored curve set name"},
		{Name: "file.toml[.zst]", Desc: "Output path (.zst suffix writes zstd-compressed)"},
	},
	Flags: []Flag{
		{Name: "--db <file>", Desc: "Curve library database (default: configured path)"},
	},
	Examples: []string{
		"pavecheck curves export d6433 shared.toml.zst",
	},
	SeeAlso: []string{"pavecheck(1)", "pavecheck-curves-import(1)"},
}

var CmdCurvesDelete = Command{
	Name:       "curves delete",
	Synopsis:   "remove a stored curve set",
	Brief:      "Remove a stored set",
	Usage:      "pavecheck curves delete <name> [--db <file>]",
	TableUsage: "pavecheck curves delete <name>",
	Args: []Arg{
		{Name: "name", Desc: "Stored curve set name"},
	},
	Flags: []Flag{
		{Name: "--db <file>", Desc: "Curve library database (default: configured path)"},
	},
	SeeAlso: []string{"pavecheck(1)", "pavecheck-curves-list(1)"},
}

var CmdWatch = Command{
	Name:       "watch",
	Synopsis:   "recompute section PCI on file changes",
	Brief:      "Recompute on file changes",
	Usage:      "pavecheck watch <survey.toml> [--curves <file>] [--debug]",
	TableUsage: "pavecheck watch <survey.toml>",
	Args: []Arg{
		{Name: "survey.toml", Desc: "Survey file to watch"},
	},
	Flags: []Flag{
		{Name: "--curves <file>", Desc: "Curve set file, also watched for changes"},
		{Name: "--debug", Desc: "Verbose logging"},
	},
	Description: `Watches the survey file (and the curve file, when given) and
recomputes the section report on every change. Curve reloads replace
the tables wholesale before the next calculation starts; a reload
that fails to parse is logged and the previous output stands.

Runs until interrupted (Ctrl-C).`,
	Examples: []string{
		"pavecheck watch survey.toml --curves d6433.toml",
	},
	SeeAlso: []string{"pavecheck(1)", "pavecheck-section(1)"},
}

var CmdVersion = Command{
	Name:     "version",
	Synopsis: "print version",
	Brief:    "Print version",
	Usage:    "pavecheck version",
	SeeAlso:  []string{"pavecheck(1)"},
}

// CurvesSubcommands is the ordered list of curves sub-subcommands.
var CurvesSubcommands = []Command{
	CmdCurvesImport,
	CmdCurvesList,
	CmdCurvesExport,
	CmdCurvesDelete,
}

// Subcommands is the ordered list of all subcommands.
var Subcommands = []Command{
	CmdCatalog,
	CmdSample,
	CmdSection,
	CmdCheck,
	CmdCurvesImport,
	CmdCurvesList,
	CmdCurvesExport,
	CmdCurvesDelete,
	CmdWatch,
	CmdVersion,
}
