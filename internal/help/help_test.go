package help

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatTerminal_Version(t *testing.T) {
	expected := "pavecheck version — print version\n" +
		"\n" +
		"Usage: pavecheck version\n"

	got := FormatTerminal(CmdVersion)
	if got != expected {
		t.Errorf("FormatTerminal(version) mismatch.\n--- expected ---\n%q\n--- got ---\n%q", expected, got)
	}
}

func TestFormatTerminal_Structure(t *testing.T) {
	for _, cmd := range Subcommands {
		t.Run(cmd.Name, func(t *testing.T) {
			out := FormatTerminal(cmd)

			prefix := fmt.Sprintf("pavecheck %s — %s\n", cmd.Name, cmd.Synopsis)
			if !strings.HasPrefix(out, prefix) {
				t.Errorf("header mismatch.\nwant prefix: %q\ngot:         %q", prefix, out[:min(len(out), len(prefix)+20)])
			}
			if !strings.Contains(out, "Usage: "+cmd.Usage) {
				t.Errorf("missing usage line for %q", cmd.Name)
			}
			if cmd.Description != "" && !strings.Contains(out, cmd.Description) {
				t.Errorf("missing description for %q", cmd.Name)
			}
			for _, a := range cmd.Args {
				if !strings.Contains(out, a.Name) || !strings.Contains(out, a.Desc) {
					t.Errorf("missing argument %q for %q", a.Name, cmd.Name)
				}
			}
			for _, f := range cmd.Flags {
				if !strings.Contains(out, f.Name) || !strings.Contains(out, f.Desc) {
					t.Errorf("missing flag %q for %q", f.Name, cmd.Name)
				}
			}
		})
	}
}

func TestFormatUsage(t *testing.T) {
	out := FormatUsage(TopLevel, Subcommands)

	header := fmt.Sprintf("pavecheck v%s — %s\n", Version, TopLevel.Synopsis)
	if !strings.HasPrefix(out, header) {
		t.Errorf("header mismatch.\nwant prefix: %q\ngot:         %q", header, out[:min(len(out), len(header)+20)])
	}
	for _, cmd := range Subcommands {
		if !strings.Contains(out, cmd.tableUsage()) {
			t.Errorf("missing table usage %q", cmd.tableUsage())
		}
		if !strings.Contains(out, cmd.Brief) {
			t.Errorf("missing brief %q", cmd.Brief)
		}
	}
	if !strings.Contains(out, "pavecheck help") {
		t.Error("missing help entry")
	}
	if !strings.Contains(out, "~/.config/pavecheck/config.toml") {
		t.Error("missing configuration footer")
	}

	// Table briefs share one description column.
	lines := strings.Split(out, "\n")
	briefCol := -1
	for _, cmd := range Subcommands {
		for _, line := range lines {
			i := strings.Index(line, cmd.Brief)
			if i < 0 {
				continue
			}
			if briefCol == -1 {
				briefCol = i
			} else if i != briefCol {
				t.Errorf("brief %q at column %d, want %d", cmd.Brief, i, briefCol)
			}
			break
		}
	}
}

func TestRegistryCompleteness(t *testing.T) {
	expectedNames := []string{
		"catalog", "sample", "section", "check",
		"curves import", "curves list", "curves export", "curves delete",
		"watch", "version",
	}
	if len(Subcommands) != len(expectedNames) {
		t.Fatalf("expected %d subcommands, got %d", len(expectedNames), len(Subcommands))
	}
	for i, name := range expectedNames {
		if Subcommands[i].Name != name {
			t.Errorf("Subcommands[%d].Name = %q, want %q", i, Subcommands[i].Name, name)
		}
		if Subcommands[i].Synopsis == "" {
			t.Errorf("Subcommands[%d] (%s) has empty Synopsis", i, name)
		}
		if Subcommands[i].Usage == "" {
			t.Errorf("Subcommands[%d] (%s) has empty Usage", i, name)
		}
		if Subcommands[i].Brief == "" {
			t.Errorf("Subcommands[%d] (%s) has empty Brief", i, name)
		}
	}
}

func TestManName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "pavecheck"},
		{"sample", "pavecheck-sample"},
		{"watch", "pavecheck-watch"},
		{"curves import", "pavecheck-curves-import"},
	}
	for _, tt := range tests {
		c := Command{Name: tt.name}
		if got := c.ManName(); got != tt.want {
			t.Errorf("Command{Name: %q}.ManName() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEscapeRoff(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`simple text`, `simple text`},
		{`back\slash`, `back\\slash`},
		{`.leading dot`, `\&.leading dot`},
		{"line1\n.line2", "line1\n\\&.line2"},
		{`--curves`, `\-\-curves`},
		{`area-weighted`, `area\-weighted`},
		{`no special`, `no special`},
		{`.toml.zst`, `\&.toml.zst`},
	}
	for _, tt := range tests {
		got := escapeRoff(tt.input)
		if got != tt.want {
			t.Errorf("escapeRoff(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatRoffStructure(t *testing.T) {
	fixedDate := "2026-08-29"

	for _, cmd := range Subcommands {
		t.Run(cmd.Name, func(t *testing.T) {
			out := FormatRoff(cmd, fixedDate)

			required := []string{".TH", ".SH NAME", ".SH SYNOPSIS"}
			for _, section := range required {
				if !strings.Contains(out, section) {
					t.Errorf("FormatRoff(%q) missing required section %q", cmd.Name, section)
				}
			}

			expectedTH := strings.ToUpper(cmd.ManName())
			if !strings.Contains(out, ".TH "+expectedTH) {
				t.Errorf("FormatRoff(%q) .TH should contain %q", cmd.Name, expectedTH)
			}

			// Optional sections appear when data present
			if cmd.Description != "" && !strings.Contains(out, ".SH DESCRIPTION") {
				t.Errorf("FormatRoff(%q) has Description but missing .SH DESCRIPTION", cmd.Name)
			}
			if (len(cmd.Args) > 0 || len(cmd.Flags) > 0) && !strings.Contains(out, ".SH OPTIONS") {
				t.Errorf("FormatRoff(%q) has Args/Flags but missing .SH OPTIONS", cmd.Name)
			}
			if len(cmd.Examples) > 0 && !strings.Contains(out, ".SH EXAMPLES") {
				t.Errorf("FormatRoff(%q) has Examples but missing .SH EXAMPLES", cmd.Name)
			}
			if len(cmd.SeeAlso) > 0 && !strings.Contains(out, ".SH SEE ALSO") {
				t.Errorf("FormatRoff(%q) has SeeAlso but missing .SH SEE ALSO", cmd.Name)
			}
		})
	}
}

func TestFormatRoffTopLevelStructure(t *testing.T) {
	fixedDate := "2026-08-29"
	out := FormatRoffTopLevel(TopLevel, Subcommands, fixedDate)

	required := []string{
		".TH PAVECHECK 1",
		".SH NAME",
		".SH SYNOPSIS",
		".SH DESCRIPTION",
		".SH COMMANDS",
		".SH CONFIGURATION",
		".SH SEE ALSO",
	}
	for _, section := range required {
		if !strings.Contains(out, section) {
			t.Errorf("FormatRoffTopLevel missing section %q", section)
		}
	}

	// All subcommands should be listed (check escaped form)
	for _, cmd := range Subcommands {
		escaped := escapeRoff(cmd.Brief)
		if !strings.Contains(out, escaped) {
			t.Errorf("FormatRoffTopLevel missing subcommand brief %q (escaped: %q)", cmd.Brief, escaped)
		}
	}
}

func TestFormatRoffEscapesDescription(t *testing.T) {
	fixedDate := "2026-08-29"
	// curves export mentions ".zst" which needs the leading-dot escape
	// when it starts a line
	out := FormatRoff(CmdSample, fixedDate)
	if strings.Contains(out, "\n--curves") {
		t.Error("FormatRoff(sample) did not escape --curves flag")
	}
}
