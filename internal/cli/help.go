package cli

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/goslang/internal/ui/pretty"
)

// applyHelp renders help and usage for cmd and its subcommands with the
// report palette. Colors follow the --color flag of the invocation.
func applyHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := newHelpRenderer(command).render(command.OutOrStdout(), command, true); err != nil {
			command.PrintErrln(err)
		}
	})
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return newHelpRenderer(command).render(command.OutOrStderr(), command, false)
	})
}

type helpRenderer struct {
	styles *pretty.Styles
}

func newHelpRenderer(cmd *cobra.Command) *helpRenderer {
	mode := "auto"
	if flag := cmd.Flag("color"); flag != nil {
		mode = flag.Value.String()
	}
	return &helpRenderer{styles: pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))}
}

func (h *helpRenderer) render(w io.Writer, cmd *cobra.Command, full bool) error {
	var b strings.Builder

	if full {
		if desc := strings.TrimSpace(cmp.Or(cmd.Long, cmd.Short)); desc != "" {
			b.WriteString(trimTrailingWhitespace(desc))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(h.styles.SummaryTitle.Render("Usage:") + "\n")
	if cmd.Runnable() {
		fmt.Fprintf(&b, "  %s\n", h.styles.Bold.Render(cmd.UseLine()))
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "  %s [command]\n", h.styles.Bold.Render(cmd.CommandPath()))
	}

	if len(cmd.Aliases) > 0 {
		h.section(&b, "Aliases:")
		fmt.Fprintf(&b, "  %s\n", h.styles.Dim.Render(cmd.NameAndAliases()))
	}

	if cmd.HasExample() {
		h.section(&b, "Examples:")
		b.WriteString(h.styles.Dim.Render(cmd.Example) + "\n")
	}

	if cmd.HasAvailableSubCommands() {
		h.section(&b, "Available Commands:")
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() && sub.Name() != "help" {
				continue
			}
			name := sub.Name() + strings.Repeat(" ", max(0, sub.NamePadding()-len(sub.Name())))
			fmt.Fprintf(&b, "  %s %s\n", h.styles.CheckID.Render(name), sub.Short)
		}
	}

	if cmd.HasAvailableLocalFlags() {
		h.section(&b, "Flags:")
		h.flags(&b, cmd.LocalFlags())
	}
	if cmd.HasAvailableInheritedFlags() {
		h.section(&b, "Global Flags:")
		h.flags(&b, cmd.InheritedFlags())
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "\nUse \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write help: %w", err)
	}
	return nil
}

func (h *helpRenderer) section(b *strings.Builder, title string) {
	b.WriteString("\n" + h.styles.SummaryTitle.Render(title) + "\n")
}

// flagRow is one flag line before styling.
type flagRow struct {
	names    string
	typeName string
	usage    string
}

func (r flagRow) width() int {
	if r.typeName == "" {
		return len(r.names)
	}
	return len(r.names) + 1 + len(r.typeName)
}

// flags writes one aligned line per visible flag: names, value type, usage
// and the default when it says something.
func (h *helpRenderer) flags(b *strings.Builder, set *pflag.FlagSet) {
	var rows []flagRow
	set.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		names := "    --" + flag.Name
		if flag.Shorthand != "" {
			names = "-" + flag.Shorthand + ", --" + flag.Name
		}
		typeName, usage := pflag.UnquoteUsage(flag)
		if !isZeroDefault(flag.DefValue) {
			usage += fmt.Sprintf(" (default %s)", flag.DefValue)
		}
		rows = append(rows, flagRow{names: names, typeName: typeName, usage: usage})
	})

	widest := 0
	for _, row := range rows {
		widest = max(widest, row.width())
	}

	for _, row := range rows {
		left := h.styles.Location.Render(row.names)
		if row.typeName != "" {
			left += " " + h.styles.Dim.Render(row.typeName)
		}
		fmt.Fprintf(b, "  %s%s   %s\n", left, strings.Repeat(" ", widest-row.width()), row.usage)
	}
}

func isZeroDefault(value string) bool {
	switch value {
	case "", "false", "0", "[]":
		return true
	default:
		return false
	}
}

// trimTrailingWhitespace removes trailing whitespace from each line.
func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
