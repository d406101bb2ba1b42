/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/Pavel7004/goLinkerMap/pkg/mapfile"
	"github.com/Pavel7004/goLinkerMap/pkg/symbols"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <mapfile>",
	Short: "Browse a map file interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  explore,
}

const exploreHelp = `sections            list all sections
section <name>      list placements of a section
find <regexp>       list placements whose source file matches
details [n]         print the first n class info records
gaps <name>         list non-contiguous placements of a section
total               total size of all sections
exit                leave
`

func explore(cmd *cobra.Command, args []string) error {
	model, err := loadModel(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d sections from %s\n", model.Len(), args[0])

	sectionItems := make([]readline.PrefixCompleterInterface, 0, model.Len())
	for _, name := range model.Names() {
		sectionItems = append(sectionItems, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "map> ",
		EOFPrompt:       "exit",
		InterruptPrompt: "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("details"),
			readline.PcItem("exit"),
			readline.PcItem("find"),
			readline.PcItem("gaps", sectionItems...),
			readline.PcItem("help"),
			readline.PcItem("section", sectionItems...),
			readline.PcItem("sections"),
			readline.PcItem("total"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	lastCommand := ""

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		if line == "" {
			line = lastCommand
		} else {
			lastCommand = line
		}

		if !runExploreCommand(rl.Stdout(), model, line) {
			break
		}
	}

	return nil
}

// runExploreCommand executes one line of input. Returns false when the
// session should end.
func runExploreCommand(w io.Writer, model *mapfile.Model, line string) bool {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "sections", "ls":
		for _, s := range model.ListSections(nil) {
			fmt.Fprintf(w, "%-24s 0x%08x %10d\n", s.Name, s.Address, s.Size)
		}

	case "section", "s":
		sec, ok := model.Section(arg)
		if !ok {
			fmt.Fprintf(w, "unknown section: %s\n", arg)
			break
		}
		fmt.Fprintf(w, "%s 0x%08x declared %d, placed %d\n", sec.Name, sec.Address, sec.DeclaredSize, mapfile.TotalPlacementSize(sec.Placements))
		for _, p := range sec.Placements {
			fmt.Fprintf(w, "  0x%08x %8d %s %s\n", p.Address, p.Size, displayName(p.ObjectName), p.SourceFile)
		}

	case "find", "f":
		if arg == "" {
			fmt.Fprintln(w, "expected a regexp")
			break
		}
		re, err := regexp.Compile(arg)
		if err != nil {
			fmt.Fprintln(w, err)
			break
		}
		found := model.FindPlacementsByFile(re)
		var total uint64
		for _, p := range found {
			fmt.Fprintf(w, "%-16s 0x%08x %8d %s %s\n", p.Section, p.Address, p.Size, displayName(p.ObjectName), p.SourceFile)
			total += p.Size
		}
		fmt.Fprintf(w, "%d placements, %d bytes\n", len(found), total)

	case "details", "d":
		report := model.ClassInfoReport()
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				fmt.Fprintln(w, "invalid argument")
				break
			}
			if n < len(report) {
				report = report[:n]
			}
		}
		writeDetails(w, report, nil, cfg.demangle)

	case "gaps", "g":
		sec, ok := model.Section(arg)
		if !ok {
			fmt.Fprintf(w, "unknown section: %s\n", arg)
			break
		}
		for _, g := range mapfile.CheckIntegrity(sec.Placements) {
			fmt.Fprintf(w, "0x%08x %s -> 0x%08x %s (%+d)\n",
				g.Previous.Address, displayName(g.Previous.ObjectName),
				g.Next.Address, displayName(g.Next.ObjectName), g.Delta)
		}

	case "total", "t":
		fmt.Fprintf(w, "%d bytes\n", mapfile.TotalSectionSize(model.ListSections(nil)))

	case "help", "h":
		fmt.Fprint(w, exploreHelp)

	case "exit", "quit", "q":
		return false

	case "":
		// Do nothing

	default:
		fmt.Fprintf(w, "unknown command: %s\n", command)
	}

	return true
}

func displayName(name string) string {
	if cfg.demangle {
		return symbols.Demangle(name)
	}
	return name
}
