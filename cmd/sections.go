/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/Pavel7004/goLinkerMap/pkg/mapfile"
)

// sections that don't occupy flash
var defaultIgnores = []string{
	".stack_irq",
	".stack_fiq",
	".stack",
	".stack_svc",
	".stack_abt",
	".stack_und",
	".bss",
	".tbss",
	".no_init",
	".heap",
	".mmu_table",
	".reset_info",
}

var (
	ignores  []string
	noIgnore bool
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <mapfile>",
	Short: "List output sections and their total size",
	Args:  cobra.ExactArgs(1),
	RunE:  listSections,
}

func init() {
	sectionsCmd.Flags().StringSliceVar(&ignores, "ignore", defaultIgnores, "Sections left out of the list")
	sectionsCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "List every section")
}

func listSections(cmd *cobra.Command, args []string) error {
	model, err := loadModel(args[0])
	if err != nil {
		return err
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	excluding := make(map[string]bool, len(ignores))
	if !noIgnore {
		for _, name := range ignores {
			excluding[name] = true
		}
	}

	return writeSections(out, model, excluding)
}

func writeSections(w io.Writer, model *mapfile.Model, excluding map[string]bool) error {
	list := model.ListSections(excluding)
	log.Info().Int("count", len(list)).Msg("section list")

	if _, err := pretty.Fprintf(w, "%# v\n", list); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Size of flash sections %d Bytes. Jumps are not considered.\n", mapfile.TotalSectionSize(list))
	return err
}
