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

	"github.com/spf13/cobra"

	"github.com/Pavel7004/goLinkerMap/pkg/domain"
	"github.com/Pavel7004/goLinkerMap/pkg/symbols"
)

var fileFilter string

var detailsCmd = &cobra.Command{
	Use:   "details <mapfile>",
	Short: "Print one semicolon separated record per placement",
	Long: `Print one record per placed object:

  status;symbol;address;size;section;file;object

Status is "MISSING_CLASSINFO" when the map file names no symbol for the
object and "ALTERNATE_CLASSINFO" when the symbol sits at another address.`,
	Args: cobra.ExactArgs(1),
	RunE: listDetails,
}

func init() {
	detailsCmd.Flags().StringVar(&fileFilter, "file", "", "Only report objects whose source file matches this regexp")
}

func listDetails(cmd *cobra.Command, args []string) error {
	var filter *regexp.Regexp
	if fileFilter != "" {
		re, err := regexp.Compile(fileFilter)
		if err != nil {
			return fmt.Errorf("invalid --file pattern: %w", err)
		}
		filter = re
	}

	model, err := loadModel(args[0])
	if err != nil {
		return err
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	return writeDetails(out, model.ClassInfoReport(), filter, cfg.demangle)
}

func writeDetails(w io.Writer, report []domain.ClassInfo, filter *regexp.Regexp, demangle bool) error {
	for _, info := range report {
		if filter != nil && !filter.MatchString(info.SourceFile) {
			continue
		}
		if _, err := fmt.Fprintln(w, formatClassInfo(info, demangle)); err != nil {
			return err
		}
	}
	return nil
}

func formatClassInfo(info domain.ClassInfo, demangle bool) string {
	status := info.Status
	if status != "" {
		status = strconv.Quote(status)
	}

	symbol, object := info.SymbolName, info.ObjectName
	if demangle {
		symbol, object = symbols.Demangle(symbol), symbols.Demangle(object)
	}

	return strings.Join([]string{
		status,
		symbol,
		strconv.FormatUint(info.Address, 10),
		strconv.FormatUint(info.Size, 10),
		info.Section,
		info.SourceFile,
		object,
	}, ";")
}
