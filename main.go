package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"wordcount/internal/analysis"
	"wordcount/internal/passage"
	"wordcount/internal/report"
	"wordcount/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	flags.SetOutput(stdout)
	fileFlag := flags.String("file", passage.DefaultFile, "Text file to analyze")
	formatFlag := flags.String("format", string(report.Text), "Output format: text, json or yaml")
	viewFlag := flags.Bool("view", false, "Browse the results interactively")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(stdout, "fatal: %v\n", err)
		return 2
	}

	res, err := analysis.File(*fileFlag)
	if errors.Is(err, passage.ErrUnreadable) {
		fmt.Fprintf(stdout, "Could not read file: %s\n", *fileFlag)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stdout, "Error reading file: %v\n", err)
		return 1
	}

	if *viewFlag {
		p := tea.NewProgram(ui.InitialModel(*fileFlag, res), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(stdout, "fatal: %v\n", err)
			return 1
		}
		return 0
	}

	if err := report.NewPrinter(stdout).Write(res.Report(*fileFlag), format); err != nil {
		fmt.Fprintf(stdout, "Error writing report: %v\n", err)
		return 1
	}
	return 0
}
