package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/AntonioChieffallo/Student-Grade-Manager/core"
	"github.com/AntonioChieffallo/Student-Grade-Manager/mock"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(out)
	listNames := fs.Bool("list", false, "List all course names")
	course := fs.String("course", "", "Name of the course to inspect")
	whatIf := fs.String("what-if", "", "Project the GPA for a hypothetical grade, as COURSE=VALUE")
	pretty := fs.Bool("pretty", false, "Pretty print JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ledger := core.NewLedger()
	mock.Seed(ledger)

	if *listNames {
		fmt.Fprintln(out, "Courses:")
		for _, name := range ledger.CourseNames() {
			fmt.Fprintf(out, "  %s (%d credits)\n", name, ledger.CourseCredits(name))
		}
		return nil
	}

	if *whatIf != "" {
		name, raw, ok := strings.Cut(*whatIf, "=")
		if !ok {
			return fmt.Errorf("what-if must be COURSE=VALUE, got %q", *whatIf)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid what-if value %q: %w", raw, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("invalid what-if value %q: must be a finite number", raw)
		}
		if !ledger.HasCourse(name) {
			return fmt.Errorf("course %q not found", name)
		}
		return writeJSON(out, *pretty, map[string]any{
			"course":        name,
			"value":         value,
			"current_gpa":   ledger.GPA(),
			"projected_gpa": ledger.ProjectedGPA(name, value),
		})
	}

	if *course != "" {
		report, ok := ledger.CourseReport(*course)
		if !ok {
			return fmt.Errorf("course %q not found", *course)
		}
		return writeJSON(out, *pretty, report)
	}

	return writeJSON(out, *pretty, ledger.Report())
}

func writeJSON(out io.Writer, pretty bool, v any) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	_, err = fmt.Fprintln(out, string(data))
	return err
}
