package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/consumption"
)

// Exit codes returned by the dosecalc binary.
const (
	ExitCodeError        = 1
	ExitCodeInvalidInput = 2
)

const tabPadding = 2

// InputExitError marks an error caused by invalid user input and carries the
// process exit code for it.
type InputExitError struct {
	ExitCode int
	Err      error
}

func (e *InputExitError) Error() string {
	return e.Err.Error()
}

func (e *InputExitError) Unwrap() error {
	return e.Err
}

// inputError wraps err in an InputExitError when it is an invalid-input error.
func inputError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, consumption.ErrInvalidInput) {
		return &InputExitError{ExitCode: ExitCodeInvalidInput, Err: err}
	}
	return err
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var inputErr *InputExitError
	if errors.As(err, &inputErr) {
		return inputErr.ExitCode
	}
	return ExitCodeError
}

// resolveOutputFormat returns the --output flag value, or the configured
// default when the flag was not set.
func resolveOutputFormat(flagValue string, changed bool) (string, error) {
	format := flagValue
	if !changed {
		format = config.GetDefaultOutputFormat()
	}

	switch format {
	case config.OutputFormatTable, config.OutputFormatJSON, config.OutputFormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: output format must be one of table, json, ndjson, got %q",
			consumption.ErrInvalidInput, format)
	}
}

// renderJSON writes v as indented JSON, or as a single line for ndjson.
func renderJSON(w io.Writer, format string, v interface{}) error {
	enc := json.NewEncoder(w)
	if format == config.OutputFormatJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// writeHeading writes a title underlined with '='.
func writeHeading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)
}

// writeDetails writes label/value rows aligned with a tabwriter.
func writeDetails(w io.Writer, details []consumption.Detail) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	for _, d := range details {
		fmt.Fprintf(tw, "%s:\t%s\n", d.Label, d.Value)
	}
	return tw.Flush()
}
