package output

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	json2 "github.com/json-iterator/go"
	"github.com/tgbotosho/content-engine/pkg/config"
	"golang.org/x/term"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

func init() {
	// Reports are piped into other tools often enough that ANSI noise matters
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() OutputFormat {
	if config.GetString("output.format") == "json" {
		return FormatJSON
	}
	return FormatText
}

// ValidateOutputFormat checks if format is valid
func ValidateOutputFormat(format string) bool {
	return format == "json" || format == "text"
}

// PrintReport writes a preformatted text report, or the underlying data as
// JSON when the output format is json.
func PrintReport(report string, data interface{}) error {
	if GetOutputFormat() == FormatJSON {
		return PrintJSON(data)
	}
	fmt.Println(report)
	return nil
}

// PrintJSON pretty-prints data as JSON regardless of the configured format
func PrintJSON(data interface{}) error {
	jsonStr, err := FormatAsPrettyJSON(data)
	if err != nil {
		return err
	}
	fmt.Println(jsonStr)
	return nil
}

// PrintTable renders rows under bold headers with tab alignment
func PrintTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(color.Output, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)

	for i, h := range headers {
		bold.Fprint(w, h)
		if i < len(headers)-1 {
			fmt.Fprint(w, "\t")
		}
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(w, cell)
			if i < len(row)-1 {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}

	w.Flush()
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	colored := color.New(color.FgGreen)
	colored.Printf(msg+"\n", args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	colored := color.New(color.FgRed)
	colored.Printf("Error: "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	colored := color.New(color.FgCyan)
	colored.Printf(msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	colored := color.New(color.FgYellow)
	colored.Printf("Warning: "+msg+"\n", args...)
}

// FormatAsJSON converts data to a compact JSON string
func FormatAsJSON(data interface{}) (string, error) {
	marshaler := json2.ConfigDefault
	jsonData, err := marshaler.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// FormatAsPrettyJSON converts data to an indented JSON string
func FormatAsPrettyJSON(data interface{}) (string, error) {
	marshaler := json2.ConfigDefault
	jsonData, err := marshaler.Marshal(data)
	if err != nil {
		return "", err
	}

	// Unmarshal and remarshal for pretty printing
	var obj interface{}
	if err := json.Unmarshal(jsonData, &obj); err != nil {
		return "", err
	}

	prettyJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", err
	}

	return string(prettyJSON), nil
}
