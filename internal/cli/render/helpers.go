package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headerStyle   = color.New(color.Bold, color.FgHiWhite)
	nameStyle     = color.New(color.FgWhite, color.Bold)
	addressStyle  = color.New(color.FgWhite)
	typeStyle     = color.New(color.FgYellow)
	futureStyle   = color.New(color.FgCyan)
	faintStyle    = color.New(color.Faint)
	overrideStyle = color.New(color.FgGreen)
	errorStyle    = color.New(color.FgRed)
)

var titleCaser = cases.Title(language.English)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// Title capitalizes a lowercase label such as a value source
func Title(s string) string {
	return titleCaser.String(s)
}

// RenderJSON writes v as indented JSON
func RenderJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a borderless left-aligned table writer
func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: " ",
	}
	t.Style().Format.Header = text.FormatDefault
	if header != nil {
		headerCells := make(table.Row, len(header))
		for i, h := range header {
			headerCells[i] = faintStyle.Sprint(h)
		}
		t.AppendHeader(headerCells)
	}
	return t
}

// shortHex abbreviates long hex strings for display
func shortHex(s string, keep int) string {
	if len(s) <= 2+2*keep+3 {
		return s
	}
	return fmt.Sprintf("%s…%s", s[:2+keep], s[len(s)-keep:])
}

// relativePath returns path relative to the current directory when possible
func relativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return rel
}
