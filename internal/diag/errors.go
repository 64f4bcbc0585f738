package diag

import (
	"fmt"
	"io"
	"strings"
)

// Severity ranks a Diagnostic's urgency.
type Severity int

const (
	Critical Severity = iota
	Error
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Critical:
		return "Critical"
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single recorded message anchored to a byte span.
type Diagnostic struct {
	Message  string
	Severity Severity
	Start    int
	Length   int
}

// Errors is the ordered diagnostic collection shared across the lexer,
// parser, and evaluator for a single run. The flag bit implements
// panic-mode gating: while set, Push is a no-op, so cascading errors within
// one recovery cycle collapse to a single recorded diagnostic.
type Errors struct {
	source string
	list   []Diagnostic
	flag   bool
}

// NewErrors creates a collector for the given source text.
func NewErrors(source string) *Errors {
	return &Errors{source: source}
}

// Push records a diagnostic unless the flag is already set. When recorded,
// the flag is set to the caller-supplied value (parsers pass true to engage
// panic-mode gating; lexers and the evaluator pass false so every lex/runtime
// diagnostic is independently recorded).
func (e *Errors) Push(message string, severity Severity, start, length int, flag bool) {
	if e.flag {
		return
	}
	e.flag = flag
	e.list = append(e.list, Diagnostic{
		Message:  message,
		Severity: severity,
		Start:    start,
		Length:   length,
	})
}

// Flag reports whether the panic-mode flag is currently set.
func (e *Errors) Flag() bool { return e.flag }

// SetFlag sets the panic-mode flag directly; the parser's Parse clears it
// once synchronize() has completed recovery.
func (e *Errors) SetFlag(v bool) { e.flag = v }

// HasErrors reports whether any diagnostics have been recorded.
func (e *Errors) HasErrors() bool { return len(e.list) > 0 }

// List returns the recorded diagnostics in recording order.
func (e *Errors) List() []Diagnostic { return e.list }

// Coalesce appends this collector's diagnostics onto target and clears this
// collector, letting a sub-pipeline stage (the lexer, say) hand its
// diagnostics up to the driver's collector.
func (e *Errors) Coalesce(target *Errors) {
	target.list = append(target.list, e.list...)
	e.list = nil
}

// Fprint renders every diagnostic to w: severity and message, the source
// line containing the span, then either a caret underline (length > 0) or a
// zero-width pointer into the line.
func (e *Errors) Fprint(w io.Writer) {
	for _, d := range e.list {
		fprintDiagnostic(w, e.source, d.Severity.String(), d.Message, d.Start, d.Length)
	}
}

func fprintDiagnostic(w io.Writer, source, severity, message string, start, length int) {
	index, line, lineStart, lineNext := 0, 1, 0, 0
	for {
		rel := strings.IndexByte(source[index:], '\n')
		if rel < 0 {
			lineStart = lineNext
			lineNext = len(source) + 1
			break
		}
		needle := rel + index
		lineStart = lineNext
		lineNext = needle + 1
		if needle >= start {
			break
		}
		index = lineNext
		line++
	}

	fmt.Fprintf(w, "%s: %s\n", severity, message)
	linePrefix := fmt.Sprintf("line %d: ", line)
	lineEnd := lineNext - 1
	if lineEnd > len(source) {
		lineEnd = len(source)
	}
	if lineStart > lineEnd {
		lineStart = lineEnd
	}
	lineText := source[lineStart:lineEnd]
	fmt.Fprintf(w, "%s%s\n", linePrefix, lineText)

	pad := start - lineStart + len(linePrefix)
	switch {
	case length != 0:
		fmt.Fprintf(w, "%s%s\n", rightAlign("here --", pad), strings.Repeat("^", length))
	case start < (lineStart+lineEnd)/2:
		fmt.Fprintf(w, "%s\n", rightAlign(`\__ here`, pad))
	default:
		fmt.Fprintf(w, "%s\n", rightAlign("here __/", pad))
	}
}

func rightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
