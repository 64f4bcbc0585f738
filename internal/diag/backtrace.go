package diag

// Site identifies a byte range in the source implicated by a runtime error.
type Site struct {
	Start  int
	Length int
}

// Backtrace is a runtime error: a message plus an ordered list of call
// sites, innermost first. It implements the error interface so evaluator
// functions can return it as a plain Go error; callers that need the sites
// type-assert back to *Backtrace.
type Backtrace struct {
	Message string
	Sites   []Site
}

// NewBacktrace creates a Backtrace with no recorded sites yet.
func NewBacktrace(message string) *Backtrace {
	return &Backtrace{Message: message}
}

// BacktraceAt creates a Backtrace and immediately pushes its originating
// site, the common case at every error-raise point in the evaluator.
func BacktraceAt(message string, start, length int) *Backtrace {
	bt := &Backtrace{Message: message}
	bt.Push(Site{Start: start, Length: length})
	return bt
}

// Push records an additional call site as the error propagates outward.
func (b *Backtrace) Push(site Site) {
	b.Sites = append(b.Sites, site)
}

// Error implements the error interface.
func (b *Backtrace) Error() string {
	return b.Message
}
