/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package diagnostics gives non-fatal numerical conditions (extrapolation,
// Newton non-convergence, NaN inputs) an observable home instead of stdout.
// Core operations that evaluate a projection accept a Sink; a nil Sink is
// valid and behaves as NopSink.
package diagnostics

/*****************************************************************************************************************/

// Warning codes emitted by the RPC evaluator and the grid walker.
const (
	CodeExtrapolation      = "extrapolation"
	CodeNewtonNonConvergent = "newton_non_convergent"
	CodeNaNInput            = "nan_input"
)

/*****************************************************************************************************************/

// Warning is a single non-fatal diagnostic event.
type Warning struct {
	Code    string
	Message string
	Fields  map[string]any
}

/*****************************************************************************************************************/

// Sink receives non-fatal diagnostics. Implementations must not block the
// caller for long, since RPC evaluation may call Warn millions of times.
type Sink interface {
	Warn(code, message string, fields map[string]any)
}

/*****************************************************************************************************************/

type nopSink struct{}

func (nopSink) Warn(string, string, map[string]any) {}

// NopSink silently discards every warning. It is the default used whenever
// a caller passes a nil Sink.
var NopSink Sink = nopSink{}

/*****************************************************************************************************************/

// Collector accumulates warnings in memory, for callers who want to inspect
// them after a batch of operations completes.
type Collector struct {
	Warnings []Warning
}

/*****************************************************************************************************************/

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

/*****************************************************************************************************************/

func (c *Collector) Warn(code, message string, fields map[string]any) {
	c.Warnings = append(c.Warnings, Warning{Code: code, Message: message, Fields: fields})
}

/*****************************************************************************************************************/

// Count returns the number of recorded warnings with the given code.
func (c *Collector) Count(code string) int {
	n := 0
	for _, w := range c.Warnings {
		if w.Code == code {
			n++
		}
	}
	return n
}

/*****************************************************************************************************************/

// Or returns sink if it is non-nil, otherwise NopSink. Every core package
// that accepts an optional diagnostics.Sink calls this at its boundary.
func Or(sink Sink) Sink {
	if sink == nil {
		return NopSink
	}
	return sink
}

/*****************************************************************************************************************/
