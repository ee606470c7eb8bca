package xcore

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TraceEvent records one interrupt dispatch for post-mortem analysis
type TraceEvent struct {
	IRQ    IRQ    // Interrupt line serviced
	Source uint32 // Port or peripheral base address
	Status uint32 // Status bits handed to the callback
	Cycle  uint32 // Sequence number of the dispatch
}

const (
	TraceRingSize = 16 // Keep last 16 dispatches
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled controls whether debug output is active
	debugEnabled bool

	traceRing  [TraceRingSize]TraceEvent
	traceHead  uint8
	traceCount uint32
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART or a host logger
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordDispatch captures an interrupt dispatch in the trace ring.
// Safe to call from interrupt context: it never allocates.
func RecordDispatch(irq IRQ, source, status uint32) {
	traceCount++
	idx := traceHead
	traceRing[idx] = TraceEvent{
		IRQ:    irq,
		Source: source,
		Status: status,
		Cycle:  traceCount,
	}
	traceHead = (idx + 1) % TraceRingSize
}

// TraceEvents returns the recorded dispatches, oldest first
func TraceEvents() []TraceEvent {
	events := make([]TraceEvent, 0, TraceRingSize)
	start := traceHead
	for i := uint8(0); i < TraceRingSize; i++ {
		evt := traceRing[(start+i)%TraceRingSize]
		if evt.Cycle == 0 {
			continue // Empty slot
		}
		events = append(events, evt)
	}
	return events
}

// DumpTrace outputs the trace ring through the debug writer
func DumpTrace() {
	if debugPrintln == nil {
		return
	}
	debugPrintln("[TRACE] === Dispatch Trace ===")
	for _, evt := range TraceEvents() {
		debugPrintln("[TRACE] #" + Utoa(evt.Cycle) +
			" irq=" + Utoa(uint32(evt.IRQ)) +
			" src=" + Hex32(evt.Source) +
			" status=" + Hex32(evt.Status))
	}
	debugPrintln("[TRACE] === End Trace ===")
}

// ClearTrace clears the trace ring
func ClearTrace() {
	for i := range traceRing {
		traceRing[i] = TraceEvent{}
	}
	traceHead = 0
	traceCount = 0
}
