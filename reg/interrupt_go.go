//go:build !tinygo

package reg

// State is a placeholder for interrupt state on regular Go
type State uintptr

// DisableInterrupts is a no-op on regular Go. The Sim bus serializes
// accesses itself.
func DisableInterrupts() State {
	return 0
}

// RestoreInterrupts is a no-op on regular Go
func RestoreInterrupts(state State) {
}
