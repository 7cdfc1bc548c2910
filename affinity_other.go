//go:build !linux

package taskpool

// PinToCPU is a no-op outside Linux; workers stay thread-locked only.
func PinToCPU(cpu int) error { return nil }
