package taskpool

// Priority orders tasks when the pool uses a PriorityQueue. Higher
// levels dispatch first; within a level, tasks run in submission
// order. The zero value is PriorityLow, so plain Submit never jumps
// ahead of prioritized work.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}
