package tracker

// State is the lifecycle state of a watch task.
type State uint32

const (
	StateInactive State = iota
	StateStarting
	StateWatching
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateStarting:
		return "starting"
	case StateWatching:
		return "watching"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
