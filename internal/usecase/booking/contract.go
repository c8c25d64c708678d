package booking

import "github.com/boxfit/gym-scheduler/internal/audit"

// Auditor is the sink for audit events emitted by the booking use cases.
// Satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}
