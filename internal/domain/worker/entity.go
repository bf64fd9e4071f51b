package worker

// LifecycleStatus is the worker's state in the WORKERS registry sheet.
type LifecycleStatus string

const (
	// StatusWorking: approved and allowed to track attendance.
	StatusWorking LifecycleStatus = "WORKING"
	// StatusWaiting: registered, not yet approved.
	StatusWaiting LifecycleStatus = "WAITING"
	// StatusOff: deactivated; intents are ignored.
	StatusOff LifecycleStatus = "OFF"
)

// Worker is a registry entry mapping an external identity to the name
// the tracking sheets are keyed by.
type Worker struct {
	Identity string
	Name     string
	Status   LifecycleStatus
	Language string
}

// Active reports whether the worker may use the attendance workflow.
func (w Worker) Active() bool {
	return w.Status == StatusWorking
}
