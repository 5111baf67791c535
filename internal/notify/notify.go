package notify

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier is the sink for user-visible notifications. The storage layer
// reports write failures through it; commands report operation outcomes.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Recorder captures notifications for inspection in tests.
type Recorder struct {
	Notifications []Notification
}

type Notification struct {
	Message  string
	Severity Severity
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(message string, severity Severity) {
	r.Notifications = append(r.Notifications, Notification{Message: message, Severity: severity})
}

// Has reports whether any recorded notification carries the given severity.
func (r *Recorder) Has(severity Severity) bool {
	for _, n := range r.Notifications {
		if n.Severity == severity {
			return true
		}
	}
	return false
}
