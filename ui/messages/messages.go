package messages

// Msg is a marker interface for all message types
type Msg any

// Kind names the two judging workflows.
type Kind string

const (
	KindRun    Kind = "run"
	KindSubmit Kind = "submit"
)

// SubmittingMsg is sent before the solution is posted to the judge
type SubmittingMsg struct {
	Kind     Kind
	Slug     string
	Language string
}

// PollingMsg is sent after every check of a pending judgement
type PollingMsg struct {
	Kind    Kind
	ID      string
	State   string // remote judge state, e.g. PENDING or STARTED
	Attempt int
}

// DoneMsg is sent once the judge reports a terminal state
type DoneMsg struct {
	Kind      Kind
	ID        string
	StatusMsg string
	Polls     int
}

// FailedMsg is sent when the workflow stops on an error
type FailedMsg struct {
	Kind Kind
	ID   string // empty if the submit phase failed
	Err  error
}
