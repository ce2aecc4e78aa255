package views

// Phase is the lifecycle position of a view's data fetch.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// LoadState is a tagged fetch state. Only Failed carries a message, so a
// state that is both loading and errored cannot be built.
type LoadState struct {
	phase Phase
	msg   string
}

func loading() LoadState            { return LoadState{phase: Loading} }
func loaded() LoadState             { return LoadState{phase: Loaded} }
func failed(msg string) LoadState   { return LoadState{phase: Failed, msg: msg} }
func (s LoadState) Phase() Phase    { return s.phase }
func (s LoadState) IsLoading() bool { return s.phase == Loading }

// Error returns the user-facing failure text, or "" unless Failed.
func (s LoadState) Error() string {
	if s.phase != Failed {
		return ""
	}
	return s.msg
}
