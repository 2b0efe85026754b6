package state

import "culler/internal/domain"

// Phase is the lifecycle of a browsing session. Terminal is absorbing
// until a new scan begins.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseScanning
	PhaseBrowsing
	PhaseTerminal
)

func (phase Phase) String() string {
	switch phase {
	case PhaseIdle:
		return "idle"
	case PhaseScanning:
		return "scanning"
	case PhaseBrowsing:
		return "browsing"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Session owns the ordered descriptor sequence and the cursor over it.
// The cursor is clamped to [0, len]; len is the terminal position. Every
// scan rebuilds the sequence; a generation token ties each scan to its
// eventual result so a superseded scan can never overwrite a newer one.
type Session struct {
	phase      Phase
	files      []domain.File
	cursor     int
	generation int
}

func NewSession() *Session {
	return &Session{phase: PhaseIdle}
}

func (session *Session) Phase() Phase {
	return session.phase
}

// BeginScan invalidates any outstanding scan and returns the generation
// token its result must present.
func (session *Session) BeginScan() int {
	session.generation++
	session.phase = PhaseScanning
	return session.generation
}

// CompleteScan installs a scan result. A stale generation is discarded and
// leaves the session untouched.
func (session *Session) CompleteScan(generation int, files []domain.File) bool {
	if generation != session.generation {
		return false
	}
	session.files = files
	session.cursor = 0
	if len(files) == 0 {
		session.phase = PhaseTerminal
	} else {
		session.phase = PhaseBrowsing
	}
	return true
}

// FailScan reports a failed scan. A stale generation is discarded.
func (session *Session) FailScan(generation int) bool {
	if generation != session.generation {
		return false
	}
	session.phase = PhaseIdle
	session.files = nil
	session.cursor = 0
	return true
}

func (session *Session) Len() int {
	return len(session.files)
}

func (session *Session) Cursor() int {
	return session.cursor
}

// Current returns the descriptor under the cursor; false in any phase
// without one, including the terminal position.
func (session *Session) Current() (domain.File, bool) {
	if session.phase != PhaseBrowsing || session.cursor >= len(session.files) {
		return domain.File{}, false
	}
	return session.files[session.cursor], true
}

// Advance moves the cursor forward by one, entering Terminal when it
// reaches the end of the sequence.
func (session *Session) Advance() bool {
	if session.phase != PhaseBrowsing {
		return false
	}
	session.cursor++
	if session.cursor >= len(session.files) {
		session.cursor = len(session.files)
		session.phase = PhaseTerminal
	}
	return true
}

// Retreat moves the cursor back by one; a no-op at the first image and
// outside of browsing.
func (session *Session) Retreat() bool {
	if session.phase != PhaseBrowsing || session.cursor == 0 {
		return false
	}
	session.cursor--
	return true
}
