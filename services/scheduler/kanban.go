package scheduler

// CompletionState summarizes how far a teacher has come with scheduling
// their assigned courses.
type CompletionState string

const (
	// StateNoSchedule: the teacher has no sessions at all.
	StateNoSchedule CompletionState = "no_schedule"
	// StateInProgress: some sessions exist but at least one course has none.
	StateInProgress CompletionState = "in_progress"
	// StateComplete: every assigned course has at least one session.
	StateComplete CompletionState = "complete"
)

// CourseSummary is one course with its scheduled sessions, as delivered by
// the teacher-with-courses listing.
type CourseSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	CreditHours  int       `json:"credit_hours"`
	Sessions     []Session `json:"sessions"`
	SessionCount int       `json:"session_count"`
}

// TeacherWithCourses is the classifier input: a teacher and all of their
// courses, each carrying its own session collection.
type TeacherWithCourses struct {
	TeacherID uint            `json:"teacher_id"`
	Name      string          `json:"name"`
	Courses   []CourseSummary `json:"courses"`
}

// TotalSessions counts sessions across all of the teacher's courses.
func (t TeacherWithCourses) TotalSessions() int {
	total := 0
	for _, c := range t.Courses {
		total += len(c.Sessions)
	}
	return total
}

// CoveredCourses counts courses with at least one session.
func (t TeacherWithCourses) CoveredCourses() int {
	covered := 0
	for _, c := range t.Courses {
		if len(c.Sessions) > 0 {
			covered++
		}
	}
	return covered
}

// Classify buckets a teacher's scheduling progress into one of the three
// board states. A course counts as covered with a single session; hour
// sufficiency is not the classifier's concern. The function is pure:
// re-run it on a fresh snapshot after every session create or delete
// instead of caching its result.
func Classify(t TeacherWithCourses) CompletionState {
	if t.TotalSessions() == 0 {
		return StateNoSchedule
	}
	for _, c := range t.Courses {
		if len(c.Sessions) == 0 {
			return StateInProgress
		}
	}
	return StateComplete
}

// BoardEntry is one teacher card on the Kanban board.
type BoardEntry struct {
	Teacher TeacherWithCourses `json:"teacher"`
	State   CompletionState    `json:"state"`
}

// Board groups teachers into the three Kanban columns. Entries keep the
// order of the input collection; no additional sort is applied.
type Board struct {
	NoSchedule []BoardEntry `json:"no_schedule"`
	InProgress []BoardEntry `json:"in_progress"`
	Complete   []BoardEntry `json:"complete"`
}

// BuildBoard classifies every teacher and distributes them over the board
// columns.
func BuildBoard(teachers []TeacherWithCourses) Board {
	board := Board{
		NoSchedule: []BoardEntry{},
		InProgress: []BoardEntry{},
		Complete:   []BoardEntry{},
	}
	for _, t := range teachers {
		entry := BoardEntry{Teacher: t, State: Classify(t)}
		switch entry.State {
		case StateNoSchedule:
			board.NoSchedule = append(board.NoSchedule, entry)
		case StateInProgress:
			board.InProgress = append(board.InProgress, entry)
		case StateComplete:
			board.Complete = append(board.Complete, entry)
		}
	}
	return board
}
