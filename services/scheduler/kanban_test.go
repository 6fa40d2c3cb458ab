package scheduler

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		teacher TeacherWithCourses
		want    CompletionState
	}{
		{
			name: "two courses no sessions",
			teacher: TeacherWithCourses{TeacherID: 1, Courses: []CourseSummary{
				{ID: 1}, {ID: 2},
			}},
			want: StateNoSchedule,
		},
		{
			name: "one course scheduled one empty",
			teacher: TeacherWithCourses{TeacherID: 1, Courses: []CourseSummary{
				{ID: 1, Sessions: []Session{
					{ID: 1, CourseID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(10, 0)},
					{ID: 2, CourseID: 1, DayOfWeek: Wednesday, StartMinute: mins(8, 0), EndMinute: mins(10, 0)},
				}},
				{ID: 2},
			}},
			want: StateInProgress,
		},
		{
			name: "every course covered",
			teacher: TeacherWithCourses{TeacherID: 1, Courses: []CourseSummary{
				{ID: 1, Sessions: []Session{{ID: 1, CourseID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(10, 0)}}},
				{ID: 2, Sessions: []Session{{ID: 2, CourseID: 2, DayOfWeek: Friday, StartMinute: mins(13, 0), EndMinute: mins(15, 0)}}},
			}},
			want: StateComplete,
		},
		{
			name: "single session covers a course",
			teacher: TeacherWithCourses{TeacherID: 1, Courses: []CourseSummary{
				{ID: 1, Sessions: []Session{{ID: 1, CourseID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(9, 0)}}},
			}},
			want: StateComplete,
		},
		{
			name:    "no courses at all",
			teacher: TeacherWithCourses{TeacherID: 1},
			want:    StateNoSchedule,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.teacher); got != tc.want {
				t.Fatalf("classify = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassifyTotality(t *testing.T) {
	teachers := []TeacherWithCourses{
		{TeacherID: 1, Courses: []CourseSummary{{ID: 1}}},
		{TeacherID: 2, Courses: []CourseSummary{
			{ID: 2, Sessions: []Session{{ID: 1, CourseID: 2, DayOfWeek: Monday, StartMinute: 480, EndMinute: 540}}},
			{ID: 3},
		}},
		{TeacherID: 3, Courses: []CourseSummary{
			{ID: 4, Sessions: []Session{{ID: 2, CourseID: 4, DayOfWeek: Monday, StartMinute: 480, EndMinute: 540}}},
		}},
	}

	for _, teacher := range teachers {
		state := Classify(teacher)
		switch state {
		case StateNoSchedule, StateInProgress, StateComplete:
		default:
			t.Fatalf("teacher %d got unknown state %q", teacher.TeacherID, state)
		}
		if (state == StateNoSchedule) != (teacher.TotalSessions() == 0) {
			t.Fatalf("teacher %d: no_schedule must hold exactly when session total is zero", teacher.TeacherID)
		}
	}
}

func TestBuildBoard(t *testing.T) {
	teachers := []TeacherWithCourses{
		{TeacherID: 1, Name: "A", Courses: []CourseSummary{{ID: 1}}},
		{TeacherID: 2, Name: "B", Courses: []CourseSummary{
			{ID: 2, Sessions: []Session{{ID: 1, CourseID: 2, DayOfWeek: Monday, StartMinute: 480, EndMinute: 540}}},
			{ID: 3},
		}},
		{TeacherID: 3, Name: "C", Courses: []CourseSummary{{ID: 4}}},
		{TeacherID: 4, Name: "D", Courses: []CourseSummary{
			{ID: 5, Sessions: []Session{{ID: 2, CourseID: 5, DayOfWeek: Tuesday, StartMinute: 600, EndMinute: 660}}},
		}},
	}

	board := BuildBoard(teachers)

	if len(board.NoSchedule) != 2 || len(board.InProgress) != 1 || len(board.Complete) != 1 {
		t.Fatalf("board sizes = %d/%d/%d, want 2/1/1",
			len(board.NoSchedule), len(board.InProgress), len(board.Complete))
	}

	// Column order must follow the input collection.
	if board.NoSchedule[0].Teacher.TeacherID != 1 || board.NoSchedule[1].Teacher.TeacherID != 3 {
		t.Fatalf("no_schedule column out of order: %v, %v",
			board.NoSchedule[0].Teacher.TeacherID, board.NoSchedule[1].Teacher.TeacherID)
	}
	if board.InProgress[0].Teacher.TeacherID != 2 {
		t.Fatalf("in_progress column holds teacher %d", board.InProgress[0].Teacher.TeacherID)
	}
	if board.Complete[0].Teacher.TeacherID != 4 {
		t.Fatalf("complete column holds teacher %d", board.Complete[0].Teacher.TeacherID)
	}
}
