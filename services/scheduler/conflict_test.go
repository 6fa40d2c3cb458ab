package scheduler

import "testing"

func mins(h, m int) int { return h*60 + m }

func TestDetectConflict(t *testing.T) {
	tests := []struct {
		name      string
		candidate Session
		existing  []Session
		conflict  bool
		reason    Reason
	}{
		{
			name:      "same teacher overlapping",
			candidate: Session{TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(11, 0)},
			existing: []Session{
				{ID: 10, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(10, 0)},
			},
			conflict: true,
			reason:   ReasonSameTeacher,
		},
		{
			name:      "back to back same room never conflicts",
			candidate: Session{TeacherID: 2, DayOfWeek: Monday, StartMinute: mins(10, 0), EndMinute: mins(12, 0), Room: "301"},
			existing: []Session{
				{ID: 11, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(10, 0), Room: "301"},
			},
			conflict: false,
		},
		{
			name:      "same room different teacher overlapping",
			candidate: Session{TeacherID: 2, DayOfWeek: Tuesday, StartMinute: mins(9, 0), EndMinute: mins(10, 30), Room: "B12"},
			existing: []Session{
				{ID: 12, TeacherID: 1, DayOfWeek: Tuesday, StartMinute: mins(9, 30), EndMinute: mins(11, 0), Room: "B12"},
			},
			conflict: true,
			reason:   ReasonSameRoom,
		},
		{
			name:      "different room same teacher still conflicts",
			candidate: Session{TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0), Room: "101"},
			existing: []Session{
				{ID: 13, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0), Room: "202"},
			},
			conflict: true,
			reason:   ReasonSameTeacher,
		},
		{
			name:      "different day never conflicts",
			candidate: Session{TeacherID: 1, DayOfWeek: Tuesday, StartMinute: mins(9, 0), EndMinute: mins(10, 0), Room: "101"},
			existing: []Session{
				{ID: 14, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0), Room: "101"},
			},
			conflict: false,
		},
		{
			name:      "different teacher and unassigned rooms do not conflict",
			candidate: Session{TeacherID: 2, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0)},
			existing: []Session{
				{ID: 15, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0)},
			},
			conflict: false,
		},
		{
			name:      "teacher reason wins over room",
			candidate: Session{TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0), Room: "301"},
			existing: []Session{
				{ID: 16, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0), Room: "301"},
			},
			conflict: true,
			reason:   ReasonSameTeacher,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := DetectConflict(tc.candidate, tc.existing)
			if res.Conflicting != tc.conflict {
				t.Fatalf("conflicting = %v, want %v", res.Conflicting, tc.conflict)
			}
			if !tc.conflict {
				if res.With != nil || res.Reason != "" {
					t.Fatalf("expected empty result, got %+v", res)
				}
				return
			}
			if res.Reason != tc.reason {
				t.Fatalf("reason = %q, want %q", res.Reason, tc.reason)
			}
			if res.With == nil {
				t.Fatal("expected a colliding session in the result")
			}
			if res.Owner == "" {
				t.Fatal("expected an owner description")
			}
		})
	}
}

func TestDetectConflictSymmetry(t *testing.T) {
	a := Session{ID: 1, TeacherID: 7, DayOfWeek: Wednesday, StartMinute: mins(13, 0), EndMinute: mins(15, 0)}
	b := Session{ID: 2, TeacherID: 7, DayOfWeek: Wednesday, StartMinute: mins(14, 0), EndMinute: mins(16, 0)}

	ab := DetectConflict(a, []Session{b})
	ba := DetectConflict(b, []Session{a})
	if ab.Conflicting != ba.Conflicting {
		t.Fatalf("asymmetric detection: a-vs-b=%v b-vs-a=%v", ab.Conflicting, ba.Conflicting)
	}
	if !ab.Conflicting {
		t.Fatal("expected overlapping sessions to conflict both ways")
	}
}

func TestDetectConflictReportsEarliest(t *testing.T) {
	candidate := Session{TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(18, 0)}
	existing := []Session{
		{ID: 3, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(14, 0), EndMinute: mins(16, 0)},
		{ID: 2, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(11, 0)},
		{ID: 4, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(11, 0), EndMinute: mins(13, 0)},
	}

	res := DetectConflict(candidate, existing)
	if !res.Conflicting {
		t.Fatal("expected a conflict")
	}
	if res.With.ID != 2 {
		t.Fatalf("expected the 09:00 session to be reported first, got session %d (%s)", res.With.ID, res.With.StartClock())
	}
}

func TestDetectConflictIgnoresSelf(t *testing.T) {
	s := Session{ID: 5, TeacherID: 1, DayOfWeek: Friday, StartMinute: mins(9, 0), EndMinute: mins(10, 0)}
	if res := DetectConflict(s, []Session{s}); res.Conflicting {
		t.Fatalf("session should not conflict with itself: %+v", res)
	}
}
