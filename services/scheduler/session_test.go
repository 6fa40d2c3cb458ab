package scheduler

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
	}{
		{
			name:  "simple time",
			input: "08:30",
			want:  mins(8, 30),
		},
		{
			name:  "iso datetime",
			input: "2007-11-30T00:00:00+07:00",
			want:  0,
		},
		{
			name:  "mysql datetime",
			input: "2007-11-30 13:45:00",
			want:  mins(13, 45),
		},
		{
			name:  "time with trailing zone",
			input: "09:15:00Z",
			want:  mins(9, 15),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClock(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", FormatMinute(tc.want), FormatMinute(got))
			}
		})
	}
}

func TestParseClockInvalid(t *testing.T) {
	if _, err := ParseClock("invalid"); err == nil {
		t.Fatalf("expected error for invalid input")
	}
	if _, err := ParseClock(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestValidateDraft(t *testing.T) {
	valid := Draft{
		CourseID:    1,
		DayOfWeek:   Monday,
		StartTime:   "09:00",
		EndTime:     "11:00",
		Room:        "301",
		SessionType: TypeTheory,
	}
	if errs := ValidateDraft(valid); len(errs) != 0 {
		t.Fatalf("valid draft rejected: %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{
			name:   "missing course",
			mutate: func(d *Draft) { d.CourseID = 0 },
			field:  "course_id",
		},
		{
			name:   "day out of range",
			mutate: func(d *Draft) { d.DayOfWeek = 8 },
			field:  "day_of_week",
		},
		{
			name:   "day zero",
			mutate: func(d *Draft) { d.DayOfWeek = 0 },
			field:  "day_of_week",
		},
		{
			name:   "missing start time",
			mutate: func(d *Draft) { d.StartTime = "" },
			field:  "start_time",
		},
		{
			name:   "end before start",
			mutate: func(d *Draft) { d.StartTime = "11:00"; d.EndTime = "09:00" },
			field:  "end_time",
		},
		{
			name:   "start equals end",
			mutate: func(d *Draft) { d.EndTime = d.StartTime },
			field:  "end_time",
		},
		{
			name:   "unknown session type",
			mutate: func(d *Draft) { d.SessionType = "lab" },
			field:  "session_type",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			tc.mutate(&draft)
			errs := ValidateDraft(draft)
			if len(errs) == 0 {
				t.Fatal("expected a validation error")
			}
			found := false
			for _, e := range errs {
				if e.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected an error on %s, got %v", tc.field, errs)
			}
		})
	}

	// Room stays optional.
	noRoom := valid
	noRoom.Room = ""
	if errs := ValidateDraft(noRoom); len(errs) != 0 {
		t.Fatalf("draft without room rejected: %v", errs)
	}
}

func TestDraftToSession(t *testing.T) {
	draft := Draft{
		CourseID:    4,
		DayOfWeek:   Friday,
		StartTime:   "13:30",
		EndTime:     "15:00",
		Room:        "  Lab 2  ",
		SessionType: TypePractice,
	}

	s := draft.ToSession(9)
	if s.ID != 0 {
		t.Fatalf("draft session must not carry an id, got %d", s.ID)
	}
	if s.TeacherID != 9 || s.CourseID != 4 {
		t.Fatalf("ownership not carried over: %+v", s)
	}
	if s.StartMinute != mins(13, 30) || s.EndMinute != mins(15, 0) {
		t.Fatalf("times = %d-%d", s.StartMinute, s.EndMinute)
	}
	if s.Room != "Lab 2" {
		t.Fatalf("room should be trimmed, got %q", s.Room)
	}
}
