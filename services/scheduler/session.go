// Package scheduler contains the pure scheduling engine: conflict detection
// between class sessions, weekly grid assembly and teacher completion
// classification. Everything here operates on snapshots passed in by the
// caller and holds no state, so it is safe to call from any number of
// request handlers concurrently.
package scheduler

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Days of week follow ISO-8601: Monday=1 ... Sunday=7.
const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Session types
const (
	TypeTheory   = "theory"
	TypePractice = "practice"
)

// Session is the engine's view of one scheduled class occurrence.
// ID is zero for drafts that have not been persisted yet. Room is free
// text; an empty room means "unassigned" and never participates in room
// conflicts. Times are minutes from midnight at minute resolution.
type Session struct {
	ID          uint   `json:"id,omitempty"`
	CourseID    uint   `json:"course_id"`
	TeacherID   uint   `json:"teacher_id"`
	CourseName  string `json:"course_name,omitempty"`
	CourseCode  string `json:"course_code,omitempty"`
	DayOfWeek   int    `json:"day_of_week"`
	StartMinute int    `json:"-"`
	EndMinute   int    `json:"-"`
	Room        string `json:"room,omitempty"`
	Type        string `json:"session_type"`
}

// StartClock returns the start time as "HH:MM".
func (s Session) StartClock() string { return FormatMinute(s.StartMinute) }

// EndClock returns the end time as "HH:MM".
func (s Session) EndClock() string { return FormatMinute(s.EndMinute) }

// Duration returns the session length in minutes.
func (s Session) Duration() int { return s.EndMinute - s.StartMinute }

// Draft is an unvalidated session candidate as submitted by a client.
type Draft struct {
	CourseID    uint   `json:"course_id"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Room        string `json:"room"`
	SessionType string `json:"session_type"`
}

// FieldError describes a single invalid draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDraft checks a draft against the session invariants. It returns
// one FieldError per violation; an empty slice means the draft is ready for
// conflict checking. Validation always runs before conflict detection, so
// the detector can assume start < end.
func ValidateDraft(d Draft) []FieldError {
	var errs []FieldError

	if d.CourseID == 0 {
		errs = append(errs, FieldError{Field: "course_id", Message: "course is required"})
	}

	if d.DayOfWeek < Monday || d.DayOfWeek > Sunday {
		errs = append(errs, FieldError{Field: "day_of_week", Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)"})
	}

	start, startErr := ParseClock(d.StartTime)
	if startErr != nil {
		errs = append(errs, FieldError{Field: "start_time", Message: startErr.Error()})
	}
	end, endErr := ParseClock(d.EndTime)
	if endErr != nil {
		errs = append(errs, FieldError{Field: "end_time", Message: endErr.Error()})
	}
	if startErr == nil && endErr == nil && start >= end {
		errs = append(errs, FieldError{Field: "end_time", Message: "end_time must be after start_time"})
	}

	switch d.SessionType {
	case TypeTheory, TypePractice:
	default:
		errs = append(errs, FieldError{Field: "session_type", Message: "session_type must be theory or practice"})
	}

	return errs
}

// ToSession converts a validated draft into an engine session. teacherID is
// resolved by the caller from the draft's course. The result has no ID; the
// persistence layer assigns one on create.
func (d Draft) ToSession(teacherID uint) Session {
	start, _ := ParseClock(d.StartTime)
	end, _ := ParseClock(d.EndTime)
	return Session{
		CourseID:    d.CourseID,
		TeacherID:   teacherID,
		DayOfWeek:   d.DayOfWeek,
		StartMinute: start,
		EndMinute:   end,
		Room:        strings.TrimSpace(d.Room),
		Type:        d.SessionType,
	}
}

var clockPattern = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?`)

// ParseClock parses a time-of-day value into minutes from midnight.
// The canonical format is "HH:MM", but full datetime strings coming from
// older clients (ISO timestamps, MySQL datetimes) are accepted by extracting
// their time component.
func ParseClock(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("time value cannot be empty")
	}

	layout := "15:04"
	if strings.Count(value, ":") >= 2 {
		layout = "15:04:05"
	}

	if t, err := time.Parse(layout, value); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	} else {
		fallbackLayouts := []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04",
			"2006-01-02T15:04",
		}

		for _, layout := range fallbackLayouts {
			if parsed, altErr := time.Parse(layout, value); altErr == nil {
				return parsed.Hour()*60 + parsed.Minute(), nil
			}
		}

		if match := clockPattern.FindString(value); match != "" && match != value {
			return ParseClock(match)
		}

		return 0, fmt.Errorf("invalid time format %q: %w", value, err)
	}
}

// FormatMinute renders minutes from midnight as "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// DayName returns the English weekday name for an ISO day number.
func DayName(day int) string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if day < Monday || day > Sunday {
		return "Unknown"
	}
	return names[day-1]
}
