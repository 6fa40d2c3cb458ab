package scheduler

import (
	"fmt"
	"sort"
)

// Reason discriminates why a candidate collides with an existing session.
type Reason string

const (
	ReasonSameTeacher Reason = "same_teacher"
	ReasonSameRoom    Reason = "same_room"
)

// ConflictResult reports the outcome of a conflict check. A conflict is a
// normal, expected outcome rather than an error, so it is returned as a
// value. When the candidate collides with more than one session, With holds
// the first by ascending start time.
type ConflictResult struct {
	Conflicting bool     `json:"conflicting"`
	With        *Session `json:"with,omitempty"`
	Reason      Reason   `json:"reason,omitempty"`
	Owner       string   `json:"owner,omitempty"`
}

// NoConflict is the zero result for a candidate that fits.
var NoConflict = ConflictResult{}

// Overlaps reports whether two sessions occupy overlapping time on the same
// day. Intervals are half-open, so a session ending at 10:00 never overlaps
// one starting at 10:00.
func Overlaps(a, b Session) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return false
	}
	return a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
}

// DetectConflict checks a candidate session against a snapshot of existing
// sessions. Two same-day, time-overlapping sessions conflict when they share
// a teacher, or when both name the same non-empty room. Sessions that merely
// share a time slot with a different teacher and a different (or absent)
// room do not conflict. When a session collides on both teacher and room,
// the teacher reason wins.
//
// The candidate must already satisfy StartMinute < EndMinute; ValidateDraft
// guarantees this for drafts coming off the wire.
func DetectConflict(candidate Session, existing []Session) ConflictResult {
	matches := make([]Session, 0, len(existing))
	for _, s := range existing {
		if s.ID != 0 && s.ID == candidate.ID {
			continue
		}
		if !Overlaps(candidate, s) {
			continue
		}
		if conflictReason(candidate, s) != "" {
			matches = append(matches, s)
		}
	}

	if len(matches) == 0 {
		return NoConflict
	}

	// Report the earliest colliding session so the message is stable no
	// matter how the snapshot was ordered.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].StartMinute != matches[j].StartMinute {
			return matches[i].StartMinute < matches[j].StartMinute
		}
		if matches[i].EndMinute != matches[j].EndMinute {
			return matches[i].EndMinute < matches[j].EndMinute
		}
		return matches[i].ID < matches[j].ID
	})

	hit := matches[0]
	reason := conflictReason(candidate, hit)
	return ConflictResult{
		Conflicting: true,
		With:        &hit,
		Reason:      reason,
		Owner:       describeOwner(hit, reason),
	}
}

func conflictReason(candidate, s Session) Reason {
	if s.TeacherID == candidate.TeacherID {
		return ReasonSameTeacher
	}
	if candidate.Room != "" && s.Room == candidate.Room {
		return ReasonSameRoom
	}
	return ""
}

func describeOwner(s Session, reason Reason) string {
	name := s.CourseName
	if name == "" {
		name = fmt.Sprintf("course #%d", s.CourseID)
	}
	switch reason {
	case ReasonSameRoom:
		return fmt.Sprintf("room %s is occupied by %s on %s %s-%s",
			s.Room, name, DayName(s.DayOfWeek), s.StartClock(), s.EndClock())
	default:
		return fmt.Sprintf("the teacher already has %s on %s %s-%s",
			name, DayName(s.DayOfWeek), s.StartClock(), s.EndClock())
	}
}
