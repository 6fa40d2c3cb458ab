package controllers

import (
	"testing"

	"uniplan_go/services/scheduler"

	"github.com/gofiber/fiber/v2"
)

func TestConflictResponseBodyShape(t *testing.T) {
	existing := scheduler.Session{
		ID:          4,
		CourseID:    2,
		TeacherID:   1,
		CourseName:  "Database Systems",
		CourseCode:  "CPE341",
		DayOfWeek:   scheduler.Tuesday,
		StartMinute: 540,
		EndMinute:   660,
		Room:        "ENG-301",
	}
	candidate := scheduler.Session{
		CourseID:    3,
		TeacherID:   1,
		DayOfWeek:   scheduler.Tuesday,
		StartMinute: 600,
		EndMinute:   720,
	}

	result := scheduler.DetectConflict(candidate, []scheduler.Session{existing})
	if !result.Conflicting {
		t.Fatalf("expected a conflict between overlapping same-teacher sessions")
	}

	body := conflictResponseBody(result)
	for _, key := range []string{"error", "code", "reason", "message", "conflict"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("conflict body missing %q key: %v", key, body)
		}
	}
	if body["code"] != "SCHEDULE_CONFLICT" {
		t.Fatalf("expected code SCHEDULE_CONFLICT, got %v", body["code"])
	}
	if body["reason"] != scheduler.ReasonSameTeacher {
		t.Fatalf("expected same_teacher reason, got %v", body["reason"])
	}

	payload, ok := body["conflict"].(fiber.Map)
	if !ok {
		t.Fatalf("conflict payload should be a map, got %T", body["conflict"])
	}
	if payload["session_id"] != uint(4) || payload["course_code"] != "CPE341" {
		t.Fatalf("payload should describe the existing session: %v", payload)
	}
	if payload["start_time"] != "09:00" || payload["end_time"] != "11:00" {
		t.Fatalf("payload times should be clock strings: %v", payload)
	}
}

func TestSecondWriterDetectsCommittedSlot(t *testing.T) {
	// Two clients racing for the same teacher and slot: once the first
	// insert is visible in the snapshot the locked re-check reads, the
	// identical second candidate must come back conflicting.
	first := scheduler.Session{
		ID:          10,
		CourseID:    1,
		TeacherID:   1,
		DayOfWeek:   scheduler.Monday,
		StartMinute: 540,
		EndMinute:   660,
		Room:        "ENG-301",
	}
	second := first
	second.ID = 0
	second.CourseID = 2

	result := scheduler.DetectConflict(second, []scheduler.Session{first})
	if !result.Conflicting {
		t.Fatalf("identical committed slot must conflict for the second writer")
	}
	if result.With == nil || result.With.ID != first.ID {
		t.Fatalf("conflict should reference the committed session, got %+v", result.With)
	}
}
