package utils

import (
	"testing"

	"uniplan_go/models"
	"uniplan_go/services/scheduler"
)

func sampleSession() models.ClassSession {
	return models.ClassSession{
		BaseModel:   models.BaseModel{ID: 11},
		CourseID:    3,
		DayOfWeek:   2,
		StartMinute: 540,
		EndMinute:   660,
		Room:        "ENG-301",
		SessionType: "theory",
		Course: models.Course{
			BaseModel: models.BaseModel{ID: 3},
			Name:      "Database Systems",
			Code:      "CPE341",
			TeacherID: 7,
		},
	}
}

func TestToSessionDTO(t *testing.T) {
	dto := ToSessionDTO(sampleSession())

	if dto.ID != 11 || dto.CourseID != 3 || dto.TeacherID != 7 {
		t.Fatalf("unexpected identifiers: %+v", dto)
	}
	if dto.DayName != "Tuesday" {
		t.Fatalf("expected Tuesday, got %s", dto.DayName)
	}
	if dto.StartTime != "09:00" || dto.EndTime != "11:00" {
		t.Fatalf("expected 09:00-11:00, got %s-%s", dto.StartTime, dto.EndTime)
	}
	if dto.Color != scheduler.PaletteColor(3) {
		t.Fatalf("color should be derived from the course id")
	}
}

func TestToSchedulerSessionDerivesTeacherThroughCourse(t *testing.T) {
	es := ToSchedulerSession(sampleSession())

	if es.TeacherID != 7 {
		t.Fatalf("expected teacher 7 via course, got %d", es.TeacherID)
	}
	if es.StartMinute != 540 || es.EndMinute != 660 {
		t.Fatalf("minutes should pass through untouched: %+v", es)
	}
	if es.CourseCode != "CPE341" {
		t.Fatalf("expected course code CPE341, got %s", es.CourseCode)
	}
}

func TestToTeacherWithCourses(t *testing.T) {
	teacher := models.Teacher{
		BaseModel: models.BaseModel{ID: 7},
		FirstName: "Somchai",
		LastName:  "Chaiyo",
		Title:     "Dr.",
		Courses: []models.Course{
			{
				BaseModel: models.BaseModel{ID: 3},
				Name:      "Database Systems",
				Code:      "CPE341",
				TeacherID: 7,
				Sessions: []models.ClassSession{
					// Preloaded through the course, so the back reference
					// is zero; derived fields must come from the course.
					{BaseModel: models.BaseModel{ID: 11}, CourseID: 3, DayOfWeek: 2, StartMinute: 540, EndMinute: 660},
				},
			},
			{
				BaseModel: models.BaseModel{ID: 4},
				Name:      "Operating Systems",
				Code:      "CPE352",
				TeacherID: 7,
			},
		},
	}

	twc := ToTeacherWithCourses(teacher)

	if twc.Name != "Dr. Somchai Chaiyo" {
		t.Fatalf("unexpected display name %q", twc.Name)
	}
	if len(twc.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(twc.Courses))
	}
	if twc.Courses[0].SessionCount != 1 || twc.Courses[1].SessionCount != 0 {
		t.Fatalf("unexpected session counts: %+v", twc.Courses)
	}
	if got := twc.Courses[0].Sessions[0].TeacherID; got != 7 {
		t.Fatalf("expected teacher id filled from course, got %d", got)
	}
	if scheduler.Classify(twc) != scheduler.StateInProgress {
		t.Fatalf("one covered course of two should classify as in progress")
	}
}

func TestToSessionDTOsPreservesOrder(t *testing.T) {
	first := sampleSession()
	second := sampleSession()
	second.ID = 12
	second.StartMinute = 780
	second.EndMinute = 840

	dtos := ToSessionDTOs([]models.ClassSession{first, second})
	if len(dtos) != 2 {
		t.Fatalf("expected 2 dtos, got %d", len(dtos))
	}
	if dtos[0].ID != 11 || dtos[1].ID != 12 {
		t.Fatalf("order not preserved: %+v", dtos)
	}
}
