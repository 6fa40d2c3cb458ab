package utils

import (
	"time"
	"uniplan_go/models"
	"uniplan_go/services/scheduler"
)

// Compact representations used across APIs
type SessionDTO struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	CourseID    uint      `json:"course_id"`
	CourseName  string    `json:"course_name,omitempty"`
	CourseCode  string    `json:"course_code,omitempty"`
	TeacherID   uint      `json:"teacher_id"`
	DayOfWeek   int       `json:"day_of_week"`
	DayName     string    `json:"day_name"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Room        string    `json:"room,omitempty"`
	SessionType string    `json:"session_type"`
	Color       string    `json:"color"`
}

// ToSessionDTO maps a persisted session to the wire shape. Assumes the
// caller has preloaded Course when course display fields are wanted.
func ToSessionDTO(s models.ClassSession) SessionDTO {
	return SessionDTO{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		CourseID:    s.CourseID,
		CourseName:  s.Course.Name,
		CourseCode:  s.Course.Code,
		TeacherID:   s.Course.TeacherID,
		DayOfWeek:   s.DayOfWeek,
		DayName:     scheduler.DayName(s.DayOfWeek),
		StartTime:   scheduler.FormatMinute(s.StartMinute),
		EndTime:     scheduler.FormatMinute(s.EndMinute),
		Room:        s.Room,
		SessionType: s.SessionType,
		Color:       scheduler.PaletteColor(s.CourseID),
	}
}

// ToSessionDTOs maps a session collection, preserving order.
func ToSessionDTOs(sessions []models.ClassSession) []SessionDTO {
	dtos := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, ToSessionDTO(s))
	}
	return dtos
}

// ToSchedulerSession converts a persisted session into the engine's value
// type. The teacher is derived through the owning course.
func ToSchedulerSession(s models.ClassSession) scheduler.Session {
	return scheduler.Session{
		ID:          s.ID,
		CourseID:    s.CourseID,
		TeacherID:   s.Course.TeacherID,
		CourseName:  s.Course.Name,
		CourseCode:  s.Course.Code,
		DayOfWeek:   s.DayOfWeek,
		StartMinute: s.StartMinute,
		EndMinute:   s.EndMinute,
		Room:        s.Room,
		Type:        s.SessionType,
	}
}

// ToSchedulerSessions converts a session collection for the engine.
func ToSchedulerSessions(sessions []models.ClassSession) []scheduler.Session {
	out := make([]scheduler.Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToSchedulerSession(s))
	}
	return out
}

// ToTeacherWithCourses builds the classifier input from a teacher whose
// Courses (and each course's Sessions) have been preloaded.
func ToTeacherWithCourses(t models.Teacher) scheduler.TeacherWithCourses {
	twc := scheduler.TeacherWithCourses{
		TeacherID: t.ID,
		Name:      t.DisplayName(),
		Courses:   make([]scheduler.CourseSummary, 0, len(t.Courses)),
	}
	for _, course := range t.Courses {
		summary := scheduler.CourseSummary{
			ID:          course.ID,
			Name:        course.Name,
			Code:        course.Code,
			CreditHours: course.CreditHours,
			Sessions:    make([]scheduler.Session, 0, len(course.Sessions)),
		}
		for _, s := range course.Sessions {
			es := ToSchedulerSession(s)
			// Sessions preloaded through the course lose the back
			// reference; fill the derived fields from the course itself.
			es.TeacherID = course.TeacherID
			es.CourseName = course.Name
			es.CourseCode = course.Code
			summary.Sessions = append(summary.Sessions, es)
		}
		summary.SessionCount = len(summary.Sessions)
		twc.Courses = append(twc.Courses, summary)
	}
	return twc
}
