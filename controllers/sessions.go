package controllers

import (
	"errors"
	"strconv"

	"uniplan_go/database"
	"uniplan_go/middleware"
	"uniplan_go/models"
	"uniplan_go/services"
	"uniplan_go/services/scheduler"
	"uniplan_go/services/websocket"
	"uniplan_go/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errScheduleConflict aborts the create transaction when the locked snapshot
// already holds a colliding session.
var errScheduleConflict = errors.New("schedule conflict")

// SessionController owns the class session endpoints. Sessions are immutable
// rows: clients edit by deleting and re-creating, so every write funnels
// through the same conflict check.
type SessionController struct {
	WSHub *websocket.Hub
}

func NewSessionController(hub *websocket.Hub) *SessionController {
	return &SessionController{WSHub: hub}
}

// GetCourseSessions returns the sessions of one course (PUBLIC endpoint)
func (sc *SessionController) GetCourseSessions(c *fiber.Ctx) error {
	courseID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var course models.Course
	if err := database.DB.First(&course, uint(courseID)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	var sessions []models.ClassSession
	if err := database.DB.Where("course_id = ?", course.ID).
		Preload("Course").
		Order("day_of_week, start_minute").
		Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch sessions",
		})
	}

	return c.JSON(fiber.Map{
		"course_id": course.ID,
		"sessions":  utils.ToSessionDTOs(sessions),
		"total":     len(sessions),
	})
}

// CheckSession runs the conflict check without persisting anything. Clients
// call this while the user is still dragging a slot around; the answer is
// advisory and can go stale, which is why CreateSession re-checks.
func (sc *SessionController) CheckSession(c *fiber.Ctx) error {
	var draft scheduler.Draft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if errs := scheduler.ValidateDraft(draft); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid session",
			"fields": errs,
		})
	}

	course, err := sc.loadCourse(draft.CourseID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	candidate := draft.ToSession(course.TeacherID)
	candidate.CourseName = course.Name
	candidate.CourseCode = course.Code

	snapshot, err := sc.loadDaySnapshot(database.DB, candidate, false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load existing sessions",
		})
	}

	result := scheduler.DetectConflict(candidate, snapshot)
	if !result.Conflicting {
		return c.JSON(fiber.Map{
			"conflicting": false,
		})
	}

	return c.JSON(fiber.Map{
		"conflicting": true,
		"reason":      result.Reason,
		"conflict":    conflictPayload(result),
	})
}

// CreateSession persists a session after the authoritative conflict check.
// A conflict yields 409 with a structured body the client can render.
func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	var draft scheduler.Draft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if errs := scheduler.ValidateDraft(draft); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid session",
			"fields": errs,
		})
	}

	course, err := sc.loadCourse(draft.CourseID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	candidate := draft.ToSession(course.TeacherID)
	candidate.CourseName = course.Name
	candidate.CourseCode = course.Code

	session := models.ClassSession{
		CourseID:    candidate.CourseID,
		DayOfWeek:   candidate.DayOfWeek,
		StartMinute: candidate.StartMinute,
		EndMinute:   candidate.EndMinute,
		Room:        candidate.Room,
		SessionType: candidate.Type,
	}

	// Snapshot, detect and insert under one transaction with the same-day
	// rows locked, so concurrent creates for the same slot serialize and
	// the second writer observes the first.
	var conflict scheduler.ConflictResult
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		snapshot, err := sc.loadDaySnapshot(tx, candidate, true)
		if err != nil {
			return err
		}
		if result := scheduler.DetectConflict(candidate, snapshot); result.Conflicting {
			conflict = result
			return errScheduleConflict
		}
		return tx.Create(&session).Error
	})
	if errors.Is(err, errScheduleConflict) {
		return c.Status(fiber.StatusConflict).JSON(conflictResponseBody(conflict))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	session.Course = *course

	services.InvalidateScheduleViews(c.Context())
	if sc.WSHub != nil {
		sc.WSHub.BroadcastScheduleUpdated("created", session.ID, course.ID, course.TeacherID)
	}

	// Log activity
	middleware.LogActivity(c, "CREATE", "sessions", session.ID, fiber.Map{
		"course_id":  course.ID,
		"day":        scheduler.DayName(session.DayOfWeek),
		"start_time": scheduler.FormatMinute(session.StartMinute),
		"end_time":   scheduler.FormatMinute(session.EndMinute),
		"room":       session.Room,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Session created successfully",
		"session": utils.ToSessionDTO(session),
	})
}

// DeleteSession removes a session. Together with CreateSession this forms
// the delete-then-create edit flow.
func (sc *SessionController) DeleteSession(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID",
		})
	}

	var session models.ClassSession
	if err := database.DB.Preload("Course").First(&session, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	if err := database.DB.Delete(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete session",
		})
	}

	services.InvalidateScheduleViews(c.Context())
	if sc.WSHub != nil {
		sc.WSHub.BroadcastScheduleUpdated("deleted", session.ID, session.CourseID, session.Course.TeacherID)
	}

	// Log activity
	middleware.LogActivity(c, "DELETE", "sessions", session.ID, fiber.Map{
		"course_id":  session.CourseID,
		"day":        scheduler.DayName(session.DayOfWeek),
		"start_time": scheduler.FormatMinute(session.StartMinute),
		"end_time":   scheduler.FormatMinute(session.EndMinute),
	})

	return c.JSON(fiber.Map{
		"message": "Session deleted successfully",
	})
}

func (sc *SessionController) loadCourse(courseID uint) (*models.Course, error) {
	var course models.Course
	if err := database.DB.First(&course, courseID).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// loadDaySnapshot fetches the sessions a candidate could possibly collide
// with: same day, same teacher or same room. The engine re-filters, so
// over-fetching here is harmless. With forUpdate set the rows are read
// locked; call it inside a transaction then.
func (sc *SessionController) loadDaySnapshot(db *gorm.DB, candidate scheduler.Session, forUpdate bool) ([]scheduler.Session, error) {
	query := db.
		Joins("JOIN courses ON courses.id = class_sessions.course_id").
		Where("class_sessions.day_of_week = ?", candidate.DayOfWeek).
		Where("courses.deleted_at IS NULL")

	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if candidate.Room != "" {
		query = query.Where("courses.teacher_id = ? OR class_sessions.room = ?", candidate.TeacherID, candidate.Room)
	} else {
		query = query.Where("courses.teacher_id = ?", candidate.TeacherID)
	}

	var sessions []models.ClassSession
	if err := query.Preload("Course").Find(&sessions).Error; err != nil {
		return nil, err
	}

	return utils.ToSchedulerSessions(sessions), nil
}

// conflictResponseBody is the full 409 body for an authoritative create that
// lost to an existing session.
func conflictResponseBody(result scheduler.ConflictResult) fiber.Map {
	return fiber.Map{
		"error":    "Session conflicts with an existing session",
		"code":     "SCHEDULE_CONFLICT",
		"reason":   result.Reason,
		"message":  result.Owner,
		"conflict": conflictPayload(result),
	}
}

// conflictPayload flattens the engine result into the wire shape shared by
// the advisory check and the 409 response.
func conflictPayload(result scheduler.ConflictResult) fiber.Map {
	s := result.With
	return fiber.Map{
		"session_id":  s.ID,
		"course_id":   s.CourseID,
		"course_name": s.CourseName,
		"course_code": s.CourseCode,
		"teacher_id":  s.TeacherID,
		"day_of_week": s.DayOfWeek,
		"day_name":    scheduler.DayName(s.DayOfWeek),
		"start_time":  s.StartClock(),
		"end_time":    s.EndClock(),
		"room":        s.Room,
		"message":     result.Owner,
	}
}
