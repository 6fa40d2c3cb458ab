package controllers

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"uniplan_go/config"
	"uniplan_go/database"
	"uniplan_go/middleware"
	"uniplan_go/models"
	"uniplan_go/services"
	"uniplan_go/services/scheduler"
	"uniplan_go/storage"
	"uniplan_go/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TimetableController serves the per-user derived schedule views: the flat
// session list, the positioned weekly grid and the spreadsheet export.
type TimetableController struct{}

// GetMySchedule returns the current user's sessions as a flat list
func (tt *TimetableController) GetMySchedule(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	sessions, err := tt.loadUserSessions(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch schedule",
		})
	}

	return c.JSON(fiber.Map{
		"sessions": utils.ToSessionDTOs(sessions),
		"total":    len(sessions),
	})
}

// GetMyGrid returns the current user's weekly grid, positioned for rendering
func (tt *TimetableController) GetMyGrid(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	opts := gridOptionsFromQuery(c)
	ctx := c.Context()
	cacheKey := services.GridCacheKey(user.ID, opts.Days, opts.StartHour, opts.EndHour, opts.UnitsPerMinute)

	var grid scheduler.WeeklyGrid
	if services.GetCachedView(ctx, cacheKey, &grid) {
		return c.JSON(fiber.Map{
			"grid":   grid,
			"cached": true,
		})
	}

	sessions, err := tt.loadUserSessions(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch schedule",
		})
	}

	grid = scheduler.BuildGrid(utils.ToSchedulerSessions(sessions), opts)
	services.PutCachedView(ctx, cacheKey, grid)

	return c.JSON(fiber.Map{
		"grid": grid,
	})
}

// ExportMySchedule renders the weekly grid as an xlsx workbook. Depending on
// configuration the file is either streamed back or uploaded to S3.
func (tt *TimetableController) ExportMySchedule(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	sessions, err := tt.loadUserSessions(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch schedule",
		})
	}

	grid := scheduler.BuildGrid(utils.ToSchedulerSessions(sessions), gridOptionsFromQuery(c))

	title := fmt.Sprintf("Weekly Timetable - %s", user.Username)
	workbook, err := services.NewExportService().BuildWorkbook(grid, title)
	if err != nil {
		logrus.WithError(err).Error("Failed to build timetable workbook")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build export",
		})
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build export",
		})
	}

	middleware.LogActivity(c, "EXPORT", "schedules", user.ID, fiber.Map{
		"sessions": len(sessions),
	})

	if config.AppConfig.UploadExportsToS3 {
		storageService, err := storage.NewStorageService()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Storage not configured",
			})
		}
		url, err := storageService.UploadExport(buf.Bytes(), user.ID)
		if err != nil {
			logrus.WithError(err).Error("Failed to upload timetable export")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to upload export",
			})
		}
		return c.JSON(fiber.Map{
			"message": "Export uploaded",
			"url":     url,
		})
	}

	filename := fmt.Sprintf("timetable_%s_%s.xlsx", user.Username, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// loadUserSessions resolves the sessions belonging to a user based on role:
// teachers see the sessions of courses they teach, students the sessions of
// courses they are enrolled in, admins everything.
func (tt *TimetableController) loadUserSessions(user *models.User) ([]models.ClassSession, error) {
	query := database.DB.Model(&models.ClassSession{}).
		Joins("JOIN courses ON courses.id = class_sessions.course_id").
		Where("courses.deleted_at IS NULL AND courses.status = ?", "active")

	switch user.Role {
	case "teacher":
		var teacher models.Teacher
		if err := database.DB.Where("user_id = ?", user.ID).First(&teacher).Error; err != nil {
			// A teacher account without a profile simply has no sessions yet.
			return nil, nil
		}
		query = query.Where("courses.teacher_id = ?", teacher.ID)
	case "student":
		query = query.
			Joins("JOIN enrollments ON enrollments.course_id = courses.id").
			Where("enrollments.user_id = ? AND enrollments.status = ? AND enrollments.deleted_at IS NULL", user.ID, "enrolled")
	}

	var sessions []models.ClassSession
	if err := query.Preload("Course").
		Order("day_of_week, start_minute").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// gridOptionsFromQuery builds layout options from query parameters with
// configured defaults.
func gridOptionsFromQuery(c *fiber.Ctx) scheduler.GridOptions {
	opts := scheduler.GridOptions{
		Days:      config.AppConfig.GridDays,
		StartHour: config.AppConfig.GridStartHour,
		EndHour:   config.AppConfig.GridEndHour,
	}

	if v, err := strconv.Atoi(c.Query("days")); err == nil {
		opts.Days = v
	}
	if v, err := strconv.Atoi(c.Query("start_hour")); err == nil {
		opts.StartHour = v
	}
	if v, err := strconv.Atoi(c.Query("end_hour")); err == nil {
		opts.EndHour = v
	}
	if v, err := strconv.ParseFloat(c.Query("scale"), 64); err == nil {
		opts.UnitsPerMinute = v
	}

	return opts
}
