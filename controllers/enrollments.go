package controllers

import (
	"strconv"

	"uniplan_go/database"
	"uniplan_go/middleware"
	"uniplan_go/models"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentController struct{}

type enrollRequest struct {
	UserID uint   `json:"user_id"`
	Status string `json:"status"` // optional: enrolled/completed/dropped
}

// GetCourseEnrollments lists the enrollments of a course
func (ec *EnrollmentController) GetCourseEnrollments(c *fiber.Ctx) error {
	courseID64, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || courseID64 == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var enrollments []models.Enrollment
	query := database.DB.Where("course_id = ?", uint(courseID64))

	if status := c.Query("status", "enrolled"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Preload("User").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}

	return c.JSON(fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// EnrollUser enrolls a student user into a course (admin only)
func (ec *EnrollmentController) EnrollUser(c *fiber.Ctx) error {
	// parse course id
	courseID64, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || courseID64 == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}
	courseID := uint(courseID64)

	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	// validate course exists
	var course models.Course
	if err := database.DB.First(&course, courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	// validate user exists and can be enrolled
	var user models.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role != "student" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only student users can be enrolled"})
	}

	// default status
	status := req.Status
	if status == "" {
		status = "enrolled"
	}

	// check if already enrolled
	var existing models.Enrollment
	if err := database.DB.Where("user_id = ? AND course_id = ?", req.UserID, courseID).First(&existing).Error; err == nil {
		// update status if changed, then return
		if existing.Status != status {
			if err := database.DB.Model(&existing).Update("status", status).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update enrollment"})
			}
		}
		middleware.LogActivity(c, "UPDATE", "enrollments", existing.ID, existing)
		return c.JSON(fiber.Map{
			"message":       "User already enrolled; updated status if needed",
			"enrollment_id": existing.ID,
			"enrollment":    existing,
		})
	}

	// create new enrollment
	enrollment := models.Enrollment{
		UserID:   req.UserID,
		CourseID: courseID,
		Status:   status,
	}
	if err := database.DB.Create(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll user"})
	}

	middleware.LogActivity(c, "CREATE", "enrollments", enrollment.ID, enrollment)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "User enrolled in course",
		"enrollment_id": enrollment.ID,
		"enrollment":    enrollment,
	})
}

// EnrollUsersBulk enrolls multiple users into a course (admin only)
func (ec *EnrollmentController) EnrollUsersBulk(c *fiber.Ctx) error {
	courseID64, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || courseID64 == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}
	courseID := uint(courseID64)

	// validate course exists once
	var course models.Course
	if err := database.DB.First(&course, courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req []enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enrollments array is required"})
	}

	type result struct {
		UserID       uint   `json:"user_id"`
		Status       string `json:"status"` // created/updated/unchanged/error
		EnrollmentID uint   `json:"enrollment_id,omitempty"`
		Error        string `json:"error,omitempty"`
	}

	results := make([]result, 0, len(req))
	var created, updated, unchanged, failed int

	for _, item := range req {
		if item.UserID == 0 {
			failed++
			results = append(results, result{UserID: 0, Status: "error", Error: "user_id is required"})
			continue
		}

		// validate user exists
		var user models.User
		if err := database.DB.First(&user, item.UserID).Error; err != nil {
			failed++
			results = append(results, result{UserID: item.UserID, Status: "error", Error: "User not found"})
			continue
		}
		if user.Role != "student" {
			failed++
			results = append(results, result{UserID: item.UserID, Status: "error", Error: "Only student users can be enrolled"})
			continue
		}

		// status default
		status := item.Status
		if status == "" {
			status = "enrolled"
		}

		// upsert behavior
		var existing models.Enrollment
		if err := database.DB.Where("user_id = ? AND course_id = ?", item.UserID, courseID).First(&existing).Error; err == nil {
			if existing.Status != status {
				if err := database.DB.Model(&existing).Update("status", status).Error; err != nil {
					failed++
					results = append(results, result{UserID: item.UserID, Status: "error", Error: "Failed to update enrollment"})
					continue
				}
				updated++
				middleware.LogActivity(c, "UPDATE", "enrollments", existing.ID, existing)
				results = append(results, result{UserID: item.UserID, Status: "updated", EnrollmentID: existing.ID})
			} else {
				unchanged++
				results = append(results, result{UserID: item.UserID, Status: "unchanged", EnrollmentID: existing.ID})
			}
			continue
		}

		// create new
		enrollment := models.Enrollment{UserID: item.UserID, CourseID: courseID, Status: status}
		if err := database.DB.Create(&enrollment).Error; err != nil {
			failed++
			results = append(results, result{UserID: item.UserID, Status: "error", Error: "Failed to enroll user"})
			continue
		}
		created++
		middleware.LogActivity(c, "CREATE", "enrollments", enrollment.ID, enrollment)
		results = append(results, result{UserID: item.UserID, Status: "created", EnrollmentID: enrollment.ID})
	}

	return c.JSON(fiber.Map{
		"message":   "Bulk enrollment processed",
		"course_id": courseID,
		"processed": len(req),
		"created":   created,
		"updated":   updated,
		"unchanged": unchanged,
		"failed":    failed,
		"results":   results,
	})
}

// DropEnrollment marks an enrollment dropped
func (ec *EnrollmentController) DropEnrollment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid enrollment ID"})
	}

	var enrollment models.Enrollment
	if err := database.DB.First(&enrollment, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	if err := database.DB.Model(&enrollment).Update("status", "dropped").Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to drop enrollment"})
	}

	middleware.LogActivity(c, "UPDATE", "enrollments", enrollment.ID, fiber.Map{
		"action": "dropped",
	})

	return c.JSON(fiber.Map{
		"message": "Enrollment dropped",
	})
}
