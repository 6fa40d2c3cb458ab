package controllers

import (
	"strconv"

	"uniplan_go/database"
	"uniplan_go/middleware"
	"uniplan_go/models"
	"uniplan_go/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseController struct{}

// GetCourses returns all courses (PUBLIC endpoint)
func (cc *CourseController) GetCourses(c *fiber.Ctx) error {
	var courses []models.Course

	// Build query
	query := database.DB.Model(&models.Course{})

	// Filter by faculty if specified
	if facultyID := c.Query("faculty_id"); facultyID != "" {
		query = query.Where("faculty_id = ?", facultyID)
	}

	// Filter by status (default to active)
	status := c.Query("status", "active")
	query = query.Where("status = ?", status)

	// Filter by teacher if specified
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		query = query.Where("teacher_id = ?", teacherID)
	}

	// Load relationships
	query = query.Preload("Faculty").Preload("Teacher")

	// Execute query
	if err := query.Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch courses",
		})
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourse returns a specific course by ID (PUBLIC endpoint)
func (cc *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var course models.Course
	if err := database.DB.Preload("Faculty").Preload("Teacher").First(&course, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	return c.JSON(fiber.Map{
		"course": course,
	})
}

// CreateCourse creates a new course (PROTECTED - admin only)
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validate required fields
	if course.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Course name is required",
		})
	}

	if course.TeacherID != 0 {
		var teacher models.Teacher
		if err := database.DB.First(&teacher, course.TeacherID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Teacher not found",
			})
		}
	}

	// Check if code already exists
	if course.Code != "" {
		var existingCourse models.Course
		if err := database.DB.Where("code = ?", course.Code).First(&existingCourse).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Course code already exists",
			})
		}
	}

	// Set default status
	if course.Status == "" {
		course.Status = "active"
	}

	// Create course
	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create course",
		})
	}

	// Load relationships
	database.DB.Preload("Faculty").Preload("Teacher").First(&course, course.ID)

	// Log activity
	middleware.LogActivity(c, "CREATE", "courses", course.ID, course)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

// UpdateCourse updates an existing course (PROTECTED - admin only)
func (cc *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var course models.Course
	if err := database.DB.First(&course, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	// Store original course for logging
	originalCourse := course

	var updateData models.Course
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Check if code already exists (if changing)
	if updateData.Code != "" && updateData.Code != course.Code {
		var existingCourse models.Course
		if err := database.DB.Where("code = ? AND id != ?", updateData.Code, course.ID).First(&existingCourse).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Course code already exists",
			})
		}
	}

	if updateData.TeacherID != 0 && updateData.TeacherID != course.TeacherID {
		var teacher models.Teacher
		if err := database.DB.First(&teacher, updateData.TeacherID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Teacher not found",
			})
		}
	}

	// Update course
	if err := database.DB.Model(&course).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update course",
		})
	}

	// Load relationships
	database.DB.Preload("Faculty").Preload("Teacher").First(&course, course.ID)

	// Log activity
	middleware.LogActivity(c, "UPDATE", "courses", course.ID, fiber.Map{
		"original": originalCourse,
		"updated":  course,
	})

	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}

// DeleteCourse deletes a course and its sessions (PROTECTED - admin only)
func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var course models.Course
	if err := database.DB.First(&course, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	// Soft delete the course and its sessions together
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.ClassSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete course",
		})
	}

	// Derived timetable views are stale once the sessions are gone
	services.InvalidateScheduleViews(c.Context())

	// Log activity
	middleware.LogActivity(c, "DELETE", "courses", course.ID, course)

	return c.JSON(fiber.Map{
		"message": "Course deleted successfully",
	})
}

// GetCoursesByFaculty returns active courses for a specific faculty
func (cc *CourseController) GetCoursesByFaculty(c *fiber.Ctx) error {
	facultyID, err := strconv.ParseUint(c.Params("faculty_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid faculty ID",
		})
	}

	var courses []models.Course
	if err := database.DB.Where("faculty_id = ? AND status = ?", uint(facultyID), "active").
		Preload("Faculty").Preload("Teacher").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch courses",
		})
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}
