package controllers

import (
	"strconv"

	"uniplan_go/database"
	"uniplan_go/middleware"
	"uniplan_go/models"
	"uniplan_go/services"
	"uniplan_go/services/scheduler"
	"uniplan_go/utils"

	"github.com/gofiber/fiber/v2"
)

type TeacherController struct{}

// GetTeachers returns all teachers with pagination
func (tc *TeacherController) GetTeachers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var teachers []models.Teacher
	var total int64

	query := database.DB.Model(&models.Teacher{})

	// Filter by active status
	if active := c.Query("active"); active == "false" {
		query = query.Where("active = ?", false)
	} else {
		query = query.Where("active = ?", true)
	}

	// Filter by faculty if specified
	if facultyID := c.Query("faculty_id"); facultyID != "" {
		query = query.Where("faculty_id = ?", facultyID)
	}

	// Get total count
	query.Count(&total)

	// Get teachers with relationships
	if err := query.Preload("User").Preload("Faculty").
		Offset(offset).Limit(limit).Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch teachers",
		})
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetTeacher returns a specific teacher by ID
func (tc *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teacher ID",
		})
	}

	var teacher models.Teacher
	if err := database.DB.Preload("User").Preload("Faculty").Preload("Courses").
		First(&teacher, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher not found",
		})
	}

	return c.JSON(fiber.Map{
		"teacher": teacher,
	})
}

// CreateTeacher creates a new teacher profile
func (tc *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var teacher models.Teacher
	if err := c.BodyParser(&teacher); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validate required fields
	if teacher.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	// Check if user exists and is a teacher
	var user models.User
	if err := database.DB.Where("id = ? AND role = ?", teacher.UserID, "teacher").
		First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User not found or not a teacher",
		})
	}

	// Check if teacher profile already exists
	var existingTeacher models.Teacher
	if err := database.DB.Where("user_id = ?", teacher.UserID).
		First(&existingTeacher).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Teacher profile already exists for this user",
		})
	}

	teacher.Active = true

	// Set faculty ID from user if not provided
	if teacher.FacultyID == 0 {
		teacher.FacultyID = user.FacultyID
	}

	if err := database.DB.Create(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create teacher profile",
		})
	}

	// Load relationships
	database.DB.Preload("User").Preload("Faculty").First(&teacher, teacher.ID)

	// Log activity
	middleware.LogActivity(c, "CREATE", "teachers", teacher.ID, teacher)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Teacher profile created successfully",
		"teacher": teacher,
	})
}

// UpdateTeacher updates an existing teacher profile
func (tc *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teacher ID",
		})
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher not found",
		})
	}

	var updateData models.Teacher
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Don't allow changing UserID
	updateData.UserID = teacher.UserID

	if err := database.DB.Model(&teacher).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update teacher profile",
		})
	}

	// Load relationships
	database.DB.Preload("User").Preload("Faculty").First(&teacher, teacher.ID)

	// Log activity
	middleware.LogActivity(c, "UPDATE", "teachers", teacher.ID, updateData)

	return c.JSON(fiber.Map{
		"message": "Teacher profile updated successfully",
		"teacher": teacher,
	})
}

// DeleteTeacher deletes a teacher profile
func (tc *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teacher ID",
		})
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher not found",
		})
	}

	// Refuse while courses still point at this teacher
	var courseCount int64
	database.DB.Model(&models.Course{}).Where("teacher_id = ?", teacher.ID).Count(&courseCount)
	if courseCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Teacher still has assigned courses",
		})
	}

	if err := database.DB.Delete(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete teacher profile",
		})
	}

	// Log activity
	middleware.LogActivity(c, "DELETE", "teachers", teacher.ID, teacher)

	return c.JSON(fiber.Map{
		"message": "Teacher profile deleted successfully",
	})
}

// GetTeachersByFaculty returns active teachers for a specific faculty
func (tc *TeacherController) GetTeachersByFaculty(c *fiber.Ctx) error {
	facultyID, err := strconv.ParseUint(c.Params("faculty_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid faculty ID",
		})
	}

	var teachers []models.Teacher
	if err := database.DB.Where("faculty_id = ? AND active = ?", uint(facultyID), true).
		Preload("User").Preload("Faculty").
		Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch teachers",
		})
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"total":    len(teachers),
	})
}

// GetTeacherBoard groups teachers by how complete their course scheduling is
func (tc *TeacherController) GetTeacherBoard(c *fiber.Ctx) error {
	ctx := c.Context()
	cacheKey := services.BoardCacheKey()

	var board scheduler.Board
	if services.GetCachedView(ctx, cacheKey, &board) {
		return c.JSON(fiber.Map{
			"board":  board,
			"cached": true,
		})
	}

	var teachers []models.Teacher
	if err := database.DB.Where("active = ?", true).
		Preload("Courses", "status = ?", "active").
		Preload("Courses.Sessions").
		Order("id").
		Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch teachers",
		})
	}

	withCourses := make([]scheduler.TeacherWithCourses, 0, len(teachers))
	for _, t := range teachers {
		withCourses = append(withCourses, utils.ToTeacherWithCourses(t))
	}

	board = scheduler.BuildBoard(withCourses)
	services.PutCachedView(ctx, cacheKey, board)

	return c.JSON(fiber.Map{
		"board": board,
	})
}
