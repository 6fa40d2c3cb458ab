package controllers

import (
	"strconv"

	"uniplan_go/database"
	"uniplan_go/middleware"
	"uniplan_go/models"

	"github.com/gofiber/fiber/v2"
)

type FacultyController struct{}

// GetFaculties returns all faculties
func (fc *FacultyController) GetFaculties(c *fiber.Ctx) error {
	var faculties []models.Faculty

	query := database.DB.Model(&models.Faculty{})

	// Filter by active status if specified
	if active := c.Query("active"); active != "" {
		if active == "true" {
			query = query.Where("active = ?", true)
		} else if active == "false" {
			query = query.Where("active = ?", false)
		}
	}

	if err := query.Find(&faculties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch faculties",
		})
	}

	return c.JSON(fiber.Map{
		"faculties": faculties,
		"total":     len(faculties),
	})
}

// GetFaculty returns a specific faculty by ID
func (fc *FacultyController) GetFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid faculty ID",
		})
	}

	var faculty models.Faculty
	if err := database.DB.First(&faculty, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Faculty not found",
		})
	}

	return c.JSON(fiber.Map{
		"faculty": faculty,
	})
}

// CreateFaculty creates a new faculty
func (fc *FacultyController) CreateFaculty(c *fiber.Ctx) error {
	var faculty models.Faculty
	if err := c.BodyParser(&faculty); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validate required fields
	if faculty.Name == "" || faculty.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and Code are required",
		})
	}

	// Check if code already exists
	var existingFaculty models.Faculty
	if err := database.DB.Where("code = ?", faculty.Code).First(&existingFaculty).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Faculty code already exists",
		})
	}

	faculty.Active = true

	if err := database.DB.Create(&faculty).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create faculty",
		})
	}

	// Log activity
	middleware.LogActivity(c, "CREATE", "faculties", faculty.ID, faculty)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Faculty created successfully",
		"faculty": faculty,
	})
}

// UpdateFaculty updates an existing faculty
func (fc *FacultyController) UpdateFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid faculty ID",
		})
	}

	var faculty models.Faculty
	if err := database.DB.First(&faculty, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Faculty not found",
		})
	}

	var updateData models.Faculty
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Check if code already exists (if changing)
	if updateData.Code != "" && updateData.Code != faculty.Code {
		var existingFaculty models.Faculty
		if err := database.DB.Where("code = ? AND id != ?", updateData.Code, faculty.ID).First(&existingFaculty).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Faculty code already exists",
			})
		}
	}

	if err := database.DB.Model(&faculty).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update faculty",
		})
	}

	// Log activity
	middleware.LogActivity(c, "UPDATE", "faculties", faculty.ID, updateData)

	return c.JSON(fiber.Map{
		"message": "Faculty updated successfully",
		"faculty": faculty,
	})
}

// DeleteFaculty deletes a faculty
func (fc *FacultyController) DeleteFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid faculty ID",
		})
	}

	var faculty models.Faculty
	if err := database.DB.First(&faculty, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Faculty not found",
		})
	}

	// Check if faculty has associated users
	var userCount int64
	database.DB.Model(&models.User{}).Where("faculty_id = ?", faculty.ID).Count(&userCount)
	if userCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete faculty with associated users",
		})
	}

	if err := database.DB.Delete(&faculty).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete faculty",
		})
	}

	// Log activity
	middleware.LogActivity(c, "DELETE", "faculties", faculty.ID, faculty)

	return c.JSON(fiber.Map{
		"message": "Faculty deleted successfully",
	})
}
