package seeders

import (
	"encoding/json"
	"log"
	"time"

	"uniplan_go/database"
	"uniplan_go/models"
	"uniplan_go/utils"
)

// SeedAll runs all seeders
func SeedAll() {
	log.Println("Starting database seeding...")

	SeedFaculties()
	SeedUsers()
	SeedStudents()
	SeedTeachers()
	SeedRooms()
	SeedCourses()
	SeedEnrollments()
	SeedSessions()

	log.Println("Database seeding completed successfully!")
}

// SeedFaculties seeds the faculties table
func SeedFaculties() {
	var count int64
	database.DB.Model(&models.Faculty{}).Count(&count)
	if count > 0 {
		log.Println("Faculties already seeded, skipping...")
		return
	}

	faculties := []models.Faculty{
		{
			BaseModel: models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)},
			Name:      "Faculty of Engineering",
			Code:      "ENG",
			Active:    true,
		},
		{
			BaseModel: models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)},
			Name:      "Faculty of Science",
			Code:      "SCI",
			Active:    true,
		},
		{
			BaseModel: models.BaseModel{ID: 3, CreatedAt: time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)},
			Name:      "Faculty of Business Administration",
			Code:      "BUS",
			Active:    true,
		},
	}

	for _, faculty := range faculties {
		if err := database.DB.Create(&faculty).Error; err != nil {
			log.Printf("Error seeding faculty %s: %v", faculty.Code, err)
		}
	}

	log.Println("Faculties seeded successfully")
}

// SeedUsers seeds the users table
func SeedUsers() {
	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Users already seeded, skipping...")
		return
	}

	// Hash the default password
	hashedPassword, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			BaseModel: models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 1, 0, time.UTC)},
			Username:  "admin",
			Password:  hashedPassword,
			Email:     "admin@uniplan.ac.th",
			Role:      "admin",
			FacultyID: 1,
			Status:    "active",
		},
		{
			BaseModel: models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 1, 0, time.UTC)},
			Username:  "s.chaiyo",
			Password:  hashedPassword,
			Email:     "somchai.c@uniplan.ac.th",
			Role:      "teacher",
			FacultyID: 1,
			Status:    "active",
		},
		{
			BaseModel: models.BaseModel{ID: 3, CreatedAt: time.Date(2026, 1, 12, 8, 0, 1, 0, time.UTC)},
			Username:  "p.ngam",
			Password:  hashedPassword,
			Email:     "pranee.n@uniplan.ac.th",
			Role:      "teacher",
			FacultyID: 2,
			Status:    "active",
		},
		{
			BaseModel: models.BaseModel{ID: 4, CreatedAt: time.Date(2026, 1, 12, 8, 0, 1, 0, time.UTC)},
			Username:  "b6501234",
			Password:  hashedPassword,
			Email:     "b6501234@student.uniplan.ac.th",
			Role:      "student",
			FacultyID: 1,
			Status:    "active",
		},
		{
			BaseModel: models.BaseModel{ID: 5, CreatedAt: time.Date(2026, 1, 12, 8, 0, 1, 0, time.UTC)},
			Username:  "b6505678",
			Password:  hashedPassword,
			Email:     "b6505678@student.uniplan.ac.th",
			Role:      "student",
			FacultyID: 2,
			Status:    "active",
		},
	}

	for _, user := range users {
		if err := database.DB.Create(&user).Error; err != nil {
			log.Printf("Error seeding user %s: %v", user.Username, err)
		}
	}

	log.Println("Users seeded successfully")
}

// SeedStudents seeds the students table
func SeedStudents() {
	var count int64
	database.DB.Model(&models.Student{}).Count(&count)
	if count > 0 {
		log.Println("Students already seeded, skipping...")
		return
	}

	students := []models.Student{
		{
			BaseModel:   models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 2, 0, time.UTC)},
			UserID:      4,
			FirstName:   "Anan",
			LastName:    "Srisuk",
			StudentCode: "B6501234",
			Year:        2,
			FacultyID:   1,
		},
		{
			BaseModel:   models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 2, 0, time.UTC)},
			UserID:      5,
			FirstName:   "Kanya",
			LastName:    "Thongdee",
			StudentCode: "B6505678",
			Year:        1,
			FacultyID:   2,
		},
	}

	for _, student := range students {
		if err := database.DB.Create(&student).Error; err != nil {
			log.Printf("Error seeding student with UserID %d: %v", student.UserID, err)
		}
	}

	log.Println("Students seeded successfully")
}

// SeedTeachers seeds the teachers table
func SeedTeachers() {
	var count int64
	database.DB.Model(&models.Teacher{}).Count(&count)
	if count > 0 {
		log.Println("Teachers already seeded, skipping...")
		return
	}

	teachers := []models.Teacher{
		{
			BaseModel: models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 3, 0, time.UTC)},
			UserID:    2,
			FirstName: "Somchai",
			LastName:  "Chaiyo",
			Title:     "Asst. Prof.",
			FacultyID: 1,
			Active:    true,
		},
		{
			BaseModel: models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 3, 0, time.UTC)},
			UserID:    3,
			FirstName: "Pranee",
			LastName:  "Ngamsiri",
			Title:     "Dr.",
			FacultyID: 2,
			Active:    true,
		},
	}

	for _, teacher := range teachers {
		if err := database.DB.Create(&teacher).Error; err != nil {
			log.Printf("Error seeding teacher with UserID %d: %v", teacher.UserID, err)
		}
	}

	log.Println("Teachers seeded successfully")
}

// SeedRooms seeds the rooms table
func SeedRooms() {
	var count int64
	database.DB.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Println("Rooms already seeded, skipping...")
		return
	}

	// Create equipment JSON
	equipment1, _ := json.Marshal([]string{"whiteboard", "projector", "air_conditioning"})
	equipment2, _ := json.Marshal([]string{"whiteboard", "computers", "air_conditioning"})
	equipment3, _ := json.Marshal([]string{"lab_benches", "fume_hood"})

	rooms := []models.Room{
		{
			BaseModel: models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 4, 0, time.UTC)},
			FacultyID: 1,
			RoomName:  "ENG-301",
			Capacity:  60,
			Equipment: equipment1,
			Status:    "available",
		},
		{
			BaseModel: models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 4, 0, time.UTC)},
			FacultyID: 1,
			RoomName:  "ENG-LAB2",
			Capacity:  30,
			Equipment: equipment2,
			Status:    "available",
		},
		{
			BaseModel: models.BaseModel{ID: 3, CreatedAt: time.Date(2026, 1, 12, 8, 0, 4, 0, time.UTC)},
			FacultyID: 2,
			RoomName:  "SCI-105",
			Capacity:  40,
			Equipment: equipment3,
			Status:    "available",
		},
	}

	for _, room := range rooms {
		if err := database.DB.Create(&room).Error; err != nil {
			log.Printf("Error seeding room %s: %v", room.RoomName, err)
		}
	}

	log.Println("Rooms seeded successfully")
}

// SeedCourses seeds the courses table
func SeedCourses() {
	var count int64
	database.DB.Model(&models.Course{}).Count(&count)
	if count > 0 {
		log.Println("Courses already seeded, skipping...")
		return
	}

	courses := []models.Course{
		{
			BaseModel:   models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 5, 0, time.UTC)},
			Name:        "Data Structures and Algorithms",
			Code:        "CPE231",
			CreditHours: 3,
			FacultyID:   1,
			TeacherID:   1,
			Description: "Fundamental data structures, sorting and graph algorithms",
			Status:      "active",
		},
		{
			BaseModel:   models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 5, 0, time.UTC)},
			Name:        "Database Systems",
			Code:        "CPE341",
			CreditHours: 3,
			FacultyID:   1,
			TeacherID:   1,
			Description: "Relational model, SQL, transactions and indexing",
			Status:      "active",
		},
		{
			BaseModel:   models.BaseModel{ID: 3, CreatedAt: time.Date(2026, 1, 12, 8, 0, 5, 0, time.UTC)},
			Name:        "General Chemistry",
			Code:        "CHM101",
			CreditHours: 4,
			FacultyID:   2,
			TeacherID:   2,
			Description: "Atomic structure, bonding and stoichiometry with laboratory",
			Status:      "active",
		},
	}

	for _, course := range courses {
		if err := database.DB.Create(&course).Error; err != nil {
			log.Printf("Error seeding course %s: %v", course.Code, err)
		}
	}

	log.Println("Courses seeded successfully")
}

// SeedEnrollments seeds the enrollments table
func SeedEnrollments() {
	var count int64
	database.DB.Model(&models.Enrollment{}).Count(&count)
	if count > 0 {
		log.Println("Enrollments already seeded, skipping...")
		return
	}

	enrollments := []models.Enrollment{
		{
			BaseModel: models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 6, 0, time.UTC)},
			UserID:    4,
			CourseID:  1,
			Status:    "enrolled",
		},
		{
			BaseModel: models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 6, 0, time.UTC)},
			UserID:    4,
			CourseID:  2,
			Status:    "enrolled",
		},
		{
			BaseModel: models.BaseModel{ID: 3, CreatedAt: time.Date(2026, 1, 12, 8, 0, 6, 0, time.UTC)},
			UserID:    5,
			CourseID:  3,
			Status:    "enrolled",
		},
	}

	for _, enrollment := range enrollments {
		if err := database.DB.Create(&enrollment).Error; err != nil {
			log.Printf("Error seeding enrollment for user %d: %v", enrollment.UserID, err)
		}
	}

	log.Println("Enrollments seeded successfully")
}

// SeedSessions seeds the class_sessions table. Times are minutes from
// midnight and the set below is conflict-free.
func SeedSessions() {
	var count int64
	database.DB.Model(&models.ClassSession{}).Count(&count)
	if count > 0 {
		log.Println("Sessions already seeded, skipping...")
		return
	}

	sessions := []models.ClassSession{
		// CPE231: Mon 09:00-11:00 theory, Wed 13:00-15:00 practice
		{
			BaseModel:   models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 1, 12, 8, 0, 7, 0, time.UTC)},
			CourseID:    1,
			DayOfWeek:   1,
			StartMinute: 540,
			EndMinute:   660,
			Room:        "ENG-301",
			SessionType: "theory",
		},
		{
			BaseModel:   models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 1, 12, 8, 0, 7, 0, time.UTC)},
			CourseID:    1,
			DayOfWeek:   3,
			StartMinute: 780,
			EndMinute:   900,
			Room:        "ENG-LAB2",
			SessionType: "practice",
		},
		// CPE341: Tue 09:00-12:00 theory
		{
			BaseModel:   models.BaseModel{ID: 3, CreatedAt: time.Date(2026, 1, 12, 8, 0, 7, 0, time.UTC)},
			CourseID:    2,
			DayOfWeek:   2,
			StartMinute: 540,
			EndMinute:   720,
			Room:        "ENG-301",
			SessionType: "theory",
		},
		// CHM101: Mon 13:00-15:00 theory, Thu 09:00-12:00 practice
		{
			BaseModel:   models.BaseModel{ID: 4, CreatedAt: time.Date(2026, 1, 12, 8, 0, 7, 0, time.UTC)},
			CourseID:    3,
			DayOfWeek:   1,
			StartMinute: 780,
			EndMinute:   900,
			Room:        "SCI-105",
			SessionType: "theory",
		},
		{
			BaseModel:   models.BaseModel{ID: 5, CreatedAt: time.Date(2026, 1, 12, 8, 0, 7, 0, time.UTC)},
			CourseID:    3,
			DayOfWeek:   4,
			StartMinute: 540,
			EndMinute:   720,
			Room:        "SCI-105",
			SessionType: "practice",
		},
	}

	for _, session := range sessions {
		if err := database.DB.Create(&session).Error; err != nil {
			log.Printf("Error seeding session %d for course %d: %v", session.ID, session.CourseID, err)
		}
	}

	log.Println("Sessions seeded successfully")
}
