package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSON field type for GORM
type JSON []byte

func (j JSON) Value() (driver.Value, error) {
	if j.IsNull() {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	s, ok := value.([]byte)
	if !ok {
		return nil
	}
	*j = append((*j)[0:0], s...)
	return nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}

func (j JSON) IsNull() bool {
	return len(j) == 0 || string(j) == "null"
}

// Faculty model
type Faculty struct {
	BaseModel
	Name   string `json:"name" gorm:"size:255;not null"`
	Code   string `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Active bool   `json:"active" gorm:"default:true"`

	// Relationships
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:FacultyID"`
	Rooms    []Room    `json:"rooms,omitempty" gorm:"foreignKey:FacultyID"`
	Courses  []Course  `json:"courses,omitempty" gorm:"foreignKey:FacultyID"`
	Teachers []Teacher `json:"teachers,omitempty" gorm:"foreignKey:FacultyID"`
}

// User model
type User struct {
	BaseModel
	Username  string `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Password  string `json:"-" gorm:"size:255;not null"`
	Email     string `json:"email" gorm:"size:255;uniqueIndex"`
	Role      string `json:"role" gorm:"size:50;not null;default:'student';type:enum('admin','teacher','student')"` // admin, teacher, student
	FacultyID uint   `json:"faculty_id"`
	Status    string `json:"status" gorm:"size:50;not null;default:'active';type:enum('active','inactive','suspended')"` // active, inactive, suspended
	Avatar    string `json:"avatar" gorm:"size:500"`

	// Relationships
	Faculty Faculty  `json:"faculty,omitempty" gorm:"foreignKey:FacultyID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:UserID"`
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:UserID"`
}

// Student model
type Student struct {
	BaseModel
	UserID      uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	FirstName   string `json:"first_name" gorm:"size:100"`
	LastName    string `json:"last_name" gorm:"size:100"`
	StudentCode string `json:"student_code" gorm:"size:50;uniqueIndex"`
	Year        int    `json:"year"`
	FacultyID   uint   `json:"faculty_id"`

	// Relationships
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Faculty Faculty `json:"faculty,omitempty" gorm:"foreignKey:FacultyID"`
}

// Teacher model
type Teacher struct {
	BaseModel
	UserID    uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	FirstName string `json:"first_name" gorm:"size:100"`
	LastName  string `json:"last_name" gorm:"size:100"`
	Title     string `json:"title" gorm:"size:50"`
	FacultyID uint   `json:"faculty_id"`
	Active    bool   `json:"active" gorm:"default:true"`

	// Relationships
	User    User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Faculty Faculty  `json:"faculty,omitempty" gorm:"foreignKey:FacultyID"`
	Courses []Course `json:"courses,omitempty" gorm:"foreignKey:TeacherID"`
}

// DisplayName returns "Title First Last" with empty parts skipped.
func (t Teacher) DisplayName() string {
	name := t.FirstName + " " + t.LastName
	if t.Title != "" {
		name = t.Title + " " + name
	}
	return name
}

// Room model
type Room struct {
	BaseModel
	FacultyID uint   `json:"faculty_id" gorm:"not null"`
	RoomName  string `json:"room_name" gorm:"size:100;not null"`
	Capacity  int    `json:"capacity" gorm:"not null"`
	Equipment JSON   `json:"equipment" gorm:"type:json"`
	Status    string `json:"status" gorm:"size:50;not null;default:'available';type:enum('available','occupied','maintenance')"` // available, occupied, maintenance

	// Relationships
	Faculty Faculty `json:"faculty,omitempty" gorm:"foreignKey:FacultyID"`
}

// Course model. A course belongs to exactly one teacher at a time; the
// teacher of a session is always derived through its course.
type Course struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null"`
	Code        string `json:"code" gorm:"size:100;uniqueIndex"`
	CreditHours int    `json:"credit_hours"`
	FacultyID   uint   `json:"faculty_id"`
	TeacherID   uint   `json:"teacher_id" gorm:"index"`
	Description string `json:"description" gorm:"type:text"`
	Status      string `json:"status" gorm:"size:50;default:'active';type:enum('active','inactive')"` // active, inactive

	// Relationships
	Faculty  Faculty        `json:"faculty,omitempty" gorm:"foreignKey:FacultyID"`
	Teacher  Teacher        `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	Sessions []ClassSession `json:"sessions,omitempty" gorm:"foreignKey:CourseID"`
}

// Enrollment links a student user to a course.
type Enrollment struct {
	BaseModel
	UserID   uint `json:"user_id" gorm:"not null;index"`
	CourseID uint `json:"course_id" gorm:"not null;index"`

	Status string `json:"status" gorm:"size:50;default:'enrolled';type:enum('enrolled','completed','dropped')"` // enrolled, completed, dropped

	// Relationships
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// ClassSession is one weekly occurrence of a course: a weekday plus a
// minute-resolution time range, optionally pinned to a room. Rows are
// immutable once created; an edit is a delete followed by a create, so
// the overlap invariants only ever have to hold at insert time.
type ClassSession struct {
	BaseModel
	CourseID    uint   `json:"course_id" gorm:"not null;index"`
	DayOfWeek   int    `json:"day_of_week" gorm:"not null;index"` // 1=Monday ... 7=Sunday
	StartMinute int    `json:"start_minute" gorm:"not null"`      // minutes from midnight
	EndMinute   int    `json:"end_minute" gorm:"not null"`
	Room        string `json:"room" gorm:"size:100"`                                                 // empty = unassigned
	SessionType string `json:"session_type" gorm:"size:50;not null;type:enum('theory','practice')"` // theory, practice

	// Relationships
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// Log model for activity tracking
type ActivityLog struct {
	BaseModel
	UserID     uint   `json:"user_id"`
	Action     string `json:"action" gorm:"size:100;not null"`
	Resource   string `json:"resource" gorm:"size:100;not null"`
	ResourceID uint   `json:"resource_id"`
	Details    JSON   `json:"details" gorm:"type:json"`
	IPAddress  string `json:"ip_address" gorm:"size:45"`
	UserAgent  string `json:"user_agent" gorm:"size:500"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// LogArchive model for tracking archived logs
type LogArchive struct {
	BaseModel
	FileName    string    `json:"file_name" gorm:"size:255;not null"`
	S3Key       string    `json:"s3_key" gorm:"size:500;not null"`
	StartDate   time.Time `json:"start_date" gorm:"not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	RecordCount int       `json:"record_count" gorm:"not null"`
	FileSize    int64     `json:"file_size" gorm:"not null"`
	Status      string    `json:"status" gorm:"size:50;not null;default:'pending';type:enum('pending','completed','failed')"` // pending, completed, failed
	Error       string    `json:"error" gorm:"type:text"`
}
