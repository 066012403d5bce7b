package model

// Instructor 教师，对应调度后端 /api/instructors 资源
type Instructor struct {
	ID           int64  `json:"id"`
	InstructorID string `json:"instructor_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsAvailable  bool   `json:"is_available"`
}

// Room 教室，对应调度后端 /api/rooms 资源
type Room struct {
	ID          int64  `json:"id"`
	RoomNumber  string `json:"room_number"`
	Capacity    int    `json:"capacity"`
	RoomType    string `json:"room_type"` // Classroom | Lab | Hall | Seminar
	IsAvailable bool   `json:"is_available"`
}

// Department 院系，对应调度后端 /api/departments 资源
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
