package model

// Course is a subject ("materia") offered by a faculty.
type Course struct {
	FacultyCode string `json:"facultad_codigo" db:"facultad_codigo"`
	Code        string `json:"codigo" db:"codigo"`
	Description string `json:"descripcion" db:"descripcion"`
}

// CourseKey identifies one course.
type CourseKey struct {
	FacultyCode string
	Code        string
}
