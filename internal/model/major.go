package model

// Major is a degree program ("carrera") belonging to a faculty.
type Major struct {
	FacultyCode string `json:"facultad_codigo" db:"facultad_codigo"`
	Code        string `json:"codigo" db:"codigo"`
	Description string `json:"descripcion" db:"descripcion"`
}

// MajorKey identifies one major.
type MajorKey struct {
	FacultyCode string
	Code        string
}
