package model

// CurriculumEntry places a course in a major's curriculum ("malla") for one
// cohort (promo) at a given year and semester.
type CurriculumEntry struct {
	FacultyCode string `json:"facultad_codigo" db:"facultad_codigo"`
	MajorCode   string `json:"carrera_codigo" db:"carrera_codigo"`
	Promo       int    `json:"promo" db:"promo"`
	CourseCode  string `json:"materia_codigo" db:"materia_codigo"`
	Year        int    `json:"anio" db:"anio"`
	Semester    int    `json:"semestre" db:"semestre"`
	Type        string `json:"tipo" db:"tipo"`
	// CourseDescription is only filled by listings that join materias.
	CourseDescription *string `json:"materia_descripcion,omitempty" db:"materia_descripcion"`
}

// CurriculumKey identifies one curriculum entry.
type CurriculumKey struct {
	FacultyCode string
	MajorCode   string
	Promo       int
	CourseCode  string
}

// CurriculumAttrs are the mutable attributes of a curriculum entry.
type CurriculumAttrs struct {
	Year     int
	Semester int
	Type     string
}
