package model

// Faculty is a top-level organizational unit identified by a short code.
type Faculty struct {
	Code        string `json:"codigo" db:"codigo"`
	Description string `json:"descripcion" db:"descripcion"`
}
