package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curriculumFields = []Field{
	TextField("facultad_codigo", "max=20"),
	TextField("carrera_codigo", "max=20"),
	IntegerField("promo"),
	TextField("materia_codigo", "max=20"),
	IntegerField("anio"),
	IntegerField("semestre"),
	TextField("tipo", "max=50"),
}

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func TestValidateNormalizes(t *testing.T) {
	in := decode(t, `{
		"facultad_codigo": "  FI ",
		"carrera_codigo": "INF",
		"promo": "2024",
		"materia_codigo": "MAT1\t",
		"anio": 1,
		"semestre": " 2 ",
		"tipo": " OBLIGATORIA ",
		"ignored": true
	}`)

	got, err := Validate(in, curriculumFields)

	require.NoError(t, err)
	assert.Equal(t, "FI", got.String("facultad_codigo"))
	assert.Equal(t, "MAT1", got.String("materia_codigo"))
	assert.Equal(t, 2024, got.Int("promo"))
	assert.Equal(t, 1, got.Int("anio"))
	assert.Equal(t, 2, got.Int("semestre"))
	assert.Equal(t, "OBLIGATORIA", got.String("tipo"))
	assert.NotContains(t, got, "ignored")
}

func TestValidateReportsFirstViolationInDeclaredOrder(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{
			name:    "everything missing reports the first field",
			body:    `{}`,
			field:   "facultad_codigo",
			message: "El campo facultad_codigo es obligatorio",
		},
		{
			name:    "blank string is missing",
			body:    `{"facultad_codigo":"   ","carrera_codigo":""}`,
			field:   "facultad_codigo",
			message: "El campo facultad_codigo es obligatorio",
		},
		{
			name:    "null is missing",
			body:    `{"facultad_codigo":"FI","carrera_codigo":null}`,
			field:   "carrera_codigo",
			message: "El campo carrera_codigo es obligatorio",
		},
		{
			name:    "non numeric integer",
			body:    `{"facultad_codigo":"FI","carrera_codigo":"INF","promo":"dos mil"}`,
			field:   "promo",
			message: "El campo promo es obligatorio y debe ser numérico",
		},
		{
			name:    "empty numeric string",
			body:    `{"facultad_codigo":"FI","carrera_codigo":"INF","promo":2024,"materia_codigo":"M1","anio":""}`,
			field:   "anio",
			message: "El campo anio es obligatorio y debe ser numérico",
		},
		{
			name:    "boolean is not numeric",
			body:    `{"facultad_codigo":"FI","carrera_codigo":"INF","promo":2024,"materia_codigo":"M1","anio":true}`,
			field:   "anio",
			message: "El campo anio es obligatorio y debe ser numérico",
		},
		{
			name:    "fractional integer",
			body:    `{"facultad_codigo":"FI","carrera_codigo":"INF","promo":2024,"materia_codigo":"M1","anio":1,"semestre":1.5}`,
			field:   "semestre",
			message: "El campo semestre debe ser un número entero",
		},
		{
			name:    "object where text expected",
			body:    `{"facultad_codigo":{"x":1}}`,
			field:   "facultad_codigo",
			message: "El campo facultad_codigo debe ser un texto",
		},
		{
			name:    "missing tipo after valid numbers",
			body:    `{"facultad_codigo":"FI","carrera_codigo":"INF","promo":2024,"materia_codigo":"M1","anio":"1","semestre":2,"tipo":" "}`,
			field:   "tipo",
			message: "El campo tipo es obligatorio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(decode(t, tt.body), curriculumFields)

			assert.Nil(t, got)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.message, fe.Message)
		})
	}
}

func TestValidateStringifiesNumbersInTextFields(t *testing.T) {
	got, err := Validate(decode(t, `{"codigo": 101}`), []Field{TextField("codigo", "")})

	require.NoError(t, err)
	assert.Equal(t, "101", got.String("codigo"))
}

func TestValidateAppliesRules(t *testing.T) {
	long := `{"codigo":"ABCDEFGHIJKLMNOPQRSTUVWXYZ"}`

	_, err := Validate(decode(t, long), []Field{TextField("codigo", "max=20")})

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "codigo", fe.Field)
	assert.Contains(t, fe.Message, "El campo codigo")
	assert.Contains(t, fe.Message, "20")
}

func TestValidateAcceptsNilInputForEmptyFieldList(t *testing.T) {
	got, err := Validate(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
