package transformer

import (
	"strconv"

	"github.com/dobby-cli/dobby/internal/schema"
)

// Record is a working row during transformation: a mutable column -> value
// map the pipeline steps read and write. The source rows are cloned into
// Records before the first step runs, so loader output is never mutated.
type Record map[string]string

// OutputRecord is one row of the SN upload file. The field set and order
// are fixed: exactly the 29 columns of schema.OutputColumns.
type OutputRecord struct {
	RBD               int
	Year              int
	Nivel             string
	Curso             string
	Local             string
	FechaMatricula    string
	EstudiantePaterno string
	EstudianteMaterno string
	EstudianteNombre1 string
	EstudianteNombre2 string
	EstudianteEmail   string
	Sexo              string
	EstudianteRun     string
	FechaNacimiento   string
	Direccion         string
	Tutor1Nombre1     string
	Tutor1Nombre2     string
	Tutor1Paterno     string
	Tutor1Materno     string
	Tutor1Run         string
	Tutor1Email       string
	Tutor1Celular     int64
	Tutor2Nombre1     string
	Tutor2Nombre2     string
	Tutor2Paterno     string
	Tutor2Materno     string
	Tutor2Run         string
	Tutor2Email       string
	Tutor2Celular     int64
}

// Row projects the record to its 29 string values, in the exact order of
// schema.OutputColumns.
func (r *OutputRecord) Row() []string {
	return []string{
		strconv.Itoa(r.RBD),
		strconv.Itoa(r.Year),
		r.Nivel,
		r.Curso,
		r.Local,
		r.FechaMatricula,
		r.EstudiantePaterno,
		r.EstudianteMaterno,
		r.EstudianteNombre1,
		r.EstudianteNombre2,
		r.EstudianteEmail,
		r.Sexo,
		r.EstudianteRun,
		r.FechaNacimiento,
		r.Direccion,
		r.Tutor1Nombre1,
		r.Tutor1Nombre2,
		r.Tutor1Paterno,
		r.Tutor1Materno,
		r.Tutor1Run,
		r.Tutor1Email,
		strconv.FormatInt(r.Tutor1Celular, 10),
		r.Tutor2Nombre1,
		r.Tutor2Nombre2,
		r.Tutor2Paterno,
		r.Tutor2Materno,
		r.Tutor2Run,
		r.Tutor2Email,
		strconv.FormatInt(r.Tutor2Celular, 10),
	}
}

// Headers returns the output column names in order.
func Headers() []string {
	return schema.OutputColumns
}
