// =============================================================================
// dobby - Schema Constants
// =============================================================================
//
// This package holds the compile-time schema of the transformation:
//
//   - The source columns that must be present before any row is processed.
//   - The 29 output columns of the SN upload format, in their fixed order.
//   - The rename map from working column names to output column names.
//   - The static lookup tables: commune code -> commune name, and grade
//     code -> level label.
//
// The output schema is a constant of the downstream system. Changing the
// column set or order here changes the upload contract.
//
// =============================================================================

package schema

// =============================================================================
// SOURCE SCHEMA
// =============================================================================

// RequiredColumns are the source columns the pipeline cannot run without.
// A missing column is the only fatal condition at the record-set level.
var RequiredColumns = []string{
	"Rut",
	"Digito verificador",
	"Nombres",
	"Apellido Paterno",
	"Apellido Materno",
	"Grado",
	"Letra",
	"Direccion",
	"Comuna",
}

// Source column names referenced by individual pipeline steps. Kept as
// constants so steps and tests never drift on spelling.
const (
	ColRut             = "Rut"
	ColDV              = "Digito verificador"
	ColNombres         = "Nombres"
	ColGrado           = "Grado"
	ColLetra           = "Letra"
	ColDireccion       = "Direccion"
	ColComuna          = "Comuna"
	ColFechaNacimiento = "Fecha de Nacimiento"
	ColFechaMatricula  = "Fecha de Matrícula"
	ColNombreApoderado = "Nombre Apoderado"
	ColNombreApoSPL    = "Nombre Apoderado SPL"
	ColCelularApo      = "Celular Apoderado"
	ColCelularSPL      = "Celular SPL"
)

// =============================================================================
// OUTPUT SCHEMA
// =============================================================================

// OutputColumns is the fixed 29-column layout of the SN upload file.
// Order matters: the downstream loader matches by position.
var OutputColumns = []string{
	"rbd",
	"year",
	"nivel",
	"curso",
	"local",
	"fechaMatricula",
	"estudiantePaterno",
	"estudianteMaterno",
	"estudianteNombre1",
	"estudianteNombre2",
	"estudianteEmail",
	"sexo",
	"estudianteRun",
	"fechaNacimiento",
	"direccion",
	"tutor1Nombre1",
	"tutor1Nombre2",
	"tutor1Paterno",
	"tutor1Materno",
	"tutor1Run",
	"tutor1Email",
	"tutor1Celular",
	"tutor2Nombre1",
	"tutor2Nombre2",
	"tutor2Paterno",
	"tutor2Materno",
	"tutor2Run",
	"tutor2Email",
	"tutor2Celular",
}

// RenameMap maps working column names (source headers plus columns created
// by earlier pipeline steps) to their output names.
var RenameMap = map[string]string{
	"Nivel":                        "nivel",
	"Fecha de Matrícula":           "fechaMatricula",
	"Apellido Paterno":             "estudiantePaterno",
	"Apellido Materno":             "estudianteMaterno",
	"Primer Nombre Alumno":         "estudianteNombre1",
	"Segundo Nombre Alumno":        "estudianteNombre2",
	"Email Estudiante":             "estudianteEmail",
	"Sexo":                         "sexo",
	"Rut":                          "estudianteRun",
	"Fecha de Nacimiento":          "fechaNacimiento",
	"full address":                 "direccion",
	"Primer Nombre Apoderado":      "tutor1Nombre1",
	"Segundo Nombre Apoderado":     "tutor1Nombre2",
	"Apellido Paterno Apo.":        "tutor1Paterno",
	"Apellido Materno Apo.":        "tutor1Materno",
	"Rut Apoderado":                "tutor1Run",
	"Email Apoderado":              "tutor1Email",
	"Celular Apoderado":            "tutor1Celular",
	"Primer Nombre Apoderado SPL":  "tutor2Nombre1",
	"Segundo Nombre Apoderado SPL": "tutor2Nombre2",
	"Apellido Paterno Apo. SPL":    "tutor2Paterno",
	"Apellido Materno Apo. SPL":    "tutor2Materno",
	"Rut Apoderado SPL":            "tutor2Run",
	"Email Apoderado SPL":          "tutor2Email",
	"Celular SPL":                  "tutor2Celular",
}

// =============================================================================
// LOOKUP TABLES
// =============================================================================

// comunaCodes maps the numeric commune codes used by the source system to
// commune names. Covers the Coquimbo region plus Santiago.
var comunaCodes = map[string]string{
	"4101":  "La Serena",
	"4102":  "Coquimbo",
	"4103":  "Andacollo",
	"4104":  "La Higuera",
	"4105":  "Paihuano",
	"4106":  "Vicuña",
	"4201":  "Illapel",
	"4202":  "Canela",
	"4203":  "Los Vilos",
	"4204":  "Salamanca",
	"4301":  "Ovalle",
	"4302":  "Combarbalá",
	"4303":  "Monte Patria",
	"4304":  "Punitaqui",
	"4305":  "Río Hurtado",
	"13101": "Santiago",
}

// gradeLevels maps the source grade code to the SN level label.
// Covers pre-kindergarten through fourth year of secondary school.
var gradeLevels = map[string]string{
	"PK":  "Pre-Kínder",
	"K":   "Kínder",
	"1":   "1° Básico",
	"2":   "2° Básico",
	"3":   "3° Básico",
	"4":   "4° Básico",
	"5":   "5° Básico",
	"6":   "6° Básico",
	"7":   "7° Básico",
	"8":   "8° Básico",
	"I":   "I Medio",
	"II":  "II Medio",
	"III": "III Medio",
	"IV":  "IV Medio",
}

// ComunaName resolves a numeric commune code to its name.
// The second return reports whether the code is known.
func ComunaName(code string) (string, bool) {
	name, ok := comunaCodes[code]
	return name, ok
}

// ComunaNames returns every commune name in the table. The address cleaner
// uses these as the locality tokens to strip from free-text addresses.
func ComunaNames() []string {
	names := make([]string, 0, len(comunaCodes))
	for _, name := range comunaCodes {
		names = append(names, name)
	}
	return names
}

// GradeLevel resolves a grade code to its level label.
// The second return reports whether the code is known.
func GradeLevel(grade string) (string, bool) {
	level, ok := gradeLevels[grade]
	return level, ok
}
