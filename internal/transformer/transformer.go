// =============================================================================
// dobby - Transformation Pipeline
// =============================================================================
//
// Converts the wide source record set into the fixed 29-column SN upload
// format. The pipeline is an ordered sequence of steps over the whole
// record set; later steps read columns that earlier steps produce, so the
// step order below is a correctness requirement, not a style choice:
//
//    1. Verify required source columns (the only fatal step)
//    2. Clean addresses (locality tokens, commas, whitespace)
//    3. Uppercase addresses
//    4. Compose canonical RUT strings from body + check digit
//    5. Split student and guardian full names
//    6. Compose course codes from grade + section letter
//    7. Map commune codes to names
//    8. Compose full addresses (street + commune)
//    9. Add run metadata (RBD, year, level, location)
//   10. Convert dates to ISO form
//   11. Format phone numbers
//   12. Rename columns to the output names
//   13. Reorder into the fixed output schema
//   14. Validate RUT check digits (diagnostic only)
//   15. Validate emails (diagnostic only)
//
// Every step after the first is fail-soft: a row-level problem is recorded
// in the issue collector and the row continues with the best-effort value.
// The output always has exactly one row per input row.
//
// =============================================================================

package transformer

import (
	"strconv"
	"strings"

	"github.com/dobby-cli/dobby/internal/config"
	"github.com/dobby-cli/dobby/internal/csvparser"
	"github.com/dobby-cli/dobby/internal/normalize"
	"github.com/dobby-cli/dobby/internal/schema"
	"github.com/dobby-cli/dobby/internal/validation"
	"github.com/dobby-cli/dobby/pkg/logger"
)

// Working column names produced by intermediate steps, before the rename
// step maps everything to the output schema.
const (
	colPrimerNombreAlumno  = "Primer Nombre Alumno"
	colSegundoNombreAlumno = "Segundo Nombre Alumno"
	colPrimerNombreApo     = "Primer Nombre Apoderado"
	colSegundoNombreApo    = "Segundo Nombre Apoderado"
	colPrimerNombreApoSPL  = "Primer Nombre Apoderado SPL"
	colSegundoNombreApoSPL = "Segundo Nombre Apoderado SPL"
	colCurso               = "curso"
	colFullAddress         = "full address"
	colRBD                 = "rbd"
	colYear                = "year"
	colNivel               = "Nivel"
	colLocal               = "local"
)

// Result is the outcome of a completed (non-fatal) run.
type Result struct {
	// Records are the output rows, one per input row, in input order.
	Records []OutputRecord

	// Issues are all data-quality findings, in collection order.
	Issues []Issue

	// InputRows is the number of rows read from the source.
	InputRows int
}

// Rows projects the output records to string rows for the CSV writer.
func (r *Result) Rows() [][]string {
	rows := make([][]string, len(r.Records))
	for i := range r.Records {
		rows[i] = r.Records[i].Row()
	}
	return rows
}

// RowsWithIssues returns how many distinct rows have at least one issue.
func (r *Result) RowsWithIssues() int {
	return distinctRows(r.Issues)
}

// Transformer runs the pipeline over one record set.
type Transformer struct {
	cfg *config.Config
	log logger.Logger

	headers []string
	rows    []Record
	out     []OutputRecord
	issues  *Collector
}

// New creates a Transformer for one run. The config is read-only for the
// whole run.
func New(cfg *config.Config, log logger.Logger) *Transformer {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Transformer{cfg: cfg, log: log}
}

// step is one named pipeline stage.
type step struct {
	name string
	run  func(t *Transformer) error
}

// steps declares the fixed execution order.
func (t *Transformer) steps() []step {
	return []step{
		{"verify required columns", (*Transformer).verifyRequiredColumns},
		{"clean addresses", (*Transformer).cleanAddresses},
		{"uppercase addresses", (*Transformer).uppercaseAddresses},
		{"compose ruts", (*Transformer).composeRUTs},
		{"split names", (*Transformer).splitNames},
		{"compose course codes", (*Transformer).composeCourseCodes},
		{"map comuna codes", (*Transformer).mapComunaCodes},
		{"compose full addresses", (*Transformer).composeFullAddresses},
		{"add metadata", (*Transformer).addMetadata},
		{"convert dates", (*Transformer).convertDates},
		{"format phones", (*Transformer).formatPhones},
		{"rename columns", (*Transformer).renameColumns},
		{"reorder columns", (*Transformer).reorderColumns},
		{"validate ruts", (*Transformer).validateRUTs},
		{"validate emails", (*Transformer).validateEmails},
	}
}

// Transform executes the full pipeline over the parsed input.
//
// The only error returned is the fatal missing-column case; every other
// problem ends up in Result.Issues with the row still present in
// Result.Records.
func (t *Transformer) Transform(data *csvparser.Data) (*Result, error) {
	t.headers = data.Headers
	t.issues = NewCollector()
	t.out = nil

	// Clone the source rows; the loader's data stays untouched.
	t.rows = make([]Record, len(data.Rows))
	for i, row := range data.Rows {
		r := make(Record, len(row))
		for k, v := range row {
			r[k] = v
		}
		t.rows[i] = r
	}

	t.log.Info("starting transformation pipeline",
		"rows", len(t.rows), "columns", len(t.headers))

	for _, s := range t.steps() {
		t.log.Debug("running step", "step", s.name)
		if err := s.run(t); err != nil {
			return nil, err
		}
	}

	if t.issues.Len() > 0 {
		t.log.Warn("transformation completed with validation issues",
			"issues", t.issues.Len())
	} else {
		t.log.Info("transformation completed")
	}

	return &Result{
		Records:   t.out,
		Issues:    t.issues.Issues(),
		InputRows: len(data.Rows),
	}, nil
}

// hasColumn reports whether the source declared the given column.
func (t *Transformer) hasColumn(name string) bool {
	for _, h := range t.headers {
		if h == name {
			return true
		}
	}
	return false
}

// =============================================================================
// STEP 1 - REQUIRED COLUMNS (FATAL)
// =============================================================================

func (t *Transformer) verifyRequiredColumns() error {
	var missing []string
	for _, col := range schema.RequiredColumns {
		if !t.hasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Columns: missing}
	}
	return nil
}

// =============================================================================
// STEPS 2-3 - ADDRESSES
// =============================================================================

func (t *Transformer) cleanAddresses() error {
	for _, r := range t.rows {
		r[schema.ColDireccion] = normalize.CleanAddress(r[schema.ColDireccion])
	}
	return nil
}

func (t *Transformer) uppercaseAddresses() error {
	for _, r := range t.rows {
		r[schema.ColDireccion] = strings.ToUpper(r[schema.ColDireccion])
	}
	return nil
}

// =============================================================================
// STEP 4 - RUT COMPOSITION
// =============================================================================

// composeRUTs combines the identifier body with its check character into
// the canonical "body-CHECK" form. Validation happens later (step 14) and
// never changes the canonical string composed here.
func (t *Transformer) composeRUTs() error {
	for _, r := range t.rows {
		r[schema.ColRut] = validation.FormatRUT(r[schema.ColRut], r[schema.ColDV])
		delete(r, schema.ColDV)
	}
	return nil
}

// =============================================================================
// STEP 5 - NAME SPLITTING
// =============================================================================

func (t *Transformer) splitNames() error {
	hasApo := t.hasColumn(schema.ColNombreApoderado)
	hasApoSPL := t.hasColumn(schema.ColNombreApoSPL)

	for _, r := range t.rows {
		first, second := normalize.SplitName(r[schema.ColNombres])
		r[colPrimerNombreAlumno] = first
		r[colSegundoNombreAlumno] = second
		delete(r, schema.ColNombres)

		if hasApo {
			first, second = normalize.SplitName(r[schema.ColNombreApoderado])
			r[colPrimerNombreApo] = first
			r[colSegundoNombreApo] = second
			delete(r, schema.ColNombreApoderado)
		}
		if hasApoSPL {
			first, second = normalize.SplitName(r[schema.ColNombreApoSPL])
			r[colPrimerNombreApoSPL] = first
			r[colSegundoNombreApoSPL] = second
			delete(r, schema.ColNombreApoSPL)
		}
	}
	return nil
}

// =============================================================================
// STEP 6 - COURSE CODES
// =============================================================================

func (t *Transformer) composeCourseCodes() error {
	for _, r := range t.rows {
		r[colCurso] = r[schema.ColGrado] + r[schema.ColLetra]
	}
	return nil
}

// =============================================================================
// STEP 7 - COMMUNE CODES
// =============================================================================

func (t *Transformer) mapComunaCodes() error {
	for i, r := range t.rows {
		code := r[schema.ColComuna]
		if code == "" {
			continue
		}
		if name, ok := schema.ComunaName(code); ok {
			r[schema.ColComuna] = name
		} else {
			// Unknown code: keep the raw value as the fallback.
			t.issues.Add(i, schema.ColComuna, code, "unmapped comuna code", SeverityError)
		}
	}
	return nil
}

// =============================================================================
// STEP 8 - FULL ADDRESSES
// =============================================================================

func (t *Transformer) composeFullAddresses() error {
	for _, r := range t.rows {
		r[colFullAddress] = r[schema.ColDireccion] + ", " + r[schema.ColComuna]
		delete(r, schema.ColDireccion)
	}
	return nil
}

// =============================================================================
// STEP 9 - RUN METADATA
// =============================================================================

func (t *Transformer) addMetadata() error {
	rbd := strconv.Itoa(t.cfg.RBD)
	year := strconv.Itoa(t.cfg.Year)

	for i, r := range t.rows {
		r[colRBD] = rbd
		r[colYear] = year
		r[colLocal] = t.cfg.Local

		grade := r[schema.ColGrado]
		if level, ok := schema.GradeLevel(grade); ok {
			r[colNivel] = level
		} else {
			if grade != "" {
				t.issues.Add(i, schema.ColGrado, grade, "unmapped grade code", SeverityError)
			}
			r[colNivel] = grade
		}
	}
	return nil
}

// =============================================================================
// STEP 10 - DATES
// =============================================================================

func (t *Transformer) convertDates() error {
	for _, col := range []string{schema.ColFechaNacimiento, schema.ColFechaMatricula} {
		if !t.hasColumn(col) {
			continue
		}
		for i, r := range t.rows {
			raw := r[col]
			if raw == "" {
				continue
			}
			iso, err := normalize.ConvertDate(raw)
			if err != nil {
				t.issues.Add(i, col, raw, "unparseable date (expected day-month-year)", SeverityError)
				r[col] = ""
				continue
			}
			r[col] = iso
		}
	}
	return nil
}

// =============================================================================
// STEP 11 - PHONES
// =============================================================================

func (t *Transformer) formatPhones() error {
	for _, col := range []string{schema.ColCelularApo, schema.ColCelularSPL} {
		if !t.hasColumn(col) {
			continue
		}
		for i, r := range t.rows {
			digits, ok := normalize.FormatPhone(r[col])
			if !ok {
				t.issues.Add(i, col, r[col],
					"invalid phone: expected 9 digits starting with 9", SeverityError)
			}
			r[col] = digits
		}
	}
	return nil
}

// =============================================================================
// STEPS 12-13 - RENAME AND REORDER
// =============================================================================

func (t *Transformer) renameColumns() error {
	for i, r := range t.rows {
		renamed := make(Record, len(r))
		for k, v := range r {
			if newName, ok := schema.RenameMap[k]; ok {
				renamed[newName] = v
			} else {
				renamed[k] = v
			}
		}
		t.rows[i] = renamed
	}
	return nil
}

// reorderColumns builds the typed output records. Columns outside the
// output schema are dropped here; missing ones become zero values.
func (t *Transformer) reorderColumns() error {
	t.out = make([]OutputRecord, len(t.rows))
	for i, r := range t.rows {
		t.out[i] = OutputRecord{
			RBD:               atoi(r["rbd"]),
			Year:              atoi(r["year"]),
			Nivel:             r["nivel"],
			Curso:             r["curso"],
			Local:             r["local"],
			FechaMatricula:    r["fechaMatricula"],
			EstudiantePaterno: r["estudiantePaterno"],
			EstudianteMaterno: r["estudianteMaterno"],
			EstudianteNombre1: r["estudianteNombre1"],
			EstudianteNombre2: r["estudianteNombre2"],
			EstudianteEmail:   r["estudianteEmail"],
			Sexo:              r["sexo"],
			EstudianteRun:     r["estudianteRun"],
			FechaNacimiento:   r["fechaNacimiento"],
			Direccion:         r["direccion"],
			Tutor1Nombre1:     r["tutor1Nombre1"],
			Tutor1Nombre2:     r["tutor1Nombre2"],
			Tutor1Paterno:     r["tutor1Paterno"],
			Tutor1Materno:     r["tutor1Materno"],
			Tutor1Run:         r["tutor1Run"],
			Tutor1Email:       r["tutor1Email"],
			Tutor1Celular:     atoi64(r["tutor1Celular"]),
			Tutor2Nombre1:     r["tutor2Nombre1"],
			Tutor2Nombre2:     r["tutor2Nombre2"],
			Tutor2Paterno:     r["tutor2Paterno"],
			Tutor2Materno:     r["tutor2Materno"],
			Tutor2Run:         r["tutor2Run"],
			Tutor2Email:       r["tutor2Email"],
			Tutor2Celular:     atoi64(r["tutor2Celular"]),
		}
	}
	return nil
}

// =============================================================================
// STEPS 14-15 - DIAGNOSTIC VALIDATION
// =============================================================================

// validateRUTs checks the student identifier check digits. Purely
// diagnostic: the canonical string from step 4 is never altered.
func (t *Transformer) validateRUTs() error {
	if !t.cfg.ValidateRUT {
		return nil
	}

	invalid := 0
	for i := range t.out {
		run := t.out[i].EstudianteRun
		if !validation.ValidateRUT(run) {
			invalid++
			t.issues.Add(i, "estudianteRun", run, "invalid RUT check digit", SeverityWarning)
		}
	}
	if invalid > 0 {
		t.log.Warn("found invalid RUTs", "count", invalid)
	}
	return nil
}

func (t *Transformer) validateEmails() error {
	if !t.cfg.ValidateEmail {
		return nil
	}

	invalid := 0
	check := func(row int, field, email string) {
		if email != "" && !validation.ValidateEmail(email) {
			invalid++
			t.issues.Add(row, field, email, "invalid email format", SeverityWarning)
		}
	}

	for i := range t.out {
		check(i, "estudianteEmail", t.out[i].EstudianteEmail)
		check(i, "tutor1Email", t.out[i].Tutor1Email)
		check(i, "tutor2Email", t.out[i].Tutor2Email)
	}
	if invalid > 0 {
		t.log.Warn("found invalid emails", "count", invalid)
	}
	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoi64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
