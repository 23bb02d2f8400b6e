// Package sqlite writes transition lists as a SQLite method database.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/huelslab/gslgen/pkg/core"
	_ "github.com/mattn/go-sqlite3"
)

// Date format for HeaderTable (ISO 8601)
const headerDateFormat = "2006-01-02"

// Writer handles writing transition lists to SQLite database files
type Writer struct {
	db             *sql.DB
	outputPath     string
	transitionStmt *sql.Stmt
	transitionID   int
}

// NewWriter creates a new SQLite writer
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:           db,
		outputPath:   outputPath,
		transitionID: 1,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS TransitionTable (
		TransitionId INTEGER PRIMARY KEY,
		MoleculeListName TEXT,
		Molecule TEXT,
		MoleculeFormula TEXT,
		PrecursorAdduct TEXT,
		PrecursorMz DOUBLE,
		PrecursorCharge INTEGER,
		ProductName TEXT,
		ProductFormula TEXT,
		ProductAdduct TEXT,
		ProductMz DOUBLE,
		ProductCharge INTEGER,
		IsotopeLabelType TEXT
	);

	CREATE TABLE IF NOT EXISTS HeaderTable (
		version INTEGER NOT NULL DEFAULT 0,
		CreationDate TEXT,
		LipidClass TEXT,
		Description TEXT
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.transitionStmt, err = w.db.Prepare(`
		INSERT INTO TransitionTable (
			TransitionId, MoleculeListName, Molecule, MoleculeFormula,
			PrecursorAdduct, PrecursorMz, PrecursorCharge,
			ProductName, ProductFormula, ProductAdduct, ProductMz,
			ProductCharge, IsotopeLabelType
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transition statement: %w", err)
	}

	return nil
}

// WriteTransition writes a single transition row to the database. Blanked
// m/z values are stored as NULL.
func (w *Writer) WriteTransition(row core.Transition) error {
	var precursorMZ interface{}
	if row.PrecursorMZ != nil {
		precursorMZ = *row.PrecursorMZ
	}
	var productMZ interface{}
	if row.ProductMZ != nil {
		productMZ = *row.ProductMZ
	}

	_, err := w.transitionStmt.Exec(
		w.transitionID,
		row.MoleculeListName,
		row.Molecule,
		row.MoleculeFormula,
		row.PrecursorAdduct,
		precursorMZ,
		row.PrecursorCharge,
		row.ProductName,
		row.ProductFormula,
		row.ProductAdduct,
		productMZ,
		row.ProductCharge,
		row.IsotopeLabelType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transition: %w", err)
	}

	w.transitionID++
	return nil
}

// WriteTransitions writes every row of a transition list.
func (w *Writer) WriteTransitions(rows []core.Transition) error {
	for _, row := range rows {
		if err := w.WriteTransition(row); err != nil {
			return err
		}
	}
	return nil
}

// Finalize writes the header table and closes the database
func (w *Writer) Finalize(lipidClass string) error {
	_, err := w.db.Exec(`
		INSERT INTO HeaderTable (version, CreationDate, LipidClass, Description)
		VALUES (?, ?, ?, ?)
	`, 1, time.Now().Format(headerDateFormat), lipidClass, "")
	if err != nil {
		return fmt.Errorf("failed to insert header: %w", err)
	}

	if w.transitionStmt != nil {
		w.transitionStmt.Close()
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Close closes the database connection without writing a header
func (w *Writer) Close() error {
	if w.transitionStmt != nil {
		w.transitionStmt.Close()
	}
	return w.db.Close()
}
