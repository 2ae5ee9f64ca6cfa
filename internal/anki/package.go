// Package anki reads Anki .apkg decks and rewrites note fields.
package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrFieldNotFound is returned when no note type has the requested field.
var ErrFieldNotFound = errors.New("field not found")

// fieldSep separates field values in the flds column.
const fieldSep = "\x1f"

// Package represents an opened Anki .apkg file.
type Package struct {
	path    string
	tempDir string
	db      *sql.DB
	Models  map[int64]*Model
	Decks   map[int64]*Deck
	Notes   []*Note
}

// Model represents an Anki note type.
type Model struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Fields    []Field `json:"flds"`
	SortField int     `json:"sortf"`
}

// Field represents a field in a note type.
type Field struct {
	Name string `json:"name"`
	Ord  int    `json:"ord"`
}

// Deck represents an Anki deck.
type Deck struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Note represents an Anki note.
type Note struct {
	ID      int64
	ModelID int64
	Mod     int64
	Fields  []string // Parsed from flds
	SFLD    string   // Sort field
	CSum    int64
	dirty   bool
}

// OpenPackage opens an Anki .apkg file.
func OpenPackage(path string) (*Package, error) {
	pkg := &Package{
		path:   path,
		Models: make(map[int64]*Model),
		Decks:  make(map[int64]*Deck),
	}

	tempDir, err := os.MkdirTemp("", "jianjin-anki-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	pkg.tempDir = tempDir

	if err := pkg.extract(); err != nil {
		pkg.Close()
		return nil, err
	}

	dbPath := filepath.Join(tempDir, "collection.anki21")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		dbPath = filepath.Join(tempDir, "collection.anki2")
	}
	if _, err := os.Stat(dbPath); err != nil {
		pkg.Close()
		return nil, fmt.Errorf("no collection in package: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		pkg.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	pkg.db = db

	if err := pkg.loadCollection(); err != nil {
		pkg.Close()
		return nil, err
	}

	if err := pkg.loadNotes(); err != nil {
		pkg.Close()
		return nil, err
	}

	return pkg, nil
}

// extract unzips the .apkg file into the temp directory.
func (p *Package) extract() error {
	r, err := zip.OpenReader(p.path)
	if err != nil {
		return fmt.Errorf("opening zip: %w", err)
	}
	defer r.Close()

	root := filepath.Clean(p.tempDir) + string(os.PathSeparator)
	for _, f := range r.File {
		fpath := filepath.Join(p.tempDir, f.Name)
		if !strings.HasPrefix(fpath, root) {
			return fmt.Errorf("illegal file path: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(fpath, 0755); err != nil {
				return err
			}
			continue
		}

		if err := extractFile(f, fpath); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}

	return nil
}

func extractFile(f *zip.File, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// loadCollection loads note types and decks from the col table.
func (p *Package) loadCollection() error {
	var models, decks string

	row := p.db.QueryRow("SELECT models, decks FROM col")
	if err := row.Scan(&models, &decks); err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}

	var modelsMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(models), &modelsMap); err != nil {
		return fmt.Errorf("parsing models: %w", err)
	}
	for _, raw := range modelsMap {
		var model Model
		if err := json.Unmarshal(raw, &model); err != nil {
			continue // Skip malformed models
		}
		p.Models[model.ID] = &model
	}

	var decksMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(decks), &decksMap); err != nil {
		return fmt.Errorf("parsing decks: %w", err)
	}
	for _, raw := range decksMap {
		var deck Deck
		if err := json.Unmarshal(raw, &deck); err != nil {
			continue
		}
		p.Decks[deck.ID] = &deck
	}

	return nil
}

// loadNotes loads all notes from the database.
func (p *Package) loadNotes() error {
	rows, err := p.db.Query("SELECT id, mid, mod, flds, sfld, csum FROM notes ORDER BY id")
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			note Note
			flds string
		)
		if err := rows.Scan(&note.ID, &note.ModelID, &note.Mod, &flds, &note.SFLD, &note.CSum); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}
		note.Fields = strings.Split(flds, fieldSep)
		p.Notes = append(p.Notes, &note)
	}

	return rows.Err()
}

// Model returns the note type of a note.
func (p *Package) Model(note *Note) *Model {
	return p.Models[note.ModelID]
}

// fieldOrd returns the position of the named field in the note's type.
func (p *Package) fieldOrd(note *Note, name string) (int, bool) {
	model := p.Model(note)
	if model == nil {
		return 0, false
	}
	for _, f := range model.Fields {
		if strings.EqualFold(f.Name, name) {
			return f.Ord, true
		}
	}
	return 0, false
}

// FieldValue returns a field value from a note by field name.
func (p *Package) FieldValue(note *Note, name string) string {
	ord, ok := p.fieldOrd(note, name)
	if !ok || ord >= len(note.Fields) {
		return ""
	}
	return note.Fields[ord]
}

// FieldNames returns the field names of a note's type.
func (p *Package) FieldNames(note *Note) []string {
	model := p.Model(note)
	if model == nil {
		return nil
	}

	names := make([]string, len(model.Fields))
	for i, field := range model.Fields {
		names[i] = field.Name
	}
	return names
}

// Close releases the database and removes extracted files.
func (p *Package) Close() error {
	var err error
	if p.db != nil {
		err = p.db.Close()
		p.db = nil
	}
	if p.tempDir != "" {
		os.RemoveAll(p.tempDir)
		p.tempDir = ""
	}
	return err
}

// Summary returns a summary of the package contents.
func (p *Package) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Anki Package: %s\n", p.path)
	fmt.Fprintf(&sb, "  Decks: %d\n", len(p.Decks))
	for _, deck := range p.Decks {
		fmt.Fprintf(&sb, "    - %s\n", deck.Name)
	}
	fmt.Fprintf(&sb, "  Note Types: %d\n", len(p.Models))
	for _, model := range p.Models {
		fmt.Fprintf(&sb, "    - %s (%d fields)\n", model.Name, len(model.Fields))
	}
	fmt.Fprintf(&sb, "  Notes: %d\n", len(p.Notes))

	return sb.String()
}
