package anki

import (
	"archive/zip"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ConvertField applies fn to the named field of every note whose type has
// that field. It returns the number of notes whose value changed. Changes are
// kept in memory until SaveAs.
func (p *Package) ConvertField(name string, fn func(string) string) (int, error) {
	found := false
	changed := 0
	now := time.Now().Unix()

	for _, note := range p.Notes {
		ord, ok := p.fieldOrd(note, name)
		if !ok {
			continue
		}
		found = true
		if ord >= len(note.Fields) {
			continue
		}

		value := fn(note.Fields[ord])
		if value == note.Fields[ord] {
			continue
		}

		note.Fields[ord] = value
		if model := p.Model(note); model != nil && model.SortField == ord {
			note.SFLD = value
		}
		if ord == 0 {
			note.CSum = checksum(value)
		}
		note.Mod = now
		note.dirty = true
		changed++
	}

	if !found {
		return 0, fmt.Errorf("%q: %w", name, ErrFieldNotFound)
	}
	return changed, nil
}

// checksum is the first 8 hex digits of the SHA-1 of a field, as Anki stores
// it for duplicate detection.
func checksum(field string) int64 {
	sum := sha1.Sum([]byte(field))
	csum, _ := strconv.ParseInt(hex.EncodeToString(sum[:4]), 16, 64)
	return csum
}

// SaveAs writes changed notes back to the collection and packs the result
// into a new .apkg file at outputPath.
func (p *Package) SaveAs(outputPath string) error {
	if err := p.updateNotes(); err != nil {
		return fmt.Errorf("updating database: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)

	err = filepath.Walk(p.tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(p.tempDir, path)
		if err != nil {
			return err
		}

		writer, err := zipWriter.Create(filepath.ToSlash(relPath))
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
	if err != nil {
		zipWriter.Close()
		return fmt.Errorf("creating zip: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finishing zip: %w", err)
	}
	return nil
}

// updateNotes writes modified notes to the SQLite database.
func (p *Package) updateNotes() error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("UPDATE notes SET mod = ?, usn = -1, flds = ?, sfld = ?, csum = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("preparing update: %w", err)
	}
	defer stmt.Close()

	for _, note := range p.Notes {
		if !note.dirty {
			continue
		}
		flds := strings.Join(note.Fields, fieldSep)
		if _, err := stmt.Exec(note.Mod, flds, note.SFLD, note.CSum, note.ID); err != nil {
			return fmt.Errorf("updating note %d: %w", note.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing notes: %w", err)
	}

	for _, note := range p.Notes {
		note.dirty = false
	}
	return nil
}
