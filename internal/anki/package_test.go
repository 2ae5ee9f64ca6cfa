package anki

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/jianjin/internal/pinyin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testModels = `{"1001":{"id":1001,"name":"Chinese","sortf":0,"flds":[{"name":"Hanzi","ord":0},{"name":"Pinyin","ord":1},{"name":"English","ord":2}]},` +
		`"1002":{"id":1002,"name":"Basic","sortf":0,"flds":[{"name":"Front","ord":0},{"name":"Back","ord":1}]}}`
	testDecks = `{"1":{"id":1,"name":"Default"},"2":{"id":2,"name":"HSK 1"}}`
)

// writeDeck builds a minimal .apkg holding the given notes and returns its path.
func writeDeck(t *testing.T, notes [][2]any) string {
	t.Helper()
	dir := t.TempDir()

	dbPath := filepath.Join(dir, "collection.anki2")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)

	_, err = db.Exec(`CREATE TABLE col (id INTEGER PRIMARY KEY, models TEXT, decks TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, mid INTEGER, mod INTEGER, usn INTEGER, flds TEXT, sfld TEXT, csum INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO col (id, models, decks) VALUES (1, ?, ?)`, testModels, testDecks)
	require.NoError(t, err)

	for i, n := range notes {
		flds := n[1].(string)
		sfld := strings.Split(flds, fieldSep)[0]
		_, err = db.Exec(`INSERT INTO notes (id, mid, mod, usn, flds, sfld, csum) VALUES (?, ?, 0, 0, ?, ?, 0)`,
			i+1, n[0], flds, sfld)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	apkg := filepath.Join(dir, "deck.apkg")
	out, err := os.Create(apkg)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	w, err := zw.Create("collection.anki2")
	require.NoError(t, err)
	in, err := os.Open(dbPath)
	require.NoError(t, err)
	_, err = io.Copy(w, in)
	require.NoError(t, err)
	in.Close()
	w, err = zw.Create("media")
	require.NoError(t, err)
	_, err = w.Write([]byte("{}"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	return apkg
}

func chineseNote(fields ...string) [2]any {
	return [2]any{int64(1001), strings.Join(fields, fieldSep)}
}

func TestOpenPackage(t *testing.T) {
	path := writeDeck(t, [][2]any{
		chineseNote("你好", "ni3hao3", "hello"),
		{int64(1002), "front" + fieldSep + "back"},
	})

	pkg, err := OpenPackage(path)
	require.NoError(t, err)
	defer pkg.Close()

	assert.Len(t, pkg.Models, 2)
	assert.Len(t, pkg.Decks, 2)
	require.Len(t, pkg.Notes, 2)

	note := pkg.Notes[0]
	assert.Equal(t, []string{"Hanzi", "Pinyin", "English"}, pkg.FieldNames(note))
	assert.Equal(t, "ni3hao3", pkg.FieldValue(note, "pinyin"))
	assert.Equal(t, "", pkg.FieldValue(note, "Audio"))

	summary := pkg.Summary()
	assert.Contains(t, summary, "Notes: 2")
	assert.Contains(t, summary, "HSK 1")
	assert.Contains(t, summary, "Chinese (3 fields)")
}

func TestOpenPackageNotZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.apkg")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := OpenPackage(path)
	assert.Error(t, err)
}

func TestConvertFieldAndSave(t *testing.T) {
	path := writeDeck(t, [][2]any{
		chineseNote("你好", "ni3hao3", "hello"),
		chineseNote("美女", "mei3nv3", "beauty"),
		chineseNote("好", "hǎo", "good"),
		{int64(1002), "ni3" + fieldSep + "hao3"},
	})

	pkg, err := OpenPackage(path)
	require.NoError(t, err)

	changed, err := pkg.ConvertField("Pinyin", pinyin.Transliterate)
	require.NoError(t, err)
	assert.Equal(t, 2, changed, "already marked note is left alone")

	out := filepath.Join(t.TempDir(), "out.apkg")
	require.NoError(t, pkg.SaveAs(out))
	require.NoError(t, pkg.Close())

	saved, err := OpenPackage(out)
	require.NoError(t, err)
	defer saved.Close()

	require.Len(t, saved.Notes, 4)
	assert.Equal(t, "nǐhǎo", saved.FieldValue(saved.Notes[0], "Pinyin"))
	assert.Equal(t, "měinǚ", saved.FieldValue(saved.Notes[1], "Pinyin"))
	assert.Equal(t, "hǎo", saved.FieldValue(saved.Notes[2], "Pinyin"))
	assert.NotZero(t, saved.Notes[0].Mod)
	assert.Zero(t, saved.Notes[2].Mod)

	// Notes of other types keep their numbered text.
	assert.Equal(t, "ni3", saved.FieldValue(saved.Notes[3], "Front"))
	assert.Equal(t, "你好", saved.Notes[0].SFLD)
}

func TestConvertFieldMissing(t *testing.T) {
	path := writeDeck(t, [][2]any{chineseNote("你好", "ni3hao3", "hello")})

	pkg, err := OpenPackage(path)
	require.NoError(t, err)
	defer pkg.Close()

	_, err = pkg.ConvertField("Reading", pinyin.Transliterate)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestConvertSortField(t *testing.T) {
	path := writeDeck(t, [][2]any{chineseNote("ni3hao3", "x", "y")})

	pkg, err := OpenPackage(path)
	require.NoError(t, err)
	defer pkg.Close()

	changed, err := pkg.ConvertField("Hanzi", pinyin.Transliterate)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, "nǐhǎo", pkg.Notes[0].SFLD)
	assert.Equal(t, checksum("nǐhǎo"), pkg.Notes[0].CSum)
}
