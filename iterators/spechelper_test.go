package iterators_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.llib.dev/testcase/assert"
	"github.com/klauspost/compress/gzip"

	"go.llib.dev/resumable/iterators"
)

func createTextFile(tb testing.TB, content string) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), `lines.txt`)
	assert.Must(tb).Nil(os.WriteFile(path, []byte(content), 0600))
	return path
}

func openTextFile(tb testing.TB, content string) *os.File {
	tb.Helper()
	f, err := os.Open(createTextFile(tb, content))
	assert.Must(tb).Nil(err)
	tb.Cleanup(func() { _ = f.Close() })
	return f
}

func createGzipFile(tb testing.TB, content string) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), `lines.txt.gz`)
	f, err := os.Create(path)
	assert.Must(tb).Nil(err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(content))
	assert.Must(tb).Nil(err)
	assert.Must(tb).Nil(w.Close())
	assert.Must(tb).Nil(f.Close())
	return path
}

func openGzipFile(tb testing.TB, content string) *iterators.GzipFile {
	tb.Helper()
	gf, err := iterators.OpenGzip(createGzipFile(tb, content))
	assert.Must(tb).Nil(err)
	tb.Cleanup(func() { _ = gf.Close() })
	return gf
}
