package service

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

func newTestIngestor() (*FileIngestor, *memoryFileStore) {
	store := newMemoryFileStore()
	return NewFileIngestor(store, DefaultMaxUploadSize, logger.NewNop()), store
}

func TestIngest_SizeBoundary(t *testing.T) {
	ctx := context.Background()
	ing, _ := newTestIngestor()

	_, err := ing.Ingest(ctx, make([]byte, DefaultMaxUploadSize), "tam.pdf")
	assert.NoError(t, err)

	_, err = ing.Ingest(ctx, make([]byte, DefaultMaxUploadSize+1), "fazla.pdf")
	assert.ErrorIs(t, err, apperror.ErrTooLarge)

	_, err = ing.Ingest(ctx, make([]byte, 11*1024*1024), "rapor.pdf")
	assert.ErrorIs(t, err, apperror.ErrTooLarge)
}

func TestIngest_SizeCheckedBeforeExtension(t *testing.T) {
	ing, _ := newTestIngestor()
	_, err := ing.Ingest(context.Background(), make([]byte, DefaultMaxUploadSize+1), "virus.exe")
	assert.ErrorIs(t, err, apperror.ErrTooLarge)
}

func TestIngest_Extensions(t *testing.T) {
	ctx := context.Background()
	ing, _ := newTestIngestor()
	data := make([]byte, 1024)

	for _, name := range []string{"a.pdf", "b.JPG", "c.jpeg", "d.png", "e.doc", "f.tar.docx", "pdf"} {
		_, err := ing.Ingest(ctx, data, name)
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"program.exe", "a.pdf.exe", "noext", "a.", ""} {
		_, err := ing.Ingest(ctx, data, name)
		assert.ErrorIs(t, err, apperror.ErrUnsupportedType, name)
	}
}

func TestIngest_GeneratedName(t *testing.T) {
	ing, store := newTestIngestor()
	ing.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

	stored, err := ing.Ingest(context.Background(), []byte("%PDF"), "Başvuru Formu.PDF")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^20240309_140507_[a-z0-9]{8}\.pdf$`), stored.Filename)
	assert.Equal(t, "/uploads/"+stored.Filename, stored.FileURL)
	assert.Equal(t, []byte("%PDF"), store.files[stored.Filename])
}

func TestIngestAll_SkipsRejected(t *testing.T) {
	ing, store := newTestIngestor()

	urls := ing.IngestAll(context.Background(), []IncomingFile{
		{Name: "vergi.pdf", Data: []byte("ok")},
		{Name: "kurulum.exe", Data: []byte("bad")},
		{Name: "", Data: []byte("empty name")},
	})
	require.Len(t, urls, 1)
	assert.Len(t, store.files, 1)
}

func TestReadLimited(t *testing.T) {
	ing := NewFileIngestor(newMemoryFileStore(), 4, logger.NewNop())

	data, err := ing.ReadLimited(bytes.NewReader([]byte("0123456789")))
	require.NoError(t, err)
	assert.Len(t, data, 5)

	_, err = ing.Ingest(context.Background(), data, "a.pdf")
	assert.ErrorIs(t, err, apperror.ErrTooLarge)
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", fileExtension("a.b.PDF"))
	assert.Equal(t, "pdf", fileExtension("PDF"))
	assert.Equal(t, "", fileExtension("a."))
}
