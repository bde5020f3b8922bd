package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubLoader struct {
	rows []Record
	err  error
}

func (s *stubLoader) Load(_ context.Context, _ string) ([]Record, error) {
	return s.rows, s.err
}

func TestStoreRows(t *testing.T) {
	rows := []Record{{"GPU": "H20", "TPS per gpu": 100.0}}
	store := NewStore(&stubLoader{rows: rows}, 16, 60)

	got, err := store.Rows(context.Background(), "decode.xlsx")
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestStoreRowsLoadError(t *testing.T) {
	store := NewStore(&stubLoader{err: errors.New("file not found")}, 16, 60)

	got, err := store.Rows(context.Background(), "missing.xlsx")
	assert.Error(t, err)
	assert.Nil(t, got)
}
