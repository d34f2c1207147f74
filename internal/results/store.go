// Package results reads simulated performance values from a simulation
// results store.
package results

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/mdobak/go-xerrors"
)

// Store looks up one tabular value by row, column and table name. Row
// names compare case-insensitively. ok is false when no row matches.
type Store interface {
	Lookup(row, column, table string) (value float64, ok bool)
}

// Entry is one value of a MapStore file.
type Entry struct {
	Table  string  `json:"table"`
	Column string  `json:"column"`
	Row    string  `json:"row"`
	Value  float64 `json:"value"`
}

type key struct {
	table, column, row string
}

// MapStore is an in-memory Store.
type MapStore struct {
	values map[key]float64
}

// NewMapStore returns a MapStore holding entries.
func NewMapStore(entries ...Entry) *MapStore {
	s := &MapStore{values: make(map[key]float64, len(entries))}
	for _, e := range entries {
		s.Set(e.Row, e.Column, e.Table, e.Value)
	}
	return s
}

// LoadMapStore reads a JSON array of entries.
func LoadMapStore(filepath string) (*MapStore, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, xerrors.New("reading results file", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, xerrors.New("decoding results file", err)
	}
	return NewMapStore(entries...), nil
}

// Set stores value under row, column and table.
func (s *MapStore) Set(row, column, table string, value float64) {
	s.values[key{table, column, strings.ToUpper(row)}] = value
}

// Lookup implements Store.
func (s *MapStore) Lookup(row, column, table string) (float64, bool) {
	v, ok := s.values[key{table, column, strings.ToUpper(row)}]
	return v, ok
}

// Len returns the number of stored values.
func (s *MapStore) Len() int {
	return len(s.values)
}
