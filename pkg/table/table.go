// Package table flattens exchange API payloads into a uniform tabular
// shape: one row per result entry, one column per flattened field. Both
// success results and API error records can be rendered, so downstream
// consumers always get the same structure back.
package table

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/alexbotov/betfair/pkg/aping"
)

// Table is a rows-and-columns view of a payload. Columns appear in
// first-seen order; rows missing a later-discovered column hold "".
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FromResult flattens any operation result value into a table.
func FromResult(v interface{}) (*Table, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return FromJSON(raw), nil
}

// FromJSON flattens a raw JSON payload into a table. An array yields one
// row per element, an object a single row, a scalar a one-cell table, and
// null an empty table. Nested objects flatten to dot-path columns; arrays
// inside an entry stay as their raw JSON text.
func FromJSON(raw []byte) *Table {
	parsed := gjson.ParseBytes(raw)
	t := &Table{}
	index := make(map[string]int)

	addRow := func(entry gjson.Result) {
		row := make([]string, len(t.Columns))
		flatten("", entry, func(col, val string) {
			i, ok := index[col]
			if !ok {
				i = len(t.Columns)
				index[col] = i
				t.Columns = append(t.Columns, col)
			}
			for len(row) < len(t.Columns) {
				row = append(row, "")
			}
			row[i] = val
		})
		t.Rows = append(t.Rows, row)
	}

	switch {
	case parsed.IsArray():
		parsed.ForEach(func(_, entry gjson.Result) bool {
			addRow(entry)
			return true
		})
	case parsed.IsObject():
		addRow(parsed)
	case parsed.Type == gjson.Null:
		// empty table
	default:
		t.Columns = []string{"value"}
		t.Rows = [][]string{{parsed.String()}}
	}

	// pad rows recorded before later columns appeared
	for i, row := range t.Rows {
		for len(row) < len(t.Columns) {
			row = append(row, "")
		}
		t.Rows[i] = row
	}

	return t
}

func flatten(prefix string, v gjson.Result, emit func(col, val string)) {
	if v.IsObject() {
		v.ForEach(func(key, value gjson.Result) bool {
			col := key.String()
			if prefix != "" {
				col = prefix + "." + col
			}
			flatten(col, value, emit)
			return true
		})
		return
	}
	if prefix == "" {
		prefix = "value"
	}
	if v.IsArray() {
		emit(prefix, v.Raw)
		return
	}
	emit(prefix, v.String())
}

// FromError renders a remote API error as a one-row table, preferring the
// APINGException fields when the exchange supplied them.
func FromError(e *aping.RPCError) *Table {
	if e == nil {
		return &Table{}
	}
	if ex := e.Exception(); ex != nil {
		return &Table{
			Columns: []string{"errorCode", "errorDetails", "requestUUID"},
			Rows:    [][]string{{ex.ErrorCode, ex.ErrorDetails, ex.RequestUUID}},
		}
	}
	return &Table{
		Columns: []string{"code", "message"},
		Rows:    [][]string{{strconv.Itoa(e.Code), e.Message}},
	}
}
