package table

import (
	"reflect"
	"testing"

	"github.com/alexbotov/betfair/pkg/aping"
)

func TestFromResultSlice(t *testing.T) {
	type competition struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	type result struct {
		Competition competition `json:"competition"`
		MarketCount int         `json:"marketCount"`
	}

	table, err := FromResult([]result{
		{Competition: competition{ID: "10932509", Name: "English Premier League"}, MarketCount: 973},
		{Competition: competition{ID: "228", Name: "La Liga"}, MarketCount: 614},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantColumns := []string{"competition.id", "competition.name", "marketCount"}
	if !reflect.DeepEqual(table.Columns, wantColumns) {
		t.Errorf("Expected columns %v, got %v", wantColumns, table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"10932509", "English Premier League", "973"}) {
		t.Errorf("Unexpected first row: %v", table.Rows[0])
	}
	if !reflect.DeepEqual(table.Rows[1], []string{"228", "La Liga", "614"}) {
		t.Errorf("Unexpected second row: %v", table.Rows[1])
	}
}

func TestFromJSONBackfillsColumns(t *testing.T) {
	table := FromJSON([]byte(`[{"a":1},{"a":2,"b":"x"}]`))

	if !reflect.DeepEqual(table.Columns, []string{"a", "b"}) {
		t.Errorf("Expected columns [a b], got %v", table.Columns)
	}
	// The first row predates column b and must be padded
	if !reflect.DeepEqual(table.Rows[0], []string{"1", ""}) {
		t.Errorf("Expected padded first row, got %v", table.Rows[0])
	}
	if !reflect.DeepEqual(table.Rows[1], []string{"2", "x"}) {
		t.Errorf("Unexpected second row: %v", table.Rows[1])
	}
}

func TestFromJSONKeepsArraysRaw(t *testing.T) {
	table := FromJSON([]byte(`[{"marketId":"1.1","runners":[{"selectionId":1},{"selectionId":2}]}]`))

	if !reflect.DeepEqual(table.Columns, []string{"marketId", "runners"}) {
		t.Errorf("Unexpected columns: %v", table.Columns)
	}
	if table.Rows[0][1] != `[{"selectionId":1},{"selectionId":2}]` {
		t.Errorf("Expected raw JSON array cell, got %q", table.Rows[0][1])
	}
}

func TestFromJSONObject(t *testing.T) {
	table := FromJSON([]byte(`{"availableToBetBalance":250.75,"exposure":-12.5}`))

	if len(table.Rows) != 1 {
		t.Fatalf("Expected a single row, got %d", len(table.Rows))
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"250.75", "-12.5"}) {
		t.Errorf("Unexpected row: %v", table.Rows[0])
	}
}

func TestFromJSONScalar(t *testing.T) {
	table := FromJSON([]byte(`42`))

	if !reflect.DeepEqual(table.Columns, []string{"value"}) {
		t.Errorf("Expected value column, got %v", table.Columns)
	}
	if table.Rows[0][0] != "42" {
		t.Errorf("Expected cell '42', got %q", table.Rows[0][0])
	}
}

func TestFromJSONNull(t *testing.T) {
	table := FromJSON([]byte(`null`))

	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("Expected empty table, got %+v", table)
	}
}

func TestFromError(t *testing.T) {
	e := &aping.RPCError{
		Code:    -32099,
		Message: "ANGX-0003",
		Data: &aping.ErrorData{
			APINGException: &aping.APINGException{
				ErrorCode:    "INVALID_SESSION_INFORMATION",
				ErrorDetails: "session expired",
				RequestUUID:  "prdang001-123",
			},
		},
	}

	table := FromError(e)
	if !reflect.DeepEqual(table.Columns, []string{"errorCode", "errorDetails", "requestUUID"}) {
		t.Errorf("Unexpected columns: %v", table.Columns)
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"INVALID_SESSION_INFORMATION", "session expired", "prdang001-123"}) {
		t.Errorf("Unexpected row: %v", table.Rows[0])
	}
}

func TestFromErrorWithoutException(t *testing.T) {
	table := FromError(&aping.RPCError{Code: -32700, Message: "Parse error"})

	if !reflect.DeepEqual(table.Columns, []string{"code", "message"}) {
		t.Errorf("Unexpected columns: %v", table.Columns)
	}
	if !reflect.DeepEqual(table.Rows[0], []string{"-32700", "Parse error"}) {
		t.Errorf("Unexpected row: %v", table.Rows[0])
	}
}
