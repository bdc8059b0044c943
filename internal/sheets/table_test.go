package sheets

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const samplePayload = "/*O_o*/\ngoogle.visualization.Query.setResponse(" +
	`{"version":"0.6","reqId":"0","status":"ok","sig":"1","table":{"cols":[` +
	`{"id":"A","label":"Name","type":"string"},` +
	`{"id":"B","label":"Present","type":"string"},` +
	`{"id":"C","label":"Table number","type":"number","pattern":"General"}],` +
	`"rows":[{"c":[{"v":"Anna Berg"},{"v":"p"},{"v":3.0,"f":"3"}]},` +
	`{"c":[{"v":"Olav Dahl"},null,{"v":null}]}],"parsedNumHeaders":1}}` +
	");"

func TestParsePayload(t *testing.T) {
	tbl, err := ParsePayload([]byte(samplePayload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := tbl.Labels(); !cmp.Equal(got, []string{"Name", "Present", "Table number"}) {
		t.Fatalf("labels: %v", got)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows: %d", len(tbl.Rows))
	}
	r0 := tbl.Rows[0].C
	if r0[0].Text() != "Anna Berg" || r0[1].Text() != "p" || r0[2].Text() != "3" {
		t.Fatalf("row 0 texts: %q %q %q", r0[0].Text(), r0[1].Text(), r0[2].Text())
	}
	if r0[2].F != "3" {
		t.Fatalf("formatted: %q", r0[2].F)
	}
	r1 := tbl.Rows[1].C
	if r1[1] != nil {
		t.Fatalf("expected nil cell, got %+v", r1[1])
	}
	if r1[1].Text() != "" || r1[2].Text() != "" {
		t.Fatalf("expected empty texts")
	}
}

func TestParsePayload_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"no prefix":   `{"table":{"cols":[],"rows":[]}}`,
		"bad prefix":  "/*O_o*/\ngoogle.visualization.Query.setRespons({\"table\":{}});",
		"no suffix":   "/*O_o*/\ngoogle.visualization.Query.setResponse({\"table\":{}})",
		"bad json":    "/*O_o*/\ngoogle.visualization.Query.setResponse({\"table\":);",
		"no table":    "/*O_o*/\ngoogle.visualization.Query.setResponse({\"status\":\"ok\"});",
		"query error": "/*O_o*/\ngoogle.visualization.Query.setResponse({\"status\":\"error\",\"errors\":[{\"reason\":\"invalid_query\",\"message\":\"INVALID_QUERY\"}]});",
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePayload([]byte(payload))
			var mp *MalformedPayloadError
			if !errors.As(err, &mp) {
				t.Fatalf("expected MalformedPayloadError, got %v", err)
			}
		})
	}
}

func TestParsePayload_StripsExactOffsets(t *testing.T) {
	if len(envelopePrefix) != 47 || len(envelopeSuffix) != 2 {
		t.Fatalf("envelope widths changed: %d/%d", len(envelopePrefix), len(envelopeSuffix))
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	tbl, err := ParsePayload([]byte(samplePayload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	body, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Table
	if err := json.Unmarshal(body, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(tbl, &back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	wrapped, err := WrapPayload(tbl)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	again, err := ParsePayload(wrapped)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(again.Cols) != len(tbl.Cols) || len(again.Rows) != len(tbl.Rows) {
		t.Fatalf("shape changed: %dx%d", len(again.Rows), len(again.Cols))
	}
}

func TestCellText(t *testing.T) {
	cases := []struct {
		cell *Cell
		want string
	}{
		{nil, ""},
		{&Cell{}, ""},
		{&Cell{V: "cold"}, "cold"},
		{&Cell{V: 2.0}, "2"},
		{&Cell{V: 2.5}, "2.5"},
		{&Cell{V: true}, "true"},
	}
	for _, c := range cases {
		if got := c.cell.Text(); got != c.want {
			t.Fatalf("Text(%+v) = %q, want %q", c.cell, got, c.want)
		}
	}
	if StringCell("") != nil {
		t.Fatalf("empty string should map to a nil cell")
	}
}
