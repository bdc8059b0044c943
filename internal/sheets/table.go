package sheets

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Envelope markers wrapped around every gviz JSON response.
const (
	envelopePrefix = "/*O_o*/\ngoogle.visualization.Query.setResponse("
	envelopeSuffix = ");"
)

// Table is the decoded tabular payload: ordered columns and ordered rows.
type Table struct {
	Cols []Column `json:"cols"`
	Rows []Row    `json:"rows"`
}

// Column describes one spreadsheet column.
type Column struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Type    string `json:"type"`
	Pattern string `json:"pattern,omitempty"`
}

// Row holds the cells of one spreadsheet row. Empty cells are nil.
type Row struct {
	C []*Cell `json:"c"`
}

// Cell is a raw cell value (V) with its optional formatted rendition (F).
type Cell struct {
	V any    `json:"v"`
	F string `json:"f,omitempty"`
}

// Text returns the raw value as text. Nil cells and null values yield "".
func (c *Cell) Text() string {
	if c == nil || c.V == nil {
		return ""
	}
	switch v := c.V.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// StringCell wraps a text value for sources that only carry strings (csv, xlsx).
// Empty strings become nil cells, matching how gviz reports blanks.
func StringCell(s string) *Cell {
	if s == "" {
		return nil
	}
	return &Cell{V: s}
}

// Labels returns the column labels in order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.Cols))
	for i, c := range t.Cols {
		out[i] = c.Label
	}
	return out
}

type queryError struct {
	Reason          string `json:"reason"`
	Message         string `json:"message"`
	DetailedMessage string `json:"detailed_message"`
}

type response struct {
	Version string       `json:"version"`
	ReqID   string       `json:"reqId"`
	Status  string       `json:"status"`
	Sig     string       `json:"sig"`
	Errors  []queryError `json:"errors"`
	Table   *Table       `json:"table"`
}

// ParsePayload strips the fixed gviz envelope and decodes the table inside it.
func ParsePayload(payload []byte) (*Table, error) {
	if len(payload) < len(envelopePrefix)+len(envelopeSuffix) {
		return nil, &MalformedPayloadError{Reason: "payload shorter than envelope"}
	}
	if !bytes.HasPrefix(payload, []byte(envelopePrefix)) {
		return nil, &MalformedPayloadError{Reason: "envelope prefix not found"}
	}
	if !bytes.HasSuffix(payload, []byte(envelopeSuffix)) {
		return nil, &MalformedPayloadError{Reason: "envelope suffix not found"}
	}
	body := payload[len(envelopePrefix) : len(payload)-len(envelopeSuffix)]

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &MalformedPayloadError{Reason: "decode json", Err: err}
	}
	if strings.EqualFold(resp.Status, "error") {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			if e.DetailedMessage != "" {
				msgs = append(msgs, e.DetailedMessage)
			} else {
				msgs = append(msgs, e.Message)
			}
		}
		return nil, &MalformedPayloadError{Reason: "query error: " + strings.Join(msgs, "; ")}
	}
	if resp.Table == nil {
		return nil, &MalformedPayloadError{Reason: "missing table"}
	}
	return resp.Table, nil
}

// WrapPayload encodes a table inside the gviz envelope. It is the inverse of ParsePayload
// and is used to save a fetched sheet for offline runs.
func WrapPayload(t *Table) ([]byte, error) {
	body, err := json.Marshal(response{Version: "0.6", Status: "ok", Table: t})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(envelopePrefix) + len(body) + len(envelopeSuffix))
	buf.WriteString(envelopePrefix)
	buf.Write(body)
	buf.WriteString(envelopeSuffix)
	return buf.Bytes(), nil
}
