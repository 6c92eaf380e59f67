package richtext

import "encoding/json"

// --- Wire format -------------------------------------------------------
//
// Documents are exchanged with the embedding host as JSON:
//
//    { "text": "…", "spans": [ { "start": 0, "end": 5,
//                                "attributes": { "bold": true } } ] }
//
// Omitted style flags are equivalent to false, a missing text member is
// equivalent to the empty string. This contract is bit-exact: encoding a
// decoded document yields an equivalent wire value.

// SelectionData describes a selection range together with the styles
// considered active at it, for delivery to the host.
type SelectionData struct {
	Start        int   `json:"start"`
	End          int   `json:"end"`
	ActiveStyles Style `json:"activeStyles"`
}

// MarshalJSON encodes a document for the wire. The spans member is always
// encoded as an array, never as null.
func (doc Document) MarshalJSON() ([]byte, error) {
	type documentJSON Document // shed the method set to avoid recursion
	d := documentJSON(doc)
	if d.Spans == nil {
		d.Spans = []Span{}
	}
	return json.Marshal(d)
}

// DecodeDocument decodes a document from its wire representation. Missing
// members default rather than fail: an absent text member decodes to the
// empty string, absent style flags to false.
func DecodeDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		tracer().Errorf("wire: cannot decode document: %s", err.Error())
		return Document{}, err
	}
	return doc, nil
}

// EncodeDocument encodes a document to its wire representation.
func EncodeDocument(doc Document) ([]byte, error) {
	return json.Marshal(doc)
}
