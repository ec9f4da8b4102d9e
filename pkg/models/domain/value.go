package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the shapes an analysis value can take.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindRecord
)

// Field is a single key/value entry of a record. Records keep their
// fields as an ordered slice because insertion order is significant
// for display and Go maps do not preserve it.
type Field struct {
	Key   string
	Value Value
}

// Value is one node of an analysis payload tree: a scalar, a list, or
// a nested record. Payloads are trees; a Value never references its
// own ancestors.
type Value struct {
	Kind   ValueKind
	Str    string
	Num    float64
	Bool   bool
	List   []Value
	Fields []Field
}

func Null() Value                 { return Value{Kind: KindNull} }
func String(s string) Value       { return Value{Kind: KindString, Str: s} }
func Number(f float64) Value      { return Value{Kind: KindNumber, Num: f} }
func Boolean(b bool) Value        { return Value{Kind: KindBool, Bool: b} }
func ListOf(items ...Value) Value { return Value{Kind: KindList, List: items} }
func Record(fields ...Field) Value {
	return Value{Kind: KindRecord, Fields: fields}
}

// IsNull reports whether the value is the null scalar.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Get returns the field value for key, preserving the record contract
// that absent fields are absence, not failure.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindRecord {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// GetString returns the string field for key, or "" when the field is
// absent or not a string.
func (v Value) GetString(key string) string {
	f, ok := v.Get(key)
	if !ok || f.Kind != KindString {
		return ""
	}
	return f.Str
}

// GetList returns the list field for key, or nil when absent.
func (v Value) GetList(key string) []Value {
	f, ok := v.Get(key)
	if !ok || f.Kind != KindList {
		return nil
	}
	return f.List
}

// GetRecord returns the nested record for key.
func (v Value) GetRecord(key string) (Value, bool) {
	f, ok := v.Get(key)
	if !ok || f.Kind != KindRecord {
		return Value{}, false
	}
	return f, true
}

// GetStrings returns the list field for key flattened to its string
// elements; non-string elements are skipped.
func (v Value) GetStrings(key string) []string {
	var out []string
	for _, item := range v.GetList(key) {
		if item.Kind == KindString {
			out = append(out, item.Str)
		}
	}
	return out
}

// UnmarshalJSON decodes JSON into the value tree using the token
// stream so that record fields keep their source order.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalJSON writes the value back out in field order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			rec := Value{Kind: KindRecord}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				rec.Fields = append(rec.Fields, Field{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return rec, nil
		case '[':
			list := Value{Kind: KindList}
			for dec.More() {
				child, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				list.List = append(list.List, child)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return list, nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return Value{Kind: KindNumber, Num: f}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindString:
		b, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindNumber:
		b, err := json.Marshal(v.Num)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.List {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindRecord:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := encodeValue(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown value kind %d", v.Kind)
	}
	return nil
}
