package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ScalarKind discriminates the closed set of value types allowed in the
// extra bag. Nested structures are not representable on purpose.
type ScalarKind int

const (
	KindString ScalarKind = iota + 1
	KindInt
	KindDecimal
	KindBool
)

// Scalar is a tagged union over {string, int64, decimal, bool}.
type Scalar struct {
	kind ScalarKind
	s    string
	i    int64
	d    decimal.Decimal
	b    bool
}

func StringValue(s string) Scalar { return Scalar{kind: KindString, s: s} }
func IntValue(i int64) Scalar { return Scalar{kind: KindInt, i: i} }
func DecimalValue(d decimal.Decimal) Scalar { return Scalar{kind: KindDecimal, d: d} }
func BoolValue(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

func (v Scalar) Kind() ScalarKind { return v.kind }
func (v Scalar) String() string { return v.s }
func (v Scalar) Int() int64 { return v.i }
func (v Scalar) Decimal() decimal.Decimal { return v.d }
func (v Scalar) Bool() bool { return v.b }

// MarshalJSON emits the underlying scalar, so the extra bag serializes to a
// flat JSON object. Decimals are emitted as JSON numbers.
func (v Scalar) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.s)
	case KindInt:
		return json.Marshal(v.i)
	case KindDecimal:
		return []byte(v.d.String()), nil
	case KindBool:
		return json.Marshal(v.b)
	default:
		return nil, fmt.Errorf("extra: marshal of zero Scalar")
	}
}

// UnmarshalJSON restores a Scalar from its flat form. Numbers with a
// fractional part or exponent become decimals, others int64.
func (v *Scalar) UnmarshalJSON(data []byte) error {
	var probe any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&probe); err != nil {
		return err
	}
	switch t := probe.(type) {
	case string:
		*v = StringValue(t)
	case bool:
		*v = BoolValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			*v = IntValue(i)
			return nil
		}
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return fmt.Errorf("extra: non-decimal number %q: %w", t.String(), err)
		}
		*v = DecimalValue(d)
	default:
		return fmt.Errorf("extra: unsupported scalar %T", probe)
	}
	return nil
}

// ExtraField is one key/value pair of the extra bag.
type ExtraField struct {
	Key   string
	Value Scalar
}

// Extra is an ordered mapping of vendor-specific ancillary fields. Order is
// insertion order, which keeps serialization deterministic.
type Extra []ExtraField

// Set appends the key, or replaces the value in place if the key exists.
func (e Extra) Set(key string, v Scalar) Extra {
	for i := range e {
		if e[i].Key == key {
			e[i].Value = v
			return e
		}
	}
	return append(e, ExtraField{Key: key, Value: v})
}

// Get returns the value for key and whether it is present.
func (e Extra) Get(key string) (Scalar, bool) {
	for i := range e {
		if e[i].Key == key {
			return e[i].Value, true
		}
	}
	return Scalar{}, false
}

// MarshalJSON emits a single JSON object preserving insertion order.
func (e Extra) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, f := range e {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("extra: key %q: %w", f.Key, err)
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON restores the bag. Key order follows the document order of
// the JSON object.
func (e *Extra) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("extra: expected object, got %v", tok)
	}
	out := Extra{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key := kt.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var v Scalar
		if err := v.UnmarshalJSON(raw); err != nil {
			return err
		}
		out = append(out, ExtraField{Key: key, Value: v})
	}
	*e = out
	return nil
}
