package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a tagged variant holding one JSON value. Mixed types per field
// across records are resolved at table-materialization time, not here.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	seq  []Value
	m    map[string]Value
}

func Null() Value                      { return Value{kind: KindNull} }
func Bool(b bool) Value                { return Value{kind: KindBool, b: b} }
func Number(n float64) Value           { return Value{kind: KindNumber, n: n} }
func String(s string) Value            { return Value{kind: KindString, s: s} }
func Sequence(vs []Value) Value        { return Value{kind: KindSequence, seq: vs} }
func Mapping(m map[string]Value) Value { return Value{kind: KindMapping, m: m} }

// FromAny converts a value produced by encoding/json into a Value
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		seq := make([]Value, len(t))
		for i, e := range t {
			seq[i] = FromAny(e)
		}
		return Sequence(seq)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = FromAny(e)
		}
		return Mapping(m)
	default:
		// encoding/json never produces anything else
		return String(fmt.Sprintf("%v", t))
	}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() bool        { return v.b }
func (v Value) AsNumber() float64   { return v.n }
func (v Value) AsString() string    { return v.s }
func (v Value) AsSequence() []Value { return v.seq }

func (v Value) AsMapping() map[string]Value { return v.m }

// AsAny converts back to the plain representation used by encoding/json
func (v Value) AsAny() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindSequence:
		res := make([]any, len(v.seq))
		for i, e := range v.seq {
			res[i] = e.AsAny()
		}
		return res
	case KindMapping:
		res := make(map[string]any, len(v.m))
		for k, e := range v.m {
			res[k] = e.AsAny()
		}
		return res
	}
	return nil
}

// CoerceString renders the value as a string - this is the conflict policy
// applied when a column is observed with more than one kind
func (v Value) CoerceString() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	case KindSequence, KindMapping:
		// structured values are rendered as JSON
		b, err := json.Marshal(v.AsAny())
		if err != nil {
			return fmt.Sprintf("%v", v.AsAny())
		}
		return string(b)
	}
	return ""
}

// MappingKeys returns the mapping keys in sorted order, for deterministic
// iteration
func (v Value) MappingKeys() []string {
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
