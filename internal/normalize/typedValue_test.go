package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decodeValue(t *testing.T, raw string) *TypedValue {
	t.Helper()
	var v *TypedValue
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestTypedValue_Unwrap(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind ValueKind
		want     any
	}{
		{"string", `{"type":"string","valueString":"ACME"}`, KindString, "ACME"},
		{"empty string is still a string", `{"valueString":""}`, KindString, ""},
		{"number", `{"valueNumber":2.5}`, KindNumber, 2.5},
		{"zero number", `{"valueNumber":0}`, KindNumber, 0.0},
		{"date", `{"valueDate":"2024-01-31"}`, KindDate, "2024-01-31"},
		{"currency yields amount", `{"valueCurrency":{"amount":1234.56,"currencyCode":"USD"}}`, KindCurrency, 1234.56},
		{"currency without amount", `{"valueCurrency":{"currencyCode":"EUR"}}`, KindCurrency, nil},
		{"unknown slot", `{"type":"address","valueAddress":{"city":"Paris"}}`, KindNone, nil},
		{"no slot at all", `{"content":"x","confidence":0.5}`, KindNone, nil},
		{"slot set to null", `{"valueString":null}`, KindNone, nil},
		{"not an object", `"just text"`, KindNone, nil},
		{"mistyped slot", `{"valueNumber":"12"}`, KindNone, nil},
		{"string wins over number", `{"valueNumber":3,"valueString":"three"}`, KindString, "three"},
		{"number wins over date", `{"valueDate":"2024-01-01","valueNumber":7}`, KindNumber, 7.0},
		{"date wins over currency", `{"valueCurrency":{"amount":1},"valueDate":"2024-01-01"}`, KindDate, "2024-01-01"},
		{"bad lower slot keeps string", `{"valueString":"INV-1","valueNumber":"oops"}`, KindString, "INV-1"},
		{"bad string slot falls through to number", `{"valueString":5,"valueNumber":2}`, KindNumber, 2.0},
		{"bad currency keeps date", `{"valueDate":"2024-02-29","valueCurrency":"USD 5"}`, KindDate, "2024-02-29"},
		{"bad array falls through to object", `{"valueArray":{"x":1},"valueObject":{}}`, KindObject, map[string]*TypedValue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decodeValue(t, tt.raw)
			if v.Kind() != tt.wantKind {
				t.Errorf("kind = %s, want %s", v.Kind(), tt.wantKind)
			}
			if got := v.Unwrap(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unwrap() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTypedValue_NilIsNone(t *testing.T) {
	var v *TypedValue
	if v.Kind() != KindNone || v.Unwrap() != nil {
		t.Fatalf("nil value should unwrap to nil, got kind %s value %#v", v.Kind(), v.Unwrap())
	}
	if decodeValue(t, `null`) != nil {
		t.Fatal("json null should decode to a nil value")
	}
}

func TestTypedValue_ArrayAndObject(t *testing.T) {
	v := decodeValue(t, `{"valueArray":[{"valueString":"a"},null,{"valueNumber":1}]}`)
	entries, ok := v.Unwrap().([]*TypedValue)
	if !ok {
		t.Fatalf("Unwrap() = %T, want []*TypedValue", v.Unwrap())
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Unwrap() != "a" || entries[1].Unwrap() != nil || entries[2].Unwrap() != 1.0 {
		t.Errorf("entries unwrap to %#v %#v %#v", entries[0].Unwrap(), entries[1].Unwrap(), entries[2].Unwrap())
	}

	obj := decodeValue(t, `{"valueObject":{"Description":{"valueString":"Widget"},"Amount":{"valueCurrency":{"amount":9.5}}}}`)
	m, ok := obj.Unwrap().(map[string]*TypedValue)
	if !ok {
		t.Fatalf("Unwrap() = %T, want map[string]*TypedValue", obj.Unwrap())
	}
	if m["Description"].Unwrap() != "Widget" || m["Amount"].Unwrap() != 9.5 {
		t.Errorf("object members unwrap to %#v %#v", m["Description"].Unwrap(), m["Amount"].Unwrap())
	}
	if m["Missing"].Unwrap() != nil {
		t.Error("missing member should unwrap to nil")
	}

	empty := decodeValue(t, `{"valueArray":[]}`)
	if got, ok := empty.Unwrap().([]*TypedValue); !ok || len(got) != 0 {
		t.Errorf("empty array unwrap = %#v", empty.Unwrap())
	}
	emptyObj := decodeValue(t, `{"valueObject":{}}`)
	if got, ok := emptyObj.Unwrap().(map[string]*TypedValue); !ok || len(got) != 0 {
		t.Errorf("empty object unwrap = %#v", emptyObj.Unwrap())
	}
}
