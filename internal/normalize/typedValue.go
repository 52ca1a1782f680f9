package normalize

import (
	"bytes"
	"encoding/json"
)

// ValueKind is which slot of a Document Intelligence field carried the value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindString
	KindNumber
	KindDate
	KindCurrency
	KindArray
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindCurrency:
		return "currency"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "none"
}

// TypedValue is a field as the backend sends it, decoded into exactly one kind.
// A nil *TypedValue behaves like KindNone.
type TypedValue struct {
	kind   ValueKind
	text   string
	number *float64
	array  []*TypedValue
	object map[string]*TypedValue
}

type wireCurrency struct {
	Amount         *float64 `json:"amount"`
	CurrencySymbol string   `json:"currencySymbol,omitempty"`
	CurrencyCode   string   `json:"currencyCode,omitempty"`
}

const (
	slotString   = "valueString"
	slotNumber   = "valueNumber"
	slotDate     = "valueDate"
	slotCurrency = "valueCurrency"
	slotArray    = "valueArray"
	slotObject   = "valueObject"
)

// UnmarshalJSON picks the first usable slot in precedence order
// string, number, date, currency, array, object. Each slot is decoded on its own, so a slot that is
// null or of the wrong JSON type is skipped without hiding the others.
// Shapes it does not recognise decode to KindNone.
func (v *TypedValue) UnmarshalJSON(data []byte) error {
	*v = TypedValue{}
	var slots map[string]json.RawMessage
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil
	}

	var (
		text     string
		number   float64
		currency wireCurrency
		array    []*TypedValue
		object   map[string]*TypedValue
	)
	switch {
	case decodeSlot(slots, slotString, &text):
		v.kind, v.text = KindString, text
	case decodeSlot(slots, slotNumber, &number):
		v.kind, v.number = KindNumber, &number
	case decodeSlot(slots, slotDate, &text):
		v.kind, v.text = KindDate, text
	case decodeSlot(slots, slotCurrency, &currency):
		v.kind, v.number = KindCurrency, currency.Amount
	case decodeSlot(slots, slotArray, &array):
		v.kind, v.array = KindArray, array
		if v.array == nil {
			v.array = []*TypedValue{}
		}
	case decodeSlot(slots, slotObject, &object):
		v.kind, v.object = KindObject, object
		if v.object == nil {
			v.object = map[string]*TypedValue{}
		}
	}
	return nil
}

// decodeSlot reports whether the named slot is present, non-null and decodes into dst.
func decodeSlot(slots map[string]json.RawMessage, name string, dst any) bool {
	raw, ok := slots[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (v *TypedValue) Kind() ValueKind {
	if v == nil {
		return KindNone
	}
	return v.kind
}

// Unwrap returns the plain value: string for string and date fields, float64 for numbers and
// for the amount of a currency, []*TypedValue for arrays, map[string]*TypedValue for objects.
// It returns nil for absent fields, unknown kinds and currencies without an amount.
func (v *TypedValue) Unwrap() any {
	switch v.Kind() {
	case KindString, KindDate:
		return v.text
	case KindNumber, KindCurrency:
		if v.number == nil {
			return nil
		}
		return *v.number
	case KindArray:
		return v.array
	case KindObject:
		return v.object
	}
	return nil
}
