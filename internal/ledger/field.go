// Package ledger is the pure view engine behind the dashboard: filtering,
// sorting, split grouping, and per-user allocation totals over in-memory
// transaction snapshots. Every function is a deterministic transformation of
// its inputs with no I/O and no mutation of arguments, so callers may re-run
// the engine on every render without synchronization.
//
// Malformed data degrades rather than failing: unparseable numbers and dates
// normalize to the null bucket, missing users or allocations yield zero
// totals, and unknown sort tokens fall back to the default order.
package ledger

// Field enumerates the filterable and sortable transaction fields.
type Field int

const (
	FieldDate Field = iota
	FieldAmount
	FieldDescription
	FieldBankCategory
	FieldCategory
	FieldLabel
)

// Type is a field's value type, which picks the normalization and comparison
// rules applied to it.
type Type int

const (
	TypeString Type = iota
	TypeNumber
	TypeDate
)

// Type returns the value type of the field: amount is numeric, date is a
// calendar date, everything else is free text.
func (f Field) Type() Type {
	switch f {
	case FieldAmount:
		return TypeNumber
	case FieldDate:
		return TypeDate
	default:
		return TypeString
	}
}

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldAmount:
		return "amount"
	case FieldDescription:
		return "description"
	case FieldBankCategory:
		return "bank_category"
	case FieldCategory:
		return "category"
	case FieldLabel:
		return "label"
	}

	return "unknown"
}
