package ledger

import (
	"github.com/mlcarter/housetab/internal/transaction"
)

// DateRange is an inclusive calendar-date window. Either bound may be empty
// for an open end; a bound that fails to parse is treated as absent.
type DateRange struct {
	Start string
	End   string
}

// Config is the declarative filter and sort state of the transactions view.
// Accepted-value lists use set semantics; an empty list is a no-op. An entry
// that normalizes to the null bucket (the empty string) accepts transactions
// with no value in that field.
type Config struct {
	Date           DateRange
	BankCategories []string
	Labels         []string
	SortBy         string
}

// Apply runs the full pipeline: date-range, bank-category, and label filters,
// then a single sort pass. The filters are pure intersections so their order
// does not affect the result, and applying the same config twice yields the
// same collection. The input slice is never modified.
//
// Category filtering is layered on by the caller via FilterByCategory, since
// the display category is derived from the mapping table outside this
// pipeline.
func Apply(txs []*transaction.Transaction, cfg Config) []*transaction.Transaction {
	out := FilterByDate(txs, cfg.Date)
	out = FilterByValues(out, FieldBankCategory, cfg.BankCategories)
	out = FilterByValues(out, FieldLabel, cfg.Labels)

	return Sort(out, cfg.SortBy)
}

// FilterByDate keeps transactions within the inclusive range. A transaction
// whose own date does not parse fails any active bound.
func FilterByDate(txs []*transaction.Transaction, r DateRange) []*transaction.Transaction {
	start, hasStart := NormalizeDate(r.Start)
	end, hasEnd := NormalizeDate(r.End)

	if !hasStart && !hasEnd {
		return copyOf(txs)
	}

	out := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		date, ok := NormalizeDate(tx.Date)
		if !ok {
			continue
		}

		if hasStart && date < start {
			continue
		}

		if hasEnd && date > end {
			continue
		}

		out = append(out, tx)
	}

	return out
}

// FilterByValues keeps transactions whose normalized field value is in the
// accepted set. Accepted entries are normalized with the same rules, so the
// null bucket is matched by any entry that normalizes to no-value and a
// stored null, empty, or blank field are one bucket, never three.
func FilterByValues(txs []*transaction.Transaction, f Field, accepted []string) []*transaction.Transaction {
	if len(accepted) == 0 {
		return copyOf(txs)
	}

	set := make(map[string]struct{}, len(accepted))

	allowNull := false

	for _, v := range accepted {
		norm, ok := Normalize(v, f.Type())
		if !ok {
			allowNull = true
			continue
		}

		set[norm] = struct{}{}
	}

	out := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		val, ok := Normalize(fieldValue(tx, f), f.Type())
		if !ok {
			if allowNull {
				out = append(out, tx)
			}

			continue
		}

		if _, found := set[val]; found {
			out = append(out, tx)
		}
	}

	return out
}

// FilterByCategory filters on the derived display category, same null-bucket
// contract as the pipeline filters.
func FilterByCategory(txs []*transaction.Transaction, accepted []string) []*transaction.Transaction {
	return FilterByValues(txs, FieldCategory, accepted)
}

// fieldValue reads a field off a transaction. Exhaustive over Field so a new
// field cannot silently filter as empty.
func fieldValue(tx *transaction.Transaction, f Field) string {
	switch f {
	case FieldDate:
		return tx.Date
	case FieldAmount:
		return formatAmount(tx.Amount)
	case FieldDescription:
		return tx.Description
	case FieldBankCategory:
		return tx.BankCategory
	case FieldCategory:
		return tx.Category
	case FieldLabel:
		return tx.Label
	}

	return ""
}

func copyOf(txs []*transaction.Transaction) []*transaction.Transaction {
	out := make([]*transaction.Transaction, len(txs))
	copy(out, txs)

	return out
}
