package ledger

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mlcarter/housetab/internal/transaction"
)

// DefaultSort is the order used when the sort token is empty or not
// recognized: newest first. The fallback is deliberate, not data loss.
const DefaultSort = "date-desc"

// ParseSort resolves a "<field>-asc" / "<field>-desc" token. Only date,
// amount, and description are sortable; anything else resolves to the
// default order.
func ParseSort(token string) (Field, bool) {
	name, dir, found := strings.Cut(token, "-")
	if !found {
		return FieldDate, false
	}

	asc := false

	switch dir {
	case "asc":
		asc = true
	case "desc":
	default:
		return FieldDate, false
	}

	switch name {
	case "date":
		return FieldDate, asc
	case "amount":
		return FieldAmount, asc
	case "description":
		return FieldDescription, asc
	}

	return FieldDate, false
}

// Sort returns a new slice ordered by the given token. Every order is total:
// equal-ranked transactions tie-break on ascending ID, so the result does not
// depend on the incoming order and repeated sorting is deterministic.
func Sort(txs []*transaction.Transaction, token string) []*transaction.Transaction {
	field, asc := ParseSort(token)

	out := copyOf(txs)

	sort.SliceStable(out, func(i, j int) bool {
		c := compareField(out[i], out[j], field)
		if c != 0 {
			if asc {
				return c < 0
			}

			return c > 0
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// compareField orders two transactions ascending on the field. Null dates
// and descriptions sort before all values ascending (and therefore after all
// values descending).
func compareField(a, b *transaction.Transaction, f Field) int {
	switch f {
	case FieldAmount:
		switch {
		case a.Amount < b.Amount:
			return -1
		case a.Amount > b.Amount:
			return 1
		}

		return 0
	case FieldDescription:
		av, aok := Normalize(strings.ToLower(a.Description), TypeString)
		bv, bok := Normalize(strings.ToLower(b.Description), TypeString)

		return compareNullable(av, aok, bv, bok)
	default:
		av, aok := NormalizeDate(a.Date)
		bv, bok := NormalizeDate(b.Date)

		return compareNullable(av, aok, bv, bok)
	}
}

// compareNullable compares two normalized (value, ok) pairs with nulls first.
func compareNullable(av string, aok bool, bv string, bok bool) int {
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}

	return strings.Compare(av, bv)
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
