package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlcarter/housetab/internal/ledger"
)

func TestNormalize(t *testing.T) {
	type testCase struct {
		name     string
		raw      string
		fieldTyp ledger.Type
		want     string
		wantOK   bool
	}

	tests := []testCase{
		{name: "EmptyString", raw: "", fieldTyp: ledger.TypeString, wantOK: false},
		{name: "WhitespaceOnly", raw: "   ", fieldTyp: ledger.TypeString, wantOK: false},
		{name: "TrimsWhitespace", raw: "  Groceries ", fieldTyp: ledger.TypeString, want: "Groceries", wantOK: true},
		{name: "NumberFromString", raw: "250.50", fieldTyp: ledger.TypeNumber, want: "250.5", wantOK: true},
		{name: "NumberNegative", raw: "-13.20", fieldTyp: ledger.TypeNumber, want: "-13.2", wantOK: true},
		{name: "NumberGarbage", raw: "12x", fieldTyp: ledger.TypeNumber, wantOK: false},
		{name: "NumberEmpty", raw: "", fieldTyp: ledger.TypeNumber, wantOK: false},
		{name: "DateISO", raw: "2023-01-15", fieldTyp: ledger.TypeDate, want: "2023-01-15", wantOK: true},
		{name: "DateDropsTime", raw: "2023-01-15T09:30:00Z", fieldTyp: ledger.TypeDate, want: "2023-01-15", wantOK: true},
		{name: "DateEuropean", raw: "15/01/2023", fieldTyp: ledger.TypeDate, want: "2023-01-15", wantOK: true},
		{name: "DateInvalid", raw: "not-a-date", fieldTyp: ledger.TypeDate, wantOK: false},
		{name: "DateEmpty", raw: "  ", fieldTyp: ledger.TypeDate, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ledger.Normalize(tt.raw, tt.fieldTyp)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	type testCase struct {
		name     string
		a, b     string
		fieldTyp ledger.Type
		want     bool
	}

	tests := []testCase{
		{name: "BothNullBuckets", a: "", b: "   ", fieldTyp: ledger.TypeString, want: true},
		{name: "NullVsValue", a: "", b: "Food", fieldTyp: ledger.TypeString, want: false},
		{name: "TrimmedEqual", a: " Food ", b: "Food", fieldTyp: ledger.TypeString, want: true},
		{name: "CaseSensitive", a: "food", b: "Food", fieldTyp: ledger.TypeString, want: false},
		{name: "NumberFormats", a: "100.0", b: "100", fieldTyp: ledger.TypeNumber, want: true},
		{name: "BothUnparsableNumbers", a: "abc", b: "def", fieldTyp: ledger.TypeNumber, want: true},
		{name: "DateWithAndWithoutTime", a: "2024-02-01T10:00:00Z", b: "2024-02-01", fieldTyp: ledger.TypeDate, want: true},
		{name: "DifferentDates", a: "2024-02-01", b: "2024-02-02", fieldTyp: ledger.TypeDate, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.Equal(tt.a, tt.b, tt.fieldTyp))
		})
	}
}

func TestFieldType(t *testing.T) {
	assert.Equal(t, ledger.TypeNumber, ledger.FieldAmount.Type())
	assert.Equal(t, ledger.TypeDate, ledger.FieldDate.Type())
	assert.Equal(t, ledger.TypeString, ledger.FieldDescription.Type())
	assert.Equal(t, ledger.TypeString, ledger.FieldBankCategory.Type())
	assert.Equal(t, ledger.TypeString, ledger.FieldCategory.Type())
	assert.Equal(t, ledger.TypeString, ledger.FieldLabel.Type())
}
