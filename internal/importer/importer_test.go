package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/importer"
)

func TestService_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Exported 2024-03-10 by Example Bank",
		"",
		"Date,Description,Amount,Category",
		"2024-03-01,Coffee,-4.50,eating-out",
		"02/03/2024,Groceries,\"-1,234.56\",groceries",
		"2024-03-03,Refund,($12.00),",
		"Pending transactions below",
		"2024-03-04,Salary,\"2,500.00\",income",
	}, "\n")

	svc := importer.NewService()

	params, err := svc.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 4)

	assert.Equal(t, "2024-03-01", params[0].Date)
	assert.Equal(t, "Coffee", params[0].Description)
	assert.Equal(t, -4.5, params[0].Amount)
	assert.Equal(t, "eating-out", params[0].BankCategory)

	// Day-first dates and thousands separators.
	assert.Equal(t, "2024-03-02", params[1].Date)
	assert.Equal(t, -1234.56, params[1].Amount)

	// Parentheses mean negative; currency symbol stripped.
	assert.Equal(t, -12.0, params[2].Amount)
	assert.Equal(t, "", params[2].BankCategory)

	assert.Equal(t, 2500.0, params[3].Amount)
}

func TestService_Parse_ColumnOrderIrrelevant(t *testing.T) {
	input := strings.Join([]string{
		"Amount,Payee,Date",
		"-10.00,Lunch,2024-03-01",
	}, "\n")

	svc := importer.NewService()

	params, err := svc.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "Lunch", params[0].Description)
	assert.Equal(t, -10.0, params[0].Amount)
	assert.Equal(t, "", params[0].BankCategory)
}

func TestService_Parse_NoHeader(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
	assert.Error(t, err)
}

func TestService_Parse_SkipsUnparseableRows(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Amount",
		"2024-03-01,Coffee,-4.50",
		"not-a-date,Garbage,-1.00",
		"2024-03-02,No amount,abc",
	}, "\n")

	svc := importer.NewService()

	params, err := svc.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Coffee", params[0].Description)
}
