package transaction

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id int64) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)

	SetMark(ctx context.Context, id int64, mark bool) error
	SetLabel(ctx context.Context, id int64, label string) error

	CreateSplit(ctx context.Context, parent *Transaction, children []*Transaction) error
	RemoveSplit(ctx context.Context, parentID int64) error

	ReplaceAllocations(ctx context.Context, txID int64, allocs []Allocation) error
	DeleteAllocations(ctx context.Context, txID int64) error
	ListAllocations(ctx context.Context) (Allocations, error)

	BeginImport(ctx context.Context, minDate, maxDate string) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, params []CreateParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date         string
	Description  string
	Amount       float64
	BankCategory string
	Label        string
}

type ListFilter struct {
	StartDate *string
	EndDate   *string
}

// SplitPart describes one child of a split: its own amount and optional
// overrides for description and label. Child amounts should sum to the
// parent's amount; this is the caller's responsibility, not validated here.
type SplitPart struct {
	Amount      float64
	Description string
	Label       string
}

// AllocationParams is one user's share in a split configuration.
type AllocationParams struct {
	UserID        int64
	Amount        float64
	SplitTypeCode string
	Percentage    *float64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		Date:         params.Date,
		Description:  params.Description,
		Amount:       params.Amount,
		BankCategory: params.BankCategory,
		Label:        params.Label,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTransaction(ctx, id)
}

func (s *Service) SetMark(ctx context.Context, id int64, mark bool) error {
	return s.repo.SetMark(ctx, id, mark)
}

// SetLabel updates the legacy assignment label. The label only governs money
// math for transactions without allocations, but it stays writable so older
// rows keep working.
func (s *Service) SetLabel(ctx context.Context, id int64, label string) error {
	return s.repo.SetLabel(ctx, id, label)
}

// Split partitions a transaction into child transactions. The parent keeps
// its amount and gains has_split; each child points back via split_from_id
// and inherits the parent's date and bank category unless overridden.
func (s *Service) Split(ctx context.Context, parentID int64, parts []SplitPart) ([]*Transaction, error) {
	if len(parts) < 2 {
		return nil, fmt.Errorf("split needs at least 2 parts, got %d", len(parts))
	}

	parent, err := s.repo.GetTransaction(ctx, parentID)
	if err != nil {
		return nil, err
	}

	children := make([]*Transaction, len(parts))

	for i, p := range parts {
		desc := p.Description
		if desc == "" {
			desc = parent.Description
		}

		id := parent.ID
		children[i] = &Transaction{
			Date:         parent.Date,
			Description:  desc,
			Amount:       p.Amount,
			BankCategory: parent.BankCategory,
			Label:        p.Label,
			SplitFromID:  &id,
		}
	}

	if err := s.repo.CreateSplit(ctx, parent, children); err != nil {
		return nil, fmt.Errorf("creating split: %w", err)
	}

	return children, nil
}

// Unsplit deletes a transaction's children and clears its has_split flag.
func (s *Service) Unsplit(ctx context.Context, parentID int64) error {
	parent, err := s.repo.GetTransaction(ctx, parentID)
	if err != nil {
		return err
	}

	if !parent.HasSplit {
		return ErrNotSplit
	}

	return s.repo.RemoveSplit(ctx, parentID)
}

// SetSplitConfig replaces a transaction's allocation list. An empty list
// clears the configuration, dropping the transaction back to legacy mode.
func (s *Service) SetSplitConfig(ctx context.Context, txID int64, params []AllocationParams) error {
	if _, err := s.repo.GetTransaction(ctx, txID); err != nil {
		return err
	}

	if len(params) == 0 {
		return s.repo.DeleteAllocations(ctx, txID)
	}

	allocs := make([]Allocation, len(params))
	for i, p := range params {
		allocs[i] = Allocation{
			TransactionID: txID,
			UserID:        p.UserID,
			Amount:        p.Amount,
			SplitTypeCode: p.SplitTypeCode,
			Percentage:    p.Percentage,
		}
	}

	return s.repo.ReplaceAllocations(ctx, txID, allocs)
}

func (s *Service) ClearSplitConfig(ctx context.Context, txID int64) error {
	return s.repo.DeleteAllocations(ctx, txID)
}

// AllAllocations returns every allocation grouped by transaction, the
// snapshot shape the dashboard and the ledger engine consume.
func (s *Service) AllAllocations(ctx context.Context) (Allocations, error) {
	return s.repo.ListAllocations(ctx)
}

type ImportResult struct {
	Imported  []*Transaction
	New       []CreateParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Transaction
}

type dupKey struct {
	Date        string
	Amount      float64
	Description string
}

func keyOf(date, description string, amount float64) dupKey {
	return dupKey{Date: date, Amount: amount, Description: description}
}

// ImportBatch inserts statement rows that are not already present. Rows
// matching an existing transaction on (date, amount, description) are
// reported as conflicts and nothing is written; the caller may re-submit the
// reviewed remainder through CreateBatch.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	minDate, maxDate := dateBounds(params)

	itx, err := s.repo.BeginImport(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]*Transaction, len(duplicates))
	for _, d := range duplicates {
		lookup[keyOf(d.Date, d.Description, d.Amount)] = d
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		existing, found := lookup[keyOf(p.Date, p.Description, p.Amount)]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	txs := paramsToTransactions(newParams)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: txs}, nil
}

// CreateBatch inserts the given rows without duplicate checks, used after
// the caller has reviewed an ImportBatch conflict report.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	minDate, maxDate := dateBounds(params)

	itx, err := s.repo.BeginImport(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	txs := paramsToTransactions(params)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return txs, nil
}

// dateBounds returns the min and max ISO dates in params. ISO dates compare
// correctly as strings.
func dateBounds(params []CreateParams) (string, string) {
	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date < minDate {
			minDate = p.Date
		}

		if p.Date > maxDate {
			maxDate = p.Date
		}
	}

	return minDate, maxDate
}

func paramsToTransactions(params []CreateParams) []*Transaction {
	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			Date:         p.Date,
			Description:  p.Description,
			Amount:       p.Amount,
			BankCategory: p.BankCategory,
			Label:        p.Label,
		}
	}

	return txs
}
