package user

import "context"

type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

// Roster returns the users offered as split targets: active and real.
// Inactive users stay out of candidate lists but keep their historical totals.
func (s *Service) Roster(ctx context.Context) ([]User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]User, 0, len(users))

	for _, u := range users {
		if u.IsActive && u.IsReal() {
			roster = append(roster, u)
		}
	}

	return roster, nil
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}
