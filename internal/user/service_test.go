package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcarter/housetab/internal/user"
)

type mockRepo struct {
	users []user.User
}

func (m *mockRepo) ListUsers(ctx context.Context) ([]user.User, error) {
	return m.users, nil
}

func (m *mockRepo) GetUser(ctx context.Context, id int64) (*user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}

	return nil, nil
}

func (m *mockRepo) SetActive(ctx context.Context, id int64, active bool) error { return nil }

func TestService_Roster(t *testing.T) {
	repo := &mockRepo{users: []user.User{
		{ID: 1, Username: "ruby", DisplayName: "Ruby", IsActive: true},
		{ID: 2, Username: "jack", DisplayName: "Jack", IsActive: true},
		{ID: 3, Username: "old-flatmate", DisplayName: "Sam", IsActive: false},
		{ID: 4, Username: user.UsernameDefault, DisplayName: "default", IsActive: true},
	}}

	svc := user.NewService(repo)

	roster, err := svc.Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Ruby", roster[0].DisplayName)
	assert.Equal(t, "Jack", roster[1].DisplayName)
}

func TestUser_IsReal(t *testing.T) {
	assert.True(t, user.User{Username: "ruby"}.IsReal())
	assert.False(t, user.User{Username: user.UsernameDefault}.IsReal())
}
