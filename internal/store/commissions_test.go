package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

func seedCommission(t *testing.T, s *Store, ref, name string) {
	t.Helper()
	err := s.CreateCommission(&models.CommissionRequest{
		Ref:         ref,
		Name:        name,
		Email:       name + "@example.com",
		Tier:        "Statement",
		Description: "A sculpture for my hallway.",
		Status:      models.CommissionNew,
	})
	require.NoError(t, err)
}

func TestCreateAndListCommissions(t *testing.T) {
	s := NewTestStore(t)
	seedCommission(t, s, "AAAA2222", "alice")
	seedCommission(t, s, "BBBB3333", "bob")

	requests, err := s.GetAllCommissions(10, 0)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	total, err := s.GetTotalCommissionsCount()
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	for _, req := range requests {
		assert.Equal(t, models.CommissionNew, req.Status)
		assert.NotZero(t, req.ID)
		assert.False(t, req.CreatedAt.IsZero())
	}
}

func TestGetAllCommissionsPagination(t *testing.T) {
	s := NewTestStore(t)
	for i := 0; i < 5; i++ {
		seedCommission(t, s, "REF0000"+string(rune('A'+i)), "visitor")
	}

	page1, err := s.GetAllCommissions(2, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := s.GetAllCommissions(2, 4)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestUpdateCommissionStatus(t *testing.T) {
	s := NewTestStore(t)
	seedCommission(t, s, "CCCC4444", "carol")

	requests, err := s.GetAllCommissions(1, 0)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	require.NoError(t, s.UpdateCommissionStatus(requests[0].ID, models.CommissionAccepted))

	after, err := s.GetAllCommissions(1, 0)
	require.NoError(t, err)
	assert.Equal(t, models.CommissionAccepted, after[0].Status)
}

func TestGetCommissionStats(t *testing.T) {
	s := NewTestStore(t)
	seedCommission(t, s, "DDDD5555", "dave")
	seedCommission(t, s, "EEEE6666", "erin")

	requests, err := s.GetAllCommissions(10, 0)
	require.NoError(t, err)
	require.NoError(t, s.UpdateCommissionStatus(requests[0].ID, models.CommissionDeclined))

	stats, err := s.GetCommissionStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[models.CommissionNew])
	assert.Equal(t, 1, stats.ByStatus[models.CommissionDeclined])
}

func TestGetCommissionStatsEmpty(t *testing.T) {
	s := NewTestStore(t)

	stats, err := s.GetCommissionStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByStatus)
}
