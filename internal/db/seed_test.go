package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitads/internal/core/domain"
)

type recordingWriter struct {
	rows []domain.HistoricalCampaign
	err  error
}

func (w *recordingWriter) SaveCampaigns(_ context.Context, rows []domain.HistoricalCampaign) (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.rows = append(w.rows, rows...)
	return int64(len(rows)), nil
}

func TestDemoCampaignsAreDeterministic(t *testing.T) {
	a := DemoCampaigns(50, 7)
	b := DemoCampaigns(50, 7)
	require.Len(t, a, 50)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, DemoCampaigns(50, 8))
}

func TestDemoCampaignsAreAdmissible(t *testing.T) {
	for _, c := range DemoCampaigns(200, 1) {
		assert.True(t, c.Admissible(), c.ID)
		assert.NotEmpty(t, c.Role)
		assert.NotEmpty(t, c.Industry)
		assert.True(t, c.StartDate.Before(c.EndDate))

		prof := platformProfile[c.Platform]
		assert.GreaterOrEqual(t, c.CTR(), prof[0]-0.01, c.ID)
		assert.LessOrEqual(t, c.CTR(), prof[1]+0.01, c.ID)
	}
}

func TestSeed(t *testing.T) {
	w := &recordingWriter{}
	n, err := Seed(context.Background(), w, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(25), n)
	assert.Equal(t, "DEMO_00000", w.rows[0].ID)

	_, err = Seed(context.Background(), &recordingWriter{err: errors.New("copy failed")}, 25)
	assert.ErrorContains(t, err, "copy failed")
}
