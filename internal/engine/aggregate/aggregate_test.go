package aggregate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
	"recruitads/internal/core/port/mocks"
)

func row(role, industry string, p domain.Platform, spend float64, imp, clicks int64) domain.HistoricalCampaign {
	return domain.HistoricalCampaign{Role: role, Industry: industry, Platform: p, Spend: spend, Impressions: imp, Clicks: clicks, DurationDays: 30}
}

func TestFilterExcludesInadmissibleRows(t *testing.T) {
	rows := []domain.HistoricalCampaign{
		row("Sjuksköterska", "Vård", domain.PlatformFacebook, 1000, 10000, 100),
		row("sjuksköterska ", "vård", domain.PlatformLinkedIn, 2000, 5000, 50),
		row("Sjuksköterska", "Vård", domain.PlatformFacebook, 0, 10000, 100),
		row("Sjuksköterska", "Vård", domain.PlatformFacebook, 500, 10, 20),
		row("Säljare", "Detaljhandel", domain.PlatformFacebook, 800, 9000, 90),
	}

	got := Filter(rows, "SJUKSKÖTERSKA", "", "")
	assert.Len(t, got, 2)

	got = Filter(rows, "Sjuksköterska", "Vård", domain.PlatformLinkedIn)
	require.Len(t, got, 1)
	assert.Equal(t, 2000.0, got[0].Spend)

	assert.Len(t, Filter(rows, "", "", ""), 3)
}

func TestFilterCollapsesInnerWhitespace(t *testing.T) {
	rows := []domain.HistoricalCampaign{
		row("Projekt  ledare", "Bygg  industri", domain.PlatformLinkedIn, 3000, 20000, 150),
		row(" projekt ledare", "Byggindustri", domain.PlatformFacebook, 1500, 40000, 700),
	}
	assert.Len(t, Filter(rows, "Projekt ledare", "", ""), 2)
	assert.Len(t, Filter(rows, "projekt\tledare", "bygg industri", ""), 1)
}

func TestByPlatformComputesAverages(t *testing.T) {
	rows := []domain.HistoricalCampaign{
		row("Kock", "", domain.PlatformFacebook, 1000, 10000, 200),
		row("Kock", "", domain.PlatformFacebook, 3000, 30000, 300),
		row("Kock", "", domain.PlatformFacebook, 2000, 10000, 100),
		row("Kock", "", domain.PlatformTikTok, 500, 20000, 100),
	}
	got := ByPlatform(rows)
	require.Len(t, got, 2)

	fb := got[domain.PlatformFacebook]
	assert.Equal(t, 3, fb.CampaignCount)
	assert.Equal(t, int64(50000), fb.TotalImpressions)
	assert.Equal(t, int64(600), fb.TotalClicks)
	assert.Equal(t, 6000.0, fb.TotalSpend)
	assert.InDelta(t, 1.2, fb.AvgCTR, 1e-9)
	require.NotNil(t, fb.AvgCPC)
	assert.InDelta(t, 10.0, *fb.AvgCPC, 1e-9)
	// Per-campaign CTRs are 2, 1 and 1 percent.
	assert.InDelta(t, math.Sqrt(1.0/3.0), fb.CTRStd, 1e-9)
	assert.False(t, fb.LowConfidence)

	tt := got[domain.PlatformTikTok]
	assert.True(t, tt.LowConfidence)
	assert.Equal(t, 0.0, tt.CTRStd)
}

func TestZeroClicksGivesNilCPC(t *testing.T) {
	got := ByPlatform([]domain.HistoricalCampaign{
		row("Kock", "", domain.PlatformReddit, 400, 5000, 0),
		row("Kock", "", domain.PlatformReddit, 600, 0, 0),
	})
	rd := got[domain.PlatformReddit]
	assert.Nil(t, rd.AvgCPC)
	assert.Equal(t, 0.0, rd.AvgCTR)
	assert.False(t, math.IsNaN(rd.CTRStd))

	sum := Summarize([]domain.HistoricalCampaign{row("Kock", "", domain.PlatformReddit, 400, 0, 0)})
	assert.Nil(t, sum.AvgCPC)
	assert.Equal(t, 0.0, sum.AvgCTR)
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]domain.HistoricalCampaign{
		row("Kock", "", domain.PlatformFacebook, 1000, 10000, 100),
		row("Kock", "", domain.PlatformLinkedIn, 3000, 10000, 100),
		row("Kock", "", domain.PlatformLinkedIn, 0, 10000, 100),
	})
	assert.Equal(t, 2, sum.CampaignCount)
	assert.Equal(t, 2, sum.Platforms)
	assert.InDelta(t, 1.0, sum.AvgCTR, 1e-9)
	assert.InDelta(t, 20.0, *sum.AvgCPC, 1e-9)
}

func TestSortedOrdersByCount(t *testing.T) {
	got := Sorted(ByPlatform([]domain.HistoricalCampaign{
		row("Kock", "", domain.PlatformTikTok, 1, 10, 1),
		row("Kock", "", domain.PlatformFacebook, 1, 10, 1),
		row("Kock", "", domain.PlatformFacebook, 1, 10, 1),
		row("Kock", "", domain.PlatformReddit, 1, 10, 1),
	}))
	require.Len(t, got, 3)
	assert.Equal(t, domain.PlatformFacebook, got[0].Platform)
	assert.Equal(t, domain.PlatformReddit, got[1].Platform)
	assert.Equal(t, domain.PlatformTikTok, got[2].Platform)
}

func TestAggregatorUsesSource(t *testing.T) {
	src := mocks.NewMockCampaignSource(t)
	src.EXPECT().
		Campaigns(mock.Anything, port.CampaignFilter{Roles: []string{"Kock"}, Industry: "Restaurang"}).
		Return([]domain.HistoricalCampaign{
			row("Kock", "Restaurang", domain.PlatformFacebook, 1000, 10000, 100),
			row("Kock", "Hotell", domain.PlatformFacebook, 1000, 10000, 100),
		}, nil)

	got, err := New(src).Aggregate(context.Background(), "Kock", "Restaurang", "")
	require.NoError(t, err)
	assert.Equal(t, 1, got[domain.PlatformFacebook].CampaignCount)
}

func TestAggregatorSourceError(t *testing.T) {
	src := mocks.NewMockCampaignSource(t)
	src.EXPECT().Campaigns(mock.Anything, mock.Anything).Return(nil, errors.New("warehouse down"))

	_, err := New(src).Aggregate(context.Background(), "", "", "")
	assert.Error(t, err)
}
