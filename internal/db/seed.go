package db

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
)

// demoRoles maps the demo roles to the industry their campaigns run in.
var demoRoles = []struct{ role, industry string }{
	{"Utvecklare", "IT & Tech"},
	{"Sjuksköterska", "Sjukvård"},
	{"Undersköterska", "Äldreomsorg"},
	{"Säljare", "Detaljhandel"},
	{"Chef", "Bemanning & Rekrytering"},
	{"Tekniker", "Verkstadsindustri"},
	{"Lärare", "Utbildning"},
	{"Ingenjör", "Verkstadsindustri"},
	{"Designer", "IT & Tech"},
	{"Projektledare", "Byggindustri"},
	{"Konsult", "IT & Tech"},
	{"Lagerarbetare", "Logistik & Distribution"},
}

var (
	demoLocations = []string{"Stockholm", "Göteborg", "Malmö", "Uppsala", "Linköping"}
	demoCompanies = []string{"Företag A", "Företag B", "Företag C", "Företag D", "Företag E"}
)

// platformProfile bounds the simulated CTR (percent) and CPC (SEK) per
// platform.
var platformProfile = map[domain.Platform][4]float64{
	domain.PlatformLinkedIn: {0.8, 2.5, 25, 50},
	domain.PlatformFacebook: {2.0, 4.0, 15, 30},
	domain.PlatformSnapchat: {1.5, 3.0, 20, 35},
	domain.PlatformTikTok:   {1.0, 2.5, 20, 40},
	domain.PlatformReddit:   {1.0, 2.5, 20, 40},
}

// DemoCampaigns generates n anonymised campaigns. The same seed always
// yields the same campaigns so reseeding is idempotent.
func DemoCampaigns(n int, seed int64) []domain.HistoricalCampaign {
	r := rand.New(rand.NewSource(seed))
	platforms := domain.Platforms()
	ref := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	out := make([]domain.HistoricalCampaign, 0, n)
	for i := 0; i < n; i++ {
		role := demoRoles[r.Intn(len(demoRoles))]
		platform := platforms[r.Intn(len(platforms))]
		location := demoLocations[r.Intn(len(demoLocations))]
		company := demoCompanies[r.Intn(len(demoCompanies))]
		prof := platformProfile[platform]

		ctr := prof[0] + r.Float64()*(prof[1]-prof[0])
		cpc := prof[2] + r.Float64()*(prof[3]-prof[2])
		impressions := int64(10000 + r.Intn(490000))
		clicks := int64(float64(impressions) * ctr / 100)
		days := 7 + r.Intn(83)
		end := ref.AddDate(0, 0, -r.Intn(540))

		out = append(out, domain.HistoricalCampaign{
			ID:           fmt.Sprintf("DEMO_%05d", i),
			Name:         fmt.Sprintf("%s - %s - %s - Demo Campaign", company, role.role, location),
			Role:         role.role,
			Industry:     role.industry,
			Company:      company,
			Platform:     platform,
			Location:     location,
			Spend:        math.Round(float64(clicks)*cpc*100) / 100,
			Impressions:  impressions,
			Clicks:       clicks,
			DurationDays: days,
			StartDate:    end.AddDate(0, 0, -days),
			EndDate:      end,
		})
	}
	return out
}

// Seed stores n demo campaigns through w and returns how many were new.
func Seed(ctx context.Context, w port.CampaignWriter, n int) (int64, error) {
	saved, err := w.SaveCampaigns(ctx, DemoCampaigns(n, 1))
	if err != nil {
		return 0, fmt.Errorf("seed demo campaigns: %w", err)
	}
	return saved, nil
}
