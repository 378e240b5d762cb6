package csvimport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitads/internal/core/domain"
	"recruitads/internal/engine/industry"
)

func TestExtractRole(t *testing.T) {
	cases := map[string]string{
		"Karolinska - Sjuksköterska natt - Stockholm":           "Sjuksköterska",
		"ICA Maxi - Butikschef - Malmö":                         "Butikschef",
		"Elgiganten - Butikssäljare - Göteborg":                 "Butikssäljare",
		"LRF Media - Grafisk formgivare till LRF Media - Boost": "Grafisk formgivare",
		"Region Skåne - Arbetsterapeut som specialist":          "Arbetsterapeut",
		"Skanska - Projektledare - Stockholm":                   "Projektledare",
		"NCC - Byggprojektledare - Malmö":                       "Projektledare",
		"Acme - Senior Project Manager - Lund":                  "Projektledare",
		"Coop - Teamledare lager - Umeå":                        "Chef",
		"Kampanj 2024":                                          OtherRole,
		"Företag - Roll 12 - Umeå":                              OtherRole,
	}
	for name, want := range cases {
		assert.Equal(t, want, ExtractRole(name), name)
	}
}

func TestExtractCompanyAndLocation(t *testing.T) {
	assert.Equal(t, "Karolinska", ExtractCompany("Karolinska - Sjuksköterska - Stockholm"))
	assert.Equal(t, "Stockholm", ExtractLocation("Karolinska - Sjuksköterska - Stockholm"))
	assert.Equal(t, "", ExtractLocation("Karolinska - Sjuksköterska"))
}

const export = `Campaign_ID,Campaign_Name,Platform,Spend_SEK,Impressions,Clicks,Campaign_Days,End_Date
1,Karolinska - Sjuksköterska - Stockholm,Meta,"1 200,50",40000,1000,30,2025-03-01
2,Espresso House - Kock - Malmö,TikTok,600,30000,350,14,
3,Okänd - Astronaut - Kiruna,Myspace,100,100,1,1,
4,Noll - Säljare,LinkedIn,0,100,1,1,
5,Fel - Säljare,LinkedIn,abc,100,1,1,
`

func TestImport(t *testing.T) {
	im := NewImporter(industry.NewResolver(nil, nil, nil, 0, nil, nil), nil)
	rows, rep, err := im.Import(context.Background(), strings.NewReader(export))
	require.NoError(t, err)

	assert.Equal(t, Report{Rows: 5, Accepted: 2, Skipped: 3}, rep)
	require.Len(t, rows, 2)

	nurse := rows[0]
	assert.Equal(t, "1", nurse.ID)
	assert.Equal(t, "Sjuksköterska", nurse.Role)
	assert.Equal(t, "Karolinska", nurse.Company)
	assert.Equal(t, "Stockholm", nurse.Location)
	assert.Equal(t, "Sjukvård", nurse.Industry)
	assert.Equal(t, domain.PlatformFacebook, nurse.Platform)
	assert.InDelta(t, 1200.5, nurse.Spend, 1e-9)
	assert.Equal(t, 2025, nurse.EndDate.Year())

	cook := rows[1]
	assert.Equal(t, "Kock", cook.Role)
	assert.Equal(t, "Restaurang & Café", cook.Industry)
	assert.True(t, cook.EndDate.IsZero())
}

func TestImportRequiresMetrics(t *testing.T) {
	_, _, err := NewImporter(nil, nil).Import(context.Background(), strings.NewReader("name,platform,spend\nx,Meta,1\n"))
	assert.ErrorContains(t, err, "missing impressions column")
}

type fakeS3 struct {
	body string
	in   *s3.GetObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.in = in
	if f.body == "" {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewBufferString(f.body))}, nil
}

func TestOpener(t *testing.T) {
	fake := &fakeS3{body: export}
	o := &Opener{s3: fake}

	rc, err := o.Open(context.Background(), "s3://exports/2025/campaigns.csv")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, export, string(b))
	assert.Equal(t, "exports", *fake.in.Bucket)
	assert.Equal(t, "2025/campaigns.csv", *fake.in.Key)

	_, err = o.Open(context.Background(), "s3://exports")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "c.csv")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))
	rc, err = o.Open(context.Background(), path)
	require.NoError(t, err)
	rc.Close()
}
