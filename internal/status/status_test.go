package status

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusPage = `<!DOCTYPE html>
<html><body>
<h3>Out of Sync Mirrors</h3>
<table id="outofsync_mirrors" class="results">
  <thead><tr><th>Mirror URL</th><th>Protocol</th></tr></thead>
  <tbody>
    <tr><td><a href="https://late.example/archlinux/">https://late.example/archlinux/</a></td><td>https</td></tr>
  </tbody>
</table>
<h3>Successfully Syncing Mirrors</h3>
<table id="successful_mirrors" class="results">
  <tbody>
    <tr><td>https://fast.example/archlinux/</td><td>https</td></tr>
  </tbody>
</table>
<table id="errors"></table>
</body></html>`

const statusJSON = `{
  "cutoff": 3600,
  "last_check": "2026-10-14T08:00:00Z",
  "num_checks": 12,
  "check_frequency": 300,
  "version": 3,
  "urls": [
    {"url": "https://fast.example/archlinux/", "protocol": "https", "country": "Germany", "country_code": "DE",
     "completion_pct": 1.0, "delay": 754, "duration_avg": 0.123, "duration_stddev": 0.456, "score": 0.61,
     "last_sync": "2026-10-14T07:50:00Z", "active": true, "isos": true, "ipv4": true, "ipv6": false, "details": ""},
    {"url": "https://late.example/archlinux/", "protocol": "https", "country": "France", "country_code": "FR",
     "completion_pct": 0.9666, "delay": 7380, "duration_avg": 1.5, "duration_stddev": 0.25, "score": 3.31,
     "last_sync": null, "active": true, "isos": false, "ipv4": true, "ipv6": true, "details": ""},
    {"url": "https://new.example/archlinux/", "protocol": "https", "country": "", "country_code": "",
     "completion_pct": null, "delay": null, "duration_avg": null, "duration_stddev": null, "score": null,
     "last_sync": null, "active": true, "isos": false, "ipv4": true, "ipv6": false, "details": ""}
  ]
}`

func loadReport(t *testing.T) *Report {
	t.Helper()

	var r Report
	require.NoError(t, json.Unmarshal([]byte(statusJSON), &r))
	return &r
}

func TestNewMirror(t *testing.T) {
	t.Parallel()

	r := loadReport(t)
	require.Len(t, r.URLs, 3)

	testCases := []struct {
		name       string
		entry      *MirrorURL
		completion string
		delay      string
		avg        string
		stddev     string
		score      string
	}{
		{
			name: "complete mirror", entry: &r.URLs[0],
			completion: "100", delay: "0:12", avg: "0.12", stddev: "0.46", score: "0.6",
		},
		{
			name: "lagging mirror", entry: &r.URLs[1],
			completion: "96.7", delay: "2:03", avg: "1.50", stddev: "0.25", score: "3.3",
		},
		{
			name: "mirror without metrics", entry: &r.URLs[2],
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMirror(tc.entry)
			assert.Equal(t, tc.completion, m.CompletionText())
			assert.Equal(t, tc.delay, m.DelayText())
			assert.Equal(t, tc.avg, m.DurationAvgText())
			assert.Equal(t, tc.stddev, m.DurationStddevText())
			assert.Equal(t, tc.score, m.ScoreText())
		})
	}
}

func TestParseStatusPage(t *testing.T) {
	t.Parallel()

	page, err := ParseStatusPage(statusPage)
	require.NoError(t, err)

	assert.True(t, page.IsOutOfSync("https://late.example/archlinux/"))
	assert.False(t, page.IsOutOfSync("https://fast.example/archlinux/"))
	assert.False(t, page.IsOutOfSync(""))
}

func TestParseStatusPage_MissingTables(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		page string
	}{
		{name: "no tables", page: "<html><body><p>maintenance</p></body></html>"},
		{name: "only out of sync", page: `<table id="outofsync_mirrors"></table>`},
		{name: "only successful", page: `<table id="successful_mirrors"></table>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStatusPage(tc.page)
			require.ErrorIs(t, err, ErrScrape)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	page, err := ParseStatusPage(statusPage)
	require.NoError(t, err)

	servers := []string{
		"https://late.example/archlinux/",
		"https://unknown.example/arch/",
		"https://fast.example/archlinux/",
	}
	states, err := Classify(context.Background(), servers, loadReport(t), page)
	require.NoError(t, err)
	require.Len(t, states, 3)

	assert.Equal(t, OutOfSync, states[0].Kind)
	assert.Equal(t, "France", states[0].Mirror.Country)
	assert.Equal(t, NotFound, states[1].Kind)
	assert.Equal(t, "https://unknown.example/arch/", states[1].Server)
	assert.Equal(t, Synced, states[2].Kind)
	assert.Equal(t, "Germany", states[2].Mirror.Country)
}

func TestClassify_Canceled(t *testing.T) {
	t.Parallel()

	page, err := ParseStatusPage(statusPage)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Classify(ctx, []string{"https://fast.example/archlinux/"}, loadReport(t), page)
	require.ErrorIs(t, err, context.Canceled)
}

func TestKind_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok", Synced.Label())
	assert.Equal(t, "Out of sync!", OutOfSync.Label())
	assert.Equal(t, "Not found!", NotFound.Label())
}
