package status

// Report is the document served by /mirrors/status/json/.
type Report struct {
	Cutoff         int         `json:"cutoff"`
	LastCheck      string      `json:"last_check"`
	NumChecks      int         `json:"num_checks"`
	CheckFrequency int         `json:"check_frequency"`
	URLs           []MirrorURL `json:"urls"`
	Version        int         `json:"version"`
}

// MirrorURL is one entry of Report.URLs. Metrics the service has not
// computed yet are null.
type MirrorURL struct {
	URL            string   `json:"url"`
	Protocol       string   `json:"protocol"`
	Country        string   `json:"country"`
	CountryCode    string   `json:"country_code"`
	CompletionPct  *float64 `json:"completion_pct"`
	Delay          *int     `json:"delay"`
	DurationAvg    *float64 `json:"duration_avg"`
	DurationStddev *float64 `json:"duration_stddev"`
	Score          *float64 `json:"score"`
	LastSync       *string  `json:"last_sync"`
	Active         bool     `json:"active"`
	ISOs           bool     `json:"isos"`
	IPv4           bool     `json:"ipv4"`
	IPv6           bool     `json:"ipv6"`
	Details        string   `json:"details"`
}

// index maps mirror URLs to their first entry in the report.
func (r *Report) index() map[string]*MirrorURL {
	idx := make(map[string]*MirrorURL, len(r.URLs))
	for i := range r.URLs {
		if _, seen := idx[r.URLs[i].URL]; !seen {
			idx[r.URLs[i].URL] = &r.URLs[i]
		}
	}
	return idx
}
