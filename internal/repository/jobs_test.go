package repository

import (
	"testing"
	"time"

	"github.com/jobscout-app/jobscout-api/internal/extract"
)

func TestPassesGate(t *testing.T) {
	tests := []struct {
		name     string
		org      string
		title    string
		sentinel string
		want     bool
	}{
		{"both real", "Acme", "Engineer", extract.SentinelCompany, true},
		{"sentinel org", extract.SentinelCompany, "Engineer", extract.SentinelCompany, false},
		{"sentinel title", "Acme", extract.SentinelCompany, extract.SentinelCompany, false},
		{"both sentinel", extract.SentinelVacancy, extract.SentinelVacancy, extract.SentinelVacancy, false},
		{"empty org", "", "Engineer", extract.SentinelCompany, false},
		{"whitespace org", "   ", "Engineer", extract.SentinelCompany, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := passesGate(tt.org, tt.title, tt.sentinel); got != tt.want {
				t.Errorf("passesGate(%q, %q) = %v, want %v", tt.org, tt.title, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want *time.Time
	}{
		{extract.SentinelVacancy, nil},
		{"", nil},
		{"sometime next spring", nil},
		{"2026-03-01", timePtr(2026, 3, 1)},
		{"2026.03.01", timePtr(2026, 3, 1)},
		{"2026/03/01", timePtr(2026, 3, 1)},
	}
	for _, tt := range tests {
		got := parseDate(tt.in, extract.SentinelVacancy)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("parseDate(%q) = %v, want nil", tt.in, got)
		case tt.want != nil && (got == nil || !got.Equal(*tt.want)):
			t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func timePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestGovernmentJobFromRecord(t *testing.T) {
	rec := map[string]string{
		"organization":     "Ministry of Education",
		"job_title":        "Records Officer",
		"job_title_en":     extract.SentinelVacancy,
		"description":      "Manage archives.",
		"apply_start_date": "2026-03-01",
		"apply_end_date":   extract.SentinelVacancy,
		"url":              "https://jobs.example.gov/123",
		"file_link":        extract.SentinelVacancy,
		"comment":          extract.SentinelVacancy,
	}

	row := GovernmentJobFromRecord(rec, 7)
	if row.UserID != 7 {
		t.Errorf("UserID = %d, want 7", row.UserID)
	}
	if row.Organization != "Ministry of Education" || row.JobTitle != "Records Officer" {
		t.Errorf("identity fields not copied: %+v", row)
	}
	// Non-date sentinels are copied verbatim.
	if row.JobTitleEn != extract.SentinelVacancy {
		t.Errorf("JobTitleEn = %q, want sentinel copied as-is", row.JobTitleEn)
	}
	// Sentinel dates become NULL, real dates parse.
	if row.ApplyStart == nil || !row.ApplyStart.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ApplyStart = %v, want 2026-03-01", row.ApplyStart)
	}
	if row.ApplyEnd != nil {
		t.Errorf("ApplyEnd = %v, want nil for sentinel", row.ApplyEnd)
	}
}

func TestPrivateJobFromRecord(t *testing.T) {
	rec := map[string]string{
		"company_name": "Acme Corp",
		"job_title":    "Engineer",
		"email":        "hr@acme.example",
		"location":     extract.SentinelCompany,
		"description":  "Build things.",
		"url":          extract.SentinelCompany,
	}

	row := PrivateJobFromRecord(rec, 3)
	if row.CompanyName != "Acme Corp" || row.JobTitle != "Engineer" || row.Email != "hr@acme.example" {
		t.Errorf("fields not copied: %+v", row)
	}
	if row.Location != extract.SentinelCompany {
		t.Errorf("Location = %q, want sentinel copied as-is", row.Location)
	}
}

// A record that fails the gate must be skipped before any database work:
// with a nil DB these would panic if the gate did not short-circuit.
func TestInsertSkippedWhenGateFails(t *testing.T) {
	r := NewJobRepository(nil)

	sentinelOnly := map[string]string{
		"company_name": extract.SentinelCompany,
		"job_title":    extract.SentinelCompany,
	}
	row, err := r.InsertPrivateJob(sentinelOnly, 1)
	if err != nil {
		t.Fatalf("InsertPrivateJob returned error: %v", err)
	}
	if row != nil {
		t.Errorf("InsertPrivateJob persisted a sentinel-only record: %+v", row)
	}

	vacancySentinels := map[string]string{
		"organization": extract.SentinelVacancy,
		"job_title":    extract.SentinelVacancy,
	}
	govRow, err := r.InsertGovernmentJob(vacancySentinels, 1)
	if err != nil {
		t.Fatalf("InsertGovernmentJob returned error: %v", err)
	}
	if govRow != nil {
		t.Errorf("InsertGovernmentJob persisted a sentinel-only record: %+v", govRow)
	}
}
