package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jobscout-app/jobscout-api/internal/apperr"
	"github.com/jobscout-app/jobscout-api/internal/extract"
	"github.com/jobscout-app/jobscout-api/internal/models"
)

// JobRepository owns all job-row persistence: the intake flow's gated inserts
// and the plain CRUD operations behind the listing endpoints.
type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// passesGate is the minimum-viable-row check: both identifying fields must be
// real values, not the sentinel the extractor writes for missing data. A
// record failing the gate is not persisted, but that is a partial success for
// the intake flow, not an error.
func passesGate(name, title, sentinel string) bool {
	name = strings.TrimSpace(name)
	title = strings.TrimSpace(title)
	return name != "" && name != sentinel && title != "" && title != sentinel
}

// parseDate turns an extracted date value into a nullable timestamp. The
// sentinel (and anything unparseable) becomes NULL rather than a bogus date.
func parseDate(v, sentinel string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" || v == sentinel {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "2006.01.02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

// PrivateJobFromRecord maps an extracted company/job record onto a row.
// Non-date fields are copied as-is, sentinel text included.
func PrivateJobFromRecord(rec map[string]string, userID uint) *models.PrivateJob {
	return &models.PrivateJob{
		UserID:      userID,
		CompanyName: rec["company_name"],
		JobTitle:    rec["job_title"],
		Email:       rec["email"],
		Location:    rec["location"],
		Description: rec["description"],
		URL:         rec["url"],
	}
}

// GovernmentJobFromRecord maps an extracted vacancy record onto a row,
// converting sentinel dates to NULL.
func GovernmentJobFromRecord(rec map[string]string, userID uint) *models.GovernmentJob {
	return &models.GovernmentJob{
		UserID:       userID,
		Organization: rec["organization"],
		JobTitle:     rec["job_title"],
		JobTitleEn:   rec["job_title_en"],
		Description:  rec["description"],
		ApplyStart:   parseDate(rec["apply_start_date"], extract.SentinelVacancy),
		ApplyEnd:     parseDate(rec["apply_end_date"], extract.SentinelVacancy),
		URL:          rec["url"],
		FileLink:     rec["file_link"],
		Comment:      rec["comment"],
	}
}

// InsertPrivateJob persists an extracted company/job record if it passes the
// minimum-field gate. A (nil, nil) return means the gate was not met and the
// insert was skipped.
func (r *JobRepository) InsertPrivateJob(rec map[string]string, userID uint) (*models.PrivateJob, error) {
	if !passesGate(rec["company_name"], rec["job_title"], extract.SentinelCompany) {
		return nil, nil
	}
	row := PrivateJobFromRecord(rec, userID)
	if err := r.DB.Create(row).Error; err != nil {
		return nil, apperr.New(apperr.KindPersistence, "inserting private job", err)
	}
	return row, nil
}

// InsertGovernmentJob persists an extracted vacancy record if it passes the
// minimum-field gate. A (nil, nil) return means the insert was skipped.
func (r *JobRepository) InsertGovernmentJob(rec map[string]string, userID uint) (*models.GovernmentJob, error) {
	if !passesGate(rec["organization"], rec["job_title"], extract.SentinelVacancy) {
		return nil, nil
	}
	row := GovernmentJobFromRecord(rec, userID)
	if err := r.DB.Create(row).Error; err != nil {
		return nil, apperr.New(apperr.KindPersistence, "inserting government job", err)
	}
	return row, nil
}
