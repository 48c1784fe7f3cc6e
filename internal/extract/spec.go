package extract

import (
	"net/mail"
	"regexp"
)

// Sentinel values written for fields the model could not find. The government
// vacancy flow and the private company/job flow historically use different
// placeholders, so both are kept.
const (
	SentinelVacancy = "Not available"
	SentinelCompany = "none"
)

// PostFunc post-processes a matched value. Returning false rejects the value
// and falls back to the record's sentinel.
type PostFunc func(string) (string, bool)

// FieldSpec declares one extractable field: the key it lands under in the
// record, and the label the model was instructed to emit in front of it.
type FieldSpec struct {
	Key   string
	Label string
	Post  PostFunc

	re *regexp.Regexp
}

// RecordSpec is the full declaration of one record variant. All extraction is
// driven by this table; there are no per-field parsing functions.
type RecordSpec struct {
	Name     string
	Sentinel string
	Fields   []FieldSpec

	schema *recordSchema
}

// Vacancy is the government job-vacancy variant.
var Vacancy = mustRecordSpec("vacancy", SentinelVacancy, []FieldSpec{
	{Key: "organization", Label: "Organization"},
	{Key: "job_title", Label: "Job Title"},
	{Key: "job_title_en", Label: "Job Title (English)"},
	{Key: "description", Label: "Description"},
	{Key: "apply_start_date", Label: "Application Start Date"},
	{Key: "apply_end_date", Label: "Application End Date"},
	{Key: "url", Label: "URL"},
	{Key: "file_link", Label: "File Link"},
	{Key: "comment", Label: "Comment"},
})

// CompanyJob is the generic private company/job variant.
var CompanyJob = mustRecordSpec("company_job", SentinelCompany, []FieldSpec{
	{Key: "company_name", Label: "Company"},
	{Key: "job_title", Label: "Job Title"},
	{Key: "email", Label: "Email", Post: validEmail},
	{Key: "location", Label: "Location"},
	{Key: "description", Label: "Description"},
	{Key: "url", Label: "URL"},
})

func mustRecordSpec(name, sentinel string, fields []FieldSpec) *RecordSpec {
	for i := range fields {
		fields[i].re = labelPattern(fields[i].Label)
	}
	return &RecordSpec{
		Name:     name,
		Sentinel: sentinel,
		Fields:   fields,
		schema:   mustCompileSchema(fields),
	}
}

// labelPattern matches "<Label>: <rest of line>" case-insensitively at the
// start of a line. The value is everything up to the newline.
func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(label) + `[ \t]*:[ \t]*(.*)$`)
}

// validEmail keeps only syntactically valid addresses; anything else falls
// back to the sentinel rather than storing garbage.
func validEmail(v string) (string, bool) {
	addr, err := mail.ParseAddress(v)
	if err != nil {
		return "", false
	}
	return addr.Address, true
}
