package extract

import (
	"strings"

	"github.com/jobscout-app/jobscout-api/internal/apperr"
)

// Extract maps raw model output onto the record variant. Every declared field
// is present in the result: the first line matching "<Label>: <value>" wins,
// and a field with no match, an empty value, or a post-processor rejection
// gets the variant's sentinel. The function is deterministic: the same text
// always yields the same record.
//
// The assembled record is validated against the variant's schema before being
// returned; a violation surfaces as a SchemaValidationError.
func (s *RecordSpec) Extract(text string) (map[string]string, error) {
	rec := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		rec[f.Key] = s.Sentinel

		m := f.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := strings.TrimSpace(m[1])
		if val == "" {
			continue
		}
		if f.Post != nil {
			processed, ok := f.Post(val)
			if !ok {
				continue
			}
			val = processed
		}
		rec[f.Key] = val
	}

	if err := s.schema.validate(rec); err != nil {
		return nil, apperr.New(apperr.KindSchema, "extracted record failed schema validation", err)
	}
	return rec, nil
}
