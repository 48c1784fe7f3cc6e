package llm

import (
	"strings"

	"github.com/jobscout-app/jobscout-api/internal/extract"
)

// InstructionFor builds the fixed extraction instruction for a record
// variant. The labels come straight from the variant's field table, so the
// prompt and the extractor can never drift apart.
func InstructionFor(spec *extract.RecordSpec) string {
	var b strings.Builder

	b.WriteString("You are reading a job posting from the attached image or document.\n")
	b.WriteString("Extract the details below and answer with exactly one field per line,\n")
	b.WriteString("formatted as \"<Label>: <value>\".\n\n")

	b.WriteString("Fields:\n")
	for _, f := range spec.Fields {
		b.WriteString(f.Label + ": <value>\n")
	}

	b.WriteString("\nRules:\n")
	b.WriteString("- If a field cannot be found, write \"" + spec.Sentinel + "\" as its value.\n")
	b.WriteString("- Dates must be in YYYY-MM-DD format.\n")
	b.WriteString("- Do not add any other lines, markdown, or commentary.\n")

	return b.String()
}
