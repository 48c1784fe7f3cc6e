package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobscout-app/jobscout-api/internal/content"
	"github.com/jobscout-app/jobscout-api/internal/extract"
	"github.com/jobscout-app/jobscout-api/internal/llm"
	"github.com/jobscout-app/jobscout-api/internal/models"
	"github.com/jobscout-app/jobscout-api/internal/repository"
)

// IntakeService orchestrates one posting intake: normalize content, query the
// model, extract fields, attempt persistence. The flow is strictly linear and
// request-scoped; any stage's failure propagates straight back to the handler.
type IntakeService struct {
	llm        *llm.Client
	jobs       *repository.JobRepository
	httpClient *http.Client
	log        zerolog.Logger
}

func NewIntakeService(llmClient *llm.Client, jobs *repository.JobRepository, log zerolog.Logger) *IntakeService {
	return &IntakeService{
		llm:        llmClient,
		jobs:       jobs,
		httpClient: &http.Client{},
		log:        log,
	}
}

// PrivateIntake is the outcome of a private-job intake. Row is nil when the
// record did not pass the persistence gate.
type PrivateIntake struct {
	Fields map[string]string
	Row    *models.PrivateJob
}

// GovernmentIntake is the outcome of a government-vacancy intake.
type GovernmentIntake struct {
	Fields map[string]string
	Row    *models.GovernmentJob
}

// AnalyzeRaw runs the model over the message and attachments and returns the
// full unparsed response. Nothing is persisted.
func (s *IntakeService) AnalyzeRaw(ctx context.Context, message string, parts []content.Part) (string, error) {
	return s.llm.Generate(ctx, llm.Request{
		Instruction: llm.InstructionFor(extract.CompanyJob),
		Message:     message,
		Parts:       parts,
	})
}

// AnalyzeURL fetches a remote image and then behaves like AnalyzeRaw. A
// failed fetch returns before any model call is made. An empty imageURL runs
// the model on the message alone.
func (s *IntakeService) AnalyzeURL(ctx context.Context, message, imageURL string) (string, error) {
	var parts []content.Part
	if imageURL != "" {
		part, err := content.FetchURL(ctx, s.httpClient, imageURL, content.FallbackImageMIME)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return s.AnalyzeRaw(ctx, message, parts)
}

// IntakePrivate runs the full pipeline for a private company posting.
func (s *IntakeService) IntakePrivate(ctx context.Context, userID uint, message string, parts []content.Part) (*PrivateIntake, error) {
	runID := uuid.NewString()
	log := s.log.With().Str("run_id", runID).Str("variant", "private").Logger()

	text, err := s.llm.Generate(ctx, llm.Request{
		Instruction: llm.InstructionFor(extract.CompanyJob),
		Message:     message,
		Parts:       parts,
	})
	if err != nil {
		return nil, err
	}

	fields, err := extract.CompanyJob.Extract(text)
	if err != nil {
		return nil, err
	}

	row, err := s.jobs.InsertPrivateJob(fields, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		log.Info().Msg("persistence skipped, minimum fields not extracted")
	} else {
		log.Info().Uint("job_id", row.ID).Msg("private job persisted")
	}

	return &PrivateIntake{Fields: fields, Row: row}, nil
}

// IntakeGovernment runs the full pipeline for a government vacancy posting.
func (s *IntakeService) IntakeGovernment(ctx context.Context, userID uint, message string, parts []content.Part) (*GovernmentIntake, error) {
	runID := uuid.NewString()
	log := s.log.With().Str("run_id", runID).Str("variant", "government").Logger()

	text, err := s.llm.Generate(ctx, llm.Request{
		Instruction: llm.InstructionFor(extract.Vacancy),
		Message:     message,
		Parts:       parts,
	})
	if err != nil {
		return nil, err
	}

	fields, err := extract.Vacancy.Extract(text)
	if err != nil {
		return nil, err
	}

	row, err := s.jobs.InsertGovernmentJob(fields, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		log.Info().Msg("persistence skipped, minimum fields not extracted")
	} else {
		log.Info().Uint("job_id", row.ID).Msg("government job persisted")
	}

	return &GovernmentIntake{Fields: fields, Row: row}, nil
}
