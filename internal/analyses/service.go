package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillgap-backend/internal/courses"
	"skillgap-backend/internal/extract"
	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/scoring"
	"skillgap-backend/internal/shared/metrics"
	"skillgap-backend/internal/shared/telemetry"
	"skillgap-backend/internal/skills"
)

// resumeIndicators are words expected somewhere in a real resume. A document
// matching fewer than resumeIndicatorMin of them is rejected before analysis.
var resumeIndicators = []string{
	"education", "experience", "skills", "projects", "work",
	"university", "college", "degree", "certifications",
	"summary", "objective", "qualification", "employment",
	"intern", "professional", "achievements", "responsibilities",
	"bachelor", "master", "gpa", "resume", "curriculum vitae",
}

const resumeIndicatorMin = 2

// Service contains the upload-to-session pipeline.
type Service struct {
	Repo   Repo
	Dict   *skills.Dictionary
	Parser *parser.Parser
}

// NewService constructs a Service.
func NewService(repo Repo, dict *skills.Dictionary) *Service {
	return &Service{Repo: repo, Dict: dict, Parser: parser.New(dict)}
}

// Analyze extracts text from the uploaded document, validates it, runs the
// full scoring pipeline and course recommender, and persists the outcome
// under a fresh session ID.
func (s *Service) Analyze(ctx context.Context, data []byte, mimeType, fileName, jobRole string) (Session, error) {
	started := time.Now()
	metrics.IncUploadReceived()

	if _, ok := s.Dict.Role(jobRole); !ok {
		metrics.IncUploadRejected()
		return Session{}, ErrUnknownRole
	}

	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		metrics.IncUploadRejected()
		return Session{}, err
	}
	if strings.TrimSpace(text) == "" {
		metrics.IncUploadRejected()
		return Session{}, ErrEmptyText
	}
	if !looksLikeResume(text) {
		metrics.IncUploadRejected()
		return Session{}, ErrNotAResume
	}

	profile := s.Parser.Parse(text, jobRole)
	session := Session{
		ID:      uuid.NewString(),
		JobRole: jobRole,
		Outcome: Outcome{
			Analysis: scoring.Analyze(profile, s.Dict),
			Courses:  courses.Recommend(profile, s.Dict, 0),
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("analysis.complete", map[string]any{
		"sessionId": session.ID,
		"jobRole":   jobRole,
		"atsScore":  session.Outcome.Analysis.ATSScore,
		"fileName":  fileName,
	})
	return session, nil
}

// Get returns a stored session.
func (s *Service) Get(ctx context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, sessionID)
}

func looksLikeResume(text string) bool {
	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range resumeIndicators {
		if strings.Contains(lower, kw) {
			matches++
			if matches >= resumeIndicatorMin {
				return true
			}
		}
	}
	return false
}
