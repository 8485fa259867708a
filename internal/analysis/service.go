// Package analysis runs the document pipeline: guard the input size, keep
// the original in the blob store, convert it to text, extract a profile and
// optionally score it against a job requirement.
package analysis

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-screener/internal/extraction"
	"github.com/jonathan/candidate-screener/internal/ingestion"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/scoring"
	"github.com/jonathan/candidate-screener/internal/storage"
	"github.com/jonathan/candidate-screener/internal/types"
	"go.uber.org/zap"
)

// Document is one uploaded file.
type Document struct {
	Filename    string
	Data        []byte
	ContentType string
}

// AnalyzeOptions controls optional scoring. Assessment carries the signals
// text extraction cannot produce (skill levels, seniority, cultural fit);
// its Profile is ignored in favour of the extracted one.
type AnalyzeOptions struct {
	Job        *types.JobRequirement
	Assessment *types.Candidate
}

// Analysis is the result for one document.
type Analysis struct {
	ID        string                 `json:"id"`
	Filename  string                 `json:"filename"`
	Document  *storage.Ref           `json:"document,omitempty"`
	Metadata  *ingestion.Metadata    `json:"metadata"`
	Profile   types.CandidateProfile `json:"profile"`
	Score     *types.ScoreBreakdown  `json:"score,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ConvertFunc renders document bytes to text.
type ConvertFunc func(ctx context.Context, filename string, data []byte) (string, error)

// Service is safe for concurrent use.
type Service struct {
	store         storage.Store
	convert       ConvertFunc
	extractor     *extraction.Extractor
	engine        *scoring.Engine
	history       *History
	logger        *zap.Logger
	maxInputBytes int
	keyPrefix     string
	workers       int
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = logger.OrNop(l) }
}

// WithConverter replaces the document-to-text converter.
func WithConverter(fn ConvertFunc) Option {
	return func(s *Service) { s.convert = fn }
}

// WithExtractor replaces the profile extractor.
func WithExtractor(e *extraction.Extractor) Option {
	return func(s *Service) { s.extractor = e }
}

// WithEngine replaces the scoring engine.
func WithEngine(e *scoring.Engine) Option {
	return func(s *Service) { s.engine = e }
}

// WithHistory replaces the analysis history.
func WithHistory(h *History) Option {
	return func(s *Service) { s.history = h }
}

// WithMaxInputBytes rejects larger documents before any work. 0 disables the check.
func WithMaxInputBytes(n int) Option {
	return func(s *Service) { s.maxInputBytes = n }
}

// WithKeyPrefix sets the blob key prefix for uploads.
func WithKeyPrefix(prefix string) Option {
	return func(s *Service) { s.keyPrefix = prefix }
}

// WithClock sets the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithWorkers bounds concurrent documents in Batch. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New builds a Service. A nil store skips uploading.
func New(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		convert:   ingestion.Convert,
		extractor: extraction.New(),
		engine:    scoring.NewEngine(),
		history:   NewHistory(DefaultHistorySize),
		logger:    zap.NewNop(),
		keyPrefix: "resumes/",
		workers:   4,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// History returns the record of recent analyses.
func (s *Service) History() *History {
	return s.history
}

// Extract builds a profile from already converted text.
func (s *Service) Extract(text string) types.CandidateProfile {
	return s.extractor.Extract(text)
}

// Score scores a candidate against a job requirement.
func (s *Service) Score(candidate types.Candidate, job types.JobRequirement) (*types.ScoreBreakdown, error) {
	return s.engine.Score(candidate, job)
}

// MaxInputBytes returns the document size limit, 0 when unlimited.
func (s *Service) MaxInputBytes() int {
	return s.maxInputBytes
}

// Analyze runs the pipeline for one document. Oversize input, upload
// failures, unreadable documents and invalid scoring input are returned to
// the caller. A stored document is removed again when conversion or scoring
// fails.
func (s *Service) Analyze(ctx context.Context, doc Document, opts AnalyzeOptions) (*Analysis, error) {
	if err := ingestion.CheckSize(doc.Data, s.maxInputBytes); err != nil {
		return nil, err
	}

	a := &Analysis{
		ID:        uuid.NewString(),
		Filename:  doc.Filename,
		Metadata:  ingestion.NewMetadata(doc.Filename, doc.Data),
		CreatedAt: s.now(),
	}
	log := s.logger.With(zap.String(logger.FieldAnalysisID, a.ID), zap.String(logger.FieldFilename, doc.Filename))

	if s.store != nil {
		key := storage.ResumeKey(s.keyPrefix, doc.Filename)
		ref, err := s.store.Put(ctx, key, doc.Data, contentType(doc))
		if err != nil {
			log.Error("upload failed", zap.Error(err))
			return nil, &UploadError{Filename: doc.Filename, Cause: err}
		}
		a.Document = &ref
		log.Debug("document stored", zap.String(logger.FieldKey, ref.Key))
	}

	text, err := s.convert(ctx, doc.Filename, doc.Data)
	if err != nil {
		log.Warn("conversion failed", zap.Error(err))
		s.discard(ctx, log, a.Document)
		return nil, err
	}
	log.Debug("document converted", zap.Int("chars", len(text)), zap.String("preview", logger.Truncate(text, 120)))

	a.Profile = s.extractor.Extract(text)

	if opts.Job != nil {
		candidate := types.Candidate{Profile: a.Profile}
		if opts.Assessment != nil {
			candidate.TechnicalSkills = opts.Assessment.TechnicalSkills
			candidate.ExperienceLevel = opts.Assessment.ExperienceLevel
			candidate.CulturalFit = opts.Assessment.CulturalFit
		}
		score, err := s.engine.Score(candidate, *opts.Job)
		if err != nil {
			log.Warn("scoring failed", zap.Error(err))
			s.discard(ctx, log, a.Document)
			return nil, err
		}
		a.Score = score
	}

	s.history.Add(a)

	fields := []zap.Field{
		zap.String("candidate", logger.Truncate(a.Profile.Name, 60)),
		zap.Int("education", len(a.Profile.Education)),
		zap.Int("experience", len(a.Profile.Experience)),
	}
	if a.Score != nil {
		fields = append(fields, zap.Float64("overall_score", a.Score.OverallScore))
	}
	log.Info("analysis complete", fields...)
	return a, nil
}

func (s *Service) discard(ctx context.Context, log *zap.Logger, ref *storage.Ref) {
	if ref == nil {
		return
	}
	if err := s.store.Delete(ctx, ref.Key); err != nil {
		log.Warn("failed to remove stored document", zap.String(logger.FieldKey, ref.Key), zap.Error(err))
	}
}

// DeleteResume removes an uploaded document. Keys outside the upload prefix
// are reported as not found.
func (s *Service) DeleteResume(ctx context.Context, key string) error {
	if s.store == nil || key == "" || !strings.HasPrefix(key, s.keyPrefix) {
		return &storage.NotFoundError{Key: key}
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return err
	}
	s.logger.Info("document deleted", zap.String(logger.FieldKey, key))
	return nil
}

func contentType(doc Document) string {
	if doc.ContentType != "" {
		return doc.ContentType
	}
	return http.DetectContentType(doc.Data)
}
