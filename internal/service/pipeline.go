package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reel_fetcher/internal/domain"
)

// Progress percentages for the fixed phases. Items are interpolated
// between pctFiltered and pctCeiling; 100 is reserved for completion.
const (
	pctConnecting = 5
	pctLocating   = 10
	pctFiltered   = 20
	pctCeiling    = 90
)

// User-facing outcome messages. Internally distinct failures collapse
// to these on purpose; the caller is never told which collaborator
// failed. Operator detail goes to the logs.
const (
	msgLocationNotFound = "Location not found"
	msgInvalidReels     = "Invalid reels data structure"
	msgGenericFailure   = "An error occurred while processing reels. Please try again."
	msgAllProcessed     = "All reels processed"
)

// PipelineService runs one reel ingestion end to end: resolve the
// location, list its reels, filter to videos, then resolve, re-host and
// persist each item in order, publishing progress throughout. Items are
// processed strictly one at a time; the upstream services are
// rate-limited and a run is not an optimization target.
type PipelineService struct {
	locations LocationStore
	reels     ReelStore
	source    ReelSource
	rehoster  Rehoster
	conns     ConnManager
	progress  ProgressPublisher
	publisher ReelPublisher
	logger    *slog.Logger
}

func NewPipelineService(
	locations LocationStore,
	reels ReelStore,
	source ReelSource,
	rehoster Rehoster,
	conns ConnManager,
	progress ProgressPublisher,
	publisher ReelPublisher,
	logger *slog.Logger,
) *PipelineService {
	return &PipelineService{
		locations: locations,
		reels:     reels,
		source:    source,
		rehoster:  rehoster,
		conns:     conns,
		progress:  progress,
		publisher: publisher,
		logger:    logger.With("component", "pipeline"),
	}
}

// Run executes one ingestion run and reports the outcome. Progress and
// error events are published under sessionID as the run advances; after
// the returned result no further events are published for the run.
// Failures are terminal: items persisted before a failing item remain
// persisted.
func (s *PipelineService) Run(ctx context.Context, input domain.RunInput, sessionID string) *domain.RunResult {
	logger := s.logger.With("session_id", sessionID, "location", input.Location)

	if input.ReelCount < 1 {
		return s.abort(sessionID, logger, "Reel count must be at least 1",
			fmt.Errorf("reel count %d: %w", input.ReelCount, domain.ErrValidation))
	}

	s.progress.Publish(sessionID, domain.NewProgress(pctConnecting, "Connecting to data store"))

	var result *domain.RunResult
	err := s.conns.WithConn(ctx, func(ctx context.Context) error {
		result = s.runWithConn(ctx, logger, input, sessionID)
		return nil
	})
	if err != nil {
		return s.abort(sessionID, logger, msgGenericFailure, err)
	}

	return result
}

func (s *PipelineService) runWithConn(ctx context.Context, logger *slog.Logger, input domain.RunInput, sessionID string) *domain.RunResult {
	start := time.Now()

	loc, err := s.lookupLocation(ctx, input.Location)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.abort(sessionID, logger, msgLocationNotFound, err)
		}
		return s.abort(sessionID, logger, msgGenericFailure, err)
	}
	logger = logger.With("location_id", loc.ID)

	s.progress.Publish(sessionID, domain.NewProgress(pctLocating,
		fmt.Sprintf("Fetching reels for %s", loc.Name)))

	items, err := s.source.FetchReels(ctx, loc.InstagramHandle)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return s.abort(sessionID, logger, msgInvalidReels, err)
		}
		return s.abort(sessionID, logger, msgGenericFailure, err)
	}

	selected := filterVideoItems(items, input.ReelCount)
	logger.Info("filtered candidates", "fetched", len(items), "selected", len(selected))

	s.progress.Publish(sessionID, domain.NewProgress(pctFiltered,
		fmt.Sprintf("Found %d reels to process", len(selected))))

	processed := 0
	for i, item := range selected {
		pct := pctFiltered + (pctCeiling-pctFiltered)*i/len(selected)
		s.progress.Publish(sessionID, domain.NewProgress(pct,
			fmt.Sprintf("Processing reel %d of %d", i+1, len(selected))))

		reel, err := s.processItem(ctx, loc, item)
		if err != nil {
			logger.Error("item failed", "code", item.Code, "processed", processed, "error", err)
			return s.abort(sessionID, logger, msgGenericFailure, err)
		}

		if s.publisher != nil {
			// Notification only; a broker hiccup never fails the run.
			if err := s.publisher.Publish(ctx, reel); err != nil {
				logger.Warn("failed to announce reel", "reel_id", reel.ID, "error", err)
			}
		}

		processed++
	}

	s.progress.Publish(sessionID, domain.NewProgress(100, msgAllProcessed))

	logger.Info("run completed", "processed", processed, "duration", time.Since(start))

	return &domain.RunResult{
		Success:        true,
		Message:        fmt.Sprintf("Successfully processed %d reels for %s", processed, loc.Name),
		ProcessedReels: processed,
	}
}

func (s *PipelineService) processItem(ctx context.Context, loc *domain.Location, item domain.CandidateItem) (*domain.Reel, error) {
	mediaURL, err := s.source.ResolveMedia(ctx, item.Code)
	if err != nil {
		return nil, fmt.Errorf("resolve media: %w", err)
	}

	uris, err := s.rehoster.Rehost(ctx, mediaURL)
	if err != nil {
		return nil, fmt.Errorf("rehost media: %w", err)
	}

	reel := &domain.Reel{
		LocationID: loc.ID,
		CategoryID: loc.CategoryID,
		VideoURI:   uris.VideoURI,
		ThumbURI:   uris.ThumbURI,
		Caption:    item.Caption,
	}
	if err := s.reels.Insert(ctx, reel); err != nil {
		return nil, fmt.Errorf("persist reel: %w", err)
	}

	return reel, nil
}

func (s *PipelineService) lookupLocation(ctx context.Context, nameOrID string) (*domain.Location, error) {
	if id, err := uuid.Parse(nameOrID); err == nil {
		return s.locations.GetByID(ctx, id)
	}
	return s.locations.GetByName(ctx, nameOrID)
}

func (s *PipelineService) abort(sessionID string, logger *slog.Logger, userMsg string, err error) *domain.RunResult {
	logger.Error("run aborted", "error", err)
	s.progress.Publish(sessionID, domain.NewError(userMsg))
	return &domain.RunResult{Success: false, Message: userMsg}
}

// filterVideoItems keeps video-type candidates in their original order
// and takes at most limit of them. Zero qualifying items is not an
// error; the run completes with zero processed.
func filterVideoItems(items []domain.CandidateItem, limit int) []domain.CandidateItem {
	selected := make([]domain.CandidateItem, 0, limit)
	for _, item := range items {
		if !item.IsVideo() {
			continue
		}
		selected = append(selected, item)
		if len(selected) == limit {
			break
		}
	}
	return selected
}
