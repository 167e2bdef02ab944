package draw

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/i18n"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/metrics"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// Service defines the interface for draw operations
type Service interface {
	// PerformDraw runs one atomic draw for the caller's active session.
	// Retrying with the same idempotency key returns the recorded outcome
	// instead of consuming more stock. Exhaustion returns the NO_PRIZE
	// result, never an error.
	PerformDraw(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo, idempotencyKey, lang string) (*domain.DrawResult, error)

	// GetDrawRecords lists a roulette's draw history, newest first
	GetDrawRecords(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.DrawRecord, error)
}

// SessionFinder resolves the caller's active session
type SessionFinder interface {
	FindActive(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error)
}

type service struct {
	repo     repository.Draw
	sessions SessionFinder
	selector *Selector
	signer   *Signer
}

// NewService creates a new draw service
func NewService(repo repository.Draw, sessions SessionFinder, selector *Selector, signer *Signer) Service {
	return &service{
		repo:     repo,
		sessions: sessions,
		selector: selector,
		signer:   signer,
	}
}

func (s *service) PerformDraw(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo, idempotencyKey, lang string) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDrawRequested, "rouletteID", rouletteID, "operatorID", operatorID, "idempotencyKey", idempotencyKey)

	if idempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key is required", domain.ErrInvalidInput)
	}

	session, err := s.sessions.FindActive(ctx, rouletteID, operatorID, deviceInfo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindSession, err)
	}
	if session == nil {
		return nil, domain.ErrNoActiveSession
	}

	tx, err := s.repo.BeginDrawTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Idempotency check happens inside the transaction so a replayed key and
	// a first-time key follow the same serialization point.
	existing, err := tx.GetDrawRecordByKey(ctx, idempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckKey, err)
	}
	if existing != nil {
		log.Info(LogMsgIdempotentReplay, "idempotencyKey", idempotencyKey, "recordID", existing.ID)
		metrics.IdempotentReplays.Inc()
		return s.resultFromRecord(existing), nil
	}

	prizes, err := tx.GetEligiblePrizesForUpdate(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadPrizes, err)
	}
	if len(prizes) == 0 {
		log.Info(LogMsgPrizesExhausted, "rouletteID", rouletteID)
		return s.noPrizeResult(ctx, tx, rouletteID, idempotencyKey, lang)
	}

	winner, err := s.selector.SelectWinner(prizes)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return s.noPrizeResult(ctx, tx, rouletteID, idempotencyKey, lang)
	}

	if winner.Stock != nil {
		rows, err := tx.DecrementStock(ctx, winner.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToDecrementStock, err)
		}
		if rows == 0 {
			// The row lock should prevent this, but a draw must never award
			// a prize whose decrement did not land.
			log.Warn(LogMsgStockRaceLost, "prizeID", winner.ID)
			return s.noPrizeResult(ctx, tx, rouletteID, idempotencyKey, lang)
		}
	}

	signature := s.signer.Sign(rouletteID.String(), winner.ID.String(), idempotencyKey)
	record := &domain.DrawRecord{
		RouletteID:      rouletteID,
		PrizeID:         &winner.ID,
		SessionID:       session.ID,
		IdempotencyKey:  idempotencyKey,
		PrizeName:       winner.Name,
		PrizeWinMessage: winner.WinMessage,
		Signature:       signature,
	}
	if err := tx.CreateDrawRecord(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
			return s.replayAfterDuplicate(ctx, tx, idempotencyKey)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordDraw, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	log.Info(LogMsgPrizeAwarded, "rouletteID", rouletteID, "prizeID", winner.ID, "prize", winner.Name)
	metrics.DrawsPerformed.Inc()
	metrics.PrizesWon.WithLabelValues(winner.Name).Inc()

	return &domain.DrawResult{
		PrizeID:   winner.ID.String(),
		Name:      winner.Name,
		Message:   winner.WinMessage,
		Signature: signature,
	}, nil
}

// noPrizeResult commits the transaction and returns the exhaustion sentinel.
// No record is written: a retry should re-check the prize pool, since stock
// may have been restocked or a reversal may have freed a unit.
func (s *service) noPrizeResult(ctx context.Context, tx repository.DrawTx, rouletteID uuid.UUID, idempotencyKey, lang string) (*domain.DrawResult, error) {
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	metrics.DrawsPerformed.Inc()
	metrics.NoPrizeOutcomes.Inc()

	return &domain.DrawResult{
		PrizeID:   domain.NoPrizeID,
		Name:      i18n.NoPrizeName(lang),
		Message:   i18n.NoPrizeMessage(lang),
		Signature: s.signer.Sign(rouletteID.String(), domain.NoPrizeID, idempotencyKey),
	}, nil
}

// replayAfterDuplicate handles two requests racing on the same key: this
// transaction lost the insert, so roll back its stock decrement and answer
// with the winner's committed record.
func (s *service) replayAfterDuplicate(ctx context.Context, tx repository.DrawTx, idempotencyKey string) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)

	if err := tx.Rollback(ctx); err != nil && err.Error() != domain.ErrMsgTxClosed {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordDraw, err)
	}

	winner, err := s.repo.GetDrawRecordByKey(ctx, idempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckKey, err)
	}
	if winner == nil {
		// The other transaction has not committed yet (or rolled back).
		// Surfacing the conflict lets the kiosk retry with the same key.
		return nil, domain.ErrDuplicateIdempotencyKey
	}

	log.Info(LogMsgDuplicateKeyRace, "idempotencyKey", idempotencyKey, "recordID", winner.ID)
	metrics.IdempotentReplays.Inc()
	return s.resultFromRecord(winner), nil
}

// resultFromRecord rebuilds the caller-facing result from a stored record
func (s *service) resultFromRecord(record *domain.DrawRecord) *domain.DrawResult {
	prizeID := domain.NoPrizeID
	if record.PrizeID != nil {
		prizeID = record.PrizeID.String()
	}
	return &domain.DrawResult{
		PrizeID:   prizeID,
		Name:      record.PrizeName,
		Message:   record.PrizeWinMessage,
		Signature: record.Signature,
	}
}

func (s *service) GetDrawRecords(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.DrawRecord, error) {
	if limit <= 0 || limit > MaxRecordsPageSize {
		limit = DefaultRecordsPageSize
	}
	records, err := s.repo.GetDrawRecords(ctx, rouletteID, limit)
	if err != nil {
		return nil, err
	}
	return records, nil
}
