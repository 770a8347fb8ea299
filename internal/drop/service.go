package drop

import (
	"context"
	"fmt"
	"time"

	"github.com/pehenyshka/piratecards/internal/catalog"
	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/ledger"
	"github.com/pehenyshka/piratecards/internal/logger"
	"github.com/pehenyshka/piratecards/internal/metrics"
	"github.com/pehenyshka/piratecards/internal/rarity"
	"github.com/pehenyshka/piratecards/internal/repository"
)

// Service is the drop engine: it gates a draw on the cooldown or an
// extra-draw credit, samples a card and books the consequences.
type Service interface {
	// Draw attempts one draw for the user at instant now. It registers
	// unknown users implicitly. A cooldown denial surfaces as
	// domain.ErrOnCooldown carrying the remaining wait.
	Draw(ctx context.Context, userID, username string, now time.Time) (*domain.DrawResult, error)
}

type service struct {
	ledger   ledger.Service
	resolver rarity.Resolver
	catalog  catalog.Service
	acqRepo  repository.Acquisition
}

// NewService creates a drop engine over its collaborators.
func NewService(ledgerSvc ledger.Service, resolver rarity.Resolver, catalogSvc catalog.Service, acqRepo repository.Acquisition) Service {
	return &service{
		ledger:   ledgerSvc,
		resolver: resolver,
		catalog:  catalogSvc,
		acqRepo:  acqRepo,
	}
}

func (s *service) Draw(ctx context.Context, userID, username string, now time.Time) (*domain.DrawResult, error) {
	var result *domain.DrawResult

	// Two draws for the same user must not both pass the gate; the
	// whole sequence runs inside the user's critical section.
	err := s.ledger.WithUserLock(userID, func() error {
		var err error
		result, err = s.draw(ctx, userID, username, now)
		return err
	})
	return result, err
}

func (s *service) draw(ctx context.Context, userID, username string, now time.Time) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)

	if _, err := s.ledger.GetOrCreate(ctx, userID, username, now); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextRegister, err)
	}

	owned, err := s.acqRepo.CountAcquisitions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCountOwned, err)
	}

	// The first-ever draw is unconditionally allowed, whatever the
	// stored cooldown state claims.
	firstDraw := owned == 0
	usedExtraDraw := false

	if !firstDraw {
		allowed, remaining, err := s.ledger.CanDraw(ctx, userID, now)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextCheckCooldown, err)
		}
		if !allowed {
			// A credit bypasses the cooldown, but it is only spent
			// after the card is confirmed; here we just check it.
			user, err := s.ledger.GetOrCreate(ctx, userID, username, now)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextRegister, err)
			}
			if user.ExtraDraws > 0 {
				usedExtraDraw = true
			} else {
				log.Debug(LogMsgDrawDenied, "user_id", userID, "remaining", remaining)
				metrics.DrawsDenied.Inc()
				return nil, domain.ErrOnCooldown{Remaining: remaining}
			}
		}
	}

	// Read the bonus without clearing it: it must survive a failed
	// sample and be consumed only by a successful draw.
	user, err := s.ledger.GetOrCreate(ctx, userID, username, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextRegister, err)
	}
	bonus := user.RarityBonus

	tier, err := s.resolver.ResolveTier(bonus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextResolveTier, err)
	}

	card, err := s.catalog.RandomCard(ctx, tier)
	if err != nil {
		// Catalog data bug: propagate without touching cooldown, bonus
		// or credits.
		log.Error(LogMsgEmptyTier, "user_id", userID, "rarity", tier, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextSampleCard, err)
	}

	// Card confirmed; from here on the draw is booked. Irreversible
	// consumption comes strictly after the acquisition record.
	if err := s.acqRepo.InsertAcquisition(ctx, userID, card.ID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextRecordCard, err)
	}
	if err := s.ledger.RecordDraw(ctx, userID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextRecordDraw, err)
	}
	if usedExtraDraw {
		if _, err := s.ledger.ConsumeExtraDraw(ctx, userID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextConsumeCredit, err)
		}
	}
	if bonus > 0 {
		if _, err := s.ledger.ConsumeRarityBonus(ctx, userID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextConsumeBonus, err)
		}
	}

	log.Info(LogMsgDrawSucceeded,
		"user_id", userID,
		"card_id", card.ID,
		"rarity", card.Rarity,
		"first_draw", firstDraw,
		"extra_draw", usedExtraDraw,
		"bonus", bonus)
	metrics.DrawsTotal.WithLabelValues(fmt.Sprint(card.Rarity)).Inc()

	return &domain.DrawResult{
		Card:          *card,
		FirstDraw:     firstDraw,
		UsedExtraDraw: usedExtraDraw,
		BonusApplied:  bonus,
	}, nil
}
