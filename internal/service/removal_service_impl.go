package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
	"github.com/bagdasarian/football-registration/internal/rules"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type removalService struct {
	registrantRepo repository.RegistrantRepository
	banRepo        repository.BanRepository
	transactor     repository.Transactor
	clock          clockwork.Clock
}

// NewRemovalService создает новый экземпляр RemovalService
func NewRemovalService(
	registrantRepo repository.RegistrantRepository,
	banRepo repository.BanRepository,
	transactor repository.Transactor,
	clock clockwork.Clock,
) RemovalService {
	return &removalService{
		registrantRepo: registrantRepo,
		banRepo:        banRepo,
		transactor:     transactor,
		clock:          clock,
	}
}

// Remove удаляет регистрацию.
// Владелец в льготный период уходит без бана, иначе только с причиной CANCEL
// (в игровой день после 17:00 она превращается в CANCEL_GAME_DAY).
// Администратор удаляет чужую регистрацию с любой причиной из таблицы.
func (s *removalService) Remove(ctx context.Context, req RemoveRequest) (*RemovalResult, error) {
	handle, err := NormalizeHandle(req.Handle)
	if err != nil {
		return nil, err
	}

	registrant, err := s.registrantRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, translateRegistrantErr(err, handle)
	}

	now := s.clock.Now()

	var (
		reason rules.BanReason
		action string
	)
	switch {
	case registrant.IsOwnedBy(req.Actor.UserID):
		action = domain.ActionSelfRemove
		withinGrace := rules.WithinGracePeriod(registrant.RegisteredAt, now, true, registrant.Verified)
		if withinGrace && req.Reason == nil {
			reason = rules.ReasonNoBan
			break
		}
		if req.Reason == nil {
			return nil, domain.ErrMissingReason
		}
		if *req.Reason != rules.ReasonCancel {
			return nil, domain.ErrInvalidReason
		}
		reason = rules.CancelReason(now)

	case req.Actor.IsAdmin:
		action = domain.ActionAdminRemove
		if req.Reason == nil {
			return nil, domain.ErrMissingReason
		}
		if !req.Reason.Valid() {
			return nil, domain.ErrInvalidReason
		}
		reason = *req.Reason

	default:
		return nil, domain.ErrUnauthorized
	}

	var ban *domain.Ban
	if reason.CreatesBan() {
		policy, _ := reason.Policy()
		ban = &domain.Ban{
			Handle:      handle,
			DisplayName: registrant.DisplayName,
			Reason:      policy.Description,
			BannedAt:    now,
			BannedUntil: rules.BanExpiry(now, policy.Days),
			OwnerUserID: registrant.OwnerUserID,
		}
	}

	err = s.transactor.RunInTx(ctx, func(tx repository.TxRepositories) error {
		if ban != nil {
			if err := tx.Bans.Upsert(ctx, ban); err != nil {
				return err
			}
		}
		if err := tx.Registrants.Delete(ctx, handle); err != nil {
			return err
		}
		return tx.AdminLogs.Create(ctx, &domain.AdminLog{
			ActorUserID: actorID(req.Actor),
			Action:      action,
			TargetUser:  handle,
			TargetName:  registrant.DisplayName,
			Details:     string(reason),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, translateRegistrantErr(err, handle)
	}

	event := log.Info().
		Str("handle", handle).
		Str("action", action).
		Str("reason", string(reason))
	if ban != nil {
		event = event.Time("banned_until", ban.BannedUntil)
	}
	event.Msg("registration removed")

	return &RemovalResult{Handle: handle, Ban: ban}, nil
}

// Ban - ручной бан: снимает текущую регистрацию игрока, если она есть
func (s *removalService) Ban(ctx context.Context, actor domain.Identity, req BanRequest) (*domain.Ban, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	handle, err := NormalizeHandle(req.Handle)
	if err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, domain.ErrMissingReason
	}
	if err := rules.ValidateBanDays(req.Days); err != nil {
		return nil, domain.NewBadRequestError(err.Error())
	}

	displayName, err := normalizeDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}

	registrant, err := s.registrantRepo.GetByHandle(ctx, handle)
	if err != nil && !errors.Is(err, repository.ErrRegistrantNotFound) {
		return nil, domain.NewStoreError(err)
	}

	now := s.clock.Now()
	ban := &domain.Ban{
		Handle:      handle,
		DisplayName: displayName,
		Reason:      reason,
		BannedAt:    now,
		BannedUntil: rules.BanExpiry(now, req.Days),
	}
	if registrant != nil {
		if ban.DisplayName == "" {
			ban.DisplayName = registrant.DisplayName
		}
		ban.OwnerUserID = registrant.OwnerUserID
	}
	if ban.DisplayName == "" {
		ban.DisplayName = handle
	}

	err = s.transactor.RunInTx(ctx, func(tx repository.TxRepositories) error {
		if err := tx.Bans.Upsert(ctx, ban); err != nil {
			return err
		}
		if registrant != nil {
			err := tx.Registrants.Delete(ctx, handle)
			if err != nil && !errors.Is(err, repository.ErrRegistrantNotFound) {
				return err
			}
		}
		return tx.AdminLogs.Create(ctx, &domain.AdminLog{
			ActorUserID: actorID(actor),
			Action:      domain.ActionUserBanned,
			TargetUser:  handle,
			TargetName:  ban.DisplayName,
			Details:     fmt.Sprintf("%s (%g days)", reason, req.Days),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, domain.NewStoreError(err)
	}

	log.Info().Str("handle", handle).Float64("days", req.Days).Msg("player banned")
	return ban, nil
}

func (s *removalService) Unban(ctx context.Context, actor domain.Identity, handle string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	handle, err := NormalizeHandle(handle)
	if err != nil {
		return err
	}

	err = s.transactor.RunInTx(ctx, func(tx repository.TxRepositories) error {
		if err := tx.Bans.Delete(ctx, handle); err != nil {
			return err
		}
		return tx.AdminLogs.Create(ctx, &domain.AdminLog{
			ActorUserID: actorID(actor),
			Action:      domain.ActionUserUnbanned,
			TargetUser:  handle,
			CreatedAt:   s.clock.Now(),
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrBanNotFound) {
			return domain.NewNotFoundError("ban for " + handle)
		}
		return domain.NewStoreError(err)
	}

	return nil
}

func (s *removalService) ListBans(ctx context.Context, activeOnly bool) ([]*domain.Ban, error) {
	var (
		bans []*domain.Ban
		err  error
	)
	if activeOnly {
		bans, err = s.banRepo.ListActive(ctx, s.clock.Now())
	} else {
		bans, err = s.banRepo.List(ctx)
	}
	if err != nil {
		return nil, domain.NewStoreError(err)
	}
	return bans, nil
}
