package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/repository"
	"github.com/bagdasarian/football-registration/internal/rules"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type registrationService struct {
	registrantRepo repository.RegistrantRepository
	banRepo        repository.BanRepository
	transactor     repository.Transactor
	directory      Directory
	clock          clockwork.Clock
}

// NewRegistrationService создает новый экземпляр RegistrationService
func NewRegistrationService(
	registrantRepo repository.RegistrantRepository,
	banRepo repository.BanRepository,
	transactor repository.Transactor,
	directory Directory,
	clock clockwork.Clock,
) RegistrationService {
	return &registrationService{
		registrantRepo: registrantRepo,
		banRepo:        banRepo,
		transactor:     transactor,
		directory:      directory,
		clock:          clock,
	}
}

// Register записывает игрока на ближайшую игру.
// Проверки идут по порядку: окно, лимит, дубликат, бан, справочник.
func (s *registrationService) Register(ctx context.Context, req RegisterRequest) (*domain.Registrant, error) {
	handle, err := NormalizeHandle(req.Handle)
	if err != nil {
		return nil, err
	}
	displayName, err := normalizeDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !rules.IsRegistrationOpen(now) {
		return nil, domain.ErrWindowClosed
	}

	count, err := s.registrantRepo.Count(ctx)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}
	if count >= domain.MaxPlayers {
		return nil, domain.ErrCapacityReached
	}

	existing, err := s.registrantRepo.GetByHandle(ctx, handle)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateHandle
	}
	if err != nil && !errors.Is(err, repository.ErrRegistrantNotFound) {
		return nil, domain.NewStoreError(err)
	}

	ban, err := s.banRepo.GetActive(ctx, handle, now)
	if err == nil && ban != nil {
		return nil, &domain.DomainError{
			Code:    domain.CodeBanned,
			Message: fmt.Sprintf("%s until %s", domain.ErrBanned.Message, ban.BannedUntil.In(rules.CampusZone).Format("2006-01-02 15:04")),
		}
	}
	if err != nil && !errors.Is(err, repository.ErrBanNotFound) {
		return nil, domain.NewStoreError(err)
	}

	registrant := &domain.Registrant{
		Handle:       handle,
		DisplayName:  displayName,
		RegisteredAt: now,
	}
	if entry, ok := s.directory.Lookup(ctx, handle); ok {
		registrant.Verified = true
		registrant.DisplayName = entry.DisplayName
	} else if displayName == "" {
		return nil, domain.ErrUnknownHandle
	}
	if req.Owner != nil {
		registrant.OwnerUserID = actorID(*req.Owner)
	}

	// повторная проверка лимита под блокировкой: параллельные записи не превысят MaxPlayers
	err = s.transactor.RunInTx(ctx, func(tx repository.TxRepositories) error {
		if err := tx.Registrants.LockRoster(ctx); err != nil {
			return err
		}
		count, err = tx.Registrants.Count(ctx)
		if err != nil {
			return err
		}
		if count >= domain.MaxPlayers {
			return domain.ErrCapacityReached
		}
		return tx.Registrants.Create(ctx, registrant)
	})
	if err != nil {
		var domainErr *domain.DomainError
		switch {
		case errors.As(err, &domainErr):
			return nil, domainErr
		case errors.Is(err, repository.ErrHandleTaken):
			return nil, domain.ErrDuplicateHandle
		default:
			return nil, domain.NewStoreError(err)
		}
	}

	log.Info().
		Str("handle", handle).
		Bool("verified", registrant.Verified).
		Int("position", count+1).
		Msg("player registered")

	return registrant, nil
}

// List возвращает список в порядке регистрации; первые GuaranteedSpots игроков - основной состав
func (s *registrationService) List(ctx context.Context) ([]domain.RosterEntry, error) {
	registrants, err := s.registrantRepo.List(ctx)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}

	entries := make([]domain.RosterEntry, 0, len(registrants))
	for i, r := range registrants {
		entries = append(entries, domain.RosterEntry{
			Registrant: r,
			Position:   i + 1,
			Guaranteed: i < domain.GuaranteedSpots,
		})
	}
	return entries, nil
}

func (s *registrationService) Status(ctx context.Context) (*domain.RegistrationStatus, error) {
	now := s.clock.Now()

	count, err := s.registrantRepo.Count(ctx)
	if err != nil {
		return nil, domain.NewStoreError(err)
	}

	return &domain.RegistrationStatus{
		Open:            rules.IsRegistrationOpen(now),
		NextChange:      rules.NextRegistrationOpening(now),
		Registered:      count,
		GuaranteedSpots: domain.GuaranteedSpots,
		MaxPlayers:      domain.MaxPlayers,
	}, nil
}

// EditName - владелец может исправить имя неподтвержденной регистрации в течение 15 минут
func (s *registrationService) EditName(ctx context.Context, actor domain.Identity, handle, name string) (*domain.Registrant, error) {
	handle, err := NormalizeHandle(handle)
	if err != nil {
		return nil, err
	}
	name, err = normalizeDisplayName(name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.NewBadRequestError("display name is required")
	}

	registrant, err := s.getRegistrant(ctx, handle)
	if err != nil {
		return nil, err
	}

	if !registrant.IsOwnedBy(actor.UserID) {
		return nil, domain.ErrUnauthorized
	}
	if !rules.WithinGracePeriod(registrant.RegisteredAt, s.clock.Now(), true, registrant.Verified) {
		return nil, domain.ErrGracePeriodExpired
	}

	oldName := registrant.DisplayName
	err = s.transactor.RunInTx(ctx, func(tx repository.TxRepositories) error {
		if err := tx.Registrants.UpdateName(ctx, handle, name); err != nil {
			return err
		}
		return tx.AdminLogs.Create(ctx, &domain.AdminLog{
			ActorUserID: actorID(actor),
			Action:      domain.ActionNameEdit,
			TargetUser:  handle,
			TargetName:  name,
			Details:     fmt.Sprintf("%s -> %s", oldName, name),
			CreatedAt:   s.clock.Now(),
		})
	})
	if err != nil {
		return nil, translateRegistrantErr(err, handle)
	}

	registrant.DisplayName = name
	return registrant, nil
}

func (s *registrationService) SetVerified(ctx context.Context, actor domain.Identity, handle string, verified bool) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	handle, err := NormalizeHandle(handle)
	if err != nil {
		return err
	}

	err = s.transactor.RunInTx(ctx, func(tx repository.TxRepositories) error {
		if err := tx.Registrants.SetVerified(ctx, handle, verified); err != nil {
			return err
		}
		return tx.AdminLogs.Create(ctx, &domain.AdminLog{
			ActorUserID: actorID(actor),
			Action:      domain.ActionVerifiedChanged,
			TargetUser:  handle,
			Details:     fmt.Sprintf("verified=%t", verified),
			CreatedAt:   s.clock.Now(),
		})
	})
	if err != nil {
		return translateRegistrantErr(err, handle)
	}

	return nil
}

func (s *registrationService) Reset(ctx context.Context, actor *domain.Identity) (int64, error) {
	var actorUserID *int64
	source := "system"
	if actor != nil {
		if err := requireAdmin(*actor); err != nil {
			return 0, err
		}
		actorUserID = actorID(*actor)
		source = "admin"
	}

	var deleted int64
	err := s.transactor.RunInTx(ctx, func(tx repository.TxRepositories) error {
		var err error
		deleted, err = tx.Registrants.DeleteAll(ctx)
		if err != nil {
			return err
		}
		return tx.AdminLogs.Create(ctx, &domain.AdminLog{
			ActorUserID: actorUserID,
			Action:      domain.ActionRosterReset,
			Details:     fmt.Sprintf("source=%s removed=%d", source, deleted),
			CreatedAt:   s.clock.Now(),
		})
	})
	if err != nil {
		return 0, domain.NewStoreError(err)
	}

	log.Info().Str("source", source).Int64("removed", deleted).Msg("registration list reset")
	return deleted, nil
}

func (s *registrationService) getRegistrant(ctx context.Context, handle string) (*domain.Registrant, error) {
	registrant, err := s.registrantRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, translateRegistrantErr(err, handle)
	}
	return registrant, nil
}

func translateRegistrantErr(err error, handle string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, repository.ErrRegistrantNotFound) {
		return domain.NewNotFoundError("registration for " + handle)
	}
	return domain.NewStoreError(err)
}
