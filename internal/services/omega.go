package omega

import (
	"context"
	"fmt"
	"sync"
	"time"

	interf "github.com/Vitrio14/vitrio-discord-backend/internal/interfaces"
	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
	"go.uber.org/zap"
)

type OmegaService struct {
	logger  *zap.Logger
	ledger  interf.LedgerStorage
	rewards interf.RewardStorage
	cache   interf.CacheStorage
	stream  interf.LedgerStream
	locks   sync.Map // userId -> *sync.Mutex
}

func NewOmegaService(logger *zap.Logger, ledger interf.LedgerStorage, rewards interf.RewardStorage, cache interf.CacheStorage, stream interf.LedgerStream) *OmegaService {
	return &OmegaService{
		logger:  logger,
		ledger:  ledger,
		rewards: rewards,
		cache:   cache,
		stream:  stream,
	}
}

// Мутации одного пользователя выполняются последовательно,
// иначе два конкурентных запроса читают один и тот же баланс
func (s *OmegaService) lock(user string) func() {
	v, _ := s.locks.LoadOrStore(user, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Баланс
func (s *OmegaService) GetOmega(ctx context.Context, user string) (points int64, err error) {
	// cache
	if s.cache != nil {
		points, err = s.cache.GetBalance(ctx, user)
		if err != nil {
			// database
			points, err = s.ledger.GetBalance(ctx, user)
			if err != nil {
				return 0, err
			}
			_ = s.cache.SetBalance(ctx, user, points)
		}
		return points, nil
	}
	points, err = s.ledger.GetBalance(ctx, user)
	if err != nil {
		return 0, err
	}
	return points, nil
}

// Начисление баллов: сумма может быть любой, включая отрицательную
func (s *OmegaService) AddOmega(ctx context.Context, user string, amount int64) (int64, error) {
	defer s.lock(user)()

	current, err := s.ledger.GetBalance(ctx, user)
	if err != nil {
		return 0, err
	}
	updated := current + amount

	err = s.ledger.SetBalance(ctx, user, updated)
	if err != nil {
		return 0, err
	}
	err = s.appendEntry(ctx, model.LedgerEntry{
		UserID:   user,
		Change:   amount,
		NewTotal: updated,
		Type:     model.EntryAdd,
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// Списание баллов: баланс не опускается ниже нуля,
// но в истории фиксируется запрошенная сумма
func (s *OmegaService) RemoveOmega(ctx context.Context, user string, amount int64) (int64, error) {
	defer s.lock(user)()

	current, err := s.ledger.GetBalance(ctx, user)
	if err != nil {
		return 0, err
	}
	updated := current - amount
	if updated < 0 {
		updated = 0
	}

	err = s.ledger.SetBalance(ctx, user, updated)
	if err != nil {
		return 0, err
	}
	err = s.appendEntry(ctx, model.LedgerEntry{
		UserID:   user,
		Change:   -amount,
		NewTotal: updated,
		Type:     model.EntryRemove,
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// Установка баланса (админ): без ограничений снизу
func (s *OmegaService) SetOmega(ctx context.Context, user string, value int64) (int64, error) {
	defer s.lock(user)()

	err := s.ledger.SetBalance(ctx, user, value)
	if err != nil {
		return 0, err
	}
	err = s.appendEntry(ctx, model.LedgerEntry{
		UserID:   user,
		Change:   value,
		NewTotal: value,
		Type:     model.EntrySet,
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Списание за награду: проверки в порядке
// награда не найдена -> не хватает баллов -> успех
func (s *OmegaService) RedeemReward(ctx context.Context, user string, rewardId string) (int64, error) {
	reward, err := s.rewards.GetReward(ctx, rewardId)
	if err != nil {
		return 0, err
	}

	defer s.lock(user)()

	current, err := s.ledger.GetBalance(ctx, user)
	if err != nil {
		return 0, err
	}
	if current < reward.Cost {
		return 0, fmt.Errorf("reward %s: %w", rewardId, model.ErrInsufficientPoints)
	}
	updated := current - reward.Cost

	err = s.ledger.SetBalance(ctx, user, updated)
	if err != nil {
		return 0, err
	}
	err = s.appendEntry(ctx, model.LedgerEntry{
		UserID:   user,
		Change:   -reward.Cost,
		NewTotal: updated,
		Type:     model.EntryRedeem,
		RewardID: rewardId,
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// Запись истории + инвалидация кэша + публикация события.
// Откат баланса при ошибке записи истории не выполняется.
func (s *OmegaService) appendEntry(ctx context.Context, entry model.LedgerEntry) error {
	entry.Timestamp = time.Now().UnixMilli()
	err := s.ledger.AppendEntry(ctx, entry)
	if err != nil {
		return err
	}

	if s.cache != nil {
		err = s.cache.InvalidateBalance(ctx, entry.UserID)
		if err != nil {
			s.logger.Error("cache invalidate", zap.String("user", entry.UserID), zap.Error(err))
		}
	}
	if s.stream != nil {
		err = s.stream.Publish(ctx, entry)
		if err != nil {
			s.logger.Error("ledger stream publish", zap.String("user", entry.UserID), zap.Error(err))
		}
	}
	return nil
}

// История пользователя
func (s *OmegaService) GetHistory(ctx context.Context, user string, limit int64) ([]model.LedgerEntry, error) {
	entries, err := s.ledger.GetHistory(ctx, user, limit)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// История по всем пользователям
func (s *OmegaService) GetHistoryAll(ctx context.Context, limit int64) ([]model.LedgerEntry, error) {
	entries, err := s.ledger.GetHistoryAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Каталог наград
func (s *OmegaService) GetRewards(ctx context.Context) ([]model.Reward, error) {
	rewards, err := s.rewards.GetRewards(ctx)
	if err != nil {
		return nil, err
	}
	return rewards, nil
}
