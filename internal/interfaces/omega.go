package omega

import (
	"context"
	"encoding/json"

	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
)

//go:generate mockgen -destination=./../services/mock_omega_test.go -package=omega . LedgerStorage,RewardStorage,CacheStorage,LedgerStream
//go:generate mockgen -destination=./../api/mock_omega_test.go -package=omega . OmegaLedger,Directory

// Хранилище балансов и истории
type LedgerStorage interface {
	GetBalance(ctx context.Context, user string) (int64, error)
	SetBalance(ctx context.Context, user string, value int64) error
	AppendEntry(ctx context.Context, entry model.LedgerEntry) error
	GetHistory(ctx context.Context, user string, limit int64) ([]model.LedgerEntry, error)
	GetHistoryAll(ctx context.Context, limit int64) ([]model.LedgerEntry, error)
}

// Каталог наград (read-only для сервиса)
type RewardStorage interface {
	GetReward(ctx context.Context, rewardId string) (model.Reward, error)
	GetRewards(ctx context.Context) ([]model.Reward, error)
}

type CacheStorage interface {
	GetBalance(ctx context.Context, user string) (int64, error)
	SetBalance(ctx context.Context, user string, points int64) error
	InvalidateBalance(ctx context.Context, user string) error
}

// Поток событий истории (Kafka)
type LedgerStream interface {
	Publish(ctx context.Context, entry model.LedgerEntry) error
}

// Операции с баллами - используется HTTP API и воркером списаний
type OmegaLedger interface {
	GetOmega(ctx context.Context, user string) (int64, error)
	AddOmega(ctx context.Context, user string, amount int64) (int64, error)
	RemoveOmega(ctx context.Context, user string, amount int64) (int64, error)
	SetOmega(ctx context.Context, user string, value int64) (int64, error)
	RedeemReward(ctx context.Context, user string, rewardId string) (int64, error)
	GetHistory(ctx context.Context, user string, limit int64) ([]model.LedgerEntry, error)
	GetHistoryAll(ctx context.Context, limit int64) ([]model.LedgerEntry, error)
	GetRewards(ctx context.Context) ([]model.Reward, error)
}

// Клиент Discord API
type Directory interface {
	GetUserProfile(ctx context.Context, userId string) (model.UserProfile, error)
	ExchangeCode(ctx context.Context, code string) (json.RawMessage, error)
}
