package omega

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrInvalidParameters  = errors.New("invalid parameters")
	ErrDirectory          = errors.New("directory unavailable")
)

// Типы записей в истории
const (
	EntryAdd    = "ADD"
	EntryRemove = "REMOVE"
	EntrySet    = "SET"
	EntryRedeem = "REDEEM"
)

// Запись истории баллов
type LedgerEntry struct {
	ID        *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string              `bson:"userId" json:"userId"`
	Change    int64               `bson:"change" json:"change"`       // изменение баланса
	NewTotal  int64               `bson:"newTotal" json:"newTotal"`   // баланс после операции
	Type      string              `bson:"type" json:"type"`           // ADD / REMOVE / SET / REDEEM
	RewardID  string              `bson:"rewardId,omitempty" json:"rewardId,omitempty"`
	Timestamp int64               `bson:"timestamp" json:"timestamp"` // epoch ms
}

// Награда
type Reward struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Cost        int64              `bson:"cost" json:"cost"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// Профиль Discord: базовые данные + данные участника гильдии
type UserProfile struct {
	User   DirectoryUser   `json:"user"`
	Member DirectoryMember `json:"member"`
}

type DirectoryUser struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	GlobalName *string   `json:"global_name"`
	Avatar     *string   `json:"avatar"`
	CreatedAt  time.Time `json:"created_at"`
}

type DirectoryMember struct {
	Roles    []string `json:"roles"`
	JoinedAt *string  `json:"joined_at"`
}
