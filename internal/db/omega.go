package omega

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type OmegaDB struct {
	mgo     *mongo.Client
	users   *mongo.Collection
	history *mongo.Collection
	rewards *mongo.Collection
	logger  *zap.Logger
}

// учетные данные администратора из локального файла
type mongoCredentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

func NewOmegaDB(logger *zap.Logger) (*OmegaDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("OMEGA_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env OMEGA_MONGO is not set")
	}

	uri := "mongodb://" + mng

	// файл с учетными данными
	credpath := os.Getenv("OMEGA_MONGO_CRED")
	if credpath != "" {
		raw, err := os.ReadFile(credpath)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		cred := &mongoCredentials{}
		err = json.Unmarshal(raw, cred)
		if err != nil {
			return nil, fmt.Errorf("parse credentials file: %w", err)
		}
		uri = "mongodb://" + cred.User + ":" + cred.Password + "@" + mng
	}

	options := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("omegaDB")

	return &OmegaDB{
		mgo:     client,
		users:   db.Collection("users"),
		history: db.Collection("omegaHistory"),
		rewards: db.Collection("rewards"),
		logger:  logger,
	}, nil
}

func (o *OmegaDB) Close(ctx context.Context) error {
	return o.mgo.Disconnect(ctx)
}

// Получить баланс: отсутствие документа = 0
func (o *OmegaDB) GetBalance(ctx context.Context, user string) (int64, error) {
	var doc struct {
		Omega int64 `bson:"omega"`
	}
	filter := bson.M{"_id": user}
	err := o.users.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		o.logger.Error("DB get balance", zap.String("user", user), zap.Error(err))
		return 0, err
	}
	return doc.Omega, nil
}

// Записать баланс: upsert, меняется только поле omega
func (o *OmegaDB) SetBalance(ctx context.Context, user string, value int64) error {
	filter := bson.M{"_id": user}
	update := bson.M{"$set": bson.M{"omega": value}}
	_, err := o.users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		o.logger.Error("DB set balance", zap.String("user", user), zap.Error(err))
		return err
	}
	return nil
}

// Добавить запись истории (append-only)
func (o *OmegaDB) AppendEntry(ctx context.Context, entry model.LedgerEntry) error {
	_, err := o.history.InsertOne(ctx, entry)
	if err != nil {
		o.logger.Error("DB append entry", zap.String("user", entry.UserID), zap.Error(err))
		return err
	}
	return nil
}

// История пользователя: по убыванию времени, без _id
func (o *OmegaDB) GetHistory(ctx context.Context, user string, limit int64) ([]model.LedgerEntry, error) {
	filter := bson.M{"userId": user}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})
	result, err := o.history.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var entries []model.LedgerEntry
	for result.Next(ctx) {
		var entry model.LedgerEntry
		err := result.Decode(&entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// История по всем пользователям: с идентификаторами записей
func (o *OmegaDB) GetHistoryAll(ctx context.Context, limit int64) ([]model.LedgerEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	result, err := o.history.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var entries []model.LedgerEntry
	for result.Next(ctx) {
		var entry model.LedgerEntry
		err := result.Decode(&entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Получить награду по идентификатору
func (o *OmegaDB) GetReward(ctx context.Context, rewardId string) (model.Reward, error) {
	oid, err := primitive.ObjectIDFromHex(rewardId)
	if err != nil {
		return model.Reward{}, fmt.Errorf("reward %s: %w", rewardId, model.ErrNotFound)
	}
	var reward model.Reward
	err = o.rewards.FindOne(ctx, bson.M{"_id": oid}).Decode(&reward)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Reward{}, fmt.Errorf("reward %s: %w", rewardId, model.ErrNotFound)
		}
		o.logger.Error("DB get reward", zap.String("reward", rewardId), zap.Error(err))
		return model.Reward{}, err
	}
	return reward, nil
}

// Все награды по возрастанию стоимости
func (o *OmegaDB) GetRewards(ctx context.Context) ([]model.Reward, error) {
	opts := options.Find().SetSort(bson.D{{Key: "cost", Value: 1}})
	result, err := o.rewards.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var rewards []model.Reward
	for result.Next(ctx) {
		var reward model.Reward
		err := result.Decode(&reward)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

// Создать награду - используется только утилитой cmd/seed
func (o *OmegaDB) InsertReward(ctx context.Context, reward model.Reward) (primitive.ObjectID, error) {
	res, err := o.rewards.InsertOne(ctx, reward)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
