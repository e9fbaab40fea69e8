// Утилита для заполнения каталога наград из JSON файла.
// Каталог управляется вне сервиса: у API нет маршрутов изменения наград.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	db "github.com/Vitrio14/vitrio-discord-backend/internal/db"
	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
	"go.uber.org/zap"
)

type rewardSeed struct {
	Cost        int64  `json:"cost"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	path := flag.String("file", "rewards.json", "path to rewards JSON file")
	flag.Parse()

	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(*path)
	if err != nil {
		logger.Error("read rewards file", zap.Error(err))
		os.Exit(1)
	}
	var seeds []rewardSeed
	err = json.Unmarshal(raw, &seeds)
	if err != nil {
		logger.Error("parse rewards file", zap.Error(err))
		os.Exit(1)
	}

	// database
	ctx := context.Background()
	storage, err := db.NewOmegaDB(logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer storage.Close(ctx)

	for _, s := range seeds {
		if s.Cost < 0 {
			logger.Error("negative cost skipped", zap.String("name", s.Name))
			continue
		}
		id, err := storage.InsertReward(ctx, model.Reward{
			Cost:        s.Cost,
			Name:        s.Name,
			Description: s.Description,
		})
		if err != nil {
			logger.Error("insert reward", zap.String("name", s.Name), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("reward created",
			zap.String("id", id.Hex()),
			zap.String("name", s.Name),
			zap.Int64("cost", s.Cost),
		)
	}
}
