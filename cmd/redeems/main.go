// Job - Обработка выкупа наград из очереди
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/Vitrio14/vitrio-discord-backend/internal/db"
	rabbit "github.com/Vitrio14/vitrio-discord-backend/internal/external/rabbitmq"
	interf "github.com/Vitrio14/vitrio-discord-backend/internal/interfaces"
	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
	services "github.com/Vitrio14/vitrio-discord-backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	storage, err := db.NewOmegaDB(logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	} else {
		cache = redis
	}

	// services
	serv := services.NewOmegaService(logger, storage, storage, cache, nil)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer storage.Close(ctx)

	var semcount int
	semenv := os.Getenv("OMEGA_REDEEM_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.OmegaService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, ok := <-reader.Msg
			if !ok {
				return
			}
			redeem := &rabbit.RedeemRequest{}
			err := json.Unmarshal(msg.Body, redeem)
			if err != nil || redeem.UserID == "" || redeem.RewardID == "" {
				logger.Error("invalid redeem message", zap.Error(err))
				continue
			}

			confirm := rabbit.RedeemConfirm{UserID: redeem.UserID, RewardID: redeem.RewardID}
			omega, err := serv.RedeemReward(ctx, redeem.UserID, redeem.RewardID)
			if err != nil {
				logger.Error(err.Error())
				switch {
				case errors.Is(err, model.ErrNotFound):
					confirm.Error = "Reward not found"
				case errors.Is(err, model.ErrInsufficientPoints):
					confirm.Error = "Not enough Omega Points"
				default:
					confirm.Error = "Internal error"
				}
			} else {
				confirm.Success = true
				confirm.Omega = omega
			}

			err = reader.Processed(ctx, confirm)
			if err != nil {
				logger.Error(err.Error())
				continue
			}
		}
	}
}
