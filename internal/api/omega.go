package omega

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	interf "github.com/Vitrio14/vitrio-discord-backend/internal/interfaces"
	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const historyLimit = 50

type OmegaHandler struct {
	router    *mux.Router
	service   interf.OmegaLedger
	directory interf.Directory
	logger    *zap.Logger
	origin    string
}

func NewHandler(service interf.OmegaLedger, directory interf.Directory, origin string, logger *zap.Logger) *OmegaHandler {
	router := mux.NewRouter()
	handler := &OmegaHandler{router, service, directory, logger, origin}
	router.Use(MiddlewareMetrics())
	router.Use(MiddlewareRequestID())

	router.HandleFunc("/getUserInfo", handler.GetUserInfoHandler).Methods(http.MethodGet)
	router.HandleFunc("/getOmega", handler.GetOmegaHandler).Methods(http.MethodGet)
	router.HandleFunc("/addOmega", handler.AddOmegaHandler).Methods(http.MethodPost)
	router.HandleFunc("/removeOmega", handler.RemoveOmegaHandler).Methods(http.MethodPost)
	router.HandleFunc("/setOmega", handler.SetOmegaHandler).Methods(http.MethodPost)
	router.HandleFunc("/getOmegaHistory", handler.GetOmegaHistoryHandler).Methods(http.MethodGet)
	router.HandleFunc("/getOmegaHistoryAll", handler.GetOmegaHistoryAllHandler).Methods(http.MethodGet)
	router.HandleFunc("/getRewards", handler.GetRewardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/redeemReward", handler.RedeemRewardHandler).Methods(http.MethodPost)
	router.HandleFunc("/discord/token", handler.TokenHandler).Methods(http.MethodPost)

	return handler
}

// CORS обрабатывается до роутера, иначе preflight не находит маршрут
func (h *OmegaHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h.origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", h.origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	}
	if req.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.router.ServeHTTP(w, req)
}

func (h *OmegaHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// ответ {ok:true, ...}
func (h *OmegaHandler) success(w http.ResponseWriter, data map[string]any) {
	body := map[string]any{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	j, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

// ответ {ok:false, error}: бизнес-ошибки отдаются с кодом 200
func (h *OmegaHandler) fail(w http.ResponseWriter, message string) {
	j, _ := json.Marshal(map[string]any{"ok": false, "error": message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

// Данные Discord пользователя
func (h *OmegaHandler) GetUserInfoHandler(w http.ResponseWriter, req *http.Request) {
	userId := req.URL.Query().Get("userId")
	if userId == "" {
		h.fail(w, "Missing userId")
		return
	}

	profile, err := h.directory.GetUserProfile(req.Context(), userId)
	if err != nil {
		h.Log("Directory get", "GetUserInfoHandler", err)
		h.fail(w, "Discord API error")
		return
	}
	h.success(w, map[string]any{"user": profile.User, "member": profile.Member})
}

// Баланс
func (h *OmegaHandler) GetOmegaHandler(w http.ResponseWriter, req *http.Request) {
	userId := req.URL.Query().Get("userId")
	if userId == "" {
		h.fail(w, "Missing userId")
		return
	}

	omega, err := h.service.GetOmega(req.Context(), userId)
	if err != nil {
		h.Log("Service get", "GetOmegaHandler", err)
		h.fail(w, "Internal error")
		return
	}
	h.success(w, map[string]any{"omega": omega})
}

type amountRequest struct {
	UserID string `json:"userId"`
	Amount *int64 `json:"amount"`
}

type valueRequest struct {
	UserID string `json:"userId"`
	Value  *int64 `json:"value"`
}

type redeemRequest struct {
	UserID   string `json:"userId"`
	RewardID string `json:"rewardId"`
}

// Начисление баллов
func (h *OmegaHandler) AddOmegaHandler(w http.ResponseWriter, req *http.Request) {
	body := &amountRequest{}
	err := json.NewDecoder(req.Body).Decode(body)
	defer req.Body.Close()
	if err != nil || body.UserID == "" || body.Amount == nil {
		h.fail(w, "Invalid parameters")
		return
	}

	omega, err := h.service.AddOmega(req.Context(), body.UserID, *body.Amount)
	if err != nil {
		h.Log("Service add", "AddOmegaHandler", err)
		h.fail(w, "Internal error")
		return
	}
	h.success(w, map[string]any{
		"message": fmt.Sprintf("Added %d Omega Points", *body.Amount),
		"omega":   omega,
	})
}

// Списание баллов
func (h *OmegaHandler) RemoveOmegaHandler(w http.ResponseWriter, req *http.Request) {
	body := &amountRequest{}
	err := json.NewDecoder(req.Body).Decode(body)
	defer req.Body.Close()
	if err != nil || body.UserID == "" || body.Amount == nil {
		h.fail(w, "Invalid parameters")
		return
	}

	omega, err := h.service.RemoveOmega(req.Context(), body.UserID, *body.Amount)
	if err != nil {
		h.Log("Service remove", "RemoveOmegaHandler", err)
		h.fail(w, "Internal error")
		return
	}
	h.success(w, map[string]any{
		"message": fmt.Sprintf("Removed %d Omega Points", *body.Amount),
		"omega":   omega,
	})
}

// Установка баланса (админ)
func (h *OmegaHandler) SetOmegaHandler(w http.ResponseWriter, req *http.Request) {
	body := &valueRequest{}
	err := json.NewDecoder(req.Body).Decode(body)
	defer req.Body.Close()
	if err != nil || body.UserID == "" || body.Value == nil {
		h.fail(w, "Invalid parameters")
		return
	}

	omega, err := h.service.SetOmega(req.Context(), body.UserID, *body.Value)
	if err != nil {
		h.Log("Service set", "SetOmegaHandler", err)
		h.fail(w, "Internal error")
		return
	}
	h.success(w, map[string]any{
		"message": fmt.Sprintf("Omega Points set to %d", *body.Value),
		"omega":   omega,
	})
}

// История пользователя
func (h *OmegaHandler) GetOmegaHistoryHandler(w http.ResponseWriter, req *http.Request) {
	userId := req.URL.Query().Get("userId")
	if userId == "" {
		h.fail(w, "Missing userId")
		return
	}

	history, err := h.service.GetHistory(req.Context(), userId, historyLimit)
	if err != nil {
		h.Log("Service history", "GetOmegaHistoryHandler", err)
		h.fail(w, "Internal error")
		return
	}
	if history == nil {
		history = []model.LedgerEntry{}
	}
	h.success(w, map[string]any{"history": history})
}

// История по всем пользователям
func (h *OmegaHandler) GetOmegaHistoryAllHandler(w http.ResponseWriter, req *http.Request) {
	limit := int64(historyLimit)
	if v := req.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			h.fail(w, "Invalid parameters")
			return
		}
		limit = n
	}

	history, err := h.service.GetHistoryAll(req.Context(), limit)
	if err != nil {
		h.Log("Service history all", "GetOmegaHistoryAllHandler", err)
		h.fail(w, "Internal error")
		return
	}
	if history == nil {
		history = []model.LedgerEntry{}
	}
	h.success(w, map[string]any{"history": history})
}

// Каталог наград
func (h *OmegaHandler) GetRewardsHandler(w http.ResponseWriter, req *http.Request) {
	rewards, err := h.service.GetRewards(req.Context())
	if err != nil {
		h.Log("Service rewards", "GetRewardsHandler", err)
		h.fail(w, "Internal error")
		return
	}
	if rewards == nil {
		rewards = []model.Reward{}
	}
	h.success(w, map[string]any{"rewards": rewards})
}

// Выкуп награды
func (h *OmegaHandler) RedeemRewardHandler(w http.ResponseWriter, req *http.Request) {
	body := &redeemRequest{}
	err := json.NewDecoder(req.Body).Decode(body)
	defer req.Body.Close()
	if err != nil || body.UserID == "" || body.RewardID == "" {
		h.fail(w, "Invalid parameters")
		return
	}

	omega, err := h.service.RedeemReward(req.Context(), body.UserID, body.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			h.fail(w, "Reward not found")
		case errors.Is(err, model.ErrInsufficientPoints):
			h.fail(w, "Not enough Omega Points")
		default:
			h.Log("Service redeem", "RedeemRewardHandler", err)
			h.fail(w, "Internal error")
		}
		return
	}
	h.success(w, map[string]any{
		"message": "Reward redeemed successfully",
		"omega":   omega,
	})
}

type tokenRequest struct {
	Code string `json:"code"`
}

// Обмен OAuth кода: единственный маршрут со статусами 400/500
func (h *OmegaHandler) TokenHandler(w http.ResponseWriter, req *http.Request) {
	body := &tokenRequest{}
	err := json.NewDecoder(req.Body).Decode(body)
	defer req.Body.Close()
	if err != nil || body.Code == "" {
		http.Error(w, "Missing code", http.StatusBadRequest)
		return
	}

	token, err := h.directory.ExchangeCode(req.Context(), body.Code)
	if err != nil {
		h.Log("Token exchange", "TokenHandler", err)
		http.Error(w, "Token exchange failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(token)
}
