package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
	"go.uber.org/zap"
)

const (
	apiURL = "https://discord.com/api/v10"
	cdnURL = "https://cdn.discordapp.com"

	// эпоха Discord snowflake
	snowflakeEpoch = 1420070400000
)

type Client struct {
	BaseURL      string
	token        string
	guild        string
	clientID     string
	clientSecret string
	redirectURI  string
	http         *http.Client
	logger       *zap.Logger
}

func NewClient(logger *zap.Logger) (*Client, error) {
	// config
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("env BOT_TOKEN is not set")
	}
	guild := os.Getenv("GUILD_ID")
	if guild == "" {
		return nil, fmt.Errorf("env GUILD_ID is not set")
	}

	return &Client{
		BaseURL:      apiURL,
		token:        token,
		guild:        guild,
		clientID:     os.Getenv("DISCORD_CLIENT_ID"),
		clientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
		redirectURI:  os.Getenv("DISCORD_REDIRECT_URI"),
		http:         &http.Client{Timeout: 5 * time.Second},
		logger:       logger,
	}, nil
}

type userResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	GlobalName *string `json:"global_name"`
	Avatar     *string `json:"avatar"`
}

type memberResponse struct {
	Roles    []string `json:"roles"`
	JoinedAt *string  `json:"joined_at"`
}

// Профиль пользователя: два последовательных запроса к Discord API,
// любая ошибка любого из них - ErrDirectory
func (c *Client) GetUserProfile(ctx context.Context, userId string) (model.UserProfile, error) {
	user := &userResponse{}
	err := c.get(ctx, "/users/"+userId, user)
	if err != nil {
		c.logger.Error("Discord user request", zap.String("user", userId), zap.Error(err))
		return model.UserProfile{}, fmt.Errorf("user %s: %w", userId, model.ErrDirectory)
	}

	member := &memberResponse{}
	err = c.get(ctx, "/guilds/"+c.guild+"/members/"+userId, member)
	if err != nil {
		c.logger.Error("Discord member request", zap.String("user", userId), zap.Error(err))
		return model.UserProfile{}, fmt.Errorf("member %s: %w", userId, model.ErrDirectory)
	}

	var avatar *string
	if user.Avatar != nil {
		u := cdnURL + "/avatars/" + user.ID + "/" + *user.Avatar + ".png"
		avatar = &u
	}
	roles := member.Roles
	if roles == nil {
		roles = []string{}
	}

	return model.UserProfile{
		User: model.DirectoryUser{
			ID:         user.ID,
			Username:   user.Username,
			GlobalName: user.GlobalName,
			Avatar:     avatar,
			CreatedAt:  snowflakeTime(user.ID),
		},
		Member: model.DirectoryMember{
			Roles:    roles,
			JoinedAt: member.JoinedAt,
		},
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Discord API HTTP error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// Обмен OAuth кода на токен, ответ передается как есть
func (c *Client) ExchangeCode(ctx context.Context, code string) (json.RawMessage, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, fmt.Errorf("env DISCORD_CLIENT_ID / DISCORD_CLIENT_SECRET is not set")
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Discord token exchange", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("Discord token exchange HTTP error: %s", resp.Status)
	}
	return json.RawMessage(body), nil
}

// Время создания аккаунта из snowflake идентификатора
func snowflakeTime(id string) time.Time {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(n/4194304 + snowflakeEpoch).UTC()
}
