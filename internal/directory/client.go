package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bagdasarian/football-registration/internal/config"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Entry - найденный в каталоге студент
type Entry struct {
	Handle      string
	DisplayName string
}

type user struct {
	Login         string `json:"login"`
	UsualFullName string `json:"usual_full_name"`
	DisplayName   string `json:"displayname"`
}

// Client ищет студентов кампуса в 42 intra.
// Любая ошибка (сеть, авторизация, неожиданный ответ) трактуется как "не найден".
type Client struct {
	baseURL    string
	campusID   string
	httpClient *http.Client
}

func NewClient(cfg config.DirectoryConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		campusID: cfg.CampusID,
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		log.Warn().Msg("directory credentials are not configured, lookups will report not found")
		return c
	}

	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{"public"},
	}

	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	c.httpClient = credentials.Client(ctx)
	c.httpClient.Timeout = timeout

	return c
}

// Lookup возвращает запись каталога по логину; ok=false, если студент не найден
func (c *Client) Lookup(ctx context.Context, handle string) (Entry, bool) {
	if c.httpClient == nil {
		return Entry{}, false
	}

	found, err := c.lookup(ctx, handle)
	if err != nil {
		log.Warn().Err(err).Str("handle", handle).Msg("directory lookup failed")
		return Entry{}, false
	}
	if found == nil {
		return Entry{}, false
	}

	name := strings.TrimSpace(found.UsualFullName)
	if name == "" {
		name = strings.TrimSpace(found.DisplayName)
	}
	if name == "" {
		return Entry{}, false
	}

	return Entry{Handle: handle, DisplayName: name}, true
}

func (c *Client) lookup(ctx context.Context, handle string) (*user, error) {
	endpoint := fmt.Sprintf(
		"%s/v2/campus/%s/users?%s",
		c.baseURL,
		url.PathEscape(c.campusID),
		url.Values{"filter[login]": {handle}}.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory responded with status %d", resp.StatusCode)
	}

	var users []user
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode directory response: %w", err)
	}

	for i := range users {
		if strings.EqualFold(users[i].Login, handle) {
			return &users[i], nil
		}
	}
	return nil, nil
}
