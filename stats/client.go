package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"clanbot/models"
)

// Client fetches clan player stats from the remote API.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewClient creates a stats client for the given endpoint. The token is
// optional; when set it is sent as a bearer credential.
func NewClient(url, token string) *Client {
	return &Client{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTPClient creates a stats client with a caller-provided
// http.Client.
func NewClientWithHTTPClient(url, token string, httpClient *http.Client) *Client {
	return &Client{url: url, token: token, httpClient: httpClient}
}

// rawPlayer mirrors the wire shape of one player. The API is inconsistent:
// the display name arrives as either "username" or "name", the identifier
// may be missing, and numeric fields may be null. None of that leaves this
// package.
type rawPlayer struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	UserID     string `json:"user_id"`
	Rating     *int   `json:"rating"`
	PeakRating *int   `json:"peak_rating"`
	Wins       *int   `json:"wins"`
	Games      *int   `json:"games"`
}

// Fetch performs a single GET against the configured endpoint and returns
// the normalized player list. It never retries; callers decide what a
// failure means.
func (c *Client) Fetch(ctx context.Context) ([]models.PlayerStat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build stats request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats response: %w", err)
	}

	players, err := normalize(body)
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetched %d players from stats API", len(players))
	return players, nil
}

// normalize turns the raw payload into a player list regardless of whether
// the API sent a bare array or an object wrapping one.
func normalize(body []byte) ([]models.PlayerStat, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")

	var raw []rawPlayer
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("malformed stats payload: %w", err)
		}
	case bytes.HasPrefix(trimmed, []byte("{")):
		var wrapper struct {
			Players []rawPlayer `json:"players"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("malformed stats payload: %w", err)
		}
		raw = wrapper.Players
	default:
		return nil, fmt.Errorf("unexpected stats payload shape")
	}

	players := make([]models.PlayerStat, 0, len(raw))
	for _, p := range raw {
		name := p.Username
		if name == "" {
			name = p.Name
		}
		players = append(players, models.PlayerStat{
			Name:       name,
			UserID:     p.UserID,
			Rating:     intOrZero(p.Rating),
			PeakRating: intOrZero(p.PeakRating),
			Wins:       intOrZero(p.Wins),
			Games:      intOrZero(p.Games),
		})
	}
	return players, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
