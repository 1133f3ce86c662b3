package igdb

import (
	"bytes"
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gamedb/gamescout/pkg/config"
	"github.com/gamedb/gamescout/pkg/helpers"
)

const (
	tokenURL = "https://id.twitch.tv/oauth2/token"
	gamesURL = "https://api.igdb.com/v4/games"
)

var ErrMissingCredentials = errors.New("missing igdb credentials")

type Client struct {
	clientID     string
	clientSecret string

	lock    sync.Mutex
	token   string
	expires time.Time
}

func NewClient() (*Client, error) {

	id := config.Config.IGDBClientID.Get()
	secret := config.Config.IGDBClientSecret.Get()

	if id == "" || secret == "" {
		return nil, ErrMissingCredentials
	}

	return &Client{clientID: id, clientSecret: secret}, nil
}

func (c *Client) getToken() (string, error) {

	c.lock.Lock()
	defer c.lock.Unlock()

	if c.token != "" && time.Now().Before(c.expires) {
		return c.token, nil
	}

	data := url.Values{}
	data.Set("client_id", c.clientID)
	data.Set("client_secret", c.clientSecret)
	data.Set("grant_type", "client_credentials")

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	b, _, err := helpers.Post(tokenURL, data, headers)
	if err != nil {
		return "", err
	}

	resp := tokenResponse{}
	err = helpers.Unmarshal(b, &resp)
	if err != nil {
		return "", err
	}

	c.token = resp.AccessToken
	c.expires = time.Now().Add(time.Second * time.Duration(resp.ExpiresIn-60))

	return c.token, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// escapeTerm keeps quotes in free-text titles from breaking the query body.
func escapeTerm(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `"`, `\"`)
	return term
}

// SearchGames looks a title up and returns raw catalog matches, best match first.
func (c *Client) SearchGames(title string) (games []Game, err error) {

	token, err := c.getToken()
	if err != nil {
		return games, err
	}

	body := `search "` + escapeTerm(title) + `"; ` +
		`fields name, genres.name, ` +
		`involved_companies.company.name, involved_companies.developer, involved_companies.publisher, ` +
		`platforms.name, platforms.platform_logo.url, ` +
		`collection.name, collection.games.name, collection.games.category, ` +
		`similar_games.name; ` +
		`limit 10;`

	req, err := http.NewRequest("POST", gamesURL, bytes.NewBufferString(body))
	if err != nil {
		return games, err
	}

	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{Timeout: time.Second * 10}

	resp, err := client.Do(req)
	if err != nil {
		return games, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return games, err
	}

	err = helpers.Unmarshal(b, &games)
	return games, err
}
