// Package github fetches contribution calendars from the GitHub GraphQL API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/contribgrid/internal/constants"
	"github.com/julianstephens/contribgrid/internal/logger"
	"github.com/julianstephens/contribgrid/internal/models"
)

const (
	authorizationHeaderKey = "Authorization"
	contentTypeHeaderKey   = "Content-Type"
	requestIDHeaderKey     = "X-Request-Id"
	jsonContentType        = "application/json"
)

// calendarQuery takes the login as a variable; it is never spliced into the query text.
const calendarQuery = `query ($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionYears
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
            color
            contributionLevel
          }
        }
      }
    }
  }
}`

// ErrUserNotFound is returned when the API has no user for the login
var ErrUserNotFound = errors.New("404 : username not found")

// APIError is a non-2xx response or a GraphQL error payload
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github api error: %s", e.Message)
}

// HTTPClient is the part of http.Client the Client needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher returns the contribution calendar of a login
type Fetcher interface {
	FetchCalendar(ctx context.Context, login string) (models.Calendar, error)
}

type Client struct {
	Endpoint string
	Token    string
	HTTP     HTTPClient
}

// NewClient returns a Client using http.DefaultClient. An empty endpoint
// selects the public GitHub API.
func NewClient(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = constants.GraphQLEndpoint
	}
	return &Client{
		Endpoint: endpoint,
		Token:    token,
		HTTP:     http.DefaultClient,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

type calendarResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionYears    []int           `json:"contributionYears"`
				ContributionCalendar models.Calendar `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// errorResponse is the body GitHub sends with non-2xx statuses
type errorResponse struct {
	Message string `json:"message"`
}

// FetchCalendar sends one query for the login's calendar. It does not retry.
func (client *Client) FetchCalendar(ctx context.Context, login string) (models.Calendar, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     calendarQuery,
		Variables: map[string]any{"login": login},
	})
	if err != nil {
		return models.Calendar{}, fmt.Errorf("error encoding graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.Calendar{}, fmt.Errorf("error creating http request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set(authorizationHeaderKey, "Bearer "+client.Token)
	req.Header.Set(contentTypeHeaderKey, jsonContentType)
	req.Header.Set(requestIDHeaderKey, requestID)

	logger.Debug("Fetching contribution calendar", "login", login, "endpoint", client.Endpoint, "request_id", requestID)

	resp, err := client.HTTP.Do(req)
	if err != nil {
		return models.Calendar{}, fmt.Errorf("error performing http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Calendar{}, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug("Unexpected response status", "status", resp.StatusCode, "request_id", requestID)
		return models.Calendar{}, &APIError{StatusCode: resp.StatusCode, Message: statusMessage(resp.StatusCode, body)}
	}

	var cr calendarResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return models.Calendar{}, fmt.Errorf("error decoding response body: %w", err)
	}

	if len(cr.Errors) > 0 {
		// GitHub reports unknown logins as a NOT_FOUND error alongside a null user
		if cr.Data.User == nil && allNotFound(cr.Errors) {
			return models.Calendar{}, fmt.Errorf("%w: %s", ErrUserNotFound, login)
		}
		messages := make([]string, 0, len(cr.Errors))
		for _, e := range cr.Errors {
			messages = append(messages, e.Message)
		}
		return models.Calendar{}, &APIError{Message: strings.Join(messages, "; ")}
	}

	if cr.Data.User == nil {
		return models.Calendar{}, fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}

	collection := cr.Data.User.ContributionsCollection
	logger.Debug("Fetched contribution calendar",
		"login", login,
		"weeks", len(collection.ContributionCalendar.Weeks),
		"total", collection.ContributionCalendar.TotalContributions,
		"years", collection.ContributionYears,
		"request_id", requestID,
	)

	return collection.ContributionCalendar, nil
}

func statusMessage(status int, body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return er.Message
	}
	return http.StatusText(status)
}

func allNotFound(errs []graphQLError) bool {
	for _, e := range errs {
		if e.Type != "NOT_FOUND" {
			return false
		}
	}
	return true
}
