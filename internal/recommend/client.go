// Package recommend implements the client side of the similarity
// scoring peer: one POST /recommend per submission, no retry, no
// backoff.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"networx-client/internal/common/config"
	"networx-client/internal/common/errors"
	commonhttp "networx-client/internal/common/http"
	"networx-client/internal/common/logger"
	"networx-client/internal/profile"
)

type Client struct {
	endpoint   string
	httpClient *commonhttp.Client
	logger     logger.Logger
}

func NewClient(cfg config.RecommenderConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Client{
		endpoint:   cfg.Endpoint(),
		httpClient: commonhttp.NewClient(cfg.HTTPTimeout()),
		logger:     log.WithFields(map[string]interface{}{"component": "recommend-client"}),
	}
}

// Submit sends the profile to the peer and returns the raw
// recommendation records. Exactly one request is issued per call.
// Failures collapse into three kinds: transport, peer rejection
// (non-2xx, body discarded) and malformed response body.
func (c *Client) Submit(ctx context.Context, p profile.Profile) ([]RawRecommendation, error) {
	body, err := json.Marshal(NewRequest(p))
	if err != nil {
		return nil, errors.NewMalformedResponseError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("recommendation request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // body content is not part of the failure surface
		c.logger.Warn("peer rejected recommendation request", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, errors.NewPeerRejectedError(resp.StatusCode)
	}

	var recs []RawRecommendation
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		c.logger.Warn("failed to decode recommendation response", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, errors.NewMalformedResponseError(err)
	}

	c.logger.Debug("recommendations received", map[string]interface{}{
		"count": len(recs),
	})
	return recs, nil
}
