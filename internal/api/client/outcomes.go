package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// OutcomesResponse wraps a paginated outcomes response.
type OutcomesResponse struct {
	Outcomes []domain.Outcome `json:"outcomes"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListOutcomesParams defines query parameters for outcome queries.
type ListOutcomesParams struct {
	Quality     string
	Marketplace string
	Returned    string
	Since       time.Time
	Limit       int
	Offset      int
	OrderBy     string
}

// ListOutcomes returns an organization's outcomes matching the given parameters.
func (c *Client) ListOutcomes(
	ctx context.Context,
	orgID string,
	params *ListOutcomesParams,
) (*OutcomesResponse, error) {
	q := url.Values{}
	if params.Quality != "" {
		q.Set("quality", params.Quality)
	}
	if params.Marketplace != "" {
		q.Set("marketplace", params.Marketplace)
	}
	if params.Returned != "" {
		q.Set("returned", params.Returned)
	}
	if !params.Since.IsZero() {
		q.Set("since", params.Since.Format(time.RFC3339))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := fmt.Sprintf("/api/v1/orgs/%s/outcomes", orgID)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp OutcomesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOutcome returns a single outcome by ID.
func (c *Client) GetOutcome(ctx context.Context, orgID, id string) (*domain.Outcome, error) {
	var o domain.Outcome
	path := fmt.Sprintf("/api/v1/orgs/%s/outcomes/%s", orgID, id)
	if err := c.get(ctx, path, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CorrectIdentification sets the identification-correct flag on an outcome.
func (c *Client) CorrectIdentification(
	ctx context.Context,
	orgID, id string,
	correct bool,
) (*domain.Outcome, error) {
	body := map[string]any{"correct": correct}

	var o domain.Outcome
	path := fmt.Sprintf("/api/v1/orgs/%s/outcomes/%s/identification", orgID, id)
	if err := c.post(ctx, path, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
