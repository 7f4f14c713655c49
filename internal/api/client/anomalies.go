package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// AnomaliesResponse wraps an anomaly listing.
type AnomaliesResponse struct {
	Anomalies []domain.Anomaly `json:"anomalies"`
}

// ListAnomaliesParams defines query parameters for anomaly queries.
type ListAnomaliesParams struct {
	Type            string
	Severity        string
	IncludeResolved bool
	Limit           int
}

func (p *ListAnomaliesParams) encode() string {
	q := url.Values{}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Severity != "" {
		q.Set("severity", p.Severity)
	}
	if p.IncludeResolved {
		q.Set("include_resolved", "true")
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListAnomalies returns one organization's anomalies, unresolved by default.
func (c *Client) ListAnomalies(
	ctx context.Context,
	orgID string,
	params *ListAnomaliesParams,
) ([]domain.Anomaly, error) {
	path := fmt.Sprintf("/api/v1/orgs/%s/anomalies", orgID) + params.encode()

	var resp AnomaliesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Anomalies, nil
}

// ListAllAnomalies returns anomalies across all organizations.
func (c *Client) ListAllAnomalies(
	ctx context.Context,
	params *ListAnomaliesParams,
) ([]domain.Anomaly, error) {
	path := "/api/v1/anomalies" + params.encode()

	var resp AnomaliesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Anomalies, nil
}

// ResolveAnomaly marks an open anomaly as resolved.
func (c *Client) ResolveAnomaly(
	ctx context.Context,
	orgID, id, notes, resolvedBy string,
) (*domain.Anomaly, error) {
	body := map[string]any{}
	if notes != "" {
		body["notes"] = notes
	}
	if resolvedBy != "" {
		body["resolved_by"] = resolvedBy
	}

	var a domain.Anomaly
	path := fmt.Sprintf("/api/v1/orgs/%s/anomalies/%s/resolve", orgID, id)
	if err := c.post(ctx, path, body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
