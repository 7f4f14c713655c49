package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// ToolEffectiveness mirrors the API's per-tool aggregate plus derived means.
type ToolEffectiveness struct {
	domain.EffectivenessRecord
	AvgConfidence      float64 `json:"avg_confidence"`
	AvgAccuracy        float64 `json:"avg_accuracy"`
	AvgPriceDeviation  float64 `json:"avg_price_deviation"`
	IdentificationRate float64 `json:"identification_rate"`
}

// EffectivenessResponse is the current-month effectiveness view.
type EffectivenessResponse struct {
	OrgID       string              `json:"org_id"`
	PeriodStart time.Time           `json:"period_start"`
	Tools       []ToolEffectiveness `json:"tools"`
}

// TrendResponse is one tool's month-over-month effectiveness trend.
type TrendResponse struct {
	OrgID    string              `json:"org_id"`
	ToolType domain.ToolType     `json:"tool_type"`
	Months   int                 `json:"months"`
	Periods  []ToolEffectiveness `json:"periods"`
}

// GetEffectiveness returns the current month's per-tool aggregates for an
// organization scope.
func (c *Client) GetEffectiveness(ctx context.Context, orgID string) (*EffectivenessResponse, error) {
	var resp EffectivenessResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/effectiveness", orgID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEffectivenessTrend returns one tool's monthly aggregates over a trailing
// window. A months value of 0 uses the server default.
func (c *Client) GetEffectivenessTrend(
	ctx context.Context,
	orgID, tool string,
	months int,
) (*TrendResponse, error) {
	path := fmt.Sprintf("/api/v1/orgs/%s/effectiveness/%s/trend", orgID, tool)
	if months > 0 {
		q := url.Values{}
		q.Set("months", strconv.Itoa(months))
		path += "?" + q.Encode()
	}

	var resp TrendResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
