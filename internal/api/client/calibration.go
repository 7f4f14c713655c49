package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// RunCalibration triggers a manual calibration run and returns the per-tool
// results.
func (c *Client) RunCalibration(ctx context.Context, actorID string) ([]domain.CalibrationResult, error) {
	body := map[string]any{}
	if actorID != "" {
		body["actor_id"] = actorID
	}

	var resp struct {
		Results []domain.CalibrationResult `json:"results"`
	}
	if err := c.post(ctx, "/api/v1/calibration/run", body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetCalibrationHistory returns persisted calibration runs, newest first. A
// limit of 0 uses the server default.
func (c *Client) GetCalibrationHistory(ctx context.Context, limit int) ([]domain.CalibrationRun, error) {
	path := "/api/v1/calibration/history"
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		path += "?" + q.Encode()
	}

	var resp struct {
		Runs []domain.CalibrationRun `json:"runs"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Runs, nil
}
