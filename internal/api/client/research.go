package client

import (
	"context"
	"fmt"
	"time"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// ResearchSnapshot is the payload for replicating a listing's research
// read model.
type ResearchSnapshot struct {
	ItemID             string             `json:"item_id"`
	OrgID              string             `json:"org_id,omitempty"`
	ListedPrice        float64            `json:"listed_price"`
	ListedAt           *time.Time         `json:"listed_at,omitempty"`
	PredictedFloor     *float64           `json:"predicted_floor,omitempty"`
	PredictedTarget    *float64           `json:"predicted_target,omitempty"`
	PredictedCeiling   *float64           `json:"predicted_ceiling,omitempty"`
	Category           string             `json:"category,omitempty"`
	Brand              string             `json:"brand,omitempty"`
	Model              string             `json:"model,omitempty"`
	ResearchConfidence float64            `json:"research_confidence"`
	ToolsUsed          []domain.ToolUsage `json:"tools_used,omitempty"`
}

// ReplicateResearch upserts a listing's research snapshot and tool usage.
func (c *Client) ReplicateResearch(
	ctx context.Context,
	listingID string,
	snapshot *ResearchSnapshot,
) error {
	path := fmt.Sprintf("/api/v1/listings/%s/research", listingID)
	return c.put(ctx, path, snapshot, nil)
}
