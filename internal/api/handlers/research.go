package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// ResearchReplicator defines the store methods for replicating the listing
// research read model. The listing service owns this data; this endpoint is
// its only write path here.
type ResearchReplicator interface {
	UpsertListingResearch(ctx context.Context, r *domain.ListingResearch) error
	ReplaceToolUsage(ctx context.Context, listingID string, usages []domain.ToolUsage) error
}

// ResearchHandler handles listing research replication.
type ResearchHandler struct {
	store ResearchReplicator
}

// NewResearchHandler creates a new ResearchHandler.
func NewResearchHandler(s ResearchReplicator) *ResearchHandler {
	return &ResearchHandler{store: s}
}

// ReplicateResearchInput is the replicated research snapshot for a listing.
type ReplicateResearchInput struct {
	ListingID string `path:"listing_id" doc:"Marketplace listing identifier"`
	Body      struct {
		ItemID             string             `json:"item_id"                     required:"true" doc:"Inventory item ID"`
		OrgID              string             `json:"org_id,omitempty"                            doc:"Owning organization (empty for global scope)"`
		ListedPrice        float64            `json:"listed_price"                                doc:"Price the item was listed at" minimum:"0"`
		ListedAt           *time.Time         `json:"listed_at,omitempty"                         doc:"Listing publish time"`
		PredictedFloor     *float64           `json:"predicted_floor,omitempty"                   doc:"Predicted price floor"`
		PredictedTarget    *float64           `json:"predicted_target,omitempty"                  doc:"Predicted target price"`
		PredictedCeiling   *float64           `json:"predicted_ceiling,omitempty"                 doc:"Predicted price ceiling"`
		Category           string             `json:"category,omitempty"                          doc:"Predicted category"`
		Brand              string             `json:"brand,omitempty"                             doc:"Predicted brand"`
		Model              string             `json:"model,omitempty"                             doc:"Predicted model"`
		ResearchConfidence float64            `json:"research_confidence"                         doc:"Overall research confidence"  minimum:"0" maximum:"1"`
		ToolsUsed          []domain.ToolUsage `json:"tools_used,omitempty"                        doc:"Tools that fed the research run"`
	}
}

// ReplicateResearchOutput is the replication response.
type ReplicateResearchOutput struct {
	Body StatusResponse
}

// ReplicateResearch upserts a listing's research snapshot and replaces its
// tool usage linkage.
func (h *ResearchHandler) ReplicateResearch(
	ctx context.Context,
	input *ReplicateResearchInput,
) (*ReplicateResearchOutput, error) {
	r := &domain.ListingResearch{
		ListingID:          input.ListingID,
		ItemID:             input.Body.ItemID,
		OrgID:              input.Body.OrgID,
		ListedPrice:        input.Body.ListedPrice,
		ListedAt:           input.Body.ListedAt,
		PredictedFloor:     input.Body.PredictedFloor,
		PredictedTarget:    input.Body.PredictedTarget,
		PredictedCeiling:   input.Body.PredictedCeiling,
		Category:           input.Body.Category,
		Brand:              input.Body.Brand,
		Model:              input.Body.Model,
		ResearchConfidence: input.Body.ResearchConfidence,
	}

	if err := h.store.UpsertListingResearch(ctx, r); err != nil {
		return nil, huma.Error500InternalServerError("replicating research failed: " + err.Error())
	}

	if err := h.store.ReplaceToolUsage(ctx, input.ListingID, input.Body.ToolsUsed); err != nil {
		return nil, huma.Error500InternalServerError("replacing tool usage failed: " + err.Error())
	}

	return &ReplicateResearchOutput{Body: StatusResponse{Status: "replicated"}}, nil
}

// RegisterResearchRoutes registers replication endpoints with the Huma API.
func RegisterResearchRoutes(api huma.API, h *ResearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "replicate-research",
		Method:      http.MethodPut,
		Path:        "/api/v1/listings/{listing_id}/research",
		Summary:     "Replicate a listing's research snapshot",
		Description: "Upserts the read-model research snapshot and tool usage for a listing. Called by the listing service.",
		Tags:        []string{"research"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ReplicateResearch)
}
