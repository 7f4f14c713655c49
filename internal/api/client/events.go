package client

import (
	"context"
	"time"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// SaleEventRequest is the payload for recording a sale event.
type SaleEventRequest struct {
	ListingID   string     `json:"listing_id"`
	SoldPrice   float64    `json:"sold_price"`
	SoldAt      *time.Time `json:"sold_at,omitempty"`
	Marketplace string     `json:"marketplace,omitempty"`
}

// ReturnEventRequest is the payload for recording a return event.
type ReturnEventRequest struct {
	ListingID  string     `json:"listing_id"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

// RecordSale records a marketplace sale and returns the created outcome.
func (c *Client) RecordSale(ctx context.Context, req *SaleEventRequest) (*domain.Outcome, error) {
	var o domain.Outcome
	if err := c.post(ctx, "/api/v1/events/sale", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// RecordReturn records a marketplace return.
func (c *Client) RecordReturn(ctx context.Context, req *ReturnEventRequest) error {
	return c.post(ctx, "/api/v1/events/return", req, nil)
}
