// Package domain defines the core business types for the learning loop.
package domain

import (
	"encoding/json"
	"math"
	"time"
)

// ToolType identifies a research tool that contributed to a prediction.
type ToolType string

// Tool type constants.
const (
	ToolMarketSearch   ToolType = "market_search"
	ToolPriceComps     ToolType = "price_comps"
	ToolImageAnalysis  ToolType = "image_analysis"
	ToolCategoryLookup ToolType = "category_lookup"
	ToolBarcodeLookup  ToolType = "barcode_lookup"
	ToolWebSearch      ToolType = "web_search"
)

// ScopeGlobal is the sentinel effectiveness scope for outcomes that do not
// belong to an organization.
const ScopeGlobal = "global"

// OutcomeQuality grades how well a prediction matched its real-world result.
type OutcomeQuality string

// Outcome quality constants.
const (
	QualityExcellent OutcomeQuality = "excellent"
	QualityGood      OutcomeQuality = "good"
	QualityFair      OutcomeQuality = "fair"
	QualityPoor      OutcomeQuality = "poor"
)

// Quality thresholds on the price accuracy ratio.
const (
	qualityExcellentMax = 0.05
	qualityGoodMax      = 0.15
	qualityFairMax      = 0.30
)

// CalibrationTrigger records what initiated a calibration run.
type CalibrationTrigger string

// Calibration trigger constants.
const (
	TriggerScheduled CalibrationTrigger = "scheduled"
	TriggerManual    CalibrationTrigger = "manual"
)

// AnomalyType classifies an organization-level research-quality pattern.
type AnomalyType string

// Anomaly type constants.
const (
	AnomalyPriceDeviation AnomalyType = "price_deviation"
	AnomalySlowSales      AnomalyType = "slow_sales"
	AnomalyCategoryMisid  AnomalyType = "category_misidentification"
	AnomalyToolFailure    AnomalyType = "tool_failure"
)

// Severity ranks how urgent an anomaly is.
type Severity string

// Severity constants.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// ToolUsage records one tool's contribution to a research run.
type ToolUsage struct {
	ToolType   ToolType `json:"tool_type"`
	Confidence float64  `json:"confidence"`
}

// Outcome links a research prediction to its real-world sale (or return)
// result. Outcomes are append-only: mutated only by return recording and
// manual identification correction, never deleted.
type Outcome struct {
	ID        string `json:"id"                   db:"id"`
	OrgID     string `json:"org_id"               db:"org_id"`
	ItemID    string `json:"item_id"              db:"item_id"`
	ListingID string `json:"listing_id,omitempty" db:"listing_id"`

	// Predicted snapshot, captured at research time.
	PredictedFloor     *float64    `json:"predicted_floor,omitempty"   db:"predicted_floor"`
	PredictedTarget    *float64    `json:"predicted_target,omitempty"  db:"predicted_target"`
	PredictedCeiling   *float64    `json:"predicted_ceiling,omitempty" db:"predicted_ceiling"`
	PredictedCategory  string      `json:"predicted_category"          db:"predicted_category"`
	PredictedBrand     string      `json:"predicted_brand"             db:"predicted_brand"`
	PredictedModel     string      `json:"predicted_model"             db:"predicted_model"`
	ResearchConfidence float64     `json:"research_confidence"         db:"research_confidence"`
	ToolsUsed          []ToolUsage `json:"tools_used"                  db:"tools_used"`

	// Actual snapshot.
	ListedPrice  float64    `json:"listed_price"            db:"listed_price"`
	SoldPrice    float64    `json:"sold_price"              db:"sold_price"`
	ListedAt     *time.Time `json:"listed_at,omitempty"     db:"listed_at"`
	SoldAt       time.Time  `json:"sold_at"                 db:"sold_at"`
	DaysToSell   *int       `json:"days_to_sell,omitempty"  db:"days_to_sell"`
	Marketplace  string     `json:"marketplace"             db:"marketplace"`
	WasReturned  bool       `json:"was_returned"            db:"was_returned"`
	ReturnReason string     `json:"return_reason,omitempty" db:"return_reason"`

	// Derived fields, computed once at creation and mutated only by
	// return recording or explicit identification correction.
	PriceAccuracyRatio    *float64       `json:"price_accuracy_ratio,omitempty"   db:"price_accuracy_ratio"`
	PriceWithinBands      *bool          `json:"price_within_bands,omitempty"     db:"price_within_bands"`
	IdentificationCorrect *bool          `json:"identification_correct,omitempty" db:"identification_correct"`
	Quality               OutcomeQuality `json:"quality"                          db:"quality"`

	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	UpdatedAt  time.Time `json:"updated_at"  db:"updated_at"`
}

// ComputeDerived fills the derived price fields and quality grade from the
// predicted and actual snapshots. A returned outcome is always poor.
func (o *Outcome) ComputeDerived() {
	o.PriceAccuracyRatio = PriceAccuracyRatio(o.PredictedTarget, o.SoldPrice)
	o.PriceWithinBands = PriceWithinBands(o.PredictedFloor, o.PredictedCeiling, o.SoldPrice)
	if o.WasReturned {
		o.Quality = QualityPoor
		return
	}
	o.Quality = ClassifyQuality(o.PriceAccuracyRatio, o.PriceWithinBands)
}

// PriceAccuracyRatio returns |target - soldPrice| / soldPrice, or nil when
// the target is absent or the sold price is non-positive. An undefined
// ratio is a valid state, not an error.
func PriceAccuracyRatio(target *float64, soldPrice float64) *float64 {
	if target == nil || soldPrice <= 0 {
		return nil
	}
	r := math.Abs(*target-soldPrice) / soldPrice
	return &r
}

// PriceWithinBands reports whether floor <= soldPrice <= ceiling, or nil
// unless both bounds are present.
func PriceWithinBands(floor, ceiling *float64, soldPrice float64) *bool {
	if floor == nil || ceiling == nil {
		return nil
	}
	within := *floor <= soldPrice && soldPrice <= *ceiling
	return &within
}

// ClassifyQuality grades an outcome from its price accuracy ratio. An
// undefined ratio means the prediction cannot be assessed: fair. A large
// miss that still landed inside the predicted bands is also fair.
func ClassifyQuality(ratio *float64, withinBands *bool) OutcomeQuality {
	if ratio == nil {
		return QualityFair
	}
	switch {
	case *ratio <= qualityExcellentMax:
		return QualityExcellent
	case *ratio <= qualityGoodMax:
		return QualityGood
	case *ratio <= qualityFairMax:
		return QualityFair
	case withinBands != nil && *withinBands:
		return QualityFair
	default:
		return QualityPoor
	}
}

// DaysBetween returns the whole days from listedAt to soldAt, rounding
// toward negative infinity. Inconsistent timestamps yield negative values,
// which callers tolerate rather than reject.
func DaysBetween(listedAt, soldAt time.Time) int {
	return int(math.Floor(soldAt.Sub(listedAt).Hours() / 24))
}

// MonthStart returns the first instant of t's calendar month in UTC.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the first instant of the month after t's, in UTC.
// Effectiveness periods are half-open: [MonthStart, MonthEnd).
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// EffectivenessRecord is a period-bucketed aggregate of one tool's usage and
// accuracy statistics within a scope (an organization id, or ScopeGlobal).
// Created lazily on first use; never deleted.
type EffectivenessRecord struct {
	ID          string    `json:"id"           db:"id"`
	OrgID       string    `json:"org_id"       db:"org_id"`
	ToolType    ToolType  `json:"tool_type"    db:"tool_type"`
	PeriodStart time.Time `json:"period_start" db:"period_start"`
	PeriodEnd   time.Time `json:"period_end"   db:"period_end"`

	TotalUses           int `json:"total_uses"            db:"total_uses"`
	ContributedToSale   int `json:"contributed_to_sale"   db:"contributed_to_sale"`
	ContributedToReturn int `json:"contributed_to_return" db:"contributed_to_return"`

	PriceDeviationSum          float64 `json:"price_deviation_sum"          db:"price_deviation_sum"`
	PriceAccuracyCount         int     `json:"price_accuracy_count"         db:"price_accuracy_count"`
	IdentificationCorrectCount int     `json:"identification_correct_count" db:"identification_correct_count"`
	IdentificationTotalCount   int     `json:"identification_total_count"   db:"identification_total_count"`

	ConfidenceSum     float64 `json:"confidence_sum"      db:"confidence_sum"`
	ConfidenceCount   int     `json:"confidence_count"    db:"confidence_count"`
	ActualAccuracySum float64 `json:"actual_accuracy_sum" db:"actual_accuracy_sum"`

	CurrentWeight    float64    `json:"current_weight"               db:"current_weight"`
	SuggestedWeight  *float64   `json:"suggested_weight,omitempty"   db:"suggested_weight"`
	CalibrationScore *float64   `json:"calibration_score,omitempty"  db:"calibration_score"`
	LastCalibratedAt *time.Time `json:"last_calibrated_at,omitempty" db:"last_calibrated_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AvgConfidence returns the mean reported confidence, or 0 with no samples.
func (r *EffectivenessRecord) AvgConfidence() float64 {
	if r.ConfidenceCount == 0 {
		return 0
	}
	return r.ConfidenceSum / float64(r.ConfidenceCount)
}

// AvgAccuracy returns the mean realized accuracy, or 0 with no samples.
func (r *EffectivenessRecord) AvgAccuracy() float64 {
	if r.ConfidenceCount == 0 {
		return 0
	}
	return r.ActualAccuracySum / float64(r.ConfidenceCount)
}

// AvgPriceDeviation returns the mean price accuracy ratio, or 0 with no
// samples.
func (r *EffectivenessRecord) AvgPriceDeviation() float64 {
	if r.PriceAccuracyCount == 0 {
		return 0
	}
	return r.PriceDeviationSum / float64(r.PriceAccuracyCount)
}

// IdentificationRate returns the fraction of identification judgements that
// were correct, or 0 with no judgements.
func (r *EffectivenessRecord) IdentificationRate() float64 {
	if r.IdentificationTotalCount == 0 {
		return 0
	}
	return float64(r.IdentificationCorrectCount) / float64(r.IdentificationTotalCount)
}

// Anomaly is a detected, deduplicated, org-scoped research-quality pattern.
// At most one unresolved anomaly exists per (org, type); re-detection
// refreshes the open record's evidence in place.
type Anomaly struct {
	ID              string          `json:"id"                         db:"id"`
	OrgID           string          `json:"org_id"                     db:"org_id"`
	Type            AnomalyType     `json:"anomaly_type"               db:"anomaly_type"`
	Severity        Severity        `json:"severity"                   db:"severity"`
	Description     string          `json:"description"                db:"description"`
	AffectedItemIDs []string        `json:"affected_item_ids"          db:"affected_item_ids"`
	ToolType        ToolType        `json:"tool_type,omitempty"        db:"tool_type"`
	Pattern         json.RawMessage `json:"pattern,omitempty"          db:"pattern"`
	SuggestedAction string          `json:"suggested_action"           db:"suggested_action"`
	DetectedAt      time.Time       `json:"detected_at"                db:"detected_at"`
	Resolved        bool            `json:"resolved"                   db:"resolved"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"      db:"resolved_at"`
	ResolvedBy      string          `json:"resolved_by,omitempty"      db:"resolved_by"`
	ResolutionNotes string          `json:"resolution_notes,omitempty" db:"resolution_notes"`
}

// PriceDeviationPattern is the evidence payload for price deviation anomalies.
type PriceDeviationPattern struct {
	AvgDeviation float64 `json:"avg_deviation"`
	SampleSize   int     `json:"sample_size"`
	WindowDays   int     `json:"window_days"`
}

// SlowSalesPattern is the evidence payload for slow sales anomalies.
type SlowSalesPattern struct {
	AvgDaysToSell float64 `json:"avg_days_to_sell"`
	SampleSize    int     `json:"sample_size"`
	WindowDays    int     `json:"window_days"`
}

// ReturnRatePattern is the evidence payload for category misidentification
// anomalies.
type ReturnRatePattern struct {
	ReturnRate float64 `json:"return_rate"`
	Returns    int     `json:"returns"`
	SampleSize int     `json:"sample_size"`
	WindowDays int     `json:"window_days"`
}

// CalibrationResult is one tool's outcome from a calibration run.
type CalibrationResult struct {
	ToolType         ToolType `json:"tool_type"`
	CalibrationScore float64  `json:"calibration_score"`
	AvgConfidence    float64  `json:"avg_confidence"`
	AvgAccuracy      float64  `json:"avg_accuracy"`
	DataPoints       int      `json:"data_points"`
	PreviousWeight   float64  `json:"previous_weight"`
	NewWeight        float64  `json:"new_weight"`
	Reasoning        string   `json:"reasoning"`
}

// CalibrationRun is the envelope for one calibration pass over all tools.
type CalibrationRun struct {
	ID           string              `json:"id"                 db:"id"`
	CalibratedAt time.Time           `json:"calibrated_at"      db:"calibrated_at"`
	Trigger      CalibrationTrigger  `json:"trigger"            db:"trigger"`
	ActorID      string              `json:"actor_id,omitempty" db:"actor_id"`
	LookbackDays int                 `json:"lookback_days"      db:"lookback_days"`
	Results      []CalibrationResult `json:"results"            db:"results"`
}

// ListingResearch is the read model for a listing and its canonical research
// snapshot, consumed at outcome-creation time. Owned by the listing service;
// read-only here.
type ListingResearch struct {
	ListingID          string     `json:"listing_id"                  db:"listing_id"`
	ItemID             string     `json:"item_id"                     db:"item_id"`
	OrgID              string     `json:"org_id"                      db:"org_id"`
	ListedPrice        float64    `json:"listed_price"                db:"listed_price"`
	ListedAt           *time.Time `json:"listed_at,omitempty"         db:"listed_at"`
	PredictedFloor     *float64   `json:"predicted_floor,omitempty"   db:"predicted_floor"`
	PredictedTarget    *float64   `json:"predicted_target,omitempty"  db:"predicted_target"`
	PredictedCeiling   *float64   `json:"predicted_ceiling,omitempty" db:"predicted_ceiling"`
	Category           string     `json:"category"                    db:"category"`
	Brand              string     `json:"brand"                       db:"brand"`
	Model              string     `json:"model"                       db:"model"`
	ResearchConfidence float64    `json:"research_confidence"         db:"research_confidence"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
