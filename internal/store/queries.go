package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Listing read model queries.
const (
	queryGetListingResearch = `
		SELECT listing_id, item_id, COALESCE(org_id, ''), listed_price, listed_at,
			predicted_floor, predicted_target, predicted_ceiling,
			COALESCE(category, ''), COALESCE(brand, ''), COALESCE(model, ''),
			COALESCE(research_confidence, 0)
		FROM listing_research
		WHERE listing_id = $1`

	queryUpsertListingResearch = `
		INSERT INTO listing_research (
			listing_id, item_id, org_id, listed_price, listed_at,
			predicted_floor, predicted_target, predicted_ceiling,
			category, brand, model, research_confidence, updated_at
		) VALUES (
			@listing_id, @item_id, @org_id, @listed_price, @listed_at,
			@predicted_floor, @predicted_target, @predicted_ceiling,
			@category, @brand, @model, @research_confidence, now()
		)
		ON CONFLICT (listing_id) DO UPDATE SET
			item_id             = EXCLUDED.item_id,
			org_id              = EXCLUDED.org_id,
			listed_price        = EXCLUDED.listed_price,
			listed_at           = EXCLUDED.listed_at,
			predicted_floor     = EXCLUDED.predicted_floor,
			predicted_target    = EXCLUDED.predicted_target,
			predicted_ceiling   = EXCLUDED.predicted_ceiling,
			category            = EXCLUDED.category,
			brand               = EXCLUDED.brand,
			model               = EXCLUDED.model,
			research_confidence = EXCLUDED.research_confidence,
			updated_at          = now()`

	queryListToolUsage = `
		SELECT tool_type, confidence
		FROM research_tool_usage
		WHERE listing_id = $1
		ORDER BY tool_type`

	queryDeleteToolUsage = `
		DELETE FROM research_tool_usage WHERE listing_id = $1`

	queryInsertToolUsage = `
		INSERT INTO research_tool_usage (listing_id, tool_type, confidence)
		VALUES ($1, $2, $3)`
)

// Outcome queries.
const (
	queryCreateOutcome = `
		INSERT INTO outcomes (
			org_id, item_id, listing_id,
			predicted_floor, predicted_target, predicted_ceiling,
			predicted_category, predicted_brand, predicted_model,
			research_confidence, tools_used,
			listed_price, sold_price, listed_at, sold_at, days_to_sell,
			marketplace, was_returned, return_reason,
			price_accuracy_ratio, price_within_bands, identification_correct,
			quality, recorded_at, updated_at
		) VALUES (
			@org_id, @item_id, @listing_id,
			@predicted_floor, @predicted_target, @predicted_ceiling,
			@predicted_category, @predicted_brand, @predicted_model,
			@research_confidence, @tools_used,
			@listed_price, @sold_price, @listed_at, @sold_at, @days_to_sell,
			@marketplace, @was_returned, @return_reason,
			@price_accuracy_ratio, @price_within_bands, @identification_correct,
			@quality, now(), now()
		)
		RETURNING id, recorded_at, updated_at`

	outcomeColumns = `id, org_id, item_id, COALESCE(listing_id, ''),
		predicted_floor, predicted_target, predicted_ceiling,
		COALESCE(predicted_category, ''), COALESCE(predicted_brand, ''), COALESCE(predicted_model, ''),
		research_confidence, COALESCE(tools_used, '[]'),
		listed_price, sold_price, listed_at, sold_at, days_to_sell,
		COALESCE(marketplace, ''), was_returned, COALESCE(return_reason, ''),
		price_accuracy_ratio, price_within_bands, identification_correct,
		quality, recorded_at, updated_at`

	queryGetOutcome = `
		SELECT ` + outcomeColumns + `
		FROM outcomes
		WHERE org_id = $1 AND id = $2`

	queryGetOutcomeByListing = `
		SELECT ` + outcomeColumns + `
		FROM outcomes
		WHERE listing_id = $1`

	queryListRecentOutcomes = `
		SELECT ` + outcomeColumns + `
		FROM outcomes
		WHERE org_id = $1 AND sold_at >= $2
		ORDER BY sold_at DESC`

	queryListActiveOrgs = `
		SELECT DISTINCT org_id
		FROM outcomes
		WHERE sold_at >= $1 AND org_id != ''
		ORDER BY org_id`

	queryMarkOutcomeReturned = `
		UPDATE outcomes SET
			was_returned  = true,
			return_reason = $2,
			quality       = 'poor',
			updated_at    = $3
		WHERE id = $1 AND was_returned = false
		RETURNING ` + outcomeColumns

	querySetIdentificationCorrect = `
		UPDATE outcomes SET
			identification_correct = $3,
			updated_at             = now()
		WHERE org_id = $1 AND id = $2
		RETURNING ` + outcomeColumns
)

// Effectiveness queries.
const (
	// Upsert-accumulate: the bucket row is created lazily on first use and
	// every counter is advanced atomically in one statement, so concurrent
	// outcome recording never loses increments.
	queryApplyEffectivenessDelta = `
		INSERT INTO effectiveness_records (
			org_id, tool_type, period_start, period_end,
			total_uses, contributed_to_sale, contributed_to_return,
			price_deviation_sum, price_accuracy_count,
			identification_correct_count, identification_total_count,
			confidence_sum, confidence_count, actual_accuracy_sum,
			created_at, updated_at
		) VALUES (
			@org_id, @tool_type, @period_start, @period_end,
			@uses, @sales, 0,
			@price_deviation_sum, @price_accuracy_count,
			@identification_correct_count, @identification_total_count,
			@confidence_sum, @confidence_count, @actual_accuracy_sum,
			now(), now()
		)
		ON CONFLICT (org_id, tool_type, period_start) DO UPDATE SET
			total_uses                   = effectiveness_records.total_uses + EXCLUDED.total_uses,
			contributed_to_sale          = effectiveness_records.contributed_to_sale + EXCLUDED.contributed_to_sale,
			price_deviation_sum          = effectiveness_records.price_deviation_sum + EXCLUDED.price_deviation_sum,
			price_accuracy_count         = effectiveness_records.price_accuracy_count + EXCLUDED.price_accuracy_count,
			identification_correct_count = effectiveness_records.identification_correct_count + EXCLUDED.identification_correct_count,
			identification_total_count   = effectiveness_records.identification_total_count + EXCLUDED.identification_total_count,
			confidence_sum               = effectiveness_records.confidence_sum + EXCLUDED.confidence_sum,
			confidence_count             = effectiveness_records.confidence_count + EXCLUDED.confidence_count,
			actual_accuracy_sum          = effectiveness_records.actual_accuracy_sum + EXCLUDED.actual_accuracy_sum,
			updated_at                   = now()`

	queryIncrementReturnContribution = `
		UPDATE effectiveness_records SET
			contributed_to_return = contributed_to_return + 1,
			updated_at            = now()
		WHERE org_id = $1 AND tool_type = $2 AND period_start = $3`

	effectivenessColumns = `id, org_id, tool_type, period_start, period_end,
		total_uses, contributed_to_sale, contributed_to_return,
		price_deviation_sum, price_accuracy_count,
		identification_correct_count, identification_total_count,
		confidence_sum, confidence_count, actual_accuracy_sum,
		current_weight, suggested_weight, calibration_score, last_calibrated_at,
		created_at, updated_at`

	queryListCurrentEffectiveness = `
		SELECT ` + effectivenessColumns + `
		FROM effectiveness_records
		WHERE org_id = $1 AND period_start = $2
		ORDER BY tool_type`

	queryListEffectivenessTrend = `
		SELECT ` + effectivenessColumns + `
		FROM effectiveness_records
		WHERE org_id = $1 AND tool_type = $2
		ORDER BY period_start DESC
		LIMIT $3`

	queryListEffectivenessSince = `
		SELECT ` + effectivenessColumns + `
		FROM effectiveness_records
		WHERE period_start >= $1
		ORDER BY tool_type, org_id, period_start`

	queryApplyCalibration = `
		UPDATE effectiveness_records SET
			suggested_weight   = $2,
			calibration_score  = $3,
			last_calibrated_at = $4,
			updated_at         = now()
		WHERE tool_type = $1 AND period_start >= $5`

	querySetToolWeight = `
		UPDATE effectiveness_records SET
			current_weight = $3,
			updated_at     = now()
		WHERE tool_type = $1 AND period_start = $2`
)

// Anomaly queries.
const (
	anomalyColumns = `id, org_id, anomaly_type, severity, description,
		COALESCE(affected_item_ids, '[]'), COALESCE(tool_type, ''), pattern,
		COALESCE(suggested_action, ''), detected_at,
		resolved, resolved_at, COALESCE(resolved_by, ''), COALESCE(resolution_notes, '')`

	queryGetOpenAnomaly = `
		SELECT ` + anomalyColumns + `
		FROM anomalies
		WHERE org_id = $1 AND anomaly_type = $2 AND resolved = false`

	// The partial unique index on (org_id, anomaly_type) WHERE resolved =
	// false makes a concurrent duplicate insert a no-op rather than a
	// second open record.
	queryCreateAnomaly = `
		INSERT INTO anomalies (
			org_id, anomaly_type, severity, description,
			affected_item_ids, tool_type, pattern, suggested_action, detected_at
		) VALUES (
			@org_id, @anomaly_type, @severity, @description,
			@affected_item_ids, @tool_type, @pattern, @suggested_action, @detected_at
		)
		ON CONFLICT (org_id, anomaly_type) WHERE resolved = false DO NOTHING
		RETURNING id, detected_at`

	queryUpdateAnomalyEvidence = `
		UPDATE anomalies SET
			severity          = $2,
			description       = $3,
			affected_item_ids = $4,
			pattern           = $5,
			detected_at       = $6
		WHERE id = $1 AND resolved = false`

	queryResolveAnomaly = `
		UPDATE anomalies SET
			resolved         = true,
			resolved_at      = now(),
			resolved_by      = NULLIF($4, ''),
			resolution_notes = NULLIF($3, '')
		WHERE org_id = $1 AND id = $2 AND resolved = false
		RETURNING ` + anomalyColumns
)

// Calibration history queries.
const (
	queryInsertCalibrationRun = `
		INSERT INTO calibration_runs (calibrated_at, trigger_source, actor_id, lookback_days, results)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id`

	queryListCalibrationRuns = `
		SELECT id, calibrated_at, trigger_source, COALESCE(actor_id, ''), lookback_days, results
		FROM calibration_runs
		ORDER BY calibrated_at DESC
		LIMIT $1`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
