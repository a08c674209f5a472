package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Watch queries.
const (
	// A repeated (user, card, rare, pack) re-targets and re-activates the
	// existing watch instead of creating a duplicate.
	queryCreateWatch = `
		INSERT INTO watches (
			user_id, card_key, card_name, pack_id, pack_name, pack_card_id,
			rare, image_url, target_price, target_price_min, is_active,
			notification_target, created_at, updated_at
		) VALUES (
			@user_id, @card_key, @card_name, @pack_id, @pack_name, @pack_card_id,
			@rare, @image_url, @target_price, @target_price_min, true,
			@notification_target, now(), now()
		)
		ON CONFLICT (user_id, card_key, rare, pack_id) DO UPDATE SET
			card_name           = EXCLUDED.card_name,
			pack_name           = EXCLUDED.pack_name,
			pack_card_id        = EXCLUDED.pack_card_id,
			image_url           = EXCLUDED.image_url,
			target_price        = EXCLUDED.target_price,
			target_price_min    = EXCLUDED.target_price_min,
			notification_target = EXCLUDED.notification_target,
			is_active           = true,
			updated_at          = now()
		RETURNING id, is_active, created_at, updated_at`

	queryGetWatch = baseWatchesSelect + ` WHERE id = $1`

	queryUpdateWatch = `
		UPDATE watches SET
			target_price        = @target_price,
			target_price_min    = @target_price_min,
			is_active           = @is_active,
			notification_target = @notification_target,
			updated_at          = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteWatch = `DELETE FROM watches WHERE id = $1`

	querySetWatchActive = `
		UPDATE watches SET
			is_active  = $2,
			updated_at = now()
		WHERE id = $1`
)

// Snapshot queries.
const (
	queryInsertSnapshot = `
		INSERT INTO price_snapshots (
			watch_id, lowest_price, avg_price, buyable_count, total_count, checked_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	queryLatestSnapshot = `
		SELECT id, watch_id, lowest_price, avg_price, buyable_count, total_count, checked_at
		FROM price_snapshots
		WHERE watch_id = $1
		ORDER BY checked_at DESC, id DESC
		LIMIT 1`

	queryListSnapshots = `
		SELECT id, watch_id, lowest_price, avg_price, buyable_count, total_count, checked_at
		FROM price_snapshots
		WHERE watch_id = $1
		ORDER BY checked_at DESC, id DESC
		LIMIT $2`
)

// Notification queries.
const (
	queryLastNotification = `
		SELECT id, watch_id, user_id, triggered_price, target_price, message, status, sent_at
		FROM notifications
		WHERE watch_id = $1
		ORDER BY sent_at DESC, id DESC
		LIMIT 1`

	queryInsertNotification = `
		INSERT INTO notifications (
			watch_id, user_id, triggered_price, target_price, message, status, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	queryListNotifications = `
		SELECT id, watch_id, user_id, triggered_price, target_price, message, status, sent_at
		FROM notifications
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY sent_at DESC, id DESC
		LIMIT $2`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

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
