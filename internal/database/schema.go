package database

import (
	"context"
	"database/sql"
)

// schema holds the CREATE TABLE statements for every relation the service
// uses. Statements are idempotent so Migrate can run on every startup.
// Foreign keys mirror the ownership graph: a trip belongs to a user, a stop
// to a trip and a city, a stop activity to a stop and an activity, and a
// budget to exactly one trip (trip_id is both primary key and foreign key,
// which is what guarantees at most one budget row per trip).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS trips (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		name VARCHAR(100) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		description TEXT,
		is_public TINYINT(1) NOT NULL DEFAULT 0,
		PRIMARY KEY (id),
		KEY idx_trips_user (user_id),
		CONSTRAINT fk_trips_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS cities (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		country VARCHAR(100) NOT NULL,
		cost_index INT NOT NULL DEFAULT 0,
		popularity_score INT NOT NULL DEFAULT 0,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS trip_stops (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		trip_id BIGINT UNSIGNED NOT NULL,
		city_id BIGINT UNSIGNED NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		stop_order INT NOT NULL,
		PRIMARY KEY (id),
		KEY idx_trip_stops_trip (trip_id),
		CONSTRAINT fk_trip_stops_city FOREIGN KEY (city_id) REFERENCES cities (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS activities (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		category VARCHAR(50) NOT NULL,
		avg_cost INT NULL,
		duration_hours INT NOT NULL DEFAULT 0,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS stop_activities (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		stop_id BIGINT UNSIGNED NOT NULL,
		activity_id BIGINT UNSIGNED NOT NULL,
		scheduled_date DATE NOT NULL,
		PRIMARY KEY (id),
		KEY idx_stop_activities_stop (stop_id),
		CONSTRAINT fk_stop_activities_activity FOREIGN KEY (activity_id) REFERENCES activities (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS budgets (
		trip_id BIGINT UNSIGNED NOT NULL,
		estimated_budget BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (trip_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates any missing tables. Trip deletion does not cascade to
// stops, stop activities or the budget, so trip_stops.trip_id,
// stop_activities.stop_id and budgets.trip_id deliberately carry no FK
// constraint back to their parent: rows may outlive the trip they belonged
// to and a constraint would reject the delete.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
