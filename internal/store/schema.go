package store

// schemaVersion is the target schema version for this build.
const schemaVersion = 1

var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);
CREATE TABLE IF NOT EXISTS activities (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	athlete_name TEXT,
	resource_state INTEGER,
	name TEXT,
	distance REAL,
	moving_time INTEGER,
	elapsed_time INTEGER,
	total_elevation_gain REAL,
	sport_type TEXT,
	workout_type INTEGER,
	device_name TEXT
);
CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date);
`
