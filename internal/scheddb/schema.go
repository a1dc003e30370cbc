package scheddb

// schema is the timetable database DDL. The importer owns the data; the
// engine only reads it. Stops are keyed by id, never by name: several rows
// may share a display name.
const schema = `
CREATE TABLE IF NOT EXISTS stops (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	external_id TEXT NOT NULL UNIQUE,
	is_terminus INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_stops_name ON stops(name);

CREATE TABLE IF NOT EXISTS stop_groups (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	names TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS buses (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	label  TEXT NOT NULL,
	active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS routes (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	bus_id INTEGER NOT NULL REFERENCES buses(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_routes_bus ON routes(bus_id);

CREATE TABLE IF NOT EXISTS route_stops (
	route_id INTEGER NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	stop_id  INTEGER NOT NULL REFERENCES stops(id) ON DELETE CASCADE,
	PRIMARY KEY (route_id, position)
);
CREATE INDEX IF NOT EXISTS idx_route_stops_stop ON route_stops(stop_id);

CREATE TABLE IF NOT EXISTS schedule (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	day     INTEGER NOT NULL CHECK (day BETWEEN 1 AND 7),
	stop_id INTEGER NOT NULL REFERENCES stops(id) ON DELETE CASCADE,
	bus_id  INTEGER NOT NULL REFERENCES buses(id) ON DELETE CASCADE,
	time    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_schedule_lookup ON schedule(stop_id, bus_id, day);

CREATE TABLE IF NOT EXISTS holidays (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	day  INTEGER NOT NULL CHECK (day BETWEEN 1 AND 7)
);
`
