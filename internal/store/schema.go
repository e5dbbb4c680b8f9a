package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS teams (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	team_id    TEXT NOT NULL REFERENCES teams(id),
	name       TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS files (
	id          TEXT PRIMARY KEY,
	project_id  TEXT NOT NULL REFERENCES projects(id),
	name        TEXT NOT NULL DEFAULT '',
	content     BLOB NOT NULL DEFAULT '{}',
	is_shared   INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	modified_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS file_library_rels (
	file_id         TEXT NOT NULL REFERENCES files(id),
	library_file_id TEXT NOT NULL,
	UNIQUE(file_id, library_file_id)
);

CREATE TABLE IF NOT EXISTS file_media_objects (
	id       TEXT NOT NULL,
	file_id  TEXT NOT NULL REFERENCES files(id),
	name     TEXT NOT NULL DEFAULT '',
	is_local INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (id, file_id)
);

CREATE TABLE IF NOT EXISTS file_profile_rels (
	file_id    TEXT NOT NULL REFERENCES files(id),
	profile_id TEXT NOT NULL,
	is_owner   INTEGER NOT NULL DEFAULT 0,
	is_admin   INTEGER NOT NULL DEFAULT 0,
	can_edit   INTEGER NOT NULL DEFAULT 0,
	UNIQUE(file_id, profile_id)
);

CREATE TABLE IF NOT EXISTS project_profile_rels (
	project_id TEXT NOT NULL REFERENCES projects(id),
	profile_id TEXT NOT NULL,
	is_owner   INTEGER NOT NULL DEFAULT 0,
	is_admin   INTEGER NOT NULL DEFAULT 0,
	can_edit   INTEGER NOT NULL DEFAULT 0,
	UNIQUE(project_id, profile_id)
);

CREATE TABLE IF NOT EXISTS team_profile_rels (
	team_id    TEXT NOT NULL REFERENCES teams(id),
	profile_id TEXT NOT NULL,
	is_owner   INTEGER NOT NULL DEFAULT 0,
	is_admin   INTEGER NOT NULL DEFAULT 0,
	can_edit   INTEGER NOT NULL DEFAULT 0,
	UNIQUE(team_id, profile_id)
);

CREATE INDEX IF NOT EXISTS idx_projects_team ON projects(team_id);
CREATE INDEX IF NOT EXISTS idx_files_project ON files(project_id);
CREATE INDEX IF NOT EXISTS idx_library_rels_file ON file_library_rels(file_id);
CREATE INDEX IF NOT EXISTS idx_library_rels_library ON file_library_rels(library_file_id);
CREATE INDEX IF NOT EXISTS idx_media_objects_file ON file_media_objects(file_id);
`
