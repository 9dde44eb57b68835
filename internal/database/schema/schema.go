package schema

// SchemaSQL contains the full database schema initialization script. It
// mirrors the goose migrations and exists so integration tests can
// bootstrap a fresh database without reading migration files.
const SchemaSQL = `
-- Generation Runs
CREATE TABLE IF NOT EXISTS generation_runs (
    run_id UUID PRIMARY KEY,
    seed BIGINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_generation_runs_created_at
    ON generation_runs (created_at DESC);

-- Designed Items
CREATE TABLE IF NOT EXISTS designed_items (
    item_id SERIAL PRIMARY KEY,
    run_id UUID NOT NULL REFERENCES generation_runs(run_id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    kind_name VARCHAR(100) NOT NULL,
    item_name VARCHAR(200) NOT NULL,
    cursed BOOLEAN NOT NULL DEFAULT FALSE,
    record JSONB NOT NULL,
    UNIQUE (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_designed_items_run_id ON designed_items (run_id);
CREATE INDEX IF NOT EXISTS idx_designed_items_record ON designed_items USING GIN (record);
`
