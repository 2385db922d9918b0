package editstore

// Schema contains the complete DDL for the edit persistence tables.
const Schema = `
-- Committed cell edits, keyed by content block and cell edit key.
-- One row per edited cell; saves upsert the whole block's set.
CREATE TABLE IF NOT EXISTS cell_edits (
    block_id    TEXT NOT NULL,
    edit_key    TEXT NOT NULL,
    value       TEXT NOT NULL,
    updated_at  INTEGER NOT NULL,
    PRIMARY KEY (block_id, edit_key)
);
CREATE INDEX IF NOT EXISTS idx_cell_edits_block ON cell_edits(block_id);
`
