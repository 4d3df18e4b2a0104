package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name             TEXT PRIMARY KEY,
    principal        REAL NOT NULL,
    nominal_rate     REAL NOT NULL,
    terms            INTEGER NOT NULL,
    terms_per_year   INTEGER NOT NULL,
    installment_fee  REAL NOT NULL DEFAULT 0,
    start_date       TEXT NOT NULL,
    due_day          INTEGER NOT NULL,
    extra_amount     REAL NOT NULL DEFAULT 0,
    extra_terms      INTEGER NOT NULL DEFAULT 0,
    extra_day        INTEGER NOT NULL DEFAULT 25,
    total_cost       REAL NOT NULL DEFAULT 0,
    total_interest   REAL NOT NULL DEFAULT 0,
    completed_terms  INTEGER NOT NULL DEFAULT 0,
    created_at       TEXT NOT NULL,
    updated_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_updated ON scenarios(updated_at);
`
