package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Core User Information
CREATE TABLE IF NOT EXISTS users (
    user_id VARCHAR(64) PRIMARY KEY,
    username VARCHAR(100) NOT NULL DEFAULT '',
    registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_draw TIMESTAMPTZ,
    daily_claimed_on VARCHAR(10) NOT NULL DEFAULT '',
    rarity_bonus DOUBLE PRECISION NOT NULL DEFAULT 0,
    extra_draws INTEGER NOT NULL DEFAULT 0
);

-- Card Catalog (immutable after seeding)
CREATE TABLE IF NOT EXISTS cards (
    card_id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    rarity INTEGER NOT NULL CHECK (rarity BETWEEN 1 AND 5),
    description TEXT NOT NULL DEFAULT '',
    image_path VARCHAR(255) NOT NULL DEFAULT '',
    health INTEGER NOT NULL DEFAULT 100,
    melee INTEGER NOT NULL DEFAULT 10,
    ranged INTEGER NOT NULL DEFAULT 10,
    special INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_cards_rarity ON cards (rarity);

-- Acquisition Log (append-only; duplicates are legitimate copies)
CREATE TABLE IF NOT EXISTS user_cards (
    acquisition_id BIGSERIAL PRIMARY KEY,
    user_id VARCHAR(64) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    card_id INTEGER NOT NULL REFERENCES cards(card_id) ON DELETE RESTRICT,
    obtained_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_user_cards_user ON user_cards (user_id);
`
