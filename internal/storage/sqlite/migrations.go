package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Amounts are stored as TEXT so decimals round-trip exactly.
// IMPORTANT: users and households reference each other, so both foreign keys are nullable.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    household_id TEXT,
    current_paycycle_id TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS households (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    joint_ratio TEXT NOT NULL DEFAULT '0.5',
    currency TEXT NOT NULL DEFAULT 'GBP',
    pay_cycle_type TEXT NOT NULL,
    pay_day INTEGER NOT NULL DEFAULT 0,
    partner_user_id TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (partner_user_id) REFERENCES users(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS paycycles (
    id TEXT PRIMARY KEY,
    household_id TEXT NOT NULL,
    name TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('draft', 'active', 'completed')),
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    income_me TEXT NOT NULL DEFAULT '0',
    income_partner TEXT NOT NULL DEFAULT '0',
    alloc_needs_me TEXT NOT NULL DEFAULT '0',
    alloc_needs_partner TEXT NOT NULL DEFAULT '0',
    alloc_needs_joint TEXT NOT NULL DEFAULT '0',
    alloc_wants_me TEXT NOT NULL DEFAULT '0',
    alloc_wants_partner TEXT NOT NULL DEFAULT '0',
    alloc_wants_joint TEXT NOT NULL DEFAULT '0',
    alloc_savings_me TEXT NOT NULL DEFAULT '0',
    alloc_savings_partner TEXT NOT NULL DEFAULT '0',
    alloc_savings_joint TEXT NOT NULL DEFAULT '0',
    alloc_repay_me TEXT NOT NULL DEFAULT '0',
    alloc_repay_partner TEXT NOT NULL DEFAULT '0',
    alloc_repay_joint TEXT NOT NULL DEFAULT '0',
    rem_needs_me TEXT NOT NULL DEFAULT '0',
    rem_needs_partner TEXT NOT NULL DEFAULT '0',
    rem_needs_joint TEXT NOT NULL DEFAULT '0',
    rem_wants_me TEXT NOT NULL DEFAULT '0',
    rem_wants_partner TEXT NOT NULL DEFAULT '0',
    rem_wants_joint TEXT NOT NULL DEFAULT '0',
    rem_savings_me TEXT NOT NULL DEFAULT '0',
    rem_savings_partner TEXT NOT NULL DEFAULT '0',
    rem_savings_joint TEXT NOT NULL DEFAULT '0',
    rem_repay_me TEXT NOT NULL DEFAULT '0',
    rem_repay_partner TEXT NOT NULL DEFAULT '0',
    rem_repay_joint TEXT NOT NULL DEFAULT '0',
    ritual_closed_at INTEGER,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (household_id) REFERENCES households(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS pots (
    id TEXT PRIMARY KEY,
    household_id TEXT NOT NULL,
    name TEXT NOT NULL,
    current_amount TEXT NOT NULL DEFAULT '0',
    target_amount TEXT NOT NULL DEFAULT '0',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (household_id) REFERENCES households(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS repayments (
    id TEXT PRIMARY KEY,
    household_id TEXT NOT NULL,
    name TEXT NOT NULL,
    current_balance TEXT NOT NULL DEFAULT '0',
    starting_balance TEXT NOT NULL DEFAULT '0',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (household_id) REFERENCES households(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS seeds (
    id TEXT PRIMARY KEY,
    household_id TEXT NOT NULL,
    paycycle_id TEXT NOT NULL,
    name TEXT NOT NULL,
    amount TEXT NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('need', 'want', 'savings', 'repay')),
    payment_source TEXT NOT NULL CHECK (payment_source IN ('me', 'partner', 'joint')),
    split_ratio TEXT,
    amount_me TEXT NOT NULL,
    amount_partner TEXT NOT NULL,
    is_recurring INTEGER NOT NULL DEFAULT 0,
    is_paid INTEGER NOT NULL DEFAULT 0,
    is_paid_me INTEGER NOT NULL DEFAULT 0,
    is_paid_partner INTEGER NOT NULL DEFAULT 0,
    linked_pot_id TEXT,
    linked_repayment_id TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (household_id) REFERENCES households(id) ON DELETE CASCADE,
    FOREIGN KEY (paycycle_id) REFERENCES paycycles(id) ON DELETE CASCADE,
    FOREIGN KEY (linked_pot_id) REFERENCES pots(id) ON DELETE SET NULL,
    FOREIGN KEY (linked_repayment_id) REFERENCES repayments(id) ON DELETE SET NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_paycycles_one_active ON paycycles(household_id) WHERE status = 'active';
CREATE UNIQUE INDEX IF NOT EXISTS idx_paycycles_one_draft ON paycycles(household_id) WHERE status = 'draft';
CREATE INDEX IF NOT EXISTS idx_paycycles_household_id ON paycycles(household_id);
CREATE INDEX IF NOT EXISTS idx_seeds_paycycle_id ON seeds(paycycle_id);
CREATE INDEX IF NOT EXISTS idx_pots_household_id ON pots(household_id);
CREATE INDEX IF NOT EXISTS idx_repayments_household_id ON repayments(household_id);
CREATE INDEX IF NOT EXISTS idx_users_household_id ON users(household_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
