package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		steam_id TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trade_offers (
		id UUID PRIMARY KEY,
		from_user_id UUID NOT NULL REFERENCES users(id),
		to_user_id UUID NOT NULL REFERENCES users(id),
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trade_offer_items (
		id BIGSERIAL PRIMARY KEY,
		trade_offer_id UUID NOT NULL REFERENCES trade_offers(id) ON DELETE CASCADE,
		asset_id TEXT NOT NULL,
		app_id INTEGER NOT NULL,
		context_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		is_from BOOLEAN NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trade_offers_from_user ON trade_offers(from_user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_trade_offers_to_user ON trade_offers(to_user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_trade_offer_items_offer ON trade_offer_items(trade_offer_id)`,
}

// RunMigrations создаёт схему базы данных, если её ещё нет
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ошибка при выполнении миграции: %w", err)
		}
	}
	return nil
}
