package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

// TradeOfferRepository — реализация domain.TradeOfferRepository поверх PostgreSQL.
// Терминальный переход статуса выполняется как compare-and-swap: UPDATE
// срабатывает только пока строка в статусе PENDING, поэтому два конкурирующих
// accept/decline/cancel не перезапишут друг друга.
type TradeOfferRepository struct {
	pool *pgxpool.Pool
}

// NewTradeOfferRepository создаёт репозиторий предложений обмена
func NewTradeOfferRepository(pool *pgxpool.Pool) *TradeOfferRepository {
	return &TradeOfferRepository{pool: pool}
}

// FindByID получает предложение обмена вместе с его предметами
func (r *TradeOfferRepository) FindByID(ctx context.Context, id domain.TradeOfferID) (*domain.TradeOffer, error) {
	var (
		offerID    uuid.UUID
		fromUserID uuid.UUID
		toUserID   uuid.UUID
		status     string
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, from_user_id, to_user_id, status, created_at, updated_at
		FROM trade_offers WHERE id = $1
	`, id.Value()).Scan(&offerID, &fromUserID, &toUserID, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "trade offer", ID: id.Value()}
		}
		return nil, fmt.Errorf("ошибка при запросе предложения обмена: %w", err)
	}

	itemsFrom, itemsTo, err := r.loadItems(ctx, offerID)
	if err != nil {
		return nil, err
	}

	return mapTradeOffer(offerID, fromUserID, toUserID, status, itemsFrom, itemsTo, createdAt, updatedAt)
}

// FindByUserID возвращает предложения, где пользователь любая из сторон, новые первыми
func (r *TradeOfferRepository) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.TradeOffer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, from_user_id, to_user_id, status, created_at, updated_at
		FROM trade_offers
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC
	`, userID.Value())
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе предложений обмена: %w", err)
	}
	defer rows.Close()

	type offerRow struct {
		id         uuid.UUID
		fromUserID uuid.UUID
		toUserID   uuid.UUID
		status     string
		createdAt  time.Time
		updatedAt  time.Time
	}

	var scanned []offerRow
	for rows.Next() {
		var row offerRow
		if err := rows.Scan(&row.id, &row.fromUserID, &row.toUserID, &row.status, &row.createdAt, &row.updatedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки: %w", err)
		}
		scanned = append(scanned, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении предложений обмена: %w", err)
	}

	offers := make([]*domain.TradeOffer, 0, len(scanned))
	for _, row := range scanned {
		itemsFrom, itemsTo, err := r.loadItems(ctx, row.id)
		if err != nil {
			return nil, err
		}
		offer, err := mapTradeOffer(row.id, row.fromUserID, row.toUserID, row.status, itemsFrom, itemsTo, row.createdAt, row.updatedAt)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// Save вставляет новое предложение с предметами либо обновляет статус существующего
func (r *TradeOfferRepository) Save(ctx context.Context, offer *domain.TradeOffer) (*domain.TradeOffer, error) {
	var currentStatus string
	err := r.pool.QueryRow(ctx, `
		SELECT status FROM trade_offers WHERE id = $1
	`, offer.ID().Value()).Scan(&currentStatus)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		if err := r.insert(ctx, offer); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("ошибка при проверке существования предложения: %w", err)
	default:
		if err := r.updateStatus(ctx, offer); err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, offer.ID())
}

// Delete удаляет предложение обмена вместе с предметами
func (r *TradeOfferRepository) Delete(ctx context.Context, id domain.TradeOfferID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trade_offers WHERE id = $1`, id.Value())
	if err != nil {
		return fmt.Errorf("ошибка при удалении предложения обмена: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "trade offer", ID: id.Value()}
	}
	return nil
}

func (r *TradeOfferRepository) insert(ctx context.Context, offer *domain.TradeOffer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO trade_offers (id, from_user_id, to_user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, offer.ID().Value(), offer.FromUserID().Value(), offer.ToUserID().Value(),
		offer.Status().String(), offer.CreatedAt(), offer.UpdatedAt())
	if err != nil {
		return fmt.Errorf("ошибка при создании предложения обмена: %w", err)
	}

	insertItems := func(items []domain.TradeOfferItem, isFrom bool) error {
		for _, item := range items {
			_, err := tx.Exec(ctx, `
				INSERT INTO trade_offer_items (trade_offer_id, asset_id, app_id, context_id, amount, is_from)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, offer.ID().Value(), item.AssetID(), item.AppID(), item.ContextID(), item.Amount(), isFrom)
			if err != nil {
				return fmt.Errorf("ошибка при сохранении предмета обмена: %w", err)
			}
		}
		return nil
	}
	if err := insertItems(offer.ItemsFrom(), true); err != nil {
		return err
	}
	if err := insertItems(offer.ItemsTo(), false); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}
	return nil
}

func (r *TradeOfferRepository) updateStatus(ctx context.Context, offer *domain.TradeOffer) error {
	// Обновление проходит только из PENDING: проигравший гонку получает
	// InvalidStateTransitionError вместо молчаливой перезаписи чужого статуса
	tag, err := r.pool.Exec(ctx, `
		UPDATE trade_offers
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, offer.Status().String(), offer.UpdatedAt(), offer.ID().Value(), domain.StatusPending.String())
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса предложения: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var current string
		if err := r.pool.QueryRow(ctx, `
			SELECT status FROM trade_offers WHERE id = $1
		`, offer.ID().Value()).Scan(&current); err != nil {
			return fmt.Errorf("ошибка при запросе статуса предложения: %w", err)
		}
		status, err := domain.ParseStatus(current)
		if err != nil {
			return err
		}
		return &domain.InvalidStateTransitionError{Action: "save", Status: status}
	}
	return nil
}

func (r *TradeOfferRepository) loadItems(ctx context.Context, offerID uuid.UUID) (itemsFrom, itemsTo []domain.TradeOfferItem, err error) {
	rows, err := r.pool.Query(ctx, `
		SELECT asset_id, app_id, context_id, amount, is_from
		FROM trade_offer_items
		WHERE trade_offer_id = $1
		ORDER BY id ASC
	`, offerID)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при запросе предметов обмена: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			assetID   string
			appID     int
			contextID string
			amount    int
			isFrom    bool
		)
		if err := rows.Scan(&assetID, &appID, &contextID, &amount, &isFrom); err != nil {
			return nil, nil, fmt.Errorf("ошибка при сканировании предмета: %w", err)
		}
		item, err := domain.NewTradeOfferItem(assetID, appID, contextID, amount)
		if err != nil {
			return nil, nil, err
		}
		if isFrom {
			itemsFrom = append(itemsFrom, item)
		} else {
			itemsTo = append(itemsTo, item)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("ошибка при чтении предметов обмена: %w", err)
	}
	return itemsFrom, itemsTo, nil
}

func mapTradeOffer(id, fromUserID, toUserID uuid.UUID, status string,
	itemsFrom, itemsTo []domain.TradeOfferItem, createdAt, updatedAt time.Time) (*domain.TradeOffer, error) {

	offerID, err := domain.NewTradeOfferID(id.String())
	if err != nil {
		return nil, err
	}
	from, err := domain.NewUserID(fromUserID.String())
	if err != nil {
		return nil, err
	}
	to, err := domain.NewUserID(toUserID.String())
	if err != nil {
		return nil, err
	}
	parsedStatus, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteTradeOffer(offerID, from, to, parsedStatus, itemsFrom, itemsTo, createdAt, updatedAt), nil
}
