package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

// UserRepository — реализация domain.UserRepository поверх PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository создаёт репозиторий пользователей
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByID получает пользователя по внутреннему идентификатору
func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.findOne(ctx, `
		SELECT id, steam_id, username, avatar, created_at, updated_at
		FROM users WHERE id = $1
	`, id.Value())
}

// FindBySteamID получает пользователя по Steam ID
func (r *UserRepository) FindBySteamID(ctx context.Context, steamID domain.SteamID) (*domain.User, error) {
	return r.findOne(ctx, `
		SELECT id, steam_id, username, avatar, created_at, updated_at
		FROM users WHERE steam_id = $1
	`, steamID.Value())
}

// CreateNew создаёт пользователя с новым идентификатором
func (r *UserRepository) CreateNew(ctx context.Context, steamID domain.SteamID, username, avatar string) (*domain.User, error) {
	id := uuid.New()
	now := time.Now()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, steam_id, username, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`, id, steamID.Value(), username, avatar, now)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	userID, err := domain.NewUserID(id.String())
	if err != nil {
		return nil, err
	}
	return domain.ReconstituteUser(userID, steamID, username, avatar, now, now), nil
}

// Save обновляет профиль существующего пользователя либо создаёт нового
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, avatar = $2, updated_at = $3
		WHERE steam_id = $4
	`, user.Username(), user.Avatar(), user.UpdatedAt(), user.SteamID().Value())
	if err != nil {
		return nil, fmt.Errorf("ошибка при обновлении пользователя: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return r.CreateNew(ctx, user.SteamID(), user.Username(), user.Avatar())
	}
	return r.FindBySteamID(ctx, user.SteamID())
}

// Exists проверяет наличие пользователя по идентификатору
func (r *UserRepository) Exists(ctx context.Context, id domain.UserID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
	`, id.Value()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) findOne(ctx context.Context, query, arg string) (*domain.User, error) {
	var (
		id        uuid.UUID
		steamID   string
		username  string
		avatar    pgtype.Text
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &steamID, &username, &avatar, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "user", ID: arg}
		}
		return nil, fmt.Errorf("ошибка при запросе пользователя: %w", err)
	}

	return mapUser(id, steamID, username, avatar, createdAt, updatedAt)
}

func mapUser(id uuid.UUID, steamID, username string, avatar pgtype.Text, createdAt, updatedAt time.Time) (*domain.User, error) {
	userID, err := domain.NewUserID(id.String())
	if err != nil {
		return nil, err
	}
	sid, err := domain.NewSteamID(steamID)
	if err != nil {
		return nil, err
	}

	avatarValue := ""
	if avatar.Valid {
		avatarValue = avatar.String
	}
	return domain.ReconstituteUser(userID, sid, username, avatarValue, createdAt, updatedAt), nil
}
