package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/repository"
)

const playerColumns = `id::text, user_id, gold, mood, unlocked_incubator_slots, created_at, updated_at`

const monsterColumns = `id::text, user_id::text, location, element, hatching_started_at, is_hatched,
	nickname, level, exp, hunger, hunger_updated_at, happiness,
	last_decay_date, care_date, care_snack, care_play, created_at, updated_at`

const upsertMonsterSQL = `
	INSERT INTO monsters (
		id, user_id, location, element, hatching_started_at, is_hatched,
		nickname, level, exp, hunger, hunger_updated_at, happiness,
		last_decay_date, care_date, care_snack, care_play, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, COALESCE($17, NOW()), NOW())
	ON CONFLICT (id) DO UPDATE SET
		location = EXCLUDED.location,
		element = EXCLUDED.element,
		hatching_started_at = EXCLUDED.hatching_started_at,
		is_hatched = EXCLUDED.is_hatched,
		nickname = EXCLUDED.nickname,
		level = EXCLUDED.level,
		exp = EXCLUDED.exp,
		hunger = EXCLUDED.hunger,
		hunger_updated_at = EXCLUDED.hunger_updated_at,
		happiness = EXCLUDED.happiness,
		last_decay_date = EXCLUDED.last_decay_date,
		care_date = EXCLUDED.care_date,
		care_snack = EXCLUDED.care_snack,
		care_play = EXCLUDED.care_play,
		updated_at = NOW()
	WHERE monsters.user_id = EXCLUDED.user_id`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// HatcheryRepository implements repository.Hatchery on Postgres
type HatcheryRepository struct {
	db *pgxpool.Pool
}

// NewHatcheryRepository creates a new HatcheryRepository
func NewHatcheryRepository(db *pgxpool.Pool) *HatcheryRepository {
	return &HatcheryRepository{db: db}
}

var _ repository.Hatchery = (*HatcheryRepository)(nil)

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	var slots []int32
	var created, updated pgtype.Timestamptz
	if err := row.Scan(&p.ID, &p.Nickname, &p.Gold, &p.Mood, &slots, &created, &updated); err != nil {
		return nil, err
	}
	p.UnlockedIncubatorSlots = slotsFromInt32(slots)
	p.CreatedAt = created.Time
	p.UpdatedAt = updated.Time
	return &p, nil
}

// GetPlayer retrieves a player by id
func (r *HatcheryRepository) GetPlayer(ctx context.Context, userID string) (*domain.Player, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	p, err := scanPlayer(r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM users WHERE id = $1`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return p, nil
}

// GetPlayerByNickname retrieves a player by nickname
func (r *HatcheryRepository) GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error) {
	p, err := scanPlayer(r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM users WHERE user_id = $1`, nickname))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return p, nil
}

// CreatePlayer inserts a new player; ID must already be set
func (r *HatcheryRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	uid, err := parseUserUUID(player.ID)
	if err != nil {
		return err
	}
	var created, updated pgtype.Timestamptz
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (id, user_id, gold, mood, unlocked_incubator_slots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		uid, player.Nickname, player.Gold, player.Mood, slotsToInt32(player.UnlockedIncubatorSlots),
	).Scan(&created, &updated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: nickname %q is taken", domain.ErrInvalidNickname, player.Nickname)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	player.CreatedAt = created.Time
	player.UpdatedAt = updated.Time
	return nil
}

// UpdatePlayer writes gold, mood and unlocked slots
func (r *HatcheryRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	return updatePlayer(ctx, r.db, player)
}

func updatePlayer(ctx context.Context, q querier, player *domain.Player) error {
	uid, err := parseUserUUID(player.ID)
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, `
		UPDATE users SET gold = $2, mood = $3, unlocked_incubator_slots = $4, updated_at = NOW()
		WHERE id = $1`,
		uid, player.Gold, player.Mood, slotsToInt32(player.UnlockedIncubatorSlots))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// UnlockIncubatorSlot locks the user row and performs the authoritative unlock.
// Ownership and funds failures are reported in the result, not as errors.
func (r *HatcheryRepository) UnlockIncubatorSlot(ctx context.Context, userID string, slot, cost int) (domain.UnlockResult, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return domain.UnlockResult{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.UnlockResult{}, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var gold int
	var slots []int32
	err = tx.QueryRow(ctx, `SELECT gold, unlocked_incubator_slots FROM users WHERE id = $1 FOR UPDATE`, uid).Scan(&gold, &slots)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UnlockResult{}, domain.ErrPlayerNotFound
		}
		return domain.UnlockResult{}, fmt.Errorf("%s: %w", ErrMsgFailedToLockUser, err)
	}

	current := slotsFromInt32(slots)
	if slices.Contains(current, slot) {
		return domain.UnlockResult{Success: false, Gold: gold, UnlockedSlots: current, Reason: UnlockReasonAlreadyUnlocked}, nil
	}
	if gold < cost {
		return domain.UnlockResult{Success: false, Gold: gold, UnlockedSlots: current, Reason: UnlockReasonInsufficientGold}, nil
	}

	err = tx.QueryRow(ctx, `
		UPDATE users
		SET gold = gold - $2, unlocked_incubator_slots = array_append(unlocked_incubator_slots, $3), updated_at = NOW()
		WHERE id = $1
		RETURNING gold, unlocked_incubator_slots`,
		uid, cost, int32(slot)).Scan(&gold, &slots)
	if err != nil {
		return domain.UnlockResult{}, fmt.Errorf("%s: %w", ErrMsgFailedToUnlockSlot, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.UnlockResult{}, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return domain.UnlockResult{Success: true, Gold: gold, UnlockedSlots: slotsFromInt32(slots)}, nil
}

func scanMonster(rows pgx.Rows) (domain.MonsterRecord, error) {
	var rec domain.MonsterRecord
	var (
		location, element                   string
		started, hungerAt, created, updated pgtype.Timestamptz
		nickname, lastDecay, careDate       pgtype.Text
		level, exp, careSnack, carePlay     pgtype.Int4
		hunger, happiness                   pgtype.Float8
	)
	err := rows.Scan(
		&rec.ID, &rec.UserID, &location, &element, &started, &rec.IsHatched,
		&nickname, &level, &exp, &hunger, &hungerAt, &happiness,
		&lastDecay, &careDate, &careSnack, &carePlay, &created, &updated,
	)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgFailedToScanMonster, err)
	}
	rec.Location = domain.Location(location)
	rec.Element = domain.Element(element)
	rec.HatchingStartedAt = ptrTime(started)
	rec.Nickname = textToPtr(nickname)
	rec.Level = ptrInt(level)
	rec.Exp = ptrInt(exp)
	rec.Hunger = ptrFloat(hunger)
	rec.HungerUpdatedAt = ptrTime(hungerAt)
	rec.Happiness = ptrFloat(happiness)
	rec.LastDecayDate = textToPtr(lastDecay)
	rec.CareDate = textToPtr(careDate)
	rec.CareSnack = ptrInt(careSnack)
	rec.CarePlay = ptrInt(carePlay)
	rec.CreatedAt = created.Time
	rec.UpdatedAt = updated.Time
	return rec, nil
}

func (r *HatcheryRepository) listMonsters(ctx context.Context, sql string, args ...any) ([]domain.MonsterRecord, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMonsters, err)
	}
	defer rows.Close()

	var out []domain.MonsterRecord
	for rows.Next() {
		rec, err := scanMonster(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMonsters, err)
	}
	return out, nil
}

// ListMonsters returns every row owned by the user
func (r *HatcheryRepository) ListMonsters(ctx context.Context, userID string) ([]domain.MonsterRecord, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	return r.listMonsters(ctx, `SELECT `+monsterColumns+` FROM monsters WHERE user_id = $1 ORDER BY location`, uid)
}

// ListMonstersByLocationKind returns the user's rows whose location starts with kind
func (r *HatcheryRepository) ListMonstersByLocationKind(ctx context.Context, userID string, kind domain.LocationKind) ([]domain.MonsterRecord, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	return r.listMonsters(ctx,
		`SELECT `+monsterColumns+` FROM monsters WHERE user_id = $1 AND split_part(location, '_', 1) = $2 ORDER BY location`,
		uid, string(kind))
}

// UpsertMonsters inserts or updates rows by id in one batch
func (r *HatcheryRepository) UpsertMonsters(ctx context.Context, userID string, records []domain.MonsterRecord) error {
	return upsertMonsters(ctx, r.db, userID, records)
}

func upsertMonsters(ctx context.Context, q querier, userID string, records []domain.MonsterRecord) error {
	if len(records) == 0 {
		return nil
	}
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		ids, err := parseRecordIDs([]string{rec.ID})
		if err != nil {
			return err
		}
		var created *time.Time
		if !rec.CreatedAt.IsZero() {
			created = &rec.CreatedAt
		}
		batch.Queue(upsertMonsterSQL,
			ids[0], uid, string(rec.Location), string(domain.NormalizeElement(rec.Element)),
			timeToTimestamptz(rec.HatchingStartedAt), rec.IsHatched,
			ptrToText(rec.Nickname), ptrToInt4(rec.Level), ptrToInt4(rec.Exp),
			ptrToFloat8(rec.Hunger), timeToTimestamptz(rec.HungerUpdatedAt), ptrToFloat8(rec.Happiness),
			ptrToText(rec.LastDecayDate), ptrToText(rec.CareDate), ptrToInt4(rec.CareSnack), ptrToInt4(rec.CarePlay),
			timeToTimestamptz(created),
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()
	for _, rec := range records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("%s %s at %s: %w", ErrMsgFailedToUpsertMonster, rec.ID, rec.Location, err)
		}
	}
	return nil
}

// DeleteMonsters deletes the user's rows with the given ids
func (r *HatcheryRepository) DeleteMonsters(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	parsed, err := parseRecordIDs(ids)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM monsters WHERE user_id = $1 AND id = ANY($2)`, uid, parsed); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMonsters, err)
	}
	return nil
}

// ListEggTypes returns the remote egg type overrides
func (r *HatcheryRepository) ListEggTypes(ctx context.Context) ([]domain.EggTypeRow, error) {
	rows, err := r.db.Query(ctx, `SELECT element, hatch_hours, crack_at_hours FROM egg_types ORDER BY element`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEggTypes, err)
	}
	defer rows.Close()

	var out []domain.EggTypeRow
	for rows.Next() {
		var element string
		var hatch, crack pgtype.Float8
		if err := rows.Scan(&element, &hatch, &crack); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEggType, err)
		}
		out = append(out, domain.EggTypeRow{
			Element:      domain.Element(element),
			HatchHours:   ptrFloat(hatch),
			CrackAtHours: ptrFloat(crack),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEggTypes, err)
	}
	return out, nil
}

// BeginTx starts a transaction for a snapshot write
func (r *HatcheryRepository) BeginTx(ctx context.Context) (repository.HatcheryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &hatcheryTx{tx: tx}, nil
}

// hatcheryTx implements repository.HatcheryTx
type hatcheryTx struct {
	tx pgx.Tx
}

func (t *hatcheryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *hatcheryTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

func (t *hatcheryTx) UpsertMonsters(ctx context.Context, userID string, records []domain.MonsterRecord) error {
	return upsertMonsters(ctx, t.tx, userID, records)
}

func (t *hatcheryTx) DeleteMonstersExcept(ctx context.Context, userID string, keep []string) (int64, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}
	parsed, err := parseRecordIDs(keep)
	if err != nil {
		return 0, err
	}
	tag, err := t.tx.Exec(ctx, `DELETE FROM monsters WHERE user_id = $1 AND NOT (id = ANY($2))`, uid, parsed)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMonsters, err)
	}
	return tag.RowsAffected(), nil
}

func (t *hatcheryTx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	return updatePlayer(ctx, t.tx, player)
}
