package session

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	redisclient "github.com/storyforge/storyforge-api/internal/redis"
)

const (
	sessionKeyPrefix = "session:"
	worldIndexPrefix = "world:"
	worldIndexSuffix = ":sessions"

	// Concurrent AppendTurn callers race on the session key; the
	// WATCH transaction retries a bounded number of times before
	// giving up with Aborted
	maxTxRetries = 5

	// Error messages
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
	errWorldIDEmpty   = "world ID cannot be empty"
	errTurnNil        = "turn cannot be nil"
)

func worldIndexKey(worldID string) string {
	return worldIndexPrefix + worldID + worldIndexSuffix
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis session repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Session.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := sessionKeyPrefix + input.Session.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("session with ID %s already exists", input.Session.ID)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, worldIndexKey(input.Session.WorldID), input.Session.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create session")
	}

	return &CreateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := sessionKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var sess entities.Session
	if err := json.Unmarshal([]byte(result), &sess); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &sess}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := sessionKeyPrefix + input.Session.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("session with ID %s not found", input.Session.ID)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}

	return &UpdateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+input.ID)
	pipe.SRem(ctx, worldIndexKey(getOutput.Session.WorldID), input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByWorld(ctx context.Context, input ListByWorldInput) (*ListByWorldOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, worldIndexKey(input.WorldID)).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to list sessions")
	}

	sessions := make([]*entities.Session, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		sessions = append(sessions, out.Session)
	}

	return &ListByWorldOutput{Sessions: sessions}, nil
}

func (r *redisRepository) AppendTurn(ctx context.Context, input AppendTurnInput) (*AppendTurnOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Turn == nil {
		return nil, errors.InvalidArgument(errTurnNil)
	}

	var appended *entities.Session
	err := r.mutate(ctx, input.SessionID, func(sess *entities.Session) error {
		if input.Turn.TurnNumber != sess.CurrentTurn+1 {
			return errors.FailedPreconditionf(
				"turn number %d does not follow current turn %d",
				input.Turn.TurnNumber, sess.CurrentTurn)
		}
		sess.Turns = append(sess.Turns, *input.Turn)
		sess.CurrentTurn = input.Turn.TurnNumber
		sess.UpdatedAt = input.Turn.Timestamp
		appended = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AppendTurnOutput{Session: appended}, nil
}

func (r *redisRepository) AppendTimelineEvent(ctx context.Context, input AppendTimelineEventInput) (*AppendTimelineEventOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Event == nil {
		return nil, errors.InvalidArgument("event cannot be nil")
	}

	var updated *entities.Session
	err := r.mutate(ctx, input.SessionID, func(sess *entities.Session) error {
		sess.Timeline = append(sess.Timeline, *input.Event)
		updated = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AppendTimelineEventOutput{Session: updated}, nil
}

func (r *redisRepository) AppendAdventureLog(ctx context.Context, input AppendAdventureLogInput) (*AppendAdventureLogOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Log == nil {
		return nil, errors.InvalidArgument("log cannot be nil")
	}

	var updated *entities.Session
	err := r.mutate(ctx, input.SessionID, func(sess *entities.Session) error {
		sess.AdventureLogs = append(sess.AdventureLogs, *input.Log)
		updated = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AppendAdventureLogOutput{Session: updated}, nil
}

// mutate runs fn against the stored session under WATCH and writes it
// back in the same transaction, retrying when a concurrent writer
// invalidates the key
func (r *redisRepository) mutate(ctx context.Context, sessionID string, fn func(*entities.Session) error) error {
	key := sessionKeyPrefix + sessionID

	txFn := func(tx *redis.Tx) error {
		result, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("session with ID %s not found", sessionID)
			}
			return errors.Wrapf(err, "failed to get session")
		}

		var sess entities.Session
		if err := json.Unmarshal([]byte(result), &sess); err != nil {
			return errors.Wrapf(err, "failed to unmarshal session")
		}

		if err := fn(&sess); err != nil {
			return err
		}

		data, err := json.Marshal(&sess)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txFn, key)
		if err == redis.TxFailedErr {
			continue
		}
		return err
	}

	return errors.Abortedf("session %s is being modified concurrently", sessionID)
}
