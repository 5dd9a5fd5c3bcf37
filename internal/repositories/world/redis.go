package world

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/storyforge/storyforge-api/internal/entities"
	"github.com/storyforge/storyforge-api/internal/errors"
	redisclient "github.com/storyforge/storyforge-api/internal/redis"
)

const (
	worldKeyPrefix      = "world:"
	worldIndexKey       = "worlds"
	mainQuestKeyPrefix  = "mainquest:world:"
	characterKeyPrefix  = "character:"
	sessionKeyPrefix    = "session:"
	charactersSetSuffix = ":characters"
	sessionsSetSuffix   = ":sessions"

	// Error messages
	errWorldNil     = "world cannot be nil"
	errWorldIDEmpty = "world ID cannot be empty"
	errQuestNil     = "quest cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis world repository.
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

// NewRedis creates a new Redis-backed world repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument(errWorldNil)
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := worldKeyPrefix + input.World.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("world with ID %s already exists", input.World.ID)
	}

	data, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, worldIndexKey, input.World.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create world")
	}

	return &CreateOutput{World: input.World}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := worldKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("world with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get world")
	}

	var w entities.World
	if err := json.Unmarshal([]byte(result), &w); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal world")
	}

	return &GetOutput{World: &w}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument(errWorldNil)
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := worldKeyPrefix + input.World.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("world with ID %s not found", input.World.ID)
	}

	data, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update world")
	}

	return &UpdateOutput{World: input.World}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := worldKeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("world with ID %s not found", input.ID)
	}

	charactersSet := worldKeyPrefix + input.ID + charactersSetSuffix
	sessionsSet := worldKeyPrefix + input.ID + sessionsSetSuffix

	characterIDs, err := r.client.SMembers(ctx, charactersSet).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to list owned characters")
	}
	sessionIDs, err := r.client.SMembers(ctx, sessionsSet).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to list owned sessions")
	}

	pipe := r.client.TxPipeline()
	for _, id := range characterIDs {
		pipe.Del(ctx, characterKeyPrefix+id)
	}
	for _, id := range sessionIDs {
		pipe.Del(ctx, sessionKeyPrefix+id)
	}
	pipe.Del(ctx, charactersSet)
	pipe.Del(ctx, sessionsSet)
	pipe.Del(ctx, mainQuestKeyPrefix+input.ID)
	pipe.Del(ctx, key)
	pipe.SRem(ctx, worldIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete world")
	}

	return &DeleteOutput{
		CharactersDeleted: len(characterIDs),
		SessionsDeleted:   len(sessionIDs),
	}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, worldIndexKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to list worlds")
	}

	worlds := make([]*entities.World, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Index entries can outlive their world briefly; skip them
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		worlds = append(worlds, out.World)
	}

	return &ListOutput{Worlds: worlds}, nil
}

func (r *redisRepository) SaveMainQuest(ctx context.Context, input SaveMainQuestInput) (*SaveMainQuestOutput, error) {
	if input.Quest == nil {
		return nil, errors.InvalidArgument(errQuestNil)
	}
	if input.Quest.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	worldKey := worldKeyPrefix + input.Quest.WorldID
	exists, err := r.client.Exists(ctx, worldKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check world existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("world with ID %s not found", input.Quest.WorldID)
	}

	data, err := json.Marshal(input.Quest)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal quest")
	}

	key := mainQuestKeyPrefix + input.Quest.WorldID
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save main quest")
	}

	return &SaveMainQuestOutput{Quest: input.Quest}, nil
}

func (r *redisRepository) GetMainQuestByWorld(ctx context.Context, input GetMainQuestByWorldInput) (*GetMainQuestByWorldOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := mainQuestKeyPrefix + input.WorldID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no main quest found for world %s", input.WorldID)
		}
		return nil, errors.Wrapf(err, "failed to get main quest")
	}

	var quest entities.MainQuest
	if err := json.Unmarshal([]byte(result), &quest); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal quest")
	}

	return &GetMainQuestByWorldOutput{Quest: &quest}, nil
}
