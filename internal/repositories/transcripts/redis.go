package transcripts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/mudforge/battle-api/internal/errors"
	"github.com/mudforge/battle-api/internal/pkg/clock"
	redisclient "github.com/mudforge/battle-api/internal/redis"
)

const (
	// Key pattern: battle_transcript:{battle_id}
	transcriptKeyPrefix = "battle_transcript:"
	defaultTTL          = time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for battle transcripts
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append adds a narration line to a battle's transcript and refreshes its TTL
func (r *redisRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	if input.Text == "" {
		return nil, errors.InvalidArgument("text is required")
	}

	line := &Line{
		At:   r.clock.Now(),
		Text: input.Text,
	}

	data, err := json.Marshal(line)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal transcript line")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	key := transcriptKey(input.BattleID)
	if err := r.client.RPush(ctx, key, data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to append transcript line for battle %q", input.BattleID)
	}
	if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to refresh transcript TTL for battle %q", input.BattleID)
	}

	return &AppendOutput{Line: line}, nil
}

// Get retrieves the full transcript of a battle
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	raw, err := r.client.LRange(ctx, transcriptKey(input.BattleID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to read transcript for battle %q", input.BattleID)
	}
	if len(raw) == 0 {
		return nil, errors.NotFoundf("no transcript for battle %q", input.BattleID)
	}

	lines := make([]Line, 0, len(raw))
	for _, entry := range raw {
		var line Line
		if err := json.Unmarshal([]byte(entry), &line); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal transcript line for battle %q", input.BattleID)
		}
		lines = append(lines, line)
	}

	return &GetOutput{Lines: lines}, nil
}

// Delete removes a battle's transcript
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	key := transcriptKey(input.BattleID)

	length, err := r.client.LLen(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to measure transcript for battle %q", input.BattleID)
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete transcript for battle %q", input.BattleID)
	}

	return &DeleteOutput{LinesDeleted: int(length)}, nil
}

func transcriptKey(battleID string) string {
	return fmt.Sprintf("%s%s", transcriptKeyPrefix, battleID)
}
