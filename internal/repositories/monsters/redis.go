package monsters

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/mudforge/battle-api/internal/errors"
	redisclient "github.com/mudforge/battle-api/internal/redis"
)

// Key pattern: monster_template:{template_id}
const templateKeyPrefix = "monster_template:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for monster templates
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// GetTemplate retrieves a template by ID
func (r *redisRepository) GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error) {
	if input == nil || input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	data, err := r.client.Get(ctx, templateKey(input.TemplateID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster template %q not found", input.TemplateID)
		}
		return nil, errors.Wrapf(err, "failed to get template %q from Redis", input.TemplateID)
	}

	var tmpl Template
	if err := json.Unmarshal([]byte(data), &tmpl); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal template %q", input.TemplateID)
	}

	return &GetTemplateOutput{Template: &tmpl}, nil
}

// PutTemplate stores a template, overwriting any existing one
func (r *redisRepository) PutTemplate(ctx context.Context, input *PutTemplateInput) (*PutTemplateOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	if input.Template.ID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	data, err := json.Marshal(input.Template)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal template %q", input.Template.ID)
	}

	// Templates are configuration, not session state: no TTL.
	if err := r.client.Set(ctx, templateKey(input.Template.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store template %q in Redis", input.Template.ID)
	}

	return &PutTemplateOutput{Success: true}, nil
}

// DeleteTemplate removes a template
func (r *redisRepository) DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error) {
	if input == nil || input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	deleted, err := r.client.Del(ctx, templateKey(input.TemplateID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete template %q from Redis", input.TemplateID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("monster template %q not found", input.TemplateID)
	}

	return &DeleteTemplateOutput{Success: true}, nil
}

func templateKey(id string) string {
	return fmt.Sprintf("%s%s", templateKeyPrefix, id)
}
