// Package monsters stores the monster templates battles are built from.
package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersmock github.com/mudforge/battle-api/internal/repositories/monsters Repository

import "context"

// Template is the stored definition a live monster instance is spawned
// from. Instances copy it; the template itself is never mutated by a
// battle.
type Template struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HitPoints int    `json:"hit_points"`
	// Wound is dice notation ("1d6") for the damage one player hit
	// inflicts on instances of this template.
	Wound string `json:"wound"`
}

// Repository defines the storage interface for monster templates
type Repository interface {
	// GetTemplate retrieves a template by ID
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error)

	// PutTemplate stores a template, overwriting any existing one
	PutTemplate(ctx context.Context, input *PutTemplateInput) (*PutTemplateOutput, error)

	// DeleteTemplate removes a template
	DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error)
}

// GetTemplateInput defines the request for retrieving a template
type GetTemplateInput struct {
	TemplateID string
}

// GetTemplateOutput defines the response for retrieving a template
type GetTemplateOutput struct {
	Template *Template
}

// PutTemplateInput defines the request for storing a template
type PutTemplateInput struct {
	Template *Template
}

// PutTemplateOutput defines the response for storing a template
type PutTemplateOutput struct {
	Success bool
}

// DeleteTemplateInput defines the request for deleting a template
type DeleteTemplateInput struct {
	TemplateID string
}

// DeleteTemplateOutput defines the response for deleting a template
type DeleteTemplateOutput struct {
	Success bool
}
