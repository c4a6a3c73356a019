package monsters

import (
	"context"
	"sync"

	"github.com/mudforge/battle-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Template
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*Template),
	}
}

// GetTemplate retrieves a template by ID
func (r *InMemoryRepository) GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error) {
	if input == nil || input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, exists := r.store[input.TemplateID]
	if !exists {
		return nil, errors.NotFoundf("monster template %q not found", input.TemplateID)
	}

	// Return a copy to prevent external modification
	cp := *tmpl
	return &GetTemplateOutput{Template: &cp}, nil
}

// PutTemplate stores a template, overwriting any existing one
func (r *InMemoryRepository) PutTemplate(ctx context.Context, input *PutTemplateInput) (*PutTemplateOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	if input.Template.ID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *input.Template
	r.store[cp.ID] = &cp

	return &PutTemplateOutput{Success: true}, nil
}

// DeleteTemplate removes a template
func (r *InMemoryRepository) DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error) {
	if input == nil || input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.TemplateID]; !exists {
		return nil, errors.NotFoundf("monster template %q not found", input.TemplateID)
	}

	delete(r.store, input.TemplateID)

	return &DeleteTemplateOutput{Success: true}, nil
}
