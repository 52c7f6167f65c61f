package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"export-manager-api/internal/cache"
	"export-manager-api/internal/domain"
	"export-manager-api/internal/response"
)

// MetadataCatalog is the unrestricted read capability over the model/field
// catalog used by path derivation. Catalog metadata must always be readable
// to configure exports, so this capability is injected independently of any
// caller-level access rules. MetadataRepository satisfies it.
type MetadataCatalog interface {
	FindModelByName(ctx context.Context, modelName string) (*domain.ModelMeta, error)
	FindFieldByID(ctx context.Context, id uuid.UUID) (*domain.FieldMeta, error)
	FindFieldByModelAndName(ctx context.Context, modelID uuid.UUID, name string) (*domain.FieldMeta, error)
}

// FieldChain is the resolved state of one export line: up to four field
// descriptors and the model each level resolves against. Models[0] is the
// export's target model; Models[k] is derived from Fields[k-1]'s relation
// target and stays nil when that field is not relational.
type FieldChain struct {
	Fields [domain.MaxPathDepth]*domain.FieldMeta
	Models [domain.MaxPathDepth]*domain.ModelMeta
}

// Depth returns the number of consecutive set fields starting at level 1
func (c *FieldChain) Depth() int {
	for i, f := range c.Fields {
		if f == nil {
			return i
		}
	}
	return domain.MaxPathDepth
}

// Path returns the dotted path of the chain: technical field names joined
// by "/", stopping at the first unset field
func (c *FieldChain) Path() string {
	names := make([]string, 0, domain.MaxPathDepth)
	for _, f := range c.Fields {
		if f == nil {
			break
		}
		names = append(names, f.Name)
	}
	return strings.Join(names, "/")
}

// PathSynchronizer maintains the equivalence between an export line's
// dotted path name and its four discrete field selectors
type PathSynchronizer interface {
	// SyncFromSelectors derives name, dependent models and label from the
	// line's field selectors (forward direction)
	SyncFromSelectors(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*FieldChain, error)
	// SyncFromName derives the field selectors from the line's dotted path
	// (inverse direction), then recomputes name and label
	SyncFromName(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*FieldChain, error)
	// DeriveLabel computes the localized label for an already-resolved chain
	DeriveLabel(ctx context.Context, chain *FieldChain, name, lang string) (string, error)
}

// pathSynchronizerImpl is the implementation of PathSynchronizer
type pathSynchronizerImpl struct {
	catalog MetadataCatalog
	labels  *cache.LabelCache
}

// NewPathSynchronizer creates a new PathSynchronizer. The label cache is
// optional; a nil cache disables caching.
func NewPathSynchronizer(catalog MetadataCatalog, labels *cache.LabelCache) PathSynchronizer {
	return &pathSynchronizerImpl{
		catalog: catalog,
		labels:  labels,
	}
}

// SyncFromSelectors derives name, dependent models and label from the field
// selectors. Selectors after the first unset level are cleared. Each set
// field must belong to the model its level resolves against.
func (s *pathSynchronizerImpl) SyncFromSelectors(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*FieldChain, error) {
	chain := &FieldChain{}
	chain.Models[0] = root

	for num := 1; num <= domain.MaxPathDepth; num++ {
		fieldID := line.FieldIDAt(num)
		if fieldID == nil {
			// The path stops here; later selectors are stale leftovers
			for rest := num; rest <= domain.MaxPathDepth; rest++ {
				line.SetFieldIDAt(rest, nil)
			}
			break
		}

		field, err := s.catalog.FindFieldByID(ctx, *fieldID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// A stale picker value, not a server fault
				return nil, response.NewValidationError(
					fmt.Sprintf("Field selector %d references an unknown field", num), "")
			}
			return nil, fmt.Errorf("failed to load field selector %d: %w", num, err)
		}

		model := chain.Models[num-1]
		if model == nil || field.ModelID != model.ID {
			return nil, response.NewValidationError(
				fmt.Sprintf("Field '%s' not found in model '%s'", field.Name, modelName(model)), "")
		}
		chain.Fields[num-1] = field

		if num < domain.MaxPathDepth {
			next, err := s.dependentModel(ctx, field)
			if err != nil {
				return nil, err
			}
			chain.Models[num] = next
		}
	}

	name := chain.Path()
	if name != line.Name {
		line.Name = name
	}

	label, err := s.DeriveLabel(ctx, chain, line.Name, lang)
	if err != nil {
		return nil, err
	}
	line.Label = label

	return chain, nil
}

// SyncFromName resolves the dotted path into field selectors. All four
// selector slots are staged without validation; callers run the full
// validation once after the chain is complete.
func (s *pathSynchronizerImpl) SyncFromName(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*FieldChain, error) {
	parts := splitPath(line.Name)
	if len(parts) > domain.MaxPathDepth {
		return nil, response.NewDepthExceededError(
			fmt.Sprintf("It's not allowed to have more than %d levels depth: %s", domain.MaxPathDepth, line.Name), "")
	}

	chain := &FieldChain{}
	chain.Models[0] = root

	for num := 1; num <= domain.MaxPathDepth; num++ {
		if len(parts) == 0 || num > len(parts) {
			line.SetFieldIDAt(num, nil)
			continue
		}

		field, err := s.resolveField(ctx, chain.Models[num-1], parts[num-1])
		if err != nil {
			return nil, err
		}
		chain.Fields[num-1] = field
		fieldID := field.ID
		line.SetFieldIDAt(num, &fieldID)

		if num < domain.MaxPathDepth {
			next, err := s.dependentModel(ctx, field)
			if err != nil {
				return nil, err
			}
			chain.Models[num] = next
		}
	}

	// Re-derive the stored path so aliases like ".id" normalize
	if name := chain.Path(); name != line.Name {
		line.Name = name
	}

	label, err := s.DeriveLabel(ctx, chain, line.Name, lang)
	if err != nil {
		return nil, err
	}
	line.Label = label

	return chain, nil
}

// DeriveLabel composes the human-readable label from the localized field
// descriptions: "Desc1/Desc2 (technical/path)". A field without a
// retrievable description empties the label, which later fails validation.
func (s *pathSynchronizerImpl) DeriveLabel(ctx context.Context, chain *FieldChain, name, lang string) (string, error) {
	if name == "" || chain.Depth() == 0 {
		return "", nil
	}

	if s.labels != nil {
		if cached, ok := s.labels.Get(ctx, modelName(chain.Models[0]), name, lang); ok {
			return cached, nil
		}
	}

	parts := make([]string, 0, domain.MaxPathDepth)
	for _, field := range chain.Fields {
		if field == nil {
			break
		}
		desc := field.DescriptionIn(lang)
		if desc == "" {
			// No human-readable string available, so empty the label
			return "", nil
		}
		parts = append(parts, desc)
	}

	label := fmt.Sprintf("%s (%s)", strings.Join(parts, "/"), name)

	if s.labels != nil {
		s.labels.Set(ctx, modelName(chain.Models[0]), name, lang, label)
	}

	return label, nil
}

// dependentModel resolves the model a relational field points at. A field
// that is not relational, or whose target is not in the catalog, yields nil.
func (s *pathSynchronizerImpl) dependentModel(ctx context.Context, field *domain.FieldMeta) (*domain.ModelMeta, error) {
	if field == nil || !field.Relational() {
		return nil, nil
	}
	model, err := s.catalog.FindModelByName(ctx, field.RelationTarget)
	if err != nil {
		return nil, fmt.Errorf("failed to look up relation target %q: %w", field.RelationTarget, err)
	}
	return model, nil
}

// resolveField looks up one path segment on the given model. The literal
// segment ".id" is an alias for "id".
func (s *pathSynchronizerImpl) resolveField(ctx context.Context, model *domain.ModelMeta, fieldName string) (*domain.FieldMeta, error) {
	if fieldName == ".id" {
		fieldName = "id"
	}

	if model == nil {
		return nil, response.NewValidationError(
			fmt.Sprintf("Field '%s' not found in model '%s'", fieldName, ""), "")
	}

	field, err := s.catalog.FindFieldByModelAndName(ctx, model.ID, fieldName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up field %q on model %q: %w", fieldName, model.Model, err)
	}
	if field == nil {
		return nil, response.NewValidationError(
			fmt.Sprintf("Field '%s' not found in model '%s'", fieldName, model.Model), "")
	}
	return field, nil
}

// splitPath splits a dotted path into its segments; an empty path has no
// segments
func splitPath(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, "/")
}

// modelName returns the technical name of a possibly-nil model
func modelName(model *domain.ModelMeta) string {
	if model == nil {
		return ""
	}
	return model.Model
}
