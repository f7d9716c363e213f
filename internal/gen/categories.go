package gen

import (
	"github.com/toolshop/seedgen/internal/ident"
	"github.com/toolshop/seedgen/pkg/types"
)

// Categories generates a category tree in three phases: taxonomy roots
// first (no parent), then their subcategories, then synthesized leaf
// variants. Each phase only references parents created by an earlier
// step, so every non-root row has a valid, already-emitted parent.
func Categories(src *Source, count int) []types.Category {
	categories := make([]types.Category, 0, count)
	slugs := ident.NewSlugSet()
	usedNames := make(map[string]struct{}, count)
	stamp := src.refStamp()

	type node struct{ id, name string }
	var roots, all []node

	add := func(name, parentID string) {
		c := types.Category{
			ID:        src.NewID(),
			Name:      name,
			Slug:      slugs.Unique(name),
			ParentID:  parentID,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		}
		categories = append(categories, c)
		usedNames[name] = struct{}{}
		all = append(all, node{c.ID, name})
		if parentID == "" {
			roots = append(roots, node{c.ID, name})
		}
	}

	// Phase 1: one root per taxonomy entry.
	for _, root := range Taxonomy {
		if len(categories) >= count {
			break
		}
		add(root.Name, "")
	}

	// Phase 2: subcategories under their just-created roots.
	for i, root := range Taxonomy {
		if i >= len(roots) || len(categories) >= count {
			break
		}
		for _, sub := range root.Subcategories {
			if len(categories) >= count {
				break
			}
			add(sub, roots[i].id)
		}
	}

	// Phase 3: leaf variants recombining an existing category name with
	// a modifier word, attached to that category. Attempts are bounded;
	// the name space can run out before count for large requests.
	attempts := 0
	maxAttempts := (count - len(categories)) * 6
	for len(categories) < count && attempts < maxAttempts {
		attempts++
		parent := Pick(src, all)
		modifier := Pick(src, Pick(src, modifierPools))
		name := modifier + " " + parent.name
		if _, exists := usedNames[name]; exists {
			continue
		}
		add(name, parent.id)
	}

	return categories
}
