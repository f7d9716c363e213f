package gen

import (
	"strings"

	"github.com/toolshop/seedgen/internal/ident"
	"github.com/toolshop/seedgen/pkg/types"
)

// Brands generates count brands: the real manufacturer list first, then
// fictional "<Company> Tools" names beyond it.
func Brands(src *Source, count int) []types.Brand {
	brands := make([]types.Brand, 0, count)
	slugs := ident.NewSlugSet()
	stamp := src.refStamp()

	for i := 0; i < count; i++ {
		var name string
		if i < len(ToolBrands) {
			name = ToolBrands[i]
		} else {
			company := strings.NewReplacer(",", "", ".", "").Replace(src.f.Company())
			name = company + " Tools"
		}

		brands = append(brands, types.Brand{
			ID:        src.NewID(),
			Name:      name,
			Slug:      slugs.Unique(name),
			CreatedAt: stamp,
			UpdatedAt: stamp,
		})
	}
	return brands
}
