package gen

import "github.com/toolshop/seedgen/pkg/types"

// Favorites generates up to count user-product favorites with unique
// (user, product) pairs. Attempts are bounded, so fewer rows than
// requested can result when the pair space is nearly exhausted.
func Favorites(src *Source, count int, users []types.User, products []types.Product) []types.Favorite {
	favorites := make([]types.Favorite, 0, count)
	used := make(map[[2]string]struct{}, count)
	stamp := src.refStamp()

	for attempts := 0; len(favorites) < count && attempts < count*3; attempts++ {
		user := Pick(src, users)
		product := Pick(src, products)
		pair := [2]string{user.ID, product.ID}
		if _, taken := used[pair]; taken {
			continue
		}
		used[pair] = struct{}{}

		favorites = append(favorites, types.Favorite{
			ID:        src.NewID(),
			UserID:    user.ID,
			ProductID: product.ID,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		})
	}
	return favorites
}
