package gen

import (
	"fmt"
	"strings"

	"github.com/toolshop/seedgen/pkg/types"
)

// ProductImages generates count stock-photo records. When categories
// are available their names seed the filenames and titles; otherwise a
// random taxonomy subcategory is used.
func ProductImages(src *Source, count int, categories []types.Category) []types.ProductImage {
	images := make([]types.ProductImage, 0, count)
	stamp := src.refStamp()

	for i := 0; i < count; i++ {
		var context string
		if len(categories) > 0 {
			context = Pick(src, categories).Name
		} else {
			context = Pick(src, Pick(src, Taxonomy).Subcategories)
		}

		photographer := Pick(src, photographers)
		source := Pick(src, photoSources)
		filename := src.imageFilename(context)

		images = append(images, types.ProductImage{
			ID:         src.NewID(),
			ByName:     photographer,
			ByURL:      photographerURL(photographer, source),
			SourceName: source,
			SourceURL:  src.photoURL(source, filename),
			FileName:   filename,
			Title:      context + " - Professional Tool Photography",
			CreatedAt:  stamp,
			UpdatedAt:  stamp,
		})
	}
	return images
}

// imageFilename derives a filename-safe name plus a variant and
// extension, e.g. "hand_saws_detail.jpg".
func (s *Source) imageFilename(name string) string {
	base := strings.ToLower(name)
	base = strings.NewReplacer(" ", "_", "-", "_").Replace(base)
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String() + "_" + Pick(s, imageVariants) + Pick(s, imageExtensions)
}

// photoURL builds a plausible stock-photo URL for the source site.
func (s *Source) photoURL(source, filename string) string {
	domain, ok := photoSourceDomains[source]
	if !ok {
		domain = "example.com"
	}
	return fmt.Sprintf("https://images.%s/photos/%d/%s", domain, s.Between(100000, 9999999), filename)
}

// photographerURL builds a profile URL for attribution.
func photographerURL(photographer, source string) string {
	domain, ok := photoSourceDomains[source]
	if !ok {
		domain = "example.com"
	}
	username := strings.ReplaceAll(strings.ToLower(photographer), " ", "")
	return fmt.Sprintf("https://%s/@%s", domain, username)
}
