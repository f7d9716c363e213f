package validate

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// maxExamplesPerKind bounds how many violations of each kind are shown
// in the console summary. The report file always carries all of them.
const maxExamplesPerKind = 5

// WriteReport writes the full grouped-by-kind violation inventory to
// path. No file is written for a valid result.
func WriteReport(path string, r Result) error {
	if r.Valid {
		return nil
	}

	var b strings.Builder
	b.WriteString("VALIDATION ERROR REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString(fmt.Sprintf("Generated on: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Total errors found: %d\n", len(r.Violations)))

	order, groups := r.ByKind()
	for _, kind := range order {
		violations := groups[kind]
		b.WriteString(fmt.Sprintf("\n%s (%d errors):\n", kind, len(violations)))
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, v := range violations {
			b.WriteString(v.String() + "\n")
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// Summarize logs per-kind counts with the first few examples of each.
func Summarize(log zerolog.Logger, r Result) {
	if r.Valid {
		log.Info().Msg("dataset validation passed")
		return
	}

	log.Error().Int("violations", len(r.Violations)).Msg("dataset validation failed")
	order, groups := r.ByKind()
	for _, kind := range order {
		violations := groups[kind]
		log.Error().Str("kind", kind).Int("count", len(violations)).Msg("violation category")
		for i, v := range violations {
			if i >= maxExamplesPerKind {
				log.Error().Str("kind", kind).Msgf("... and %d more", len(violations)-maxExamplesPerKind)
				break
			}
			log.Error().Msg(v.String())
		}
	}
}
