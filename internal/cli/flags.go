package cli

import (
	"fmt"
	"sort"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/spf13/pflag"
)

// addCategoryFlag registers a --category flag listing the accepted values.
func addCategoryFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVar(target, "category", string(domain.CategoryHealth),
		fmt.Sprintf("Habit category (%s)", joinCategories()))
}

// addLevelFlag registers a --level flag listing the accepted values.
func addLevelFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVar(target, "level", "",
		fmt.Sprintf("Stress level (%s)", joinLevels()))
}

func joinCategories() string {
	names := make([]string, 0, len(domain.ValidCategories))
	for c := range domain.ValidCategories {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return joinPipe(names)
}

func joinLevels() string {
	// Keep scale order rather than alphabetical.
	return joinPipe([]string{
		string(domain.StressVeryLow), string(domain.StressLow), string(domain.StressModerate),
		string(domain.StressHigh), string(domain.StressVeryHigh),
	})
}

func joinPipe(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "|"
		}
		out += p
	}
	return out
}
