package services

import (
	"context"
	"strings"

	"news-cms/models"
	"news-cms/repositories"
)

// normalizeTagNames trims, drops blanks and removes repeats, keeping order.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// resolveTags maps every name to an existing tag or fails as a whole.
func resolveTags(ctx context.Context, tagRepo repositories.TagRepository, names []string) ([]models.Tag, error) {
	names = normalizeTagNames(names)
	if len(names) == 0 {
		return []models.Tag{}, nil
	}

	tags, err := tagRepo.GetByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(names) {
		return nil, models.NewBadRequest(models.MsgTagsNotFound)
	}
	return tags, nil
}
