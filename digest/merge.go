package digest

import (
	"strings"

	"github.com/fwojciec/newsdigest"
)

// Merge combines groupings into ordered sections. Themes follow themeOrder,
// matched case-insensitively and renamed to their configured spelling;
// unknown themes follow in first-seen order and Misc is always last. Items
// keep batch order and duplicates are dropped, keeping the first occurrence
// across the whole digest. Empty sections are omitted.
func Merge(groupings []*newsdigest.Grouping, themeOrder []string) []newsdigest.Section {
	if len(themeOrder) == 0 {
		themeOrder = newsdigest.DefaultThemes
	}

	canonical := make(map[string]string)
	var known []string
	misc := newsdigest.MiscTheme
	for _, t := range themeOrder {
		key := foldLabel(t)
		if _, ok := canonical[key]; ok {
			continue
		}
		canonical[key] = t
		if key == foldLabel(newsdigest.MiscTheme) {
			misc = t
			continue
		}
		known = append(known, t)
	}
	canonical[foldLabel(newsdigest.MiscTheme)] = misc

	items := make(map[string][]newsdigest.Item)
	var unknown []string
	seen := make(map[string]bool)

	for _, g := range groupings {
		if g == nil {
			continue
		}
		for _, theme := range g.Themes {
			label := strings.TrimSpace(theme.Label)
			if label == "" {
				label = misc
			}
			name, ok := canonical[foldLabel(label)]
			if !ok {
				name = label
				canonical[foldLabel(label)] = name
				unknown = append(unknown, name)
			}
			for _, it := range theme.Items {
				it.Title = strings.TrimSpace(it.Title)
				it.URL = StripTracking(strings.TrimSpace(it.URL))
				it.Summary = strings.TrimSpace(it.Summary)
				key := itemKey(it)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				items[name] = append(items[name], it)
			}
		}
	}

	order := make([]string, 0, len(known)+len(unknown)+1)
	order = append(order, known...)
	order = append(order, unknown...)
	order = append(order, misc)

	var sections []newsdigest.Section
	for _, name := range order {
		if len(items[name]) == 0 {
			continue
		}
		sections = append(sections, newsdigest.Section{Theme: name, Items: items[name]})
	}
	return sections
}

func foldLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// itemKey identifies an item for deduplication: its normalized URL, or its
// folded title when it has no URL. Items with neither have no key.
func itemKey(it newsdigest.Item) string {
	if it.URL != "" {
		return "url:" + NormalizeURL(it.URL)
	}
	if t := foldLabel(it.Title); t != "" {
		return "title:" + t
	}
	return ""
}
