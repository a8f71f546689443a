package main

import (
	"fmt"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/goquery"
)

// Run executes the check command. The configuration has already been
// loaded and validated; this additionally compiles every CSS selector.
func (c *CheckCmd) Run(deps *Dependencies) error {
	invalid := 0
	for _, s := range deps.Config.Sources {
		selectors := append([]string{s.Selector}, s.IgnoreSelectors...)
		if l, ok := s.Locator.(newsdigest.TwoStepLocator); ok {
			selectors = append(selectors, l.LinkSelector)
		}
		if err := goquery.CheckSelectors(selectors...); err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", s.Name, err)
			invalid++
		}
	}
	if invalid > 0 {
		return newsdigest.Errorf(newsdigest.ECONFIG, "%d sources have invalid selectors", invalid)
	}

	enabled := 0
	for _, s := range deps.Config.Sources {
		if s.Enabled {
			enabled++
		}
	}
	fmt.Fprintf(deps.Stdout, "Configuration OK: %d sources (%d enabled), provider %s\n",
		len(deps.Config.Sources), enabled, deps.Config.AI.Provider)
	return nil
}
