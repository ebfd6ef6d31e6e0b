package main

import (
	"fmt"
	"regexp"

	"github.com/tourfame/tourpipe"
)

// tourURLRe matches sitemap URLs that look like tour detail pages.
var tourURLRe = regexp.MustCompile(`(?i)/(tur|tour|tours|turlar|itinerary|package)`)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	result, err := deps.Discoverer.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpipe.ErrorMessage(err))
		return err
	}

	if len(result.Links) == 0 {
		fmt.Fprintln(deps.Stdout, "No document links found.")
	}
	for _, link := range result.Links {
		id := link.TourID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", link.Source, id, link.URL)
	}

	if !c.Sitemap {
		return nil
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, &tourpipe.URLFilter{
		Include: []*regexp.Regexp{tourURLRe},
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpipe.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\n%d sitemap URLs:\n", len(urls))
	for _, u := range urls {
		fmt.Fprintf(deps.Stdout, "%s\n", u)
	}

	return nil
}
