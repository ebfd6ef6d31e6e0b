package main

import (
	"fmt"

	"github.com/tourfame/tourpipe"
)

// Run executes the jobs command.
func (c *JobsCmd) Run(deps *Dependencies) error {
	filter := tourpipe.JobFilter{Limit: c.Limit}
	if c.Status != "" {
		status := tourpipe.JobStatus(c.Status)
		filter.Status = &status
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpipe.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs found. Use 'tourpipe run' to start one.")
		return nil
	}

	for _, j := range jobs {
		line := fmt.Sprintf("%s  %-9s  %dd/%dr  %s",
			j.ID, j.Status, j.Documents, j.Records, j.ListingURL)
		if j.Error != "" {
			line += "  (" + j.Error + ")"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
