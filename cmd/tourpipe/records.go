package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tourfame/tourpipe"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.FindRecordsByJob(deps.Ctx, c.JobID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpipe.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found for this job.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.ID, r.Title)
		if r.Days > 0 || r.Nights > 0 {
			fmt.Fprintf(deps.Stdout, "    %d days / %d nights\n", r.Days, r.Nights)
		}
		if r.Price > 0 {
			fmt.Fprintf(deps.Stdout, "    %.2f %s\n", r.Price, r.Currency)
		}
		if len(r.Destinations) > 0 {
			fmt.Fprintf(deps.Stdout, "    %s\n", strings.Join(r.Destinations, ", "))
		}
		if r.Whatsapp != "" || r.Phone != "" {
			fmt.Fprintf(deps.Stdout, "    whatsapp=%s phone=%s\n", r.Whatsapp, r.Phone)
		}
	}

	return nil
}
