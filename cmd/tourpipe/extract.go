package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tourfame/tourpipe"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	// Ad-hoc extraction still needs a job scope for stored OCR images.
	jobID := "adhoc-" + uuid.New().String()

	text, err := deps.Texts.Extract(deps.Ctx, c.URL, jobID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpipe.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "method=%s chars=%d\n", text.Method, len(text.Content))
	fmt.Fprintln(deps.Stdout, text.Content)

	return nil
}
