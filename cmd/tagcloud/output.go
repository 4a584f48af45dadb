package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// printJSON writes v to out as indented JSON followed by a newline.
func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
