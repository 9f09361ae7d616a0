// Package display formats structured command output.
package display

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/stencil/errors"
)

// ShouldOutputJSON reports whether --json was set on the command.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil || cmd.Flags().Lookup("json") == nil {
		return false
	}
	jsonFlag, _ := cmd.Flags().GetBool("json")
	return jsonFlag
}

// MarshalJSON marshals v with two-space indentation.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal JSON")
	}
	return data, nil
}

// WriteJSON writes v to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
