// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/palette/internal/color"
)

// WriteResult prints the value a command returned. Nothing is printed for nil.
// An error result is returned rather than printed.
func WriteResult(w io.Writer, res any) error {
	switch v := res.(type) {
	case nil:
		return nil
	case error:
		return v
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case []string:
		for _, s := range v {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}

		return nil
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}

	// colorjson only understands the types encoding/json decodes into.
	var generic any

	raw, err := json.Marshal(res)
	if err == nil {
		err = json.Unmarshal(raw, &generic)
	}

	if err != nil {
		_, err = fmt.Fprintf(w, "%v\n", res)
		return err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !color.Enabled()

	b, err := f.Marshal(generic)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", b)

	return err
}
