// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkstat

import (
	"encoding/json"
	"io"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
)

// WriteJSON writes results as an indented JSON array. Unlike the CSV
// report, every present field is included, as well as the report text.
func WriteJSON(w io.Writer, results []*wrkfmt.Result) error {
	if results == nil {
		results = []*wrkfmt.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
