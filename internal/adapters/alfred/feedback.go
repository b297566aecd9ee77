// Package alfred encodes result records as Alfred Script Filter JSON:
//
//	{"items":[{"title":"377","subtitle":"Octal","arg":"377","valid":true,"icon":{"path":"icons/Octal.png"}}]}
package alfred

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/corey/radix/internal/domain/number"
)

// Feedback is the top-level Script Filter document.
type Feedback struct {
	Items []Item `json:"items"`
}

// Item is one Script Filter row. Valid is always written because Alfred
// treats a missing valid as true.
type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Valid    bool   `json:"valid"`
	Icon     *Icon  `json:"icon,omitempty"`
}

// Icon points at an image inside the workflow bundle.
type Icon struct {
	Path string `json:"path"`
}

// FromRecords maps records to items in order.
func FromRecords(records []number.Record) Feedback {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		item := Item{
			Title:    r.Title,
			Subtitle: r.Subtitle,
			Arg:      r.Arg,
			Valid:    r.Valid,
		}
		if r.Icon != "" {
			item.Icon = &Icon{Path: r.Icon}
		}
		items = append(items, item)
	}
	return Feedback{Items: items}
}

// Write encodes records to w as a single JSON document.
func Write(w io.Writer, records []number.Record) error {
	if err := json.NewEncoder(w).Encode(FromRecords(records)); err != nil {
		return fmt.Errorf("encode alfred feedback: %w", err)
	}
	return nil
}
