package number

import (
	"fmt"

	"github.com/corey/radix/internal/domain/base"
)

// Record is one result row handed to a renderer.
type Record struct {
	Title    string
	Subtitle string
	Arg      string
	Icon     string
	Valid    bool
}

// Convert renders p in every canonical base except the one it was parsed in.
func Convert(p Parsed) []Record {
	records := make([]Record, 0, len(base.Canonical))
	for _, spec := range base.Canonical {
		if spec == p.Base {
			continue
		}
		digits := mustFormat(p.Value, spec)
		records = append(records, Record{
			Title:    digits,
			Subtitle: spec.String(),
			Arg:      digits,
			Icon:     spec.Icon(),
			Valid:    true,
		})
	}
	return records
}

// mustFormat formats in a base Convert targets. Every canonical base
// formats, so an error here means base.Canonical gained a custom entry.
func mustFormat(v int64, spec base.Spec) string {
	digits, err := Format(v, spec)
	if err != nil {
		panic(fmt.Sprintf("number: conversion target %s must be canonical: %v", spec, err))
	}
	return digits
}

// ErrorRecord wraps err as a single non-actionable row.
func ErrorRecord(err error) Record {
	return MessageRecord(err.Error())
}

// MessageRecord is a non-actionable row carrying msg.
func MessageRecord(msg string) Record {
	return Record{Title: msg}
}
