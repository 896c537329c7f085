// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateRange is an optional inclusive capture-date window. Embed it in
// request structs to get the from <= to check.
type DateRange struct {
	From *time.Time `json:"from,omitempty" query:"from"`
	To   *time.Time `json:"to,omitempty" query:"to"`
}

func validateDateRange(sl validator.StructLevel) {
	dr, ok := sl.Current().Interface().(DateRange)
	if !ok || dr.From == nil || dr.To == nil {
		return
	}
	if dr.From.After(*dr.To) {
		sl.ReportError(dr.From, "From", "from", "daterange", "")
	}
}
