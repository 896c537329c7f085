// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package importer turns batches of photos into stored location records.

Each import runs in two phases:

 1. Prepare: every photo is opened, its EXIF GPS position and capture date
    are read, and the position is resolved to a place. This phase fans out
    across a bounded number of goroutines.
 2. Upsert: prepared photos are upserted one at a time, in input order,
    against a snapshot of the stored records taken when the import began.

Photos without GPS, with unreadable metadata, or with a capture date outside
the requested range are reported in the summary as skipped rather than
failing the import.

Only one import runs at a time. A second call while one is running returns
ErrImportInProgress.

Usage:

	svc := importer.NewService(db, resolver, importer.Config{Workers: 4})
	summary, err := svc.ImportFiles(ctx, []importer.Source{importer.FileSource(path)}, importer.Options{})
*/
package importer
