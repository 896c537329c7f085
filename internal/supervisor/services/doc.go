// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package services provides suture.Service wrappers for Wayfarer components.

Each wrapper translates a component's own lifecycle into suture's
context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService wraps *http.Server. ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded timeout.

CacheSweeperService periodically evicts expired entries from the location
cache and publishes the swept count and current size as Prometheus metrics.

Both implement fmt.Stringer so supervisor events name the service.
*/
package services
