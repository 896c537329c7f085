// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package supervisor runs Wayfarer's long-lived services under a suture v4
supervisor tree.

The tree has two layers so a crashing background task cannot take the HTTP
server down with it:

	RootSupervisor ("wayfarer")
	├── DataSupervisor ("data-layer")
	│   └── CacheSweeperService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service start, failure, restart backoff) are logged
through sutureslog with the slog adapter from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCacheSweeperService(resolver.Cache(), cfg.Geocoding.CacheSweepInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	err = tree.Serve(ctx) // returns once ctx is canceled and every service stopped
*/
package supervisor
