/*
Package api hosts the gRPC and HTTP plumbing shared by every rlvm process.

Each of the four rlvm services (controller, node, volumed, mountd) serves its
gRPC API on a unix socket. The package provides the server lifecycle, the
interceptor chain, and the optional health and metrics HTTP endpoint.

# Architecture

	┌──────────── unix socket ────────────┐
	│                                      │
	│   LoggingInterceptor                 │  metrics + structured log
	│          │                           │
	│   InjectInterceptor(InjectFunc)      │  request-scoped dependencies
	│          │                           │
	│   service handler                    │  csi.v1 / volumed / mountd
	│                                      │
	└──────────────────────────────────────┘

	HTTP (--metrics-addr): /health  /ready  /metrics

# Request-scoped dependencies

Handlers never hold long-lived connections to the privileged services.
Instead the InjectFunc given to NewServer runs before every request and
attaches what the handler needs to the context: the controller attaches a
volumed client, the node plugin attaches a mountd client, and volumed
attaches the resolved volume group. A failing InjectFunc rejects the request
before the handler runs.

# Usage

	srv := api.NewServer("/run/rlvm/volumed.sock", vs.InjectVolumeGroup)
	volumed.RegisterVolumeServiceServer(srv.GRPCServer(), vs)

	go func() {
		if err := srv.Start(); err != nil {
			log.Logger.Error().Err(err).Msg("gRPC server stopped")
		}
	}()
	defer srv.Stop()

Start removes a stale socket file left by a previous run before binding, and
Stop removes the socket after draining in-flight requests.

# Health

/health reports every registered component; /ready reports only the critical
ones set with metrics.SetCriticalComponents. When a ReadyFunc is given, /ready
calls it and records the result as the "authority" component, so an
orchestrator whose privileged service is unreachable reports not ready.
*/
package api
