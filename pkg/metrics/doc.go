/*
Package metrics provides Prometheus metrics and process health tracking for the
rlvm services.

All collectors are registered with the default Prometheus registry at package
init and exposed through Handler. Every service records:

  - rlvm_rpc_requests_total{service,method,code} and
    rlvm_rpc_request_duration_seconds{service,method}, recorded by the gRPC
    interceptor in pkg/api.
  - rlvm_host_commands_total{command,result} and
    rlvm_host_command_duration_seconds{command}, recorded around every lvm
    and mkfs invocation.
  - rlvm_mount_operations_total{op,result}, recorded by mountd. A mount that
    is already present is counted with result "noop".

volumed additionally runs a Collector which samples the managed volume group
into rlvm_provisionable_bytes and rlvm_logical_volumes_total.

# Health

Components report their state with UpdateComponent. GetHealth aggregates all
components; GetReadiness only considers the critical set configured with
SetCriticalComponents, which defaults to the gRPC listener:

	metrics.SetCriticalComponents(metrics.ComponentGRPC, metrics.ComponentAuthority)
	metrics.UpdateComponent(metrics.ComponentGRPC, true, "")

# Timing

	timer := metrics.NewTimer()
	out, err := cmd.Output()
	timer.ObserveDurationVec(metrics.CommandDuration, "lvcreate")
*/
package metrics
