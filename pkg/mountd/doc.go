/*
Package mountd implements the privileged mount authority.

The Node plugin runs unprivileged and asks mountd, over a unix socket, to
resolve volume UUIDs to device nodes and to mount or unmount paths. Every path
is checked against a Policy first. An absolute, existing path passes when it
matches a whitelist glob or is owned by the configured user and group.
Read-only mounts additionally require the destination to carry no write bits.

The policy resolves symlinks and ".." elements before any check, and the
server only ever acts on the resolved path. A request cannot reach outside
the whitelist through a link or a parent reference. Globs therefore name real
locations: logical volume device links such as /dev/vg0/lv resolve
to /dev/dm-N, so a device whitelist entry reads /dev/dm-*.

Mounts always get nodev and nosuid. Device mounts use xfs; bind mounts take
no filesystem type. After a successful mount the destination is chowned to
the policy owner. Mounting an already-mounted destination and unmounting a
path that is not mounted, or no longer exists, all succeed without touching
the host.

Configuration is read from /etc/mountd/mountd.yaml:

	for_user: kubelet
	for_group: kubelet
	whitelist:
	  - /var/lib/kubelet/plugins/**
	  - /dev/dm-*
*/
package mountd
