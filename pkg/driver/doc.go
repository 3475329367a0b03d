/*
Package driver implements the CSI identity, controller and node services.

The controller and node services are unprivileged. They own no host state
and delegate every host mutation to an authority over a private gRPC
contract:

	CO ──csi.v1──▶ Controller ──volumed.VolumeService──▶ volumed ──▶ LVM
	CO ──csi.v1──▶ Node       ──mountd.MountService────▶ mountd  ──▶ mount(2)

The authority client is not a field of the services. It is attached to each
request context by an injection interceptor (see pkg/api), and handlers fetch
it with volumed.FromContext or mountd.FromContext. Authority errors are
returned to the CO unchanged.

# Naming

CSI volume names are arbitrary strings. Logical volumes are named by
SafeName, the first 32 hex characters of the name's SHA-256 digest, and carry
the requested name in a "name=" tag. The CSI volume ID is the LVM UUID.

# Topology

Volumes are host-local. Every volume and the node itself report a single
topology segment "host" set to the node ID.
*/
package driver
