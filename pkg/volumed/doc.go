/*
Package volumed implements the privileged volume-group authority.

volumed owns exactly one LVM volume group. It lists, creates, formats, looks
up and removes logical volumes in that group, and reports how much of the
group is still free to provision. The Controller plugin runs unprivileged and
reaches volumed over a unix socket; volumed is the only rlvm process that
changes LVM state on the host.

# Architecture

	┌───────────────────────────┐
	│    Controller (driver)    │  CSI CreateVolume / DeleteVolume /
	└─────────────┬─────────────┘  GetCapacity / ListVolumes
	              │ gRPC over /run/volumed/volumed.sock
	              ▼
	┌─────────────────────────────────────────────────────────────┐
	│                      api.Server                             │
	│  logging + metrics interceptors                             │
	│  InjectVolumeGroup: one vgs lookup per request              │
	└─────────────┬───────────────────────────────────────────────┘
	              │ ctx carries *lvm.VolumeGroup
	              ▼
	┌─────────────────────────────────────────────────────────────┐
	│                    volumed.Server                           │
	│  ListVolumes    GetFreeBytes    CreateVolume                │
	│  DeleteVolume   FormatVolume    GetVolume                   │
	└─────────────┬───────────────────────────────────────────────┘
	              │ VolumeManager / lvm.Formatter
	              ▼
	┌─────────────────────────────────────────────────────────────┐
	│            lvm.Manager / lvm.XFSFormatter                   │
	└─────────────────────────────────────────────────────────────┘

The volume group is looked up by an interceptor before any handler runs, so
every handler sees the group's current size and free space. A group that
vanished while volumed was running fails every request with Internal rather
than reaching a handler.

# Free Space

GetFreeBytes reports the group's unallocated bytes minus the configured
spare, never going below zero:

	bytes_free = max(0, vg_free - spare_bytes)

This is free space, not group size. Every existing logical volume reduces it,
and removing one gives its extents back. The response also carries the
group's extent size, because LVM allocates whole extents: a 600MiB+1 request
on 4MiB extents occupies 604MiB. The Controller uses the extent size to
compare an existing volume's allocated size with a repeated request for the
same name, and to reject requests whose rounded size exceeds the caller's
limit.

# Operations

	ListVolumes    every logical volume in the group
	GetFreeBytes   provisionable bytes and extent size
	CreateVolume   lvcreate --activate y with name, size and tags
	DeleteVolume   lvremove --force by name
	FormatVolume   mkfs.xfs -f on the volume's device path
	GetVolume      lookup by name or by UUID, exactly one of them

Request fields are parsed into pkg/resource types before anything runs on the
host. Names follow LVM's rules, tags are limited to LVM's tag charset and
length, and capacities must fit in an int64.

# Error Handling

Handlers translate lvm sentinel errors into gRPC codes:

	lvm.ErrNotFound        codes.NotFound
	lvm.ErrAlreadyExists   codes.AlreadyExists
	lvm.ErrInvalidCommand  codes.InvalidArgument
	anything else          codes.Internal

Malformed request fields are InvalidArgument and never reach LVM. A failed
mkfs.xfs is Internal. No handler retries; callers re-issue the idempotent
request instead.

# Configuration

Configuration is read from /etc/volumed/volumed.yaml and decoded strictly, so
unknown keys are an error:

	volume_group: vg0
	spare_bytes: 1073741824

At startup the command checks that the group exists and is larger than
spare_bytes. A group that cannot hold anything beyond the spare is a
configuration error, not an empty authority.

# Usage

	cfg, err := volumed.LoadConfig(volumed.DefaultConfigPath)
	if err != nil {
		return err
	}
	vs, err := volumed.NewServer(cfg, lvm.NewManager(nil), lvm.NewXFSFormatter(nil))
	if err != nil {
		return err
	}

	srv := api.NewServer(socketPath, vs.InjectVolumeGroup)
	volumedpb.RegisterVolumeServiceServer(srv.GRPCServer(), vs)

# Metrics

Server satisfies metrics.VolumeGroupSource through ProvisionableBytes and
LogicalVolumeCount. The collector samples both on an interval into
rlvm_provisionable_bytes and rlvm_logical_volumes_total.
*/
package volumed
