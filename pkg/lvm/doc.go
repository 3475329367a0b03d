/*
Package lvm wraps the lvm2 command line tools and mkfs.xfs.

Everything rlvm knows about volume groups and logical volumes comes from this
package. It runs vgs, lvs, lvcreate and lvremove on the host, parses their
JSON reports and turns failing commands into sentinel errors the gRPC layers
above can map onto status codes. Only volumed uses it to change the host;
mountd uses it read-only to resolve volume UUIDs to device nodes.

# Architecture

	┌─────────────────────────────────────────────────────────────┐
	│                 volumed / mountd handlers                   │
	└──────────────┬───────────────────────────────┬──────────────┘
	               │                               │
	               ▼                               ▼
	┌──────────────────────────────┐  ┌───────────────────────────┐
	│           Manager            │  │       XFSFormatter        │
	│  • VolumeGroup               │  │  • Format (mkfs.xfs -f)   │
	│  • LogicalVolumes            │  └─────────────┬─────────────┘
	│  • LogicalVolumeByName/UUID  │                │
	│  • Create/RemoveLogicalVolume│                │
	└──────────────┬───────────────┘                │
	               │                                │
	               ▼                                ▼
	┌─────────────────────────────────────────────────────────────┐
	│                          Runner                             │
	│  ExecRunner: os/exec, stderr captured into *CommandError    │
	│  MockRunner: testify mock for unit tests                    │
	└─────────────────────────────────────────────────────────────┘

Manager never shells out directly. Every command goes through a Runner, which
keeps the parsing and classification logic testable without root or a real
volume group. The lvmtest subpackage goes one step further and provides an
in-memory Manager for packages that sit on top of this one.

# Reports

Reports are always requested in bytes, without suffixes and as JSON:

	vgs --reportformat json --units b --nosuffix \
	    --options vg_name,vg_uuid,vg_size,vg_free,vg_extent_size vg0

	lvs --reportformat json --units b --nosuffix \
	    --options lv_uuid,lv_name,vg_name,lv_path,lv_size,lv_tags \
	    --select lv_name=9f86d081884c7d659a2feaa0c55ad015 vg0

Sizes are parsed into uint64. Tags come back comma separated and are split
into a slice. When lvs reports no lv_path, as it does for inactive volumes,
the path falls back to /dev/<vg>/<lv>.

LogicalVolumeByUUID accepts an empty volume group name. The lookup then spans
every group on the host, which is how mountd resolves a UUID without knowing
which group volumed manages.

# Creating Volumes

CreateLogicalVolume always activates the new volume and answers lvcreate's
prompts with --yes, so a stale filesystem signature never blocks creation:

	lv, err := manager.CreateLogicalVolume(ctx, "vg0", lvm.CreateOptions{
		Name:     "9f86d081884c7d659a2feaa0c55ad015",
		Capacity: capacity,
		Tags:     []resource.Tag{tag},
	})
	if err != nil {
		return err
	}
	fmt.Println(lv.Path, lv.SizeBytes)

LVM rounds the requested size up to a whole number of extents. The returned
LogicalVolume carries the size LVM actually allocated, which callers compare
against later requests for the same name.

Names, capacities and tags are the validated types from pkg/resource, so a
command line built here never carries characters lvm2 would reject.

# Formatting

XFSFormatter runs mkfs.xfs with -f on a device path. The force flag lets a
recycled extent range be formatted even when it still carries an old
signature. A failed run reports both stdout and stderr from the tool.

# Error Handling

Non-zero exits surface as *CommandError with the tool's exit code and stderr.
classify wraps them with a sentinel:

	ErrInvalidCommand  exit status 3 (EINVALID_CMD_LINE)
	ErrAlreadyExists   stderr mentions "already exists"
	ErrNotFound        stderr mentions "not found" or "failed to find"

An empty report for a single-object lookup is also ErrNotFound. Callers test
with errors.Is; the original *CommandError stays reachable through errors.As:

	_, err := manager.LogicalVolumeByName(ctx, vg, name)
	switch {
	case errors.Is(err, lvm.ErrNotFound):
		// create it
	case err != nil:
		return err
	}

# Metrics

ExecRunner records every command in rlvm_host_commands_total, labelled by
binary and result, and times it in rlvm_host_command_duration_seconds.
Commands are logged at debug level with their full argument list.

# Testing

Unit tests script a MockRunner with the exact argument list and canned JSON:

	runner := &lvm.MockRunner{}
	runner.On("Run", mock.Anything, "vgs", mock.Anything).
		Return([]byte(vgsJSON), nil)
	manager := lvm.NewManager(runner)

Packages above lvm use lvmtest.NewManager instead, which keeps volumes in
memory and rounds allocations to extents the way LVM does.
*/
package lvm
