package mountd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/moby/sys/mount"
	"github.com/moby/sys/mountinfo"

	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/resource"
)

// Mounter performs mount syscalls. options uses the fstab syntax, e.g.
// "bind,ro,nodev,nosuid".
type Mounter interface {
	Mount(source, target, fstype, options string) error
	Unmount(target string) error
}

// MountTable answers whether a path is currently a mountpoint.
type MountTable interface {
	IsMounted(path string) (bool, error)
}

// BlockResolver maps a logical volume UUID to its device node.
type BlockResolver interface {
	BlockPath(ctx context.Context, uuid resource.UUID) (string, error)
}

// HostMounter mounts through github.com/moby/sys/mount.
type HostMounter struct{}

func (HostMounter) Mount(source, target, fstype, options string) error {
	return mount.Mount(source, target, fstype, options)
}

func (HostMounter) Unmount(target string) error {
	return mount.Unmount(target)
}

// HostMountTable reads /proc/self/mountinfo.
type HostMountTable struct{}

func (HostMountTable) IsMounted(path string) (bool, error) {
	mounts, err := mountinfo.GetMounts(mountinfo.SingleEntryFilter(filepath.Clean(path)))
	if err != nil {
		return false, err
	}
	return len(mounts) > 0, nil
}

// LVMResolver looks logical volumes up across every volume group.
type LVMResolver struct {
	Manager *lvm.Manager
}

func (r LVMResolver) BlockPath(ctx context.Context, uuid resource.UUID) (string, error) {
	lv, err := r.Manager.LogicalVolumeByUUID(ctx, "", uuid)
	if err != nil {
		return "", err
	}
	return lv.Path, nil
}

func chown(path string, owner Owner) error {
	return os.Chown(path, owner.UID, owner.GID)
}
