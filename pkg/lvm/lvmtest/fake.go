// Package lvmtest provides in-memory stand-ins for the lvm package.
package lvmtest

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/resource"
)

// Manager is an in-memory volume manager holding a single volume group.
type Manager struct {
	mu  sync.Mutex
	vg  lvm.VolumeGroup
	lvs []*lvm.LogicalVolume

	// CreateErr, when set, is returned by the next CreateLogicalVolume call.
	CreateErr error
	// VolumeGroupErr, when set, is returned by every VolumeGroup call.
	VolumeGroupErr error
}

// NewManager returns a manager with one empty volume group of sizeBytes.
func NewManager(vgName string, sizeBytes uint64) *Manager {
	return &Manager{
		vg: lvm.VolumeGroup{
			Name:            vgName,
			UUID:            NewUUID(),
			SizeBytes:       sizeBytes,
			FreeBytes:       sizeBytes,
			ExtentSizeBytes: 4 << 20,
		},
	}
}

// NewUUID returns a random identifier in LVM's 6-4-4-4-4-4-6 layout.
func NewUUID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.Join([]string{raw[0:6], raw[6:10], raw[10:14], raw[14:18], raw[18:22], raw[22:26], raw[26:32]}, "-")
}

func (m *Manager) VolumeGroup(_ context.Context, name resource.Name) (*lvm.VolumeGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.VolumeGroupErr != nil {
		return nil, m.VolumeGroupErr
	}
	if name.String() != m.vg.Name {
		return nil, fmt.Errorf("volume group %s: %w", name, lvm.ErrNotFound)
	}
	vg := m.vg
	return &vg, nil
}

func (m *Manager) LogicalVolumes(_ context.Context, vg resource.Name) ([]*lvm.LogicalVolume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkGroup(vg); err != nil {
		return nil, err
	}
	out := make([]*lvm.LogicalVolume, 0, len(m.lvs))
	for _, lv := range m.lvs {
		out = append(out, clone(lv))
	}
	return out, nil
}

func (m *Manager) LogicalVolumeByName(_ context.Context, vg, name resource.Name) (*lvm.LogicalVolume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkGroup(vg); err != nil {
		return nil, err
	}
	return m.find(func(lv *lvm.LogicalVolume) bool { return lv.Name == name.String() }, "lv_name="+name.String())
}

func (m *Manager) LogicalVolumeByUUID(_ context.Context, vg resource.Name, id resource.UUID) (*lvm.LogicalVolume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if vg != "" {
		if err := m.checkGroup(vg); err != nil {
			return nil, err
		}
	}
	return m.find(func(lv *lvm.LogicalVolume) bool { return lv.UUID == id.String() }, "lv_uuid="+id.String())
}

func (m *Manager) CreateLogicalVolume(_ context.Context, vg resource.Name, opts lvm.CreateOptions) (*lvm.LogicalVolume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkGroup(vg); err != nil {
		return nil, err
	}
	if m.CreateErr != nil {
		err := m.CreateErr
		m.CreateErr = nil
		return nil, err
	}
	for _, lv := range m.lvs {
		if lv.Name == opts.Name.String() {
			return nil, fmt.Errorf("logical volume %s: %w", opts.Name, lvm.ErrAlreadyExists)
		}
	}
	size := m.roundToExtent(opts.Capacity.Bytes())
	if size > m.vg.FreeBytes {
		return nil, fmt.Errorf("insufficient free space: %d extents needed", size/m.vg.ExtentSizeBytes)
	}

	lv := &lvm.LogicalVolume{
		UUID:        NewUUID(),
		Name:        opts.Name.String(),
		VolumeGroup: m.vg.Name,
		Path:        "/dev/" + m.vg.Name + "/" + opts.Name.String(),
		SizeBytes:   size,
	}
	for _, tag := range opts.Tags {
		lv.Tags = append(lv.Tags, tag.String())
	}
	m.lvs = append(m.lvs, lv)
	m.vg.FreeBytes -= size
	return clone(lv), nil
}

func (m *Manager) RemoveLogicalVolume(_ context.Context, vg, name resource.Name) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkGroup(vg); err != nil {
		return err
	}
	idx := slices.IndexFunc(m.lvs, func(lv *lvm.LogicalVolume) bool { return lv.Name == name.String() })
	if idx < 0 {
		return fmt.Errorf("logical volume %s/%s: %w", vg, name, lvm.ErrNotFound)
	}
	m.vg.FreeBytes += m.lvs[idx].SizeBytes
	m.lvs = slices.Delete(m.lvs, idx, idx+1)
	return nil
}

// SetPath overrides the device path reported for a logical volume.
func (m *Manager) SetPath(name, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, lv := range m.lvs {
		if lv.Name == name {
			lv.Path = path
		}
	}
}

func (m *Manager) checkGroup(vg resource.Name) error {
	if vg.String() != m.vg.Name {
		return fmt.Errorf("volume group %s: %w", vg, lvm.ErrNotFound)
	}
	return nil
}

func (m *Manager) find(match func(*lvm.LogicalVolume) bool, selector string) (*lvm.LogicalVolume, error) {
	for _, lv := range m.lvs {
		if match(lv) {
			return clone(lv), nil
		}
	}
	return nil, fmt.Errorf("logical volume %s: %w", selector, lvm.ErrNotFound)
}

func (m *Manager) roundToExtent(n uint64) uint64 {
	extent := m.vg.ExtentSizeBytes
	return (n + extent - 1) / extent * extent
}

func clone(lv *lvm.LogicalVolume) *lvm.LogicalVolume {
	c := *lv
	c.Tags = slices.Clone(lv.Tags)
	return &c
}

// Formatter records the devices it was asked to format.
type Formatter struct {
	mu      sync.Mutex
	Devices []string
	Err     error
}

func (f *Formatter) Format(_ context.Context, device string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Devices = append(f.Devices, device)
	return nil
}

// Formatted returns a copy of the formatted device list.
func (f *Formatter) Formatted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.Devices)
}
