package lvm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cuemby/rlvm/pkg/resource"
)

const (
	lvsFields = "lv_uuid,lv_name,vg_name,lv_path,lv_size,lv_tags"
	vgsFields = "vg_name,vg_uuid,vg_size,vg_free,vg_extent_size"
)

// VolumeGroup is an LVM volume group as reported by vgs.
type VolumeGroup struct {
	Name            string
	UUID            string
	SizeBytes       uint64
	FreeBytes       uint64
	ExtentSizeBytes uint64
}

// LogicalVolume is an LVM logical volume as reported by lvs.
type LogicalVolume struct {
	UUID        string
	Name        string
	VolumeGroup string
	Path        string
	SizeBytes   uint64
	Tags        []string
}

// CreateOptions describes a new logical volume.
type CreateOptions struct {
	Name     resource.Name
	Capacity resource.Capacity
	Tags     []resource.Tag
}

// Manager drives the LVM command line tools.
type Manager struct {
	runner Runner
}

// NewManager returns a Manager that runs commands through runner. A nil
// runner executes the real binaries.
func NewManager(runner Runner) *Manager {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Manager{runner: runner}
}

// VolumeGroup looks up a volume group by name.
func (m *Manager) VolumeGroup(ctx context.Context, name resource.Name) (*VolumeGroup, error) {
	out, err := m.runner.Run(ctx, "vgs", reportArgs(vgsFields, name.String())...)
	if err != nil {
		return nil, fmt.Errorf("failed to query volume group %s: %w", name, classify(err))
	}

	var report vgReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, fmt.Errorf("failed to parse vgs report: %w", err)
	}

	rows := report.rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("volume group %s: %w", name, ErrNotFound)
	}
	return rows[0].toVolumeGroup()
}

// LogicalVolumes lists every logical volume in vg.
func (m *Manager) LogicalVolumes(ctx context.Context, vg resource.Name) ([]*LogicalVolume, error) {
	return m.listLogicalVolumes(ctx, vg, "")
}

// LogicalVolumeByName returns the logical volume called name in vg.
func (m *Manager) LogicalVolumeByName(ctx context.Context, vg, name resource.Name) (*LogicalVolume, error) {
	return m.findLogicalVolume(ctx, vg, "lv_name="+name.String())
}

// LogicalVolumeByUUID returns the logical volume with the given UUID in vg.
// An empty vg searches every volume group on the host.
func (m *Manager) LogicalVolumeByUUID(ctx context.Context, vg resource.Name, uuid resource.UUID) (*LogicalVolume, error) {
	return m.findLogicalVolume(ctx, vg, "lv_uuid="+uuid.String())
}

// CreateLogicalVolume creates and activates a linear logical volume in vg.
func (m *Manager) CreateLogicalVolume(ctx context.Context, vg resource.Name, opts CreateOptions) (*LogicalVolume, error) {
	args := []string{
		"--yes",
		"--activate", "y",
		"--name", opts.Name.String(),
		"--size", strconv.FormatUint(opts.Capacity.Bytes(), 10) + "b",
	}
	for _, tag := range opts.Tags {
		args = append(args, "--addtag", tag.String())
	}
	args = append(args, vg.String())

	if _, err := m.runner.Run(ctx, "lvcreate", args...); err != nil {
		return nil, fmt.Errorf("failed to create logical volume %s/%s: %w", vg, opts.Name, classify(err))
	}

	return m.LogicalVolumeByName(ctx, vg, opts.Name)
}

// RemoveLogicalVolume removes the logical volume called name from vg.
func (m *Manager) RemoveLogicalVolume(ctx context.Context, vg, name resource.Name) error {
	if _, err := m.runner.Run(ctx, "lvremove", "--force", vg.String()+"/"+name.String()); err != nil {
		return fmt.Errorf("failed to remove logical volume %s/%s: %w", vg, name, classify(err))
	}
	return nil
}

func (m *Manager) findLogicalVolume(ctx context.Context, vg resource.Name, selector string) (*LogicalVolume, error) {
	lvs, err := m.listLogicalVolumes(ctx, vg, selector)
	if err != nil {
		return nil, err
	}
	if len(lvs) == 0 {
		return nil, fmt.Errorf("logical volume %s: %w", selector, ErrNotFound)
	}
	return lvs[0], nil
}

func (m *Manager) listLogicalVolumes(ctx context.Context, vg resource.Name, selector string) ([]*LogicalVolume, error) {
	args := reportArgs(lvsFields)
	if selector != "" {
		args = append(args, "--select", selector)
	}
	if vg != "" {
		args = append(args, vg.String())
	}

	out, err := m.runner.Run(ctx, "lvs", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list logical volumes: %w", classify(err))
	}

	var report lvReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, fmt.Errorf("failed to parse lvs report: %w", err)
	}

	rows := report.rows()
	lvs := make([]*LogicalVolume, 0, len(rows))
	for _, row := range rows {
		lv, err := row.toLogicalVolume()
		if err != nil {
			return nil, err
		}
		lvs = append(lvs, lv)
	}
	return lvs, nil
}

func reportArgs(fields string, extra ...string) []string {
	args := []string{
		"--reportformat", "json",
		"--units", "b",
		"--nosuffix",
		"--options", fields,
	}
	return append(args, extra...)
}

// Report layouts produced by --reportformat json. All values are strings.

type vgReport struct {
	Report []struct {
		VG []vgRow `json:"vg"`
	} `json:"report"`
}

func (r vgReport) rows() []vgRow {
	var rows []vgRow
	for _, rep := range r.Report {
		rows = append(rows, rep.VG...)
	}
	return rows
}

type vgRow struct {
	Name       string `json:"vg_name"`
	UUID       string `json:"vg_uuid"`
	Size       string `json:"vg_size"`
	Free       string `json:"vg_free"`
	ExtentSize string `json:"vg_extent_size"`
}

func (r vgRow) toVolumeGroup() (*VolumeGroup, error) {
	size, err := parseBytes("vg_size", r.Size)
	if err != nil {
		return nil, err
	}
	free, err := parseBytes("vg_free", r.Free)
	if err != nil {
		return nil, err
	}
	extent, err := parseBytes("vg_extent_size", r.ExtentSize)
	if err != nil {
		return nil, err
	}
	return &VolumeGroup{
		Name:            r.Name,
		UUID:            r.UUID,
		SizeBytes:       size,
		FreeBytes:       free,
		ExtentSizeBytes: extent,
	}, nil
}

type lvReport struct {
	Report []struct {
		LV []lvRow `json:"lv"`
	} `json:"report"`
}

func (r lvReport) rows() []lvRow {
	var rows []lvRow
	for _, rep := range r.Report {
		rows = append(rows, rep.LV...)
	}
	return rows
}

type lvRow struct {
	UUID string `json:"lv_uuid"`
	Name string `json:"lv_name"`
	VG   string `json:"vg_name"`
	Path string `json:"lv_path"`
	Size string `json:"lv_size"`
	Tags string `json:"lv_tags"`
}

func (r lvRow) toLogicalVolume() (*LogicalVolume, error) {
	size, err := parseBytes("lv_size", r.Size)
	if err != nil {
		return nil, err
	}
	lv := &LogicalVolume{
		UUID:        r.UUID,
		Name:        r.Name,
		VolumeGroup: r.VG,
		Path:        r.Path,
		SizeBytes:   size,
	}
	if r.Tags != "" {
		lv.Tags = strings.Split(r.Tags, ",")
	}
	if lv.Path == "" {
		lv.Path = "/dev/" + r.VG + "/" + r.Name
	}
	return lv, nil
}

func parseBytes(field, value string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return n, nil
}
