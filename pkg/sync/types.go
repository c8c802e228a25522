package sync

import (
	"crypto/sha256"
	"encoding/hex"
	"reflect"
	"sort"
	"time"

	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
)

// VersionedConfig 记录配置版本元数据。
type VersionedConfig struct {
	VersionID string
	Checksum  string
	Timestamp time.Time
	// Config is nil when the file could not be parsed.
	Config bitcoinconf.Config
}

// NewVersion records contents and the configuration it resolves to. The
// checksum is the hex SHA-256 of contents and doubles as the version ID.
func NewVersion(contents string, cfg bitcoinconf.Config, ts time.Time) *VersionedConfig {
	sum := sha256.Sum256([]byte(contents))
	checksum := hex.EncodeToString(sum[:])
	return &VersionedConfig{
		VersionID: checksum[:12],
		Checksum:  checksum,
		Timestamp: ts,
		Config:    cfg,
	}
}

// ChangeSet 描述一次差异。
type ChangeSet struct {
	Base   *VersionedConfig // nil when there was no previous file
	Target *VersionedConfig
	Diff   *DiffResult
}

// NewChangeSet diffs target against base. A nil base diffs against an empty configuration.
func NewChangeSet(base, target *VersionedConfig) *ChangeSet {
	var from bitcoinconf.Config
	if base != nil {
		from = base.Config
	}
	return &ChangeSet{Base: base, Target: target, Diff: Diff(from, target.Config)}
}

// Unchanged reports whether the target file is byte-identical to the base.
func (c *ChangeSet) Unchanged() bool {
	return c.Base != nil && c.Base.Checksum == c.Target.Checksum
}

// DiffResult 按选项名记录新增、删除与修改。
type DiffResult struct {
	Added   map[string]any
	Removed map[string]any
	Changed map[string][2]any // [old, new]
}

// Diff compares two resolved configurations option by option.
func Diff(base, target bitcoinconf.Config) *DiffResult {
	d := &DiffResult{
		Added:   make(map[string]any),
		Removed: make(map[string]any),
		Changed: make(map[string][2]any),
	}
	for name, value := range target {
		old, ok := base[name]
		switch {
		case !ok:
			d.Added[name] = value
		case !reflect.DeepEqual(old, value):
			d.Changed[name] = [2]any{old, value}
		}
	}
	for name, value := range base {
		if _, ok := target[name]; !ok {
			d.Removed[name] = value
		}
	}
	return d
}

// Empty reports whether nothing changed.
func (d *DiffResult) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Names returns every option touched by the diff, sorted.
func (d *DiffResult) Names() []string {
	names := make([]string, 0, len(d.Added)+len(d.Removed)+len(d.Changed))
	for name := range d.Added {
		names = append(names, name)
	}
	for name := range d.Removed {
		names = append(names, name)
	}
	for name := range d.Changed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
