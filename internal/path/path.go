package path

import (
	"os"
	"path/filepath"
)

// Default path constants
const (
	DefaultSourceRoot  = "c:/Program Files (x86)/Intel/Composer XE/ipp"
	DefaultInstallRoot = "c:/Intel/IPP/"
	DefaultVersion     = "7.0.6"
)

// Arch is the architecture tag used for both the destination subtree and
// the vendor library subfolder. It is not configurable.
const Arch = "ia32"

// PatchedHeader is the header rewritten after the copy.
const PatchedHeader = "ippdefs.h"

// Config holds the resolved installer configuration.
// It is immutable once returned by New.
type Config struct {
	sourceRoot  string
	version     string
	installRoot string
}

// Option is a functional option for configuring Config.
type Option func(*Config)

// WithSourceRoot sets the IPP installation root to copy from.
func WithSourceRoot(dir string) Option {
	return func(c *Config) {
		c.sourceRoot = dir
	}
}

// WithVersion sets the version segment of the install path.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.version = version
	}
}

// WithInstallRoot overrides the install root prefix.
func WithInstallRoot(dir string) Option {
	return func(c *Config) {
		c.installRoot = dir
	}
}

// New creates a Config from the defaults and the given options.
// No validation is performed; any string is accepted.
func New(opts ...Option) *Config {
	c := &Config{
		sourceRoot:  DefaultSourceRoot,
		version:     DefaultVersion,
		installRoot: DefaultInstallRoot,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SourceRoot returns the IPP installation root.
func (c *Config) SourceRoot() string {
	return c.sourceRoot
}

// Version returns the version segment.
func (c *Config) Version() string {
	return c.version
}

// InstallRoot returns the install root prefix.
func (c *Config) InstallRoot() string {
	return c.installRoot
}

// InstallDir returns the version and architecture specific destination root.
// Returns <installRoot>/<version>/ia32
func (c *Config) InstallDir() string {
	return filepath.Join(c.installRoot, c.version, Arch)
}

// Paths returns the source and destination directories derived from c.
func (c *Config) Paths() PathSet {
	return PathSet{
		SourceInclude: filepath.Join(c.sourceRoot, "include"),
		SourceLib:     filepath.Join(c.sourceRoot, "lib", Arch),
		DestInclude:   filepath.Join(c.InstallDir(), "include"),
		DestLib:       filepath.Join(c.InstallDir(), "lib", Arch),
	}
}

// PathSet is the set of directories the installer reads from and writes to.
type PathSet struct {
	SourceInclude string // <sourceRoot>/include
	SourceLib     string // <sourceRoot>/lib/ia32
	DestInclude   string // <installRoot>/<version>/ia32/include
	DestLib       string // <installRoot>/<version>/ia32/lib/ia32
}

// DestDirs returns the destination directories in creation order.
func (p PathSet) DestDirs() []string {
	return []string{p.DestInclude, p.DestLib}
}

// PatchedHeaderPath returns the path of the header rewritten after the copy.
func (p PathSet) PatchedHeaderPath() string {
	return filepath.Join(p.DestInclude, PatchedHeader)
}

// EnsureDir creates a directory if it doesn't exist.
// Reports whether the directory had to be created.
func EnsureDir(path string) (bool, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return false, nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
