package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Node kinds as they appear in schema documents.
const (
	KindRoot   = "root"
	KindFolder = "folder"
	KindFile   = "file"
)

// Document is the persisted schema layout: an ordered list of root
// definitions, each owning a nested tree of folder and file records.
type Document struct {
	// Version of the schema document. Opaque to the engine.
	Version string `json:"version,omitempty" yaml:"version,omitempty" validate:"omitempty"`
	// Roots are the top-level node records. Every resolvable path is
	// anchored at exactly one of them.
	Roots []NodeRecord `json:"roots" yaml:"roots" validate:"required,min=1,dive"`
}

// NodeRecord is one node definition inside a schema document.
type NodeRecord struct {
	// Type of the node: root, folder or file.
	Type string `json:"type" yaml:"type" validate:"required,oneof=root folder file"`
	// ID names the node. Unique within its sibling scope.
	ID string `json:"id" yaml:"id" validate:"required"`
	// Description is free-form and carries no path semantics.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// NC is the naming convention template for this node's path segment.
	// When absent the id is used literally.
	NC string `json:"nc,omitempty" yaml:"nc,omitempty"`
	// Children are the ordered child records. Empty for file nodes.
	Children []NodeRecord `json:"children,omitempty" yaml:"children,omitempty" validate:"omitempty,dive"`
	// Mounts declares per-location, per-platform path prefixes. Root only.
	Mounts *Mounts `json:"mounts,omitempty" yaml:"mounts,omitempty"`
}

// Mounts maps (location, platform) to an absolute path prefix.
type Mounts struct {
	Local  *PlatformPaths `json:"local,omitempty" yaml:"local,omitempty"`
	Remote *PlatformPaths `json:"remote,omitempty" yaml:"remote,omitempty"`
}

// PlatformPaths holds the per-platform prefixes of one location.
type PlatformPaths struct {
	Linux   string `json:"linux,omitempty" yaml:"linux,omitempty"`
	Windows string `json:"windows,omitempty" yaml:"windows,omitempty"`
}

// Get returns the prefix declared for (loc, plat), or ok=false when the
// pair is absent. Nil receivers are treated as fully undeclared.
func (m *Mounts) Get(loc Location, plat Platform) (prefix string, ok bool) {
	if m == nil {
		return "", false
	}
	var pp *PlatformPaths
	switch loc {
	case LocationLocal:
		pp = m.Local
	case LocationRemote:
		pp = m.Remote
	}
	if pp == nil {
		return "", false
	}
	switch plat {
	case PlatformLinux:
		prefix = pp.Linux
	case PlatformWindows:
		prefix = pp.Windows
	}
	return prefix, prefix != ""
}

// IsEmpty reports whether no (location, platform) pair declares a prefix.
func (m *Mounts) IsEmpty() bool {
	for _, loc := range []Location{LocationLocal, LocationRemote} {
		for _, plat := range []Platform{PlatformLinux, PlatformWindows} {
			if _, ok := m.Get(loc, plat); ok {
				return false
			}
		}
	}
	return true
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the document shape: required fields, known node kinds,
// at least one root. Semantic rules (mount placement, template syntax,
// sibling uniqueness) are enforced by the compiler, not here.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("document shape: %s", strings.Join(parts, "; "))
	}
	return fmt.Errorf("document shape: %w", err)
}
