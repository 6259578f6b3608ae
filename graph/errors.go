package graph

import (
	"fmt"
	"strings"

	"github.com/treeline-io/treeline/api"
)

// SchemaError is a fatal load-time defect: structural rules broken or a
// naming convention that does not compile. Load never returns a partial
// schema alongside one.
type SchemaError struct {
	NodeID   string // offending node, when attributable
	Template string // offending naming convention, when template-caused
	Msg      string
	Err      error
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("schema error")
	if e.NodeID != "" {
		fmt.Fprintf(&b, " at node %q", e.NodeID)
	}
	if e.Template != "" {
		fmt.Fprintf(&b, " (nc %q)", e.Template)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *SchemaError) Unwrap() error { return e.Err }

// NodeNotFoundError reports a lookup of an id the schema does not define.
type NodeNotFoundError struct {
	NodeID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %q not found in schema", e.NodeID)
}

// MountNotFoundError reports a root with no prefix for the requested
// (location, platform) pair. There is no fallback between pairs.
type MountNotFoundError struct {
	RootID   string
	Location api.Location
	Platform api.Platform
}

func (e *MountNotFoundError) Error() string {
	return fmt.Sprintf("root %q declares no mount for %s/%s", e.RootID, e.Location, e.Platform)
}

// MissingVariableError reports a context that lacks a variable required
// by a node's naming convention.
type MissingVariableError struct {
	NodeID   string
	Template string
	Variable string
	Err      error
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("node %q (nc %q): variable %q is not bound", e.NodeID, e.Template, e.Variable)
}

func (e *MissingVariableError) Unwrap() error { return e.Err }

// NoMatchError reports a path segment that no child of the reached node
// accepts.
type NoMatchError struct {
	Path    string
	Segment string
	NodeID  string // node whose children were tried
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("path %q: segment %q matches no child of node %q", e.Path, e.Segment, e.NodeID)
}

// NoRootMatchError reports a path outside every root's mount prefix for
// the given (location, platform) pair.
type NoRootMatchError struct {
	Path     string
	Location api.Location
	Platform api.Platform
}

func (e *NoRootMatchError) Error() string {
	return fmt.Sprintf("path %q is under no root mount for %s/%s", e.Path, e.Location, e.Platform)
}

// AmbiguousRootError reports a path that falls under the mount prefixes
// of more than one root.
type AmbiguousRootError struct {
	Path    string
	RootIDs []string
}

func (e *AmbiguousRootError) Error() string {
	return fmt.Sprintf("path %q matches multiple root mounts: %s", e.Path, strings.Join(e.RootIDs, ", "))
}
