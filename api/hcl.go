package api

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCL schema documents use one block type per root and a generic "node"
// block below it, labelled with kind then id, so sibling declaration
// order survives decoding:
//
//	version = "1"
//	root "projects" {
//	  mounts {
//	    local { linux = "~/projects" }
//	  }
//	  node "folder" "project" {
//	    nc = "{project}"
//	    node "file" "asset file" { nc = "{name}.{ext}" }
//	  }
//	}
type hclDocument struct {
	Version string    `hcl:"version,optional"`
	Roots   []hclRoot `hcl:"root,block"`
}

type hclRoot struct {
	ID          string     `hcl:"id,label"`
	Description string     `hcl:"description,optional"`
	NC          string     `hcl:"nc,optional"`
	Mounts      *hclMounts `hcl:"mounts,block"`
	Children    []hclNode  `hcl:"node,block"`
}

type hclNode struct {
	Kind        string    `hcl:"kind,label"`
	ID          string    `hcl:"id,label"`
	Description string    `hcl:"description,optional"`
	NC          string    `hcl:"nc,optional"`
	Children    []hclNode `hcl:"node,block"`
}

type hclMounts struct {
	Local  *hclPlatformPaths `hcl:"local,block"`
	Remote *hclPlatformPaths `hcl:"remote,block"`
}

type hclPlatformPaths struct {
	Linux   string `hcl:"linux,optional"`
	Windows string `hcl:"windows,optional"`
}

// DecodeHCL parses a schema document from HCL bytes. The filename is used
// in parser diagnostics only.
func DecodeHCL(filename string, data []byte) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl document: %s", diags.Error())
	}
	var hd hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &hd); diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl document: %s", diags.Error())
	}

	doc := &Document{Version: hd.Version}
	for _, hr := range hd.Roots {
		rec := NodeRecord{
			Type:        KindRoot,
			ID:          hr.ID,
			Description: hr.Description,
			NC:          hr.NC,
			Children:    convertHCLNodes(hr.Children),
		}
		if hr.Mounts != nil {
			rec.Mounts = &Mounts{
				Local:  convertHCLPaths(hr.Mounts.Local),
				Remote: convertHCLPaths(hr.Mounts.Remote),
			}
		}
		doc.Roots = append(doc.Roots, rec)
	}
	return doc, nil
}

func convertHCLNodes(in []hclNode) []NodeRecord {
	if len(in) == 0 {
		return nil
	}
	out := make([]NodeRecord, 0, len(in))
	for _, hn := range in {
		out = append(out, NodeRecord{
			Type:        hn.Kind,
			ID:          hn.ID,
			Description: hn.Description,
			NC:          hn.NC,
			Children:    convertHCLNodes(hn.Children),
		})
	}
	return out
}

func convertHCLPaths(in *hclPlatformPaths) *PlatformPaths {
	if in == nil {
		return nil
	}
	return &PlatformPaths{Linux: in.Linux, Windows: in.Windows}
}
