package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/rpncalc/internal/ctxlog"
	"github.com/vk/rpncalc/internal/fsutil"
	"github.com/vk/rpncalc/internal/operator"
)

// Ext is the file extension of plugin files.
const Ext = ".hcl"

// fileSchema is the top-level structure of a plugin file: one or more
// 'group' blocks.
type fileSchema struct {
	Groups []*groupBlock `hcl:"group,block"`
}

type groupBlock struct {
	Name      string           `hcl:"name,label"`
	Operators []*operatorBlock `hcl:"operator,block"`
}

type operatorBlock struct {
	Opcode      string         `hcl:"opcode,label"`
	Params      []string       `hcl:"params"`
	Result      hcl.Expression `hcl:"result"`
	Description string         `hcl:"description,optional"`
}

// fileGroup is the materialized form handed to the registry.
type fileGroup struct {
	name  string
	specs []operator.Spec
}

func (g *fileGroup) Name() string           { return g.name }
func (g *fileGroup) Specs() []operator.Spec { return g.specs }

// Loader discovers and parses plugin files under a root directory.
type Loader struct {
	root string
}

// NewLoader creates a Loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Load reads the plugin file <root>/<name>.hcl and returns the operator
// groups it declares.
func (l *Loader) Load(ctx context.Context, name string) ([]operator.Group, error) {
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("plugin name %q must not contain path separators", name)
	}
	path := filepath.Join(l.root, name+Ext)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("plugin %q not found: %w", name, err)
	}
	return loadFile(ctx, path)
}

// LoadAll discovers every plugin file under the root directory and returns
// all groups they declare, in file order. A missing root directory is not
// an error; there are simply no plugins.
func (l *Loader) LoadAll(ctx context.Context) ([]operator.Group, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(l.root); os.IsNotExist(err) {
		logger.Debug("Plugin root does not exist, nothing to load.", "root", l.root)
		return nil, nil
	}

	paths, err := fsutil.FindFilesByExtension(l.root, Ext)
	if err != nil {
		return nil, fmt.Errorf("failed to scan plugin directory %s: %w", l.root, err)
	}

	var groups []operator.Group
	for _, path := range paths {
		fileGroups, err := loadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		groups = append(groups, fileGroups...)
	}
	logger.Debug("Plugin discovery finished.", "files", len(paths), "groups", len(groups))
	return groups, nil
}

// loadFile parses one plugin file into operator groups. Any defect rejects
// the whole file.
func loadFile(ctx context.Context, path string) ([]operator.Group, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing plugin file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plugin file %s: %w", path, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plugin file %s: %w", path, diags)
	}

	var groups []operator.Group
	for _, gb := range schema.Groups {
		g, err := buildGroup(gb)
		if err != nil {
			return nil, fmt.Errorf("plugin file %s: %w", path, err)
		}
		groups = append(groups, g)
		logger.Debug("Loaded operator group from plugin file.",
			"path", path, "group", g.Name(), "operators", len(gb.Operators))
	}
	return groups, nil
}

func buildGroup(gb *groupBlock) (operator.Group, error) {
	if gb.Name == "" {
		return nil, fmt.Errorf("group label must not be empty")
	}
	if gb.Name == operator.StdGroup {
		return nil, fmt.Errorf("group %q: name is reserved for the standard set", gb.Name)
	}

	g := &fileGroup{name: gb.Name}
	for _, ob := range gb.Operators {
		if ob.Opcode == "" {
			return nil, fmt.Errorf("group %q: operator label must not be empty", gb.Name)
		}
		seen := make(map[string]struct{}, len(ob.Params))
		for _, p := range ob.Params {
			if p == "" {
				return nil, fmt.Errorf("group %q, operator %q: empty param name", gb.Name, ob.Opcode)
			}
			if _, dup := seen[p]; dup {
				return nil, fmt.Errorf("group %q, operator %q: duplicate param %q", gb.Name, ob.Opcode, p)
			}
			seen[p] = struct{}{}
		}
		g.specs = append(g.specs, operator.Spec{
			Opcode:      ob.Opcode,
			Arity:       len(ob.Params),
			Compute:     exprCompute(ob.Opcode, ob.Params, ob.Result),
			Description: ob.Description,
		})
	}
	return g, nil
}
