package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/patrolgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// evalContext is the scope HCL expressions in a config file are evaluated in.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Overrides, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var o Overrides
	diags = gohcl.DecodeBody(file.Body, evalContext(), &o)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}
	return &o, nil
}

// LoadFile reads and decodes an HCL config file. A relative `input` path is
// resolved against the directory of the config file.
func LoadFile(ctx context.Context, path string) (*Overrides, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	o, err := Parse(src, path)
	if err != nil {
		return nil, err
	}

	if o.Input != nil && *o.Input != "" && !filepath.IsAbs(*o.Input) {
		resolved := filepath.Join(filepath.Dir(path), *o.Input)
		o.Input = &resolved
	}
	logger.Debug("Config file loaded.", "path", path)
	return o, nil
}
