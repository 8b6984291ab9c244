// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

type hclFile struct {
	Commands []hclCommand `hcl:"command,block"`
}

type hclCommand struct {
	Key         string `hcl:"key,label"`
	Name        string `hcl:"name,optional"`
	Detail      string `hcl:"detail,optional"`
	Type        string `hcl:"type,optional"`
	HostCommand string `hcl:"host_command,optional"`
	Target      string `hcl:"target,optional"`
}

func parseHCL(name string, data []byte) (*Document, error) {
	var f hclFile
	if err := hclsimple.Decode(name, data, evalContext(), &f); err != nil {
		return nil, err
	}

	doc := &Document{Commands: make([]Definition, 0, len(f.Commands))}
	for _, c := range f.Commands {
		doc.Commands = append(doc.Commands, Definition{
			Command:     c.Key,
			Name:        c.Name,
			Detail:      c.Detail,
			Type:        c.Type,
			HostCommand: c.HostCommand,
			Target:      c.Target,
		})
	}

	return doc, nil
}

func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"upper": stdlib.UpperFunc,
			"lower": stdlib.LowerFunc,
		},
	}
}
