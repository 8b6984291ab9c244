// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

// Command types understood by Apply.
const (
	TypeHost  = "host"
	TypeAlias = "alias"
)

// Document is the content of one command file.
type Document struct {
	Commands []Definition `yaml:"commands" toml:"commands"`
}

// Definition describes one command.
type Definition struct {
	// Command is the unique key of the command.
	Command string `yaml:"command" toml:"command"`
	// Name is shown in the palette, defaults to the key.
	Name string `yaml:"name,omitempty" toml:"name"`
	// Detail describes the command.
	Detail string `yaml:"detail,omitempty" toml:"detail"`
	// Type is "host" or "alias", defaults to "host".
	Type string `yaml:"type,omitempty" toml:"type"`
	// HostCommand is sent to the host by host commands.
	HostCommand string `yaml:"host_command,omitempty" toml:"host_command"`
	// Target is the key executed by alias commands.
	Target string `yaml:"target,omitempty" toml:"target"`
}

func (d Definition) typeOrDefault() string {
	if d.Type == "" {
		return TypeHost
	}

	return d.Type
}

func (d Definition) nameOrDefault() string {
	if d.Name == "" {
		return d.Command
	}

	return d.Name
}

// Merge appends the definitions of other documents to d, in order.
func (d *Document) Merge(others ...*Document) {
	for _, o := range others {
		if o == nil {
			continue
		}

		d.Commands = append(d.Commands, o.Commands...)
	}
}
