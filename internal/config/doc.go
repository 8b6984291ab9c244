// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads palette command definitions from files and registers
// them with a command manager.
//
// The format is chosen from the file extension:
//
//	.yaml, .yml, .json  YAML (JSON is valid YAML)
//	.toml               TOML
//	.hcl                HCL, one `command "<key>" { ... }` block per command
//
// HCL files may reference environment variables as env.NAME and use the
// upper() and lower() functions.
//
// A definition of type "host" (the default) sends host_command to the host.
// A definition of type "alias" executes another command, forwarding its argument.
package config
