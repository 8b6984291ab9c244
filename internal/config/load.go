// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrReadFile is returned when a command file cannot be read.
	ErrReadFile = errors.New("failed to read command file")
	// ErrUnknownFormat is returned for a file extension with no decoder.
	ErrUnknownFormat = errors.New("unknown command file format")
	// ErrParse is returned when a command file cannot be decoded.
	ErrParse = errors.New("failed to parse command file")
)

// Load reads and parses the command file at path from FsFactory().
func Load(ctx context.Context, path string) (*Document, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	ctxlog.Debug(ctx, "loaded command file", "path", path, "bytes", len(data))

	return Parse(path, data)
}

// LoadURL loads src from the local filesystem if it exists there, otherwise
// it is fetched with go-getter (git::, https://, s3::, ...).
func LoadURL(ctx context.Context, src string) (*Document, error) {
	if _, err := FsFactory().Stat(src); err == nil {
		return Load(ctx, src)
	}

	name, data, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	return Parse(name, data)
}

// Parse decodes data according to the extension of name.
func Parse(name string, data []byte) (*Document, error) {
	doc := new(Document)

	var err error

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml", ".json":
		err = yaml.Unmarshal(data, doc)
	case ".toml":
		err = toml.Unmarshal(data, doc)
	case ".hcl":
		doc, err = parseHCL(name, data)
	default:
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownFormat, ext, name)
	}

	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrParse, name), err)
	}

	return doc, nil
}
