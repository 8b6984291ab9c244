// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

// ErrGetConfigFile is returned when a command file cannot be fetched.
var ErrGetConfigFile = errors.New("failed to get command file")

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // scheme, host and path
)

// Fetch downloads the command file at url with go-getter and returns its file
// name and content. The download directory is removed before returning.
func Fetch(ctx context.Context, url string) (string, []byte, error) {
	if url == "" {
		return "", nil, ErrGetConfigFile
	}

	tmpDir, err := os.MkdirTemp("", "palette-getter-*")
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	// go-getter fetches directories, so a remote file URL is split into the
	// directory to fetch and the file to read from it.
	// https://github.com/hashicorp/go-getter/issues/98
	var fileName string

	isLocal, err := getter.Detect(req, &getter.FileGetter{})
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	if isLocal {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	} else {
		var dirURL string

		dirURL, fileName = splitFileNameFromGetterURL(url)
		if dirURL == "" || fileName == "" {
			return "", nil, fmt.Errorf("%w: invalid URL format: %s", ErrGetConfigFile, url)
		}

		req.Src = dirURL
	}

	ctxlog.Debug(ctx, "fetching command file", "src", req.Src, "file", fileName)

	client := getter.Client{
		DisableSymlinks: true,
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return "", nil, errors.Join(ErrGetConfigFile, err)
	}

	return fileName, data, nil
}

// splitFileNameFromGetterURL splits a go-getter URL into the directory URL and
// the file name, keeping any ?ref= query on the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if before, after, found := strings.Cut(last, goGetterRefSeparator); found {
		ref = after
		last = before
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	dirURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		dirURL += goGetterRefSeparator + ref
	}

	return dirURL, fileName
}
