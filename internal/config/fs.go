// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"os"

	"github.com/spf13/afero"
)

// FsFactory returns the filesystem command files are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Environ returns the variables exposed to HCL files as env.NAME.
var Environ = os.Environ
