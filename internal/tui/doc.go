// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides the interactive command palette: a text input that
// filters the registered commands as the user types, and a list to pick one
// from.
//
// The palette only selects. Running the chosen task is left to the caller,
// after the program has released the terminal, so host commands and log
// output go to a normal screen.
package tui
