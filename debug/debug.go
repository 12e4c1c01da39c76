// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build !debug

// Package debug exposes build-tag toggles shared by the other packages.
package debug

// Debug is true when the "debug" build tag is set.
const Debug = false
