/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import "fmt"

var (
	// These variables are set using -ldflags
	planimeterVersion string
	gitBranch         string
	lastCommitSHA     string
	lastCommitTime    string
)

// BuildDetails returns a string containing details about the planimeter binary.
func BuildDetails() string {
	return fmt.Sprintf(`
Planimeter version : %v
Commit SHA-1       : %v
Commit timestamp   : %v
Branch             : %v

Licensed under the Apache License, Version 2.0.

`,
		Version(), lastCommitSHA, lastCommitTime, gitBranch)
}

// Version returns the version string, "dev" for builds without -ldflags.
func Version() string {
	if planimeterVersion == "" {
		return "dev"
	}
	return planimeterVersion
}
