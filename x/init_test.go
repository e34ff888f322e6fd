/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	defer func(v string) { planimeterVersion = v }(planimeterVersion)

	planimeterVersion = ""
	require.Equal(t, "dev", Version())
	require.Contains(t, BuildDetails(), "Planimeter version : dev")

	planimeterVersion = "v1.2.0"
	require.Equal(t, "v1.2.0", Version())
	require.Contains(t, BuildDetails(), "Planimeter version : v1.2.0")
}
