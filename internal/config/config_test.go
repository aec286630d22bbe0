// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "ZZ", c.Defaults.DefaultRegion)
	assert.Equal(t, "warn", c.Defaults.LogLevel)
	assert.Equal(t, 128, c.RegexCache.Capacity)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesPartialFields(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "telnumber.yaml")
	require.NoError(t, os.WriteFile(p, []byte("defaults:\n  default_region: US\n"), 0o600))

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "US", c.Defaults.DefaultRegion)
	assert.Equal(t, "warn", c.Defaults.LogLevel)
	assert.Equal(t, 128, c.RegexCache.Capacity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/telnumber.yaml")
	assert.Error(t, err)
}
