// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadPrivateKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PRIVATE_KEY=0xabc\nOTHER=1\n"), 0o600))

	t.Run("from env file", func(t *testing.T) {
		t.Parallel()

		cfg := &config{EnvFile: envFile}
		require.NoError(t, loadPrivateKey(cfg))
		assert.Equal(t, "0xabc", cfg.PrivateKey)
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Parallel()

		cfg := &config{EnvFile: envFile, PrivateKey: "0xdef"}
		require.NoError(t, loadPrivateKey(cfg))
		assert.Equal(t, "0xdef", cfg.PrivateKey)
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()

		cfg := &config{EnvFile: filepath.Join(dir, "missing.env")}
		require.NoError(t, loadPrivateKey(cfg))
		assert.Empty(t, cfg.PrivateKey)
	})
}

func Test_RootCmd(t *testing.T) {
	t.Parallel()

	t.Run("unknown verbosity", func(t *testing.T) {
		t.Parallel()

		cmd := newRootCmd()
		cmd.SetArgs([]string{"--log-verbosity", "loud", "--env-file", ""})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		assert.Error(t, cmd.Execute())
	})

	t.Run("missing contract", func(t *testing.T) {
		t.Parallel()

		cmd := newRootCmd()
		cmd.SetArgs([]string{"gateway", "price", "artem", "0x95D02e967Dd2D2B1839347e0B84E59136b11A073", "--env-file", ""})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()
		assert.ErrorContains(t, err, "invalid configuration")
	})
}
