package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prediqt/sdk-go/core/types"
)

func newTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v, err := newViper(newTestFlags(t))
		require.NoError(t, err)

		cfg, err := loadConfig(v, filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, defaultNode, cfg.Node)
		assert.Equal(t, "active", cfg.Permission)
		assert.Empty(t, cfg.Actor)
		assert.Equal(t, []types.Authorization{}, cfg.Authorization())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PREDIQT_GRAPH_URL", "https://graph.example/graphql")
		t.Setenv("PREDIQT_ACTOR", "prediqtbottt")
		t.Setenv("PREDIQT_KEY", devKeyForTests)

		v, err := newViper(newTestFlags(t))
		require.NoError(t, err)

		cfg, err := loadConfig(v, filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "https://graph.example/graphql", cfg.GraphURL)
		assert.Equal(t, devKeyForTests, cfg.Key)
		assert.Equal(t, []types.Authorization{{Actor: "prediqtbottt", Permission: "active"}}, cfg.Authorization())
	})

	t.Run("flags win over environment", func(t *testing.T) {
		t.Setenv("PREDIQT_NODE", "https://env.example")

		v, err := newViper(newTestFlags(t, "--node", "https://flag.example", "--permission", "owner"))
		require.NoError(t, err)

		cfg, err := loadConfig(v, filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "https://flag.example", cfg.Node)
		assert.Equal(t, "owner", cfg.Permission)
	})

	t.Run("config file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "prediqt.yaml")
		require.NoError(t, os.WriteFile(file, []byte("actor: alice\ngraph-url: https://file.example\n"), 0o600))

		v, err := newViper(newTestFlags(t, "--config", file))
		require.NoError(t, err)

		cfg, err := loadConfig(v, filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "alice", cfg.Actor)
		assert.Equal(t, "https://file.example", cfg.GraphURL)
	})

	t.Run("unreadable config file", func(t *testing.T) {
		v, err := newViper(newTestFlags(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
		require.NoError(t, err)

		_, err = loadConfig(v)
		assert.True(t, errors.Is(err, types.ErrInvalidArgument))
	})

	t.Run("dotenv file", func(t *testing.T) {
		// Registered first so the variable is restored after the test.
		t.Setenv("PREDIQT_ACTOR", "")
		require.NoError(t, os.Unsetenv("PREDIQT_ACTOR"))

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("PREDIQT_ACTOR=dotenvactor\n"), 0o600))

		v, err := newViper(newTestFlags(t))
		require.NoError(t, err)

		cfg, err := loadConfig(v, envFile)
		require.NoError(t, err)
		assert.Equal(t, "dotenvactor", cfg.Actor)
	})
}

const devKeyForTests = "5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD3"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChainInfoCommand(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		query = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"chain_info":{"blocks_behind":12}}}`))
	}))
	defer server.Close()

	out, err := runCLI(t, "chain-info", "--graph-url", server.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"blocks_behind":12}`, out)
	assert.Contains(t, query, "chain_info")
}

func TestMarketCommandRejectsBadID(t *testing.T) {
	_, err := runCLI(t, "market", "abc", "--graph-url", "https://graph.example")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}

func TestGraphCommandsRequireURL(t *testing.T) {
	t.Setenv("PREDIQT_GRAPH_URL", "")

	_, err := runCLI(t, "markets")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "--graph-url"))
}

func TestSyncRequiresKey(t *testing.T) {
	t.Setenv("PREDIQT_KEY", "")

	_, err := runCLI(t, "sync", "--actor", "prediqtbottt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}
