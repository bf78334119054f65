package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/feedcast/api/types"
	"github.com/killallgit/feedcast/internal/database"
	"github.com/killallgit/feedcast/internal/services/archive"
	"github.com/killallgit/feedcast/pkg/config"
)

const testFeed = `<?xml version="1.0"?>
<rss><channel>
<link>https://example.com/</link>
<item><title>T1</title><link>https://example.com/1</link><description>Desc A</description><enclosure url="http://a.mp3"/></item>
<item><title>T2</title><link>https://example.com/2</link></item>
</channel></rss>`

func writeFeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.xml")
	require.NoError(t, os.WriteFile(path, []byte(testFeed), 0o644))
	return path
}

// runCommand executes the CLI with fresh configuration and returns stdout
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{name: "root command without args shows help", args: []string{}, expectedOutput: "feedcast - parse a podcast feed"},
		{name: "root command with --help", args: []string{"--help"}, expectedOutput: "Available Commands:"},
		{name: "root command with invalid flag", args: []string{"--invalid-flag"}, wantErr: true},
		{name: "unknown subcommand", args: []string{"nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.expectedOutput)
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "parse", "archive", "migrate", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
	assert.NotNil(t, root.PersistentFlags().Lookup("json-logs"))
}

func TestServeCommand_Flags(t *testing.T) {
	serve, _, err := NewRootCmd().Find([]string{"serve"})
	require.NoError(t, err)

	for _, name := range []string{"feed", "host", "port"} {
		assert.NotNil(t, serve.Flags().Lookup(name), name)
	}
}

func TestServeCommand_FeedFailureIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.xml")

	_, err := runCommand(t, "serve", "--feed", missing, "--port", "18089")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "vdev\n", out)

	out, err = runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "feedcast")
	assert.Contains(t, out, "Git Commit:")
	assert.Contains(t, out, "OS/Arch:")
}

func TestParseCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "parse", "--feed", writeFeed(t), "--json")
	require.NoError(t, err)

	var episodes []types.Episode
	require.NoError(t, json.Unmarshal([]byte(out), &episodes))
	require.Len(t, episodes, 2)

	assert.Equal(t, types.Episode{ID: 0, Title: "episode #1", Description: "Desc A", AudioURL: "http://a.mp3", HasAudio: true}, episodes[0])
	assert.Equal(t, types.Episode{ID: 1, Title: "episode #2"}, episodes[1])
}

func TestParseCommand_Table(t *testing.T) {
	out, err := runCommand(t, "parse", "--feed", writeFeed(t))
	require.NoError(t, err)

	assert.Contains(t, out, "episode #1")
	assert.Contains(t, out, "http://a.mp3")
	assert.Contains(t, out, "episode #2")
	assert.Contains(t, out, "Description")
	assert.Contains(t, out, "2 episodes")
}

func TestParseCommand_MissingFeed(t *testing.T) {
	_, err := runCommand(t, "parse", "--feed", filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestParseCommand_InvalidLogLevel(t *testing.T) {
	_, err := runCommand(t, "parse", "--feed", writeFeed(t), "--log-level", "chatty")
	assert.Error(t, err)
}

func TestArchiveCommand(t *testing.T) {
	feedPath := writeFeed(t)
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	out, err := runCommand(t, "archive", "--feed", feedPath, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Archived 2 episodes")

	// Archiving again replaces rather than appends
	_, err = runCommand(t, "archive", "--feed", feedPath, "--db", dbPath)
	require.NoError(t, err)

	db, err := database.Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	count, err := archive.NewRepository(db.DB).CountByFeed(context.Background(), feedPath)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMigrateCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	out, err := runCommand(t, "migrate", "--dry-run", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run mode")
	assert.Contains(t, out, "archived_episodes")
	assert.NoFileExists(t, dbPath)

	out, err = runCommand(t, "migrate", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Archive schema up to date")
	assert.FileExists(t, dbPath)

	db, err := database.Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()
	assert.True(t, db.Migrator().HasTable("archived_episodes"))
}
