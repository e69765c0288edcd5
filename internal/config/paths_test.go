package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "datamaps/internal/errors"
)

func TestGetPaths(t *testing.T) {
	docs := t.TempDir()
	cfg := Default()
	cfg.Paths.DocsDir = docs
	cfg.Logging.FilePath = filepath.Join("logs", "app.log")
	cfg.resolvePaths()

	p := cfg.GetPaths()
	assert.Equal(t, filepath.Join(docs, "input"), p.InputDir)
	assert.Equal(t, filepath.Join(docs, "input", DefaultMasterFileName), p.MasterFile)
	assert.Equal(t, filepath.Join(docs, "input", DefaultDatamapFileName), p.DatamapFile)
	assert.Equal(t, filepath.Join(docs, "logs"), p.LogsDir)
	assert.Equal(t, filepath.Join(docs, "output", "x.json"), p.GetOutputPath("x.json"))

	require.NoError(t, p.EnsureDirectories())
	assert.True(t, FileExists(p.InputDir))
	assert.True(t, FileExists(p.OutputDir))
	assert.True(t, FileExists(p.LogsDir))
	assert.False(t, FileExists(p.MasterFile))

	p.LogPathResolution(nil)
}

func TestGetPaths_AbsoluteMaster(t *testing.T) {
	cfg := Default()
	cfg.Paths.DocsDir = t.TempDir()
	cfg.Paths.MasterFile = "/srv/masters/q1.xlsx"
	cfg.resolvePaths()

	assert.Equal(t, "/srv/masters/q1.xlsx", cfg.GetPaths().MasterFile)
}

func TestEnsureDirectories_StorageError(t *testing.T) {
	docs := t.TempDir()
	blocker := filepath.Join(docs, "input")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	p := &Paths{InputDir: filepath.Join(blocker, "nested")}
	err := p.EnsureDirectories()
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeStorage, appErr.Type)
	assert.Equal(t, p.InputDir, appErr.Context["directory"])
}

func TestCheckInputFiles(t *testing.T) {
	docs := t.TempDir()
	cfg := Default()
	cfg.Paths.DocsDir = docs
	cfg.Paths.BlankFile = ""
	cfg.resolvePaths()

	p := cfg.GetPaths()
	require.NoError(t, p.EnsureDirectories())
	require.NoError(t, os.WriteFile(p.MasterFile, []byte("x"), 0644))

	files := p.CheckInputFiles()
	require.Len(t, files, 3)
	assert.Equal(t, InputFile{Role: "master", Path: p.MasterFile, Exists: true}, files[0])
	assert.Equal(t, "datamap", files[1].Role)
	assert.False(t, files[1].Exists)
	assert.Equal(t, InputFile{Role: "blank"}, files[2])

	missing := MissingInputFiles(files)
	require.Len(t, missing, 2)
	assert.Equal(t, "datamap", missing[0].Role)
	assert.Equal(t, "blank", missing[1].Role)
}

func TestGetOutputPath_Absolute(t *testing.T) {
	p := &Paths{OutputDir: "/srv/out"}
	assert.Equal(t, "/srv/out/q1.json", p.GetOutputPath("q1.json"))
	assert.Equal(t, "/tmp/q1.json", p.GetOutputPath("/tmp/q1.json"))
}
