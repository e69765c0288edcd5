package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "datamaps/internal/errors"
)

// Paths holds the resolved locations the application reads and writes.
type Paths struct {
	DocsDir   string
	InputDir  string
	OutputDir string
	LogsDir   string

	MasterFile  string
	DatamapFile string
	BlankFile   string
}

// GetPaths resolves the paths described by c.
func (c *Config) GetPaths() *Paths {
	p := &Paths{
		DocsDir:   c.Paths.DocsDir,
		InputDir:  c.Paths.InputDir,
		OutputDir: c.Paths.OutputDir,
		LogsDir:   filepath.Join(c.Paths.DocsDir, DefaultLogsDir),
	}
	if c.Logging.FilePath != "" {
		p.LogsDir = filepath.Dir(c.Logging.FilePath)
	}
	p.MasterFile = p.inInput(c.Paths.MasterFile)
	p.DatamapFile = p.inInput(c.Paths.DatamapFile)
	p.BlankFile = p.inInput(c.Paths.BlankFile)
	return p
}

func (p *Paths) inInput(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.InputDir, name)
}

// EnsureDirectories creates the input, output and logs directories.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.InputDir, p.OutputDir, p.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err).
				WithContext("directory", dir)
		}
	}
	return nil
}

// GetOutputPath returns filename inside the output directory. Absolute
// names are returned unchanged.
func (p *Paths) GetOutputPath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(p.OutputDir, filename)
}

// InputFile is one of the files the input directory is expected to hold.
type InputFile struct {
	Role   string `json:"role" yaml:"role"`
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

// CheckInputFiles reports on the master, the datamap and the blank
// template. A file with no configured name counts as missing.
func (p *Paths) CheckInputFiles() []InputFile {
	files := []InputFile{
		{Role: "master", Path: p.MasterFile},
		{Role: "datamap", Path: p.DatamapFile},
		{Role: "blank", Path: p.BlankFile},
	}
	for i := range files {
		files[i].Exists = files[i].Path != "" && FileExists(files[i].Path)
	}
	return files
}

// MissingInputFiles returns the entries of files that do not exist.
func MissingInputFiles(files []InputFile) []InputFile {
	var missing []InputFile
	for _, f := range files {
		if !f.Exists {
			missing = append(missing, f)
		}
	}
	return missing
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LogPathResolution logs every resolved path at debug level.
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("Resolved paths",
		slog.String("docs_dir", p.DocsDir),
		slog.String("input_dir", p.InputDir),
		slog.String("output_dir", p.OutputDir),
		slog.String("logs_dir", p.LogsDir),
		slog.String("master_file", p.MasterFile),
		slog.Bool("master_exists", FileExists(p.MasterFile)),
		slog.String("datamap_file", p.DatamapFile),
		slog.String("blank_file", p.BlankFile))
}
