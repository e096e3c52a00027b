package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/koskimas/lspgen/internal/config"
	"github.com/koskimas/lspgen/internal/gen"
	"github.com/koskimas/lspgen/internal/schema"
	"github.com/koskimas/lspgen/internal/translate"
	"github.com/rs/zerolog"
)

const (
	defaultConfigFile = "lspgen.toml"
	defaultOutFile    = "lsp_types.go"
	defaultPackage    = "lsp"
)

// Settings configures a single generator run. Relative paths are resolved
// against `WorkingDir`.
type Settings struct {
	WorkingDir string
	MetaModel  string
	Config     string
	Out        string
	Package    string

	// Bless rewrites the config with the current fingerprint of every
	// drifted entity.
	Bless bool

	Logger zerolog.Logger

	// Hints receives the missing and unused config entries. Defaults to
	// os.Stderr.
	Hints io.Writer
}

func Run(s Settings) error {
	configPath := resolve(s, s.Config, defaultConfigFile)

	cfg, err := config.Read(configPath)
	if err != nil {
		return err
	}

	m, err := schema.Read(resolve(s, s.MetaModel, ""))
	if err != nil {
		return err
	}

	if m.MetaData.Version != cfg.Version {
		s.Logger.Warn().
			Str("metaModel", m.MetaData.Version).
			Str("config", cfg.Version).
			Msg("config was written for a different meta-model version")
	}

	res, err := translate.Schema(m, cfg, s.Logger)
	if err != nil {
		return err
	}

	if err := writeHints(s, &res.Diagnostics); err != nil {
		return err
	}

	if s.Bless && len(res.Diagnostics.Drift) > 0 {
		if err := bless(s, configPath, cfg, res.Diagnostics.Drift); err != nil {
			return err
		}
	}

	pkg := s.Package
	if pkg == "" {
		pkg = defaultPackage
	}

	f, err := gen.GenerateCode(pkg, res.Items)
	if err != nil {
		return err
	}

	outPath := resolve(s, s.Out, defaultOutFile)
	if err := gen.WriteFile(f, outPath); err != nil {
		return err
	}

	s.Logger.Info().
		Str("out", outPath).
		Int("items", len(res.Items)).
		Msg("generated")

	return nil
}

func writeHints(s Settings, d *translate.Diagnostics) error {
	if d.Empty() {
		return nil
	}

	w := s.Hints
	if w == nil {
		w = os.Stderr
	}

	return d.WriteHints(w)
}

// bless stores the current fingerprint of every drifted entity so the next
// run accepts it.
func bless(s Settings, configPath string, cfg *config.Config, drift []translate.Drift) error {
	for _, d := range drift {
		cfg.Table(d.Table)[d.Name] = config.Checksum(d.Actual)

		s.Logger.Info().
			Str("table", d.Table).
			Str("name", d.Name).
			Str("checksum", d.Actual).
			Msg("blessed")
	}

	return config.Write(configPath, cfg)
}

func resolve(s Settings, path, def string) string {
	if path == "" {
		path = def
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(s.WorkingDir, path)
}
