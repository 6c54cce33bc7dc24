package commands

import (
	"bytes"
	"fmt"

	"github.com/google/renameio/v2"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/generator"
	"github.com/echolabx/docsite/internal/schema"
	"github.com/echolabx/docsite/internal/sidebar"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output string `short:"o" help:"Write the HTML preview to this file instead of stdout"`
}

func (r *RenderCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(global, root)
	if err != nil {
		return err
	}
	s, _, err := generator.NewGenerator(cfg).Prepare()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := sidebar.Render(&buf, s.Sidebar); err != nil {
		return derrors.RenderError("failed to render sidebar").WithCause(err).Build()
	}
	buf.WriteByte('\n')
	return writeOutput(global, r.Output, buf.Bytes())
}

// SchemaCmd implements the 'schema' command.
type SchemaCmd struct {
	Output string `short:"o" help:"Write the schema to this file instead of stdout"`
}

func (s *SchemaCmd) Run(global *Global, _ *CLI) error {
	data, err := schema.JSON()
	if err != nil {
		return derrors.InternalError("failed to generate schema").WithCause(err).Build()
	}
	return writeOutput(global, s.Output, data)
}

func writeOutput(global *Global, path string, data []byte) error {
	if path == "" {
		_, err := global.Out.Write(data)
		return err
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return derrors.FileSystemError("failed to write file").WithCause(err).
			WithContext("path", path).Build()
	}
	_, _ = fmt.Fprintf(global.Out, "Wrote %s\n", path)
	return nil
}
