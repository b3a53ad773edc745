package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agleyzer/lightseq/internal/config"
	"github.com/agleyzer/lightseq/internal/side"
	"github.com/agleyzer/lightseq/internal/template"
)

// inputFlags selects where the staging buffers come from: literal byte text
// or a template file.
type inputFlags struct {
	left1, left2   string
	right1, right2 string
	template       string
	name           string
}

type commandContext struct {
	configPath string
	verbose    bool
	input      inputFlags

	config *config.Config
	logger *slog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{
		logger: slog.New(slog.DiscardHandler),
	}
}

func (c *commandContext) setupLogger(w io.Writer) {
	logLevel := slog.LevelInfo
	if c.verbose {
		logLevel = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := config.Load(strings.TrimSpace(c.configPath))
	if err != nil {
		return nil, err
	}
	c.config = cfg
	c.logger.Debug("configuration loaded",
		"path", c.configPath,
		"max_staging1", cfg.MaxStaging1,
		"max_staging2", cfg.MaxStaging2,
		"time_scale", cfg.TimeScale,
	)
	return cfg, nil
}

func addInputFlags(cmd *cobra.Command, ctx *commandContext) {
	flags := cmd.Flags()
	flags.StringVar(&ctx.input.left1, "left1", "", "Left side Staging1 bytes")
	flags.StringVar(&ctx.input.left2, "left2", "", "Left side Staging2 bytes")
	flags.StringVar(&ctx.input.right1, "right1", "", "Right side Staging1 bytes")
	flags.StringVar(&ctx.input.right2, "right2", "", "Right side Staging2 bytes")
	flags.StringVarP(&ctx.input.template, "template", "t", "", "Template file, or template directory with --name")
	flags.StringVar(&ctx.input.name, "name", "", "Template name inside the --template directory")
}

// loadWorkspace builds a workspace from the input flags.
func (c *commandContext) loadWorkspace() (*side.Workspace, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	ws := side.New(cfg, c.logger)

	if c.input.template == "" {
		ws.Load(side.Left, c.input.left1, c.input.left2)
		ws.Load(side.Right, c.input.right1, c.input.right2)
		return ws, nil
	}

	tmpl, err := c.findTemplate()
	if err != nil {
		return nil, err
	}
	for _, issue := range tmpl.Validate() {
		c.logger.Warn("template byte ignored", "template", tmpl.Name, "issue", issue.String())
	}
	tmpl.Apply(ws)
	c.logger.Debug("template applied", "template", tmpl.Name)

	return ws, nil
}

func (c *commandContext) findTemplate() (*template.Template, error) {
	path := c.input.template
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	if !info.IsDir() {
		return template.LoadFile(path)
	}

	if c.input.name == "" {
		return nil, fmt.Errorf("--name is required when --template is a directory")
	}
	templates, err := template.LoadDir(path)
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if t.Name == c.input.name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("template %q not found in %s", c.input.name, filepath.Clean(path))
}
