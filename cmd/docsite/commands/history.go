package commands

import (
	"fmt"

	"github.com/echolabx/docsite/internal/config"
	"github.com/echolabx/docsite/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Repo string `default:"." help:"Directory inside the git working tree"`
	File string `help:"Site definition file; defaults to site_file from the configuration"`
}

func (h *HistoryCmd) Run(global *Global, root *CLI) error {
	file := h.File
	if file == "" {
		cfg, err := loadConfig(global, root)
		if err != nil {
			return err
		}
		if cfg.SiteFile == "" {
			file = config.DefaultSiteFileName
		} else {
			file = cfg.ResolvePath(cfg.SiteFile)
		}
	}

	versions, err := history.Versions(h.Repo, file)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		_, _ = fmt.Fprintf(global.Out, "No committed versions of %s\n", file)
		return nil
	}

	for i, v := range versions {
		_, _ = fmt.Fprintf(global.Out, "%s %s %s: %s\n",
			v.Short(), v.When.Format("2006-01-02"), v.Author, v.Subject)
		if v.Err != nil {
			_, _ = fmt.Fprintf(global.Out, "    does not decode: %v\n", v.Err)
			continue
		}
		older := previousDecodable(versions[i+1:])
		if older == nil {
			continue
		}
		for _, c := range history.DiffSidebars(older.Site.Sidebar, v.Site.Sidebar) {
			_, _ = fmt.Fprintf(global.Out, "    %s\n", c)
		}
	}
	return nil
}

func previousDecodable(older []history.Version) *history.Version {
	for i := range older {
		if older[i].Err == nil {
			return &older[i]
		}
	}
	return nil
}
