package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/config"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/loader"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/prefs"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// A broken prefs store only costs theme persistence, never the feed.
	store, err := prefs.Open(config.PrefsPath())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "[warn] theme preference unavailable: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(tui.RunOpts{
		Loader:   loader.New(cfg.Endpoint),
		Prefs:    store,
		PageSize: cfg.GetPageSize(),
		Version:  version,
	})
}
