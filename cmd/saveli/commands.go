package saveli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/saveli-project/saveli/pkg/catalog"
	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/game"
	"github.com/saveli-project/saveli/pkg/settings"
	"github.com/saveli-project/saveli/pkg/style"
	"github.com/spf13/cobra"
)

func newSetStoragePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-storage-path <path>",
		Short: MsgSetStorageShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings.Load()
			if err := s.SetStoragePath(args[0]); err != nil {
				return err
			}
			pterm.Success.Printfln(MsgStoragePathSet, s.StoragePath)
			return nil
		},
	}
}

// openForBatch loads settings and the catalog, failing early when no
// absolute storage path was configured.
func openForBatch() (*settings.Settings, *catalog.Catalog, error) {
	s := settings.Load()
	if err := s.RequireStoragePath(); err != nil {
		return nil, nil, err
	}

	c, err := catalog.Open(s.StoragePath)
	if err != nil {
		return nil, nil, err
	}

	return s, c, nil
}

// batchOptions assembles the orchestrator options from settings.
func batchOptions(s *settings.Settings, c *catalog.Catalog, dryRun bool) game.Options {
	return game.Options{
		Entries:     c.Entries,
		StorageRoot: s.StoragePath,
		IsIgnored:   s.IsIgnored,
		DryRun:      dryRun,
	}
}

// reportBatch summarizes a finished batch. Per-entry failures were
// already printed, they don't affect the exit status.
func reportBatch(results []game.Result, dryRun bool) {
	if dryRun {
		pterm.Println(style.MutedStyle.Render(MsgDryRunNotice))
		return
	}
	if failed := game.Failed(results); failed > 0 {
		pterm.Warning.Printfln(MsgBatchFailures, failed)
	}
}

func newLinkCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "link",
		Short: MsgLinkShort,
		Long:  MsgLinkLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, c, err := openForBatch()
			if err != nil {
				return err
			}
			results, err := game.LinkAll(batchOptions(s, c, dryRun))
			if err != nil {
				return err
			}
			reportBatch(results, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, MsgFlagDryRun)
	return cmd
}

func newRestoreCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: MsgRestoreShort,
		Long:  MsgRestoreLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, c, err := openForBatch()
			if err != nil {
				return err
			}
			results, err := game.RestoreAll(batchOptions(s, c, dryRun))
			if err != nil {
				return err
			}
			reportBatch(results, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, MsgFlagDryRun)
	return cmd
}

func newUnlinkCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "unlink",
		Short: MsgUnlinkShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, c, err := openForBatch()
			if err != nil {
				return err
			}
			results, err := game.UnlinkAll(batchOptions(s, c, dryRun))
			if err != nil {
				return err
			}
			reportBatch(results, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, MsgFlagDryRun)
	return cmd
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: MsgSearchShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := openForBatch()
			if err != nil {
				return err
			}

			found, err := c.Search(args[0])
			if err != nil {
				return err
			}

			if len(found) == 0 {
				pterm.Println(MsgSearchNoMatch)
				return nil
			}

			for _, e := range found {
				pterm.Printfln(MsgSearchMatch, style.Bold(e.Title), e.ID)
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <id> <path>",
		Short: MsgAddShort,
		Long:  MsgAddLong,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, id, template := args[0], args[1], args[2]
			if title == "" || id == "" || template == "" {
				return errors.New(errors.ErrInvalidInput, "the title, id and path must not be empty")
			}

			_, c, err := openForBatch()
			if err != nil {
				return err
			}

			save, err := catalog.NewSavePath("default", template)
			if err != nil {
				return err
			}

			entry := catalog.Entry{
				Title:  title,
				ID:     id,
				Custom: true,
				Saves:  []catalog.SavePath{save},
			}
			if err := c.Add(entry); err != nil {
				return err
			}

			pterm.Success.Printfln(MsgAdded, title, id)
			return nil
		},
	}
}

func newIgnoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ignore <id>",
		Short: MsgIgnoreShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings.Load()
			if err := s.Ignore(args[0]); err != nil {
				return err
			}
			fmt.Printf(MsgIgnored+"\n", args[0])
			return nil
		},
	}
}

func newHeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heed <id>",
		Short: MsgHeedShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings.Load()
			if err := s.Heed(args[0]); err != nil {
				return err
			}
			fmt.Printf(MsgHeeded+"\n", args[0])
			return nil
		},
	}
}
