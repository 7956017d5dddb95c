package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moodgen/composer"
	"moodgen/config"
	"moodgen/debug"
	"moodgen/midi"
	"moodgen/mood"
	"moodgen/server"
	"moodgen/theme"
	"moodgen/tui"
)

var version = "dev"

var (
	cfg       *config.Config
	debugFlag bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "moodgen",
		Short:   "Generate short multi-track MIDI pieces from a mood",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugFlag {
				if err := debug.Enable(); err != nil {
					return fmt.Errorf("enable debug log: %w", err)
				}
			}
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return cfg.RegisterProfiles()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log to "+debug.Path())

	root.AddCommand(generateCmd(), moodsCmd(), previewCmd(), serveCmd(), profileCmd())
	return root
}

func generateCmd() *cobra.Command {
	var (
		moodName string
		seed     int64
		outDir   string
		count    int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write compositions as .mid files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if moodName == "" {
				moodName = cfg.DefaultMood
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			p, err := mood.Preset(moodName)
			if err != nil {
				return err
			}

			for i := 0; i < max(count, 1); i++ {
				c := composer.ComposeSeed(&p, seed+int64(i))
				for _, role := range p.Roles() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s instrument: %s\n", cases.Title(language.English).String(string(role)), c.Instruments[role].Name)
				}
				path := filepath.Join(outDir, c.Filename())
				if err := midi.SaveSMF(path, uint16(c.TicksPerBeat), c.Tracks); err != nil {
					return fmt.Errorf("save %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&moodName, "mood", "m", "", "mood preset (default from config)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (default: current time)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of pieces, using consecutive seeds")
	return cmd
}

func moodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List available moods",
		RunE: func(cmd *cobra.Command, args []string) error {
			th := loadTheme()
			nameStyle := lipgloss.NewStyle().Foreground(th.Accent()).Width(12)
			dimStyle := lipgloss.NewStyle().Foreground(th.Muted())

			for _, name := range mood.Names() {
				p, err := mood.Preset(name)
				if err != nil {
					return err
				}
				scales := make([]string, len(p.Scales))
				for i, s := range p.Scales {
					scales[i] = s.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %3.0fbpm  %-22s %s\n",
					nameStyle.Render(p.Name), p.TempoBPM, strings.Join(scales, ", "), dimStyle.Render(p.Description))
			}
			return nil
		},
	}
}

func previewCmd() *cobra.Command {
	var (
		moodName string
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse compositions in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if moodName == "" {
				moodName = cfg.DefaultMood
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano() % 1_000_000
			}
			m := tui.NewModel(loadTheme(), moodName, seed, cfg.OutputDir, cfg.UI.LaneWidth)
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&moodName, "mood", "m", "", "mood preset (default from config)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve compositions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}
			srv := server.New(server.Config{Addr: addr}, debug.Logger())
			if !debug.Enabled() {
				debug.EnableWriter(os.Stderr)
			}
			return srv.Run(context.Background())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage custom moods in the config file",
	}

	var (
		from  string
		kit   string
		force bool
	)
	initCmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Copy a preset into the config as a new editable mood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if cfg.FindProfile(name) != nil && !force {
				return fmt.Errorf("profile %q already exists (use --force)", name)
			}
			p, err := mood.Preset(from)
			if err != nil {
				return err
			}
			p.Name = name
			p.Description = "copy of " + from
			if kit != "" {
				if _, ok := mood.LookupKit(kit); !ok {
					return fmt.Errorf("unknown kit %q (available: %s)", kit, strings.Join(mood.KitNames(), ", "))
				}
				p.Percussion.KitName = kit
				p.Percussion.Kit = mood.GetKit(kit)
			}
			cfg.AddProfile(p)
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			path, _ := config.ConfigPath()
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", name, path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&from, "from", "happy", "preset to copy")
	initCmd.Flags().StringVar(&kit, "kit", "", "drum kit for the percussion layer")
	initCmd.Flags().BoolVar(&force, "force", false, "replace an existing profile")

	cmd.AddCommand(initCmd)
	return cmd
}

func loadTheme() *theme.Theme {
	if cfg != nil && cfg.UI.Palette != "" {
		p, err := theme.LoadGPL(cfg.UI.Palette)
		if err == nil {
			return theme.New(p)
		}
		debug.Log("theme", "falling back to default palette: %v", err)
	}
	return theme.Default()
}
