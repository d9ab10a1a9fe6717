package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/site"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the bootstrapped page and its stylesheets to a directory",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output directory (default: $BUILD_DIR)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	dir := cfg.BuildDir
	if buildOut != "" {
		dir = buildOut
	}

	tp, stopTracing, err := startTracing(cmd)
	if err != nil {
		return err
	}
	defer stopTracing()

	builder := site.New(site.Options{
		Title:          cfg.AppTitle,
		MountID:        cfg.MountID,
		TracerProvider: tp,
		Logger:         logger,
	})
	files, err := builder.Write(cmd.Context(), dir)
	if err != nil {
		return err
	}

	logger.Info("build complete", "dir", dir, "files", len(files))
	return nil
}
