package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/publish"
	"github.com/vango-dev/vango-ui/internal/site"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Build in memory and upload the result to $S3_BUCKET",
	Args:  cobra.NoArgs,
	RunE:  runPublish,
}

func runPublish(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidatePublish(); err != nil {
		return err
	}

	builder := site.New(site.Options{Title: cfg.AppTitle, MountID: cfg.MountID, Logger: logger})
	files, err := builder.Files(cmd.Context())
	if err != nil {
		return err
	}

	p, err := publish.New(publish.NewClient(cfg), cfg.S3Bucket, cfg.S3Prefix, logger)
	if err != nil {
		return err
	}
	if err := p.Publish(cmd.Context(), files); err != nil {
		return err
	}

	logger.Info("publish complete", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix, "files", len(files))
	return nil
}
