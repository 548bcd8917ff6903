package main

import (
	"github.com/spf13/cobra"

	"github.com/charlescarrari/moon"
	"github.com/charlescarrari/moon/internal/config"
	"github.com/charlescarrari/moon/pkg/export"
	"github.com/charlescarrari/moon/pkg/host/memdom"
)

func exportCmd() *cobra.Command {
	var (
		output string
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the demo app once and write a static snapshot",
		Long: `Render the built-in demo app through a full reconciliation pass and
write the resulting HTML to a local directory, or upload it to an S3
bucket when --bucket is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Export.Output = output
			}
			if bucket != "" {
				cfg.Export.Bucket = bucket
			}
			if prefix != "" {
				cfg.Export.Prefix = prefix
			}
			if region != "" {
				cfg.Export.Region = region
			}
			moon.Silent = cfg.Silent

			doc := memdom.NewDocument()
			body := doc.CreateElement("body")
			demo := &demoApp{}
			app := moon.New(doc, demo.root)
			app.Mount(body)

			var store export.Store
			if cfg.Export.Bucket != "" {
				client := export.NewS3Client(cfg.Export.Region)
				store = export.NewS3Store(client, cfg.Export.Bucket, cfg.Export.Prefix)
				info("uploading to s3://%s/%s", cfg.Export.Bucket, cfg.Export.Prefix)
			} else {
				store = export.NewDirStore(cfg.Export.Output)
				info("writing to %s/", cfg.Export.Output)
			}

			return export.Export(cmd.Context(), store, body)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Local output directory")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload to")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for the bucket")

	return cmd
}
