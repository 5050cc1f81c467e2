package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/construction-site/internal/seed"
)

var (
	seedFile  string
	seedForce bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load site content from a YAML file",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "content.yaml", "content file")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "replace existing content")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return err
	}
	defer f.Close()

	content, err := seed.Load(f)
	if err != nil {
		return err
	}

	_, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := seed.Apply(cmd.Context(), db, content, seedForce)
	if err != nil {
		return err
	}

	log.Info("content seeded",
		zap.String("file", seedFile),
		zap.Bool("company", res.Company),
		zap.Int("services", res.Services),
		zap.Int("projects", res.Projects),
		zap.Int("team", res.Team),
	)
	return nil
}
