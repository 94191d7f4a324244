package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/companylist"
)

func newSampleCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample competitor list file",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := companylist.WriteSample(path)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "competitors.txt", "sample file path")
	return cmd
}
