package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-file-drop/models"
)

const stdoutPath = "-"

func (a *App) uploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload local files in a single request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.adapter == nil {
				return ErrNoAdapter
			}

			files := make([]models.StoredFile, 0, len(args))
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrReadingLocalFile, err)
				}
				files = append(files, models.StoredFile{
					Name:     filepath.Base(path),
					Content:  content,
					Location: models.LocationUpload,
				})
			}

			if err := a.adapter.Upload(cmd.Context(), files...); err != nil {
				return fmt.Errorf("upload: %w", err)
			}

			for _, file := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%d bytes)\n", file.Name, file.Size())
			}
			return nil
		},
	}
}

func (a *App) downloadCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <name>",
		Short: "Download a file from the shared location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.adapter == nil {
				return ErrNoAdapter
			}

			file, err := a.adapter.Download(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("download: %w", err)
			}

			if output == stdoutPath {
				_, err = cmd.OutOrStdout().Write(file.Content)
				return err
			}

			path := output
			if path == "" {
				path = filepath.Base(file.Name)
			}
			if err = os.WriteFile(path, file.Content, 0o644); err != nil {
				return fmt.Errorf("%w: %w", ErrWritingLocalFile, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d bytes)\n", path, file.Size())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `destination path, "-" for stdout (default: the file name)`)

	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.adapter == nil {
				return ErrNoAdapter
			}

			fmt.Fprint(cmd.OutOrStdout(), a.buildInfo.String())

			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", serverVersion)
			return nil
		},
	}
}
