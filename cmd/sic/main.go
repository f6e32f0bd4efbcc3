package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TGotwig/sic/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}
	configureLogging()

	var (
		input        string
		output       string
		script       string
		outputFormat string
		jpegQuality  int
		outputDir    string
		workers      int
	)

	rootCmd := &cobra.Command{
		Use:     "sic [flags] [operation [operand...]]...",
		Short:   "Apply a chain of image operations and convert between formats",
		Long:    "sic reads an image, applies the given operations left to right, and writes the result.\nOperations can be given as trailing arguments (e.g. `resize 100 100 grayscale`) or\nas a script via --apply-operations (e.g. \"resize 100 100; grayscale\").",
		Version: Version + " (" + GitCommit + ")",
		Args:    cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return cli.Run(cli.Options{
				Input:        input,
				Output:       output,
				Script:       script,
				Tokens:       args,
				ForcedFormat: outputFormat,
				JPEGQuality:  jpegQuality,
			})
		},
	}

	rootCmd.Flags().StringVarP(&input, "input", "i", "", "Input image path (default: stdin)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output image path (default: stdout)")
	rootCmd.PersistentFlags().StringVar(&script, "apply-operations", "", "Operations as a ';'-separated script")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output-format", "f", "", "Force output format (bmp, gif, jpeg, png, tiff)")
	rootCmd.PersistentFlags().IntVar(&jpegQuality, "jpeg-quality", 0, "JPEG encoding quality (1-100)")

	batchCmd := &cobra.Command{
		Use:   "batch <glob> [operation [operand...]]...",
		Short: "Convert every image matching a glob pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cli.RunBatch(context.Background(), cli.BatchOptions{
				Pattern:      args[0],
				OutputDir:    outputDir,
				Workers:      workers,
				Script:       script,
				Tokens:       args[1:],
				ForcedFormat: outputFormat,
				JPEGQuality:  jpegQuality,
			})
		},
	}
	batchCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for converted images")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "Max concurrent conversions (0 = unlimited)")
	rootCmd.AddCommand(batchCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// configureLogging sends logs to stderr so stdout stays clean for piped
// image output.
func configureLogging() {
	logrus.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(os.Getenv("SIC_LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}
}
