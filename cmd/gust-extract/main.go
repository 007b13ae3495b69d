package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holly-hacker/gust-archive/pkg/gust"
	"github.com/holly-hacker/gust-archive/pkg/gustg1t"
	"github.com/holly-hacker/gust-archive/pkg/logging"
)

const version = "0.1.0"

var (
	logLevel    string
	versionFlag bool

	pakGeneration string
	pakOutputDir  string

	g1tIndex     int
	g1tOutputDir string

	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "gust-extract",
		Short: "Read and extract Atelier PAK archives and G1T texture containers",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&versionFlag, "version", "V", false, "show version information")

	pakCmd := &cobra.Command{
		Use:   "pak",
		Short: "Work with .pak archives",
	}

	pakListCmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List entries in a PAK archive",
		Args:  cobra.ExactArgs(1),
		RunE:  runPakList,
	}
	pakListCmd.Flags().StringVarP(&pakGeneration, "game", "g", "", "game generation, e.g. A24 (required)")
	_ = pakListCmd.MarkFlagRequired("game")

	pakExtractCmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract every entry in a PAK archive to disk",
		Args:  cobra.ExactArgs(1),
		RunE:  runPakExtract,
	}
	pakExtractCmd.Flags().StringVarP(&pakGeneration, "game", "g", "", "game generation, e.g. A24 (required)")
	pakExtractCmd.Flags().StringVarP(&pakOutputDir, "output", "o", "", "output directory (default: alongside the input file)")
	_ = pakExtractCmd.MarkFlagRequired("game")

	pakCmd.AddCommand(pakListCmd, pakExtractCmd)

	g1tCmd := &cobra.Command{
		Use:   "g1t",
		Short: "Work with .g1t texture containers",
	}

	g1tListCmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List textures in a G1T container",
		Args:  cobra.ExactArgs(1),
		RunE:  runG1TList,
	}

	g1tDecodeCmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode one texture to a raw RGBA8 file",
		Args:  cobra.ExactArgs(1),
		RunE:  runG1TDecode,
	}
	g1tDecodeCmd.Flags().IntVar(&g1tIndex, "index", 0, "texture index to decode")
	g1tDecodeCmd.Flags().StringVarP(&g1tOutputDir, "output", "o", "", "output directory (default: alongside the input file)")

	g1tCmd.AddCommand(g1tListCmd, g1tDecodeCmd)

	rootCmd.AddCommand(pakCmd, g1tCmd)
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("gust-extract %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func effectiveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return logging.GetLogLevel()
}

func runPakList(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("gust-extract %s\n", version)
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open pak file: %w", err)
	}
	defer f.Close()

	idx, err := gust.OpenPak(f, pakGeneration)
	if err != nil {
		return fmt.Errorf("read pak index: %w", err)
	}

	for _, entry := range idx.Entries {
		fmt.Printf("- %s (%d bytes)\n", entry.Name, entry.Size)
	}
	return nil
}

func runPakExtract(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("gust-pak", effectiveLogLevel(), nil)

	inputPath := args[0]
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open pak file: %w", err)
	}
	defer f.Close()

	idx, err := gust.OpenPak(f, pakGeneration)
	if err != nil {
		return fmt.Errorf("read pak index: %w", err)
	}
	logger.Info("read pak index", "entry_count", len(idx.Entries))

	outputDir := pakOutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}

	for _, entry := range idx.Entries {
		r, err := idx.Open(f, entry)
		if err != nil {
			logger.Error("failed to open entry reader", "name", entry.Name, "error", err)
			continue
		}

		relPath := strings.ReplaceAll(entry.Name, `\`, string(filepath.Separator))
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		destPath := filepath.Join(outputDir, relPath)

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			logger.Error("failed to create directory", "path", filepath.Dir(destPath), "error", err)
			continue
		}

		out, err := os.Create(destPath)
		if err != nil {
			logger.Error("failed to create output file", "path", destPath, "error", err)
			continue
		}

		if _, err := io.CopyN(out, r, int64(entry.Size)); err != nil {
			logger.Error("failed to read entry", "name", entry.Name, "error", err)
			out.Close()
			continue
		}
		out.Close()
		logger.Debug("extracted entry", "name", entry.Name, "path", destPath)
	}

	return nil
}

func runG1TList(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("gust-g1t", effectiveLogLevel(), nil)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open g1t file: %w", err)
	}
	defer f.Close()

	container, err := gustg1t.Parse(f, logger)
	if err != nil {
		return fmt.Errorf("parse g1t file: %w", err)
	}

	for i, tex := range container.Textures {
		fmt.Printf("- texture %d: %dx%d, type 0x%02x, %d frame(s)\n", i, tex.Width, tex.Height, tex.TypeCode(), tex.Frames)
	}
	return nil
}

func runG1TDecode(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("gust-g1t", effectiveLogLevel(), nil)

	inputPath := args[0]
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open g1t file: %w", err)
	}
	defer f.Close()

	container, err := gustg1t.Parse(f, logger)
	if err != nil {
		return fmt.Errorf("parse g1t file: %w", err)
	}

	if g1tIndex < 0 || g1tIndex >= len(container.Textures) {
		return fmt.Errorf("texture index %d out of range (container has %d textures)", g1tIndex, len(container.Textures))
	}
	tex := container.Textures[g1tIndex]

	rgba, err := container.Decode(f, tex)
	if err != nil {
		return fmt.Errorf("decode texture %d: %w", g1tIndex, err)
	}

	outputDir := g1tOutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	outPath := filepath.Join(outputDir, fmt.Sprintf("texture_%d_%dx%d.rgba8", g1tIndex, tex.Width, tex.Height))
	if err := os.WriteFile(outPath, rgba, 0o644); err != nil {
		return fmt.Errorf("write decoded texture: %w", err)
	}
	logger.Info("decoded texture", "path", outPath, "width", tex.Width, "height", tex.Height)
	return nil
}
