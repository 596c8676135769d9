package cli

import (
	"github.com/spf13/cobra"

	"github.com/worqlo/deploy-tools/internal/config"
	"github.com/worqlo/deploy-tools/internal/observability"
	"github.com/worqlo/deploy-tools/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Tokenizer vocabulary cache utilities",
}

var vocabDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the tokenizer vocabulary into the cache directory",
	Long: `Downloads the tokenizer's vocabulary files into VOCAB_CACHE_DIR so they
can be baked into the API image. Requires network. Rebuild the image afterwards
so the cache is copied into the container.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		log := observability.NewLogger(cfg.LogLevel)
		log.Info("downloading vocabulary", "encoding", vocab.EncodingName, "dir", cfg.VocabCacheDir)

		files, err := vocab.Download(cfg.VocabCacheDir)
		if err != nil {
			log.Error("vocabulary download failed", "err", err)
			return err
		}
		for _, f := range files {
			log.Info("cache file", "name", f.Name, "bytes", f.Size)
		}
		log.Info("vocabulary cache ready; rebuild the API image to include it")
		return nil
	},
}

var vocabVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the vocabulary cache by encoding a sample string",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		log := observability.NewLogger(cfg.LogLevel)

		if err := vocab.Verify(cfg.VocabCacheDir, log); err != nil {
			log.Error("vocabulary verification failed", "err", err)
			return err
		}
		log.Info("vocabulary cache verified")
		return nil
	},
}

func init() {
	vocabCmd.AddCommand(vocabDownloadCmd, vocabVerifyCmd)
	rootCmd.AddCommand(vocabCmd)
}
