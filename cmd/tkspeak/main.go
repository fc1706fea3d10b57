package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"generate-speech-api/application/ports/inbound"
	"generate-speech-api/application/services"
	"generate-speech-api/config"
	"generate-speech-api/infrastructure/adapters"
)

var rootCmd = &cobra.Command{
	Use:   "tkspeak [text...]",
	Short: "Synthesize speech from text and write the audio to stdout",
	Long: `tkspeak splits the input text into request-sized segments, synthesizes
every segment through the remote speech endpoint in parallel, and writes the
stitched audio to stdout so it can be piped into a player.

Text is taken from the arguments, or from stdin when no arguments are given.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringP("speaker", "s", config.DefaultSpeaker, "Speaker voice to synthesize with")
	rootCmd.Flags().Bool("url-only", false, "Print the first segment's request descriptor instead of synthesizing")
	rootCmd.Flags().Int("byte-limit", config.DefaultByteLimit, "Maximum UTF-8 byte length per request text")
}

func run(cmd *cobra.Command, args []string) error {
	speaker, err := cmd.Flags().GetString("speaker")
	if err != nil {
		return err
	}
	urlOnly, err := cmd.Flags().GetBool("url-only")
	if err != nil {
		return err
	}
	byteLimit, err := cmd.Flags().GetInt("byte-limit")
	if err != nil {
		return err
	}

	text, err := readText(args)
	if err != nil {
		return err
	}

	logger := adapters.NewZerologWrapper()
	segmenter := services.NewTextSegmenter(logger)

	if urlOnly {
		segments, err := segmenter.Split(text, byteLimit)
		if err != nil {
			return err
		}
		if len(segments) == 0 {
			return nil
		}
		fmt.Println(adapters.DescribeSpeechRequest(segments[0].Text, speaker))
		return nil
	}

	config.LoadDotenv()
	tiktokConfig, err := config.GetTikTokConfig()
	if err != nil {
		return err
	}
	poolConfig, err := config.GetWorkerPoolConfig()
	if err != nil {
		return err
	}

	workerPool, err := ants.NewPool(poolConfig.Size)
	if err != nil {
		return err
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(logger)
	speechClient := adapters.NewTikTokSpeechClient(contentFetcher, tiktokConfig, logger)

	synthesizer := services.NewSpeechSynthesizer(logger, speechClient, workerPool)
	assembler := services.NewAudioAssembler(logger)

	orchestrator := services.NewSynthesisOrchestrator(logger, workerPool, segmenter, synthesizer,
		assembler, speechClient, nil, nil)

	result, err := orchestrator.Synthesize(cmd.Context(), inbound.SynthesizeParams{
		Text:      text,
		Speaker:   speaker,
		ByteLimit: byteLimit,
	})
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(result.Audio)
	return err
}

func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	buffer, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read text from stdin: %w", err)
	}
	text := strings.TrimSpace(string(buffer))
	if text == "" {
		return "", fmt.Errorf("no text provided via arguments or stdin")
	}
	return text, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
