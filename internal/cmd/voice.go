package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/niche"
	"github.com/tgbotosho/content-engine/pkg/output"
	"github.com/tgbotosho/content-engine/pkg/voice"
)

var (
	voiceNiche    string
	voicePlatform string
	voiceFile     string
	voiceText     string
	voiceDir      string
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Voice validation commands",
	Long:  "Check content against each niche's voice rules before it ships",
}

var voiceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate content against the niche's voice rules",
	Long: `Score content for banned phrases, weak openers, tone drift, signature
phrases, and platform length fit. Exit status reflects the verdict:
0 for PASS, 1 for REVISE, 2 for HEAVY REVISE/REJECT. In directory mode
the exit status is 0 only when every file passes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if voiceDir != "" {
			results, err := voice.ValidateDir(voiceNiche, voiceDir, voicePlatform)
			if err != nil {
				return err
			}
			if output.GetOutputFormat() == output.FormatJSON {
				if err := output.PrintJSON(results); err != nil {
					return err
				}
			} else {
				allPass := true
				counts := map[string]int{}
				for _, r := range results {
					fmt.Println(r.Report)
					counts[r.Verdict]++
					if r.Verdict != voice.VerdictPass {
						allPass = false
					}
				}
				fmt.Printf("\nBatch summary: %d file(s)\n", len(results))
				for _, v := range []string{voice.VerdictPass, voice.VerdictRevise, voice.VerdictHeavyRevise, voice.VerdictReject} {
					if counts[v] > 0 {
						fmt.Printf("  %s: %d\n", v, counts[v])
					}
				}
				if !allPass {
					os.Exit(1)
				}
			}
			return nil
		}

		var result *voice.Result
		var err error
		switch {
		case voiceFile != "":
			result, err = voice.ValidateFile(voiceNiche, voiceFile, voicePlatform)
		case strings.TrimSpace(voiceText) != "":
			result, err = voice.Validate(voiceNiche, voiceText, voicePlatform)
		default:
			return errors.NewCLIError(errors.ErrorTypeValidation, "no content to validate", nil).
				WithSuggestion("provide --file, --text, or --dir")
		}
		if err != nil {
			return err
		}
		if err := output.PrintReport(result.Report, result); err != nil {
			return err
		}
		if code := voice.ExitCode(result.Verdict); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	voiceCmd.PersistentFlags().StringVar(&voiceNiche, "niche", niche.DefaultNiche, "Content niche")
	voiceCmd.PersistentFlags().StringVar(&voicePlatform, "platform", niche.DefaultPlatform, "Target platform for length checks")
	voiceCheckCmd.Flags().StringVar(&voiceFile, "file", "", "Content file to validate")
	voiceCheckCmd.Flags().StringVar(&voiceText, "text", "", "Raw content text")
	voiceCheckCmd.Flags().StringVar(&voiceDir, "dir", "", "Directory of .md/.txt files to validate")

	voiceCmd.AddCommand(voiceCheckCmd)
}
