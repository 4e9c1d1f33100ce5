package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tgbotosho/content-engine/pkg/niche"
	"github.com/tgbotosho/content-engine/pkg/output"
	"github.com/tgbotosho/content-engine/pkg/research"
)

var (
	researchNiche    string
	researchPlatform string
	researchURLs     []string
	researchTexts    []string
	researchFiles    []string
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Research synthesis commands",
	Long:  "Convert raw research material into structured content briefs",
}

var researchSynthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize sources into a content brief",
	Long: `Fetch and combine research sources (URLs, files, pasted text), extract
key facts and content angles, flag voice issues, and recommend a hook
type for the niche.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var sources []research.Source
		for _, url := range researchURLs {
			sources = append(sources, research.Source{Type: research.SourceURL, Content: url})
		}
		for _, text := range researchTexts {
			sources = append(sources, research.Source{Type: research.SourceText, Content: text})
		}
		for _, path := range researchFiles {
			sources = append(sources, research.Source{Type: research.SourceFile, Content: path})
		}

		brief, err := research.Synthesize(researchNiche, sources, researchPlatform)
		if err != nil {
			return err
		}
		return output.PrintReport(brief.Report, brief)
	},
}

func init() {
	researchCmd.PersistentFlags().StringVar(&researchNiche, "niche", niche.DefaultNiche, "Content niche")
	researchCmd.PersistentFlags().StringVar(&researchPlatform, "platform", niche.DefaultPlatform, "Target platform for the brief")
	researchSynthCmd.Flags().StringArrayVar(&researchURLs, "url", nil, "URL to fetch and synthesize (repeatable)")
	researchSynthCmd.Flags().StringArrayVar(&researchTexts, "text", nil, "Raw text or notes (repeatable)")
	researchSynthCmd.Flags().StringArrayVar(&researchFiles, "file", nil, "Path to a .txt/.md/.pdf file (repeatable)")

	researchCmd.AddCommand(researchSynthCmd)
}
