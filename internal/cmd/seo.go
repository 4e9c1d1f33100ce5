package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgbotosho/content-engine/pkg/errors"
	"github.com/tgbotosho/content-engine/pkg/niche"
	"github.com/tgbotosho/content-engine/pkg/output"
	"github.com/tgbotosho/content-engine/pkg/seo"
)

var (
	seoNiche    string
	seoFile     string
	seoText     string
	seoPlatform string
	seoTitle    string
)

var seoCmd = &cobra.Command{
	Use:   "seo",
	Short: "SEO analysis commands",
	Long:  "Analyze long-form content for search: keywords, headings, meta tags, readability",
}

var seoAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full SEO analysis",
	Long: `Score content against the niche's keyword cluster, heading structure,
meta tag limits, and readability targets. Exit status reflects the
verdict: 0 for OPTIMIZED/GOOD, 1 for NEEDS WORK, 2 for WEAK.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := loadSEOContent()
		if err != nil {
			return err
		}
		report, err := seo.Analyze(seoNiche, content, seoPlatform, seoTitle)
		if err != nil {
			return err
		}
		if err := output.PrintReport(report.Report, report); err != nil {
			return err
		}
		if code := seo.ExitCode(report.Verdict); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

var seoMetaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Generate meta tags only",
	Long:  "Fast mode: extract the primary keyword and emit ready-to-use meta tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := loadSEOContent()
		if err != nil {
			return err
		}
		meta, err := seo.GenerateMeta(seoNiche, content, seoTitle)
		if err != nil {
			return err
		}
		if output.GetOutputFormat() == output.FormatJSON {
			return output.PrintJSON(meta)
		}
		fmt.Printf("Primary keyword:   %s\n", meta.PrimaryKeyword)
		fmt.Printf("Meta title (%d chars): %s\n", meta.MetaTitleChars, meta.MetaTitle)
		fmt.Printf("Meta desc (%d chars):  %s\n", meta.MetaDescriptionChars, meta.MetaDescription)
		return nil
	},
}

func loadSEOContent() (string, error) {
	if seoFile != "" {
		data, err := os.ReadFile(seoFile)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewFileNotFound(seoFile)
			}
			return "", err
		}
		seoText = string(data)
	}
	if strings.TrimSpace(seoText) == "" {
		return "", errors.NewCLIError(errors.ErrorTypeValidation, "content is empty", nil).
			WithSuggestion("provide --file or --text")
	}
	return seoText, nil
}

func init() {
	seoCmd.PersistentFlags().StringVar(&seoNiche, "niche", niche.DefaultNiche, "Content niche")
	seoCmd.PersistentFlags().StringVar(&seoFile, "file", "", "Content file (.md or .txt)")
	seoCmd.PersistentFlags().StringVar(&seoText, "text", "", "Raw content text")
	seoCmd.PersistentFlags().StringVar(&seoTitle, "title", "", "Explicit title override")
	seoAnalyzeCmd.Flags().StringVar(&seoPlatform, "platform", "blog", "Target platform: blog, linkedin_article, newsletter")

	seoCmd.AddCommand(seoAnalyzeCmd)
	seoCmd.AddCommand(seoMetaCmd)
}
