package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/growth-explorer/internal/ai"
	"github.com/spigell/growth-explorer/internal/ai/gemini"
	"github.com/spigell/growth-explorer/internal/candidate"
	"github.com/spigell/growth-explorer/internal/logger"
	"github.com/spigell/growth-explorer/internal/report"
	"github.com/spigell/growth-explorer/internal/scoring"
	"github.com/spigell/growth-explorer/internal/screening"
	"github.com/spigell/growth-explorer/internal/secrets"
	"github.com/spigell/growth-explorer/internal/trajectory"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptBack                = "back"
	PromptScoreExplanation    = "Show score breakdown and explanation"
	PromptTrajectoryNarrative = "Show career trajectory narrative"
	PromptDumpReports         = "Dump full reports to file"
	PromptAskAssistant        = "Ask the AI assistant"
	PromptAskPool             = "Ask the AI assistant about all candidates"
	PromptExit                = "Exit"
)

var errExit = errors.New("exit requested")

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Evaluate candidates: growth potential scores, trajectory analysis and screening",
	Run: func(cmd *cobra.Command, _ []string) {
		runReport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolP("auto-approve", "y", false, "print the full report without interactive prompts")
	reportCmd.Flags().String("dataset", "", "path to a candidate dataset file (default is the built-in sample dataset)")

	viper.BindPFlag("dataset", reportCmd.Flags().Lookup("dataset"))
}

// runReport is the main command for the cli.
func runReport(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the growth-explorer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	set, err := loadDataset(config)
	if err != nil {
		logger.Fatal("loading candidate dataset", zap.Error(err))
	}

	logger.Info("loaded candidates", zap.Int("count", set.Len()))

	if set.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates in dataset"))
		return
	}

	assistant := prepareAssistant(ctx, config, logger)

	screeningCfg, err := buildScreeningConfig(config)
	if err != nil {
		logger.Fatal("building screening configuration", zap.Error(err))
	}

	steps := []screening.Filter{
		screening.NewMinScore(),
		screening.NewExperience(),
		screening.NewPattern(),
		screening.NewAIFit(),
	}

	deps := screening.Deps{Logger: logger, Assistant: assistant}

	filtered, assessments, err := screening.Run(ctx, screeningCfg, deps, steps, set)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	if filtered.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after screening"))
		return
	}

	if len(assessments) > 0 {
		logger.Info("collected AI fit assessments", zap.Int("count", len(assessments)))
	}

	printRanking(filtered)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		printFullReports(filtered)
		return
	}

	for {
		if err := selectCandidate(ctx, filtered, assistant, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func loadDataset(config *Config) (*candidate.Set, error) {
	path := strings.TrimSpace(viper.GetString("dataset"))
	if path == "" && config != nil {
		path = strings.TrimSpace(config.Dataset)
	}

	if path == "" {
		return candidate.Default()
	}

	return candidate.LoadFile(path)
}

func buildScreeningConfig(config *Config) (*screening.Config, error) {
	cfg := &screening.Config{}
	if config == nil {
		return cfg, nil
	}

	if config.Screening != nil {
		cfg.MinScore = config.Screening.MinScore
		cfg.MinExperience = config.Screening.MinExperience
		cfg.Patterns = config.Screening.Patterns

		if file := strings.TrimSpace(config.Screening.JobDescriptionFile); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("reading job description file: %w", err)
			}
			cfg.JobDescription = string(data)
		}
	}

	if config.AI != nil {
		cfg.AI = &screening.AIConfig{
			Enabled:         config.AI.Enabled,
			MinimumFitScore: config.AI.MinimumFitScore,
		}
	}

	return cfg, nil
}

func prepareAssistant(ctx context.Context, config *Config, logger *zap.Logger) ai.Assistant {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil
	}

	assistant, err := newAssistant(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("AI assistant is unavailable", zap.Error(err))
		return nil
	}

	return assistant
}

func newAssistant(ctx context.Context, cfg *AIConfig, zlogger *zap.Logger) (ai.Assistant, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(zlogger, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAssistant(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}

func printRanking(set *candidate.Set) {
	summaries := report.Summaries(set)

	fmt.Println("\nCandidate Rankings (Growth Potential):")
	for idx, summary := range summaries {
		fmt.Printf("%d. %s - %s: %v/100\n", idx+1, summary.Name, summary.Role, summary.Score)
	}
	fmt.Println()
}

func printFullReports(set *candidate.Set) {
	reports := make([]report.CandidateReport, 0, set.Len())
	for _, record := range set.Items {
		reports = append(reports, report.Build(record))
	}

	pretty, _ := json.MarshalIndent(reports, "", "  ")
	fmt.Println(string(pretty))
}

func selectCandidate(ctx context.Context, set *candidate.Set, assistant ai.Assistant, logger *zap.Logger) error {
	items := append(set.Names(), PromptAskPool, PromptExit)

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: items,
	}

	_, selected, err := candidatePrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptExit {
		return errExit
	}

	if selected == PromptAskPool {
		return askWithContext(ctx, report.PoolContext(set), assistant, logger)
	}

	record := set.FindByName(selected)
	if record == nil {
		return fmt.Errorf("there is no such candidate %s", selected)
	}

	return candidateActions(ctx, record, set, assistant, logger)
}

func candidateActions(ctx context.Context, record *candidate.Record, set *candidate.Set, assistant ai.Assistant, logger *zap.Logger) error {
	for {
		actionPrompt := promptui.Select{
			Label: fmt.Sprintf("%s (%s)", record.Name, record.Role),
			Items: []string{
				PromptScoreExplanation,
				PromptTrajectoryNarrative,
				PromptDumpReports,
				PromptAskAssistant,
				PromptBack,
			},
		}

		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptBack:
			return nil
		case PromptScoreExplanation:
			result := report.Build(record)
			fmt.Println()
			for _, factor := range scoring.Factors() {
				fmt.Printf("%s: %.1f/100 (weight %d%%)\n", factor.Title(), result.SubScores[factor], scoring.Weights[factor])
			}
			fmt.Println()
			fmt.Println(result.Explanation)
		case PromptTrajectoryNarrative:
			metrics := trajectory.Analyze(record)
			fmt.Println()
			fmt.Println(metrics.Narrative)
		case PromptDumpReports:
			reports := make([]report.CandidateReport, 0, set.Len())
			for _, item := range set.Items {
				reports = append(reports, report.Build(item))
			}
			filename, err := report.DumpToTmpFile(reports)
			if err != nil {
				return fmt.Errorf("dump reports to file: %w", err)
			}
			logger.Info("dumping reports to file", zap.String("filename", filename))
		case PromptAskAssistant:
			if err := askAssistant(ctx, record, assistant, logger); err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func askAssistant(ctx context.Context, record *candidate.Record, assistant ai.Assistant, logger *zap.Logger) error {
	result := report.Build(record)
	return askWithContext(ctx, report.CandidateContext(record, result.SubScores, result.Overall), assistant, logger)
}

func askWithContext(ctx context.Context, contextBlock string, assistant ai.Assistant, logger *zap.Logger) error {
	if assistant == nil {
		logger.Info("AI assistant is not configured", zap.String("hint", "enable it in the ai section of the configuration file"))
		return nil
	}

	questionPrompt := promptui.Prompt{
		Label: "Question",
	}

	question, err := questionPrompt.Run()
	if err != nil {
		return err
	}

	answer, err := assistant.Ask(ctx, contextBlock, question)
	if err != nil {
		logger.Warn("AI assistant request failed", zap.Error(err))
		return nil
	}

	fmt.Println()
	fmt.Println(answer)
	return nil
}
