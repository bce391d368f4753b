package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spigell/growth-explorer/internal/document"
	"github.com/spigell/growth-explorer/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job description using the AI assistant",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("resume", "r", "", "path to the resume file (txt, md, json, csv)")
	matchCmd.Flags().StringP("job-description", "J", "", "path to the job description file")

	matchCmd.MarkFlagRequired("resume")
	matchCmd.MarkFlagRequired("job-description")
}

func runMatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.AI == nil || !config.AI.Enabled {
		logger.Fatal("ai must be enabled in the configuration for resume matching")
	}

	assistant, err := newAssistant(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building ai assistant", zap.Error(err))
	}

	resumePath := cmd.Flag("resume").Value.String()
	resume, err := document.Read(resumePath)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	jdPath := cmd.Flag("job-description").Value.String()
	jobDescription, err := document.Read(jdPath)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	logger.Info("analyzing resume-job match",
		zap.String("resume", resumePath),
		zap.String("job_description", jdPath),
	)

	assessment, err := assistant.MatchResume(ctx, resume, jobDescription)
	if err != nil {
		logger.Fatal("analyzing match", zap.Error(err))
	}

	logger.Info("match analysis completed",
		zap.Float64("score", assessment.Score),
		zap.Bool("fit", assessment.Fit),
	)

	fmt.Println()
	fmt.Println(assessment.Analysis)
}
