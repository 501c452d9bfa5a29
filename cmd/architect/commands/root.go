package commands

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pranavyk10/guided-component-architect/config"
	"github.com/pranavyk10/guided-component-architect/internal/agent"
	"github.com/pranavyk10/guided-component-architect/internal/component"
	"github.com/pranavyk10/guided-component-architect/internal/llm"
	"github.com/pranavyk10/guided-component-architect/internal/pipeline"
	"github.com/pranavyk10/guided-component-architect/internal/store"
	"github.com/pranavyk10/guided-component-architect/internal/tokens"
)

var (
	configPath string

	cfg  config.Config
	set  tokens.Set
	pipe *pipeline.Pipeline
)

func Execute() error {
	root := &cobra.Command{
		Use:   "architect",
		Short: "Natural language to Angular component, with design-system enforcement",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env before viper reads the environment.
			if err := godotenv.Load(); err != nil {
				if !os.IsNotExist(err) {
					log.Printf("Warning: error loading .env file: %v", err)
				}
			}

			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			set, err = tokens.Load(cfg.DesignTokensPath)
			if err != nil {
				return err
			}
			log.Printf("Loaded %d design tokens from %s", len(set.Names()), cfg.DesignTokensPath)

			client := llm.NewOpenAIClient(llm.Options{
				APIKey:  cfg.OpenAIKey,
				BaseURL: cfg.OpenAIBaseURL,
				Model:   cfg.ModelName,
				Timeout: cfg.LLMTimeout(),
			})

			pipe = pipeline.New(
				agent.NewGenerator(client, set),
				agent.NewFixer(client, set),
				store.NewWriter(cfg.OutputDir),
				set,
				pipeline.Options{
					Validator:   component.Options{AllowForeignColors: cfg.AllowForeignColors},
					SaveInvalid: cfg.SaveInvalid,
				},
			)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yaml (and optionally .env)")

	root.AddCommand(serveCmd(), generateCmd())
	return root.Execute()
}
