package main

import (
	"context"

	"github.com/rs/zerolog/log"

	assistantx "github.com/fieldsync/crm-copilot/agent/agents/assistant"
	crmx "github.com/fieldsync/crm-copilot/agent/crm"
	toolx "github.com/fieldsync/crm-copilot/agent/tool"
	configx "github.com/fieldsync/crm-copilot/pkg/config"
	_ "github.com/fieldsync/crm-copilot/pkg/logger/autoload"
	openrouterx "github.com/fieldsync/crm-copilot/pkg/openrouter"
	serverx "github.com/fieldsync/crm-copilot/server"
)

type AppConfig struct {
	Addr              string `envconfig:"ADDR" default:":8000"`
	MaxModelCalls     int    `envconfig:"MAX_MODEL_CALLS" split_words:"true" default:"10"`
	VerifyCredentials bool   `envconfig:"VERIFY_CREDENTIALS" split_words:"true" default:"true"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")
	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")

	ctx := context.Background()

	chatModel, err := openRouterCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("create chat model")
	}

	if appCfg.VerifyCredentials {
		client := openrouterx.NewClient(*openRouterCfg)
		if err := openrouterx.Verify(ctx, client); err != nil {
			log.Fatal().Err(err).Msg("openrouter credentials check failed")
		}
	}

	store := crmx.NewStore()
	executor := toolx.NewExecutor(store, nil)

	asst, err := assistantx.New(ctx, chatModel, executor, assistantx.Config{
		MaxModelCalls: appCfg.MaxModelCalls,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create assistant")
	}

	router := serverx.NewRouter(asst, store)

	log.Info().Str("addr", appCfg.Addr).Msg("crm copilot listening")
	if err := router.Run(appCfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
