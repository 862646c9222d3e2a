package ai_fx

import (
	"os"

	"go.uber.org/fx"

	"promptmart/pkg/utils"
)

var Module = fx.Provide(
	provideCompletionClient, provideEmbeddingClient)

// provideCompletionClient selects the completion backend from AI_PROVIDER.
// "gemini" uses the Gemini API, anything else falls back to OpenAI.
func provideCompletionClient() (utils.CompletionClientInterface, error) {
	if os.Getenv("AI_PROVIDER") == "gemini" {
		return utils.NewGeminiCompletionClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	}
	return utils.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL")), nil
}

// Embeddings always come from OpenAI so stored vectors stay in one space.
func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
}
