// pkg/configs/ai_config.go
package configs

import (
	"os"

	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/infrastructure/ai"
)

// SetupSummarizer creates the Anthropic client from environment settings
func SetupSummarizer() (port.Summarizer, error) {
	return ai.NewClient(ai.Config{
		APIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:  os.Getenv("ANTHROPIC_MODEL"),
	})
}
