package usecases

import (
	"fmt"

	"adaptivegame/internal/shared/logger"
	"adaptivegame/internal/shared/services/markdown"
)

// RenderEventMessageUseCase turns a facilitator-authored event or stock
// notification message into sanitized HTML for the player view.
type RenderEventMessageUseCase struct {
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewRenderEventMessageUseCase(md markdown.MarkdownService, logger logger.Interface) *RenderEventMessageUseCase {
	return &RenderEventMessageUseCase{
		markdown: md,
		logger:   logger,
	}
}

func (uc *RenderEventMessageUseCase) Execute(message string) (string, error) {
	rendered, err := uc.markdown.ToHTMLSanitized(message)
	if err != nil {
		uc.logger.Errorw("failed to render message", "error", err)
		return "", fmt.Errorf("failed to render message: %w", err)
	}
	return rendered, nil
}
