package line

import (
	"github.com/gin-gonic/gin"

	"laborlaw-line-bot/internal/answer"
	pkgLine "laborlaw-line-bot/pkg/line"
	pkgLog "laborlaw-line-bot/pkg/log"
)

// Handler is the interface for the LINE delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new LINE delivery handler.
func New(l pkgLog.Logger, uc answer.UseCase, client *pkgLine.Client, sec *SecurityValidator) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		client: client,
		sec:    sec,
	}
}
