package app

import (
	"go-contact-relay/config"
	v1 "go-contact-relay/internal/delivery/http/v1"
	"go-contact-relay/internal/domain"
	"go-contact-relay/internal/usecase"
	"go-contact-relay/pkg/email"
	"go-contact-relay/pkg/security"
	"go-contact-relay/pkg/validation"

	"github.com/gin-gonic/gin"
)

// App is the wired contact relay shared by the server, Lambda and Vercel entrypoints
type App struct {
	Config    *config.Config
	Sender    domain.EmailSender
	ContactUC domain.ContactUsecase
	Router    *gin.Engine
}

// New wires the application from cfg. A nil secLog disables security event logging.
func New(cfg *config.Config, secLog *security.SecurityLogger) *App {
	return NewWithSender(cfg, email.NewResendSender(cfg), secLog)
}

// NewWithSender wires the application around an existing sender
func NewWithSender(cfg *config.Config, sender domain.EmailSender, secLog *security.SecurityLogger) *App {
	contactUC := usecase.NewContactUsecase(sender, validation.New(), email.Addresses{
		From:          cfg.ContactFrom,
		To:            cfg.ContactTo,
		SubjectPrefix: cfg.SubjectPrefix,
		Heading:       cfg.Heading,
	})

	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		HealthUC:       usecase.NewHealthUsecase(sender),
		SecurityLogger: secLog,
		Config:         cfg,
	})

	return &App{
		Config:    cfg,
		Sender:    sender,
		ContactUC: contactUC,
		Router:    router,
	}
}
