package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/careerpilot-lambda/internal/assessment"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/chat"
	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"github.com/saulo-duarte/careerpilot-lambda/internal/coverletter"
	"github.com/saulo-duarte/careerpilot-lambda/internal/insights"
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/resume"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
)

type Container struct {
	UserContainer        *user.UserContainer
	AssessmentContainer  *assessment.AssessmentContainer
	InsightsContainer    *insights.InsightsContainer
	ResumeContainer      *resume.ResumeContainer
	CoverLetterContainer *coverletter.CoverLetterContainer
	ChatContainer        *chat.ChatContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&assessment.Assessment{},
		&insights.IndustryInsight{},
		&resume.Resume{},
		&coverletter.CoverLetter{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	provider, err := llm.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to create generation provider: %v", err)
	}

	userRepo := user.NewRepository(config.DB)
	insightsContainer := insights.NewInsightsContainer(config.DB, provider, userRepo)
	userContainer := user.NewUserContainer(config.DB, insightsContainer.Service)
	assessmentContainer := assessment.NewAssessmentContainer(config.DB, provider, userRepo)
	resumeContainer := resume.NewResumeContainer(config.DB, provider, userRepo)
	coverLetterContainer := coverletter.NewCoverLetterContainer(config.DB, provider, userRepo)
	chatContainer := chat.NewChatContainer(provider)

	return &Container{
		UserContainer:        userContainer,
		AssessmentContainer:  assessmentContainer,
		InsightsContainer:    insightsContainer,
		ResumeContainer:      resumeContainer,
		CoverLetterContainer: coverLetterContainer,
		ChatContainer:        chatContainer,
	}
}
