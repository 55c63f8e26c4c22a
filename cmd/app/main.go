package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/careerpilot-lambda/internal/container"
	"github.com/saulo-duarte/careerpilot-lambda/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		AssessmentHandler:  c.AssessmentContainer.Handler,
		InsightsHandler:    c.InsightsContainer.Handler,
		ResumeHandler:      c.ResumeContainer.Handler,
		CoverLetterHandler: c.CoverLetterContainer.Handler,
		ChatHandler:        c.ChatContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
