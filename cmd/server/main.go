package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/abaakil35/Qiuz-App/internal/container"
	"github.com/abaakil35/Qiuz-App/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		AIQuizHandler:   c.AIQuizContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(chiadapter.New(handler).ProxyWithContext)
		return
	}

	addr := ":" + config.Getenv("PORT", "8080")
	config.Log.WithField("addr", addr).Info("Starting server")
	if err := http.ListenAndServe(addr, handler); err != nil {
		config.Log.WithError(err).Fatal("Server stopped")
	}
}
