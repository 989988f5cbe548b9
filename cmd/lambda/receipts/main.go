package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/TSJean45/owewow/internal/config"
	"github.com/TSJean45/owewow/internal/handlers"
	"github.com/TSJean45/owewow/internal/logging"
	"github.com/TSJean45/owewow/pkg/lambda"
)

var connections *lambda.ConnectionManager

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logging.Init(cfg.LogLevel, config.IsServerlessMode())

	runtime := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"mode":     config.GetDeploymentMode(),
		"function": runtime.FunctionName,
		"region":   runtime.Region,
		"stage":    runtime.Stage,
	}).Debug("Cold start")

	connections = lambda.GetConnectionManager()
	if err := connections.Initialize(context.Background(), cfg); err != nil {
		// Reported per request from the handler
		logrus.WithError(err).Error("Failed to initialize container")
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	container, err := connections.GetContainer(ctx)
	if err != nil {
		return handlers.InitFailureResponse(req, err).ToAPIGateway(), nil
	}

	receiptHandler := handlers.NewReceiptHandler(container.ReceiptService)
	return receiptHandler.Handle(ctx, req).ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
