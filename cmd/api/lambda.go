package main

import (
	"fmt"
	"os"

	"go-contact-relay/internal/app"
	"go-contact-relay/internal/delivery/apigw"
	"go-contact-relay/pkg/logger"
	"go-contact-relay/pkg/security"
	"go-contact-relay/pkg/telemetry"

	ddlambda "github.com/DataDog/datadog-lambda-go"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
)

func newLambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve API Gateway proxy events inside AWS Lambda",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if _, err := telemetry.InitTracing(cmd.Context(), telemetry.TracingConfig{
				ServiceName: cfg.ServiceName,
				Exporter:    cfg.TracingExporter,
				Endpoint:    cfg.OTLPEndpoint,
			}); err != nil {
				return fmt.Errorf("failed to init tracing: %w", err)
			}

			a := app.New(cfg, security.InitSecurityLogger(cfg.ServiceName, cfg.Environment))
			adapter := apigw.NewAdapter(telemetry.WrapHandler(cfg.ServiceName, a.Router), telemetry.ForceFlush)

			// DD_API_KEY_SECRET_ARN is set when the Datadog extension is attached
			if os.Getenv("DD_API_KEY_SECRET_ARN") != "" || os.Getenv("DD_API_KEY") != "" {
				logger.Log.Info("Datadog tracing enabled - wrapping Lambda handler")
				lambda.Start(ddlambda.WrapFunction(adapter.Handle, nil))
			} else {
				lambda.Start(adapter.Handle)
			}
			return nil
		},
	}
}
