package invoker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// LambdaAPI is the subset of the Lambda client used by LambdaInvoker
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// LambdaInvoker invokes AWS Lambda functions with the RequestResponse
// invocation type
type LambdaInvoker struct {
	client LambdaAPI
}

// NewLambdaInvoker creates a new LambdaInvoker around an existing client
func NewLambdaInvoker(client LambdaAPI) *LambdaInvoker {
	return &LambdaInvoker{client: client}
}

// NewLambdaClient builds a Lambda client. The SDK retryer is replaced with a
// no-op so each request makes exactly one invocation attempt.
func NewLambdaClient(ctx context.Context, opts ClientOptions) (*lambda.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}

	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	if opts.EndpointURL != "" {
		endpoint := opts.EndpointURL
		loadOpts = append(loadOpts,
			awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(func(_, region string, _ ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					PartitionID:       "aws",
					URL:               endpoint,
					SigningRegion:     region,
					Source:            aws.EndpointSourceCustom,
					HostnameImmutable: true,
				}, nil
			})),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				valueOr(opts.AccessKeyID, "test"),
				valueOr(opts.SecretAccessKey, "test"),
				opts.SessionToken,
			)),
		)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return lambda.NewFromConfig(cfg), nil
}

// Invoke implements Invoker.Invoke
func (l *LambdaInvoker) Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, error) {
	if functionName == "" {
		return nil, NewInvocationError("Invoke", "", ErrInvalidFunction)
	}

	out, err := l.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, NewInvocationError("Invoke", functionName, err)
	}

	if out.FunctionError != nil {
		return nil, NewInvocationError("Invoke", functionName, parseFunctionError(*out.FunctionError, out.Payload))
	}

	if len(out.Payload) == 0 {
		return nil, NewInvocationError("Invoke", functionName, ErrEmptyPayload)
	}

	return out.Payload, nil
}

func parseFunctionError(kind string, payload []byte) *FunctionError {
	fnErr := &FunctionError{}
	if len(payload) > 0 {
		// Unparsable error documents fall back to the raw reply
		if err := json.Unmarshal(payload, fnErr); err != nil {
			fnErr.Message = string(payload)
		}
	}
	fnErr.Kind = kind
	return fnErr
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
