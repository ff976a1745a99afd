package translator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/pricofy/text-translator/internal/domain"
)

// LambdaInvoker is the subset of the Lambda client used by LambdaBackend.
type LambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// LambdaBackend sends each chunk to a Lambda function hosting the model.
type LambdaBackend struct {
	client       LambdaInvoker
	functionName string
}

// NewLambdaBackend creates a LambdaBackend using the default AWS config chain.
func NewLambdaBackend(ctx context.Context, functionName string) (*LambdaBackend, error) {
	if functionName == "" {
		return nil, fmt.Errorf("lambda function name is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewLambdaBackendWithClient(lambda.NewFromConfig(cfg), functionName), nil
}

// NewLambdaBackendWithClient creates a LambdaBackend around an existing client.
func NewLambdaBackendWithClient(client LambdaInvoker, functionName string) *LambdaBackend {
	return &LambdaBackend{
		client:       client,
		functionName: functionName,
	}
}

// Translate invokes the model Lambda synchronously with a single chunk.
func (b *LambdaBackend) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	payload, err := json.Marshal(domain.ModelRequest{
		Text:       text,
		SourceLang: sourceCode,
		TargetLang: targetCode,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	result, err := b.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(b.functionName),
		Payload:      payload,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke %s: %w", b.functionName, err)
	}

	// Check for Lambda errors
	if result.FunctionError != nil {
		return "", fmt.Errorf("lambda error: %s", *result.FunctionError)
	}

	var resp domain.ModelResponse
	if err := json.Unmarshal(result.Payload, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Error != "" {
		return "", fmt.Errorf("model error: %s", resp.Error)
	}

	return resp.TranslationText, nil
}
