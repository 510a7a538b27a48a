// Lambda entrypoint: the same pure handler, deployed behind AWS Lambda.
// The event body arrives as raw JSON; anything that is not a JSON object
// is rejected by the handler itself, so this wrapper never fails.
package main

import (
	"context"
	"encoding/json"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/hussainAl3mri/lambda-event-validator/internal/event"
	"github.com/hussainAl3mri/lambda-event-validator/internal/handler"
)

func handle(ctx context.Context, raw json.RawMessage) (handler.Envelope, error) {
	var evt interface{}
	// On parse failure evt stays nil and the handler rejects it.
	_ = json.Unmarshal(raw, &evt)

	invocation := event.Record{}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		invocation["aws_request_id"] = lc.AwsRequestID
		invocation["function_arn"] = lc.InvokedFunctionArn
	}

	return handler.Handle(evt, invocation), nil
}

func main() {
	awslambda.Start(handle)
}
