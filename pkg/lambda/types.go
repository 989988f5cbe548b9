package lambda

import (
	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	RequestID   string            `json:"request_id"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGateway converts an API Gateway proxy event into a Request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		RequestID:   event.RequestContext.RequestID,
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}
}

// ToAPIGateway converts a Response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
