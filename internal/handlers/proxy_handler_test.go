package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/TSJean45/owewow/internal/adapters/invoker"
	"github.com/TSJean45/owewow/internal/services"
	"github.com/TSJean45/owewow/pkg/lambda"
)

func newProxyHandler(t *testing.T, mock *invoker.MockInvoker) (*ProxyHandler, *logtest.Hook) {
	t.Helper()
	container, err := services.NewServiceContainer(mock, testConfig())
	if err != nil {
		t.Fatalf("NewServiceContainer failed: %v", err)
	}
	logger, hook := logtest.NewNullLogger()
	return NewProxyHandler(container.ProxyService).WithLogger(logger), hook
}

func TestProxyHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("ChatRoute", func(t *testing.T) {
		mock := invoker.NewMockInvoker()
		mock.SetResponse("owewow-conversational-receipt-ai", []byte(`{"reply":"done"}`))
		handler, hook := newProxyHandler(t, mock)

		resp := handler.Handle(ctx, &lambda.Request{Body: []byte(`{"chat_input":"split evenly"}`)})
		if resp.StatusCode != 200 {
			t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, string(resp.Body))
		}
		if string(resp.Body) != `{"reply":"done"}` {
			t.Errorf("Expected raw downstream reply, got %s", string(resp.Body))
		}
		if resp.Headers["Access-Control-Allow-Methods"] != "POST, OPTIONS" {
			t.Errorf("Unexpected methods header: %q", resp.Headers["Access-Control-Allow-Methods"])
		}
		if resp.Headers["Access-Control-Allow-Headers"] != "Content-Type" {
			t.Errorf("Unexpected allow headers: %q", resp.Headers["Access-Control-Allow-Headers"])
		}

		call, _ := mock.LastCall()
		want := `{"user_input":"split evenly","group_id":"quick-split","step":"initial"}`
		if string(call.Payload) != want {
			t.Errorf("Expected payload %s, got %s", want, string(call.Payload))
		}

		entry := hook.LastEntry()
		if entry == nil || entry.Level != logrus.InfoLevel || entry.Data["route"] != services.RouteChat {
			t.Errorf("Expected routing log entry, got %+v", entry)
		}
	})

	t.Run("UploadRoute", func(t *testing.T) {
		mock := invoker.NewMockInvoker()
		mock.SetResponse("owewow-textract-parser", []byte(`{"items":[1]}`))
		handler, _ := newProxyHandler(t, mock)

		resp := handler.Handle(ctx, &lambda.Request{Body: []byte(`{"object_key":"r5.jpg"}`)})
		if resp.StatusCode != 200 {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		call, _ := mock.LastCall()
		if call.FunctionName != "owewow-textract-parser" {
			t.Errorf("Expected parser, got %s", call.FunctionName)
		}
		want := `{"bucket_name":"owewow-uploads-x9k4m2","object_key":"r5.jpg","group_id":"quick-split"}`
		if string(call.Payload) != want {
			t.Errorf("Expected payload %s, got %s", want, string(call.Payload))
		}
	})

	t.Run("MissingParameters", func(t *testing.T) {
		mock := invoker.NewMockInvoker()
		handler, hook := newProxyHandler(t, mock)

		resp := handler.Handle(ctx, &lambda.Request{})
		if resp.StatusCode != 500 {
			t.Errorf("Expected 500, got %d", resp.StatusCode)
		}
		want := `{"error":"Missing required parameters: need either chat_input or object_key","stage":"proxy_lambda"}`
		if string(resp.Body) != want {
			t.Errorf("Expected %s, got %s", want, string(resp.Body))
		}
		if resp.Headers["Access-Control-Allow-Origin"] != "*" {
			t.Error("Expected wildcard origin on failure")
		}

		entry := hook.LastEntry()
		if entry == nil || entry.Level != logrus.ErrorLevel {
			t.Errorf("Expected error log entry, got %+v", entry)
		}
	})

	t.Run("DownstreamFailure", func(t *testing.T) {
		mock := invoker.NewMockInvoker()
		mock.SetError("owewow-textract-parser", errors.New("throttled"))
		handler, _ := newProxyHandler(t, mock)

		resp := handler.Handle(ctx, &lambda.Request{Body: []byte(`{"object_key":"r5.jpg"}`)})
		if resp.StatusCode != 500 {
			t.Errorf("Expected 500, got %d", resp.StatusCode)
		}
		if string(resp.Body) != `{"error":"throttled","stage":"proxy_lambda"}` {
			t.Errorf("Unexpected body: %s", string(resp.Body))
		}
	})
}

func TestProxyHandler_Proxy(t *testing.T) {
	mock := invoker.NewMockInvoker()
	mock.SetResponse("owewow-conversational-receipt-ai", []byte(`{"reply":"hi"}`))
	container, err := services.NewServiceContainer(mock, testConfig())
	if err != nil {
		t.Fatalf("NewServiceContainer failed: %v", err)
	}

	router := NewRouter(&RouterConfig{
		ReceiptService: container.ReceiptService,
		ProxyService:   container.ProxyService,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/proxy", strings.NewReader(`{"user_input":"hello"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"reply":"hi"}` {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Headers") != "Content-Type" {
		t.Errorf("Expected proxy allow headers to win, got %q", w.Header().Get("Access-Control-Allow-Headers"))
	}
}
