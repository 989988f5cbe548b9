package models

// ProxyStage identifies the proxy in error bodies
const ProxyStage = "proxy_lambda"

// ProxyRequest is the inbound body of the receipt proxy. Either a chat input
// or an uploaded object key selects the route.
type ProxyRequest struct {
	ChatInput  string `json:"chat_input"`
	UserInput  string `json:"user_input"`
	ObjectKey  string `json:"object_key"`
	BucketName string `json:"bucket_name"`
	GroupID    string `json:"group_id"`
	Step       string `json:"step"`
}

// ChatPayload is sent to the conversational receipt function
type ChatPayload struct {
	UserInput string `json:"user_input" validate:"required"`
	GroupID   string `json:"group_id" validate:"required"`
	Step      string `json:"step" validate:"required"`
}

// ProxyError is the failure body returned by the proxy
type ProxyError struct {
	Error string `json:"error"`
	Stage string `json:"stage"`
}

// ParseProxyRequest decodes a proxy request body. An empty body is treated
// as an empty object.
func ParseProxyRequest(body string) (*ProxyRequest, error) {
	req := &ProxyRequest{}
	if err := decodeObject(body, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ConversationInput returns the chat text, preferring chat_input
func (r *ProxyRequest) ConversationInput() string {
	if r.ChatInput != "" {
		return r.ChatInput
	}
	return r.UserInput
}

// IsChat reports whether the request targets the conversational flow
func (r *ProxyRequest) IsChat() bool {
	return r.ConversationInput() != ""
}

// IsUpload reports whether the request targets the upload flow
func (r *ProxyRequest) IsUpload() bool {
	return !r.IsChat() && r.ObjectKey != ""
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ToChatPayload builds the conversational payload
func (r *ProxyRequest) ToChatPayload(defaultGroupID, defaultStep string) *ChatPayload {
	return &ChatPayload{
		UserInput: r.ConversationInput(),
		GroupID:   orDefault(r.GroupID, defaultGroupID),
		Step:      orDefault(r.Step, defaultStep),
	}
}

// ToParserPayload builds the upload payload
func (r *ProxyRequest) ToParserPayload(defaultBucket, defaultGroupID string) *ParserPayload {
	return &ParserPayload{
		BucketName: orDefault(r.BucketName, defaultBucket),
		ObjectKey:  encodeString(r.ObjectKey),
		GroupID:    encodeString(orDefault(r.GroupID, defaultGroupID)),
	}
}
