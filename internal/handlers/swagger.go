package handlers

// @title owewow Receipt Adapter API
// @version 1.0
// @description Forwards receipt requests to the textract parser and conversational receipt functions

// @host localhost:8081
// @BasePath /api/v1

// @tag.name receipts
// @tag.description Receipt parsing

// @tag.name proxy
// @tag.description Chat and upload routing
