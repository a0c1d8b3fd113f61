package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/quarklabs/mcp-hackernews/internal/article"
	"github.com/quarklabs/mcp-hackernews/internal/config"
	"github.com/quarklabs/mcp-hackernews/internal/hn"
	"github.com/quarklabs/mcp-hackernews/internal/logger"
	"github.com/quarklabs/mcp-hackernews/internal/mcp"
)

// maxFrameSize bounds a single JSON-RPC frame on stdin.
const maxFrameSize = 4 * 1024 * 1024

func main() {
	cfg := config.LoadOrDefault(config.GetConfigPath("config.yml"))

	// Logs go to stderr; stdout carries nothing but JSON-RPC frames.
	log := logger.Must(cfg.Logging)
	defer func() { _ = log.Sync() }()

	timeout := time.Duration(cfg.HackerNews.HTTPTimeoutSeconds) * time.Second
	hnClient := hn.NewClient(cfg.HackerNews.APIBaseURL, cfg.HackerNews.SearchBaseURL, timeout, log)
	extractor := article.NewExtractor(timeout)
	server := mcp.NewServer(hnClient, extractor, cfg.Limits, log)

	log.Info("hackernews mcp server starting",
		logger.String("api_base", cfg.HackerNews.APIBaseURL),
		logger.String("search_base", cfg.HackerNews.SearchBaseURL))

	ctx := context.Background()
	// Frames arrive one per line; a malformed line must not take down the
	// stream, so scanning by line beats a streaming decoder here.
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	// MCP clients expect compact JSON, one frame per line; no SetIndent.
	encoder := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var request mcp.Request
		if err := json.Unmarshal(line, &request); err != nil {
			// A frame that fails to parse carries no usable ID.
			log.Warn("failed to parse request", logger.Error(err))
			sendParseError(encoder, log)
			continue
		}

		response := server.HandleRequest(ctx, &request)
		if response == nil {
			// Notification; nothing goes back.
			continue
		}
		if request.ID == nil {
			continue
		}
		if encodeErr := encoder.Encode(response); encodeErr != nil {
			log.Error("failed to encode response", logger.Error(encodeErr))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("stdin read failed", logger.Error(err))
	}

	log.Info("stdin closed, shutting down")
}

func sendParseError(encoder *json.Encoder, log logger.Logger) {
	errorResponse := mcp.Response{
		JSONRPC: "2.0",
		ID:      0,
		Error: &mcp.ErrorObject{
			Code:    mcp.ParseError,
			Message: "Failed to parse request",
		},
	}
	if encodeErr := encoder.Encode(&errorResponse); encodeErr != nil {
		log.Error("failed to encode error response", logger.Error(encodeErr))
	}
}
