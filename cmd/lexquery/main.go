// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/lexquery"
	"github.com/poiesic/lexquery/agent"
	"github.com/poiesic/lexquery/ai"
	"github.com/poiesic/lexquery/retrieval/qdrant"
	"github.com/poiesic/lexquery/retrieval/searxng"
)

func main() {
	app := &cli.App{
		Name:  "lexquery",
		Usage: "Agentic question answering over a legal document corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single question",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags:     append(engineFlags(), queryFlags()...),
			},
			{
				Name:      "batch",
				Usage:     "Answer questions from a file, one per line, emitting JSON lines",
				ArgsUsage: "<questions-file>",
				Action:    batchCommand,
				Flags: append(append(engineFlags(), queryFlags()...),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent queries",
						Value: 4,
					},
				),
			},
			{
				Name:   "health",
				Usage:  "Check connectivity to the configured backends",
				Action: healthCommand,
				Flags:  engineFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "ollama-host",
			Usage: "Ollama service host URL",
			Value: "http://127.0.0.1:11434",
		},
		&cli.StringFlag{
			Name:  "model",
			Usage: "Generation model name",
			Value: "llama3.2",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "qdrant-url",
			Usage: "Qdrant service URL",
			Value: "http://localhost:6333",
		},
		&cli.StringFlag{
			Name:  "collection",
			Usage: "Qdrant collection name",
			Value: "legal_documents",
		},
		&cli.StringFlag{
			Name:  "searxng-url",
			Usage: "SearXNG instance URL (empty disables web search)",
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "Response cache directory (empty disables caching)",
		},
	}
}

func queryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "max-iterations",
			Usage: "Maximum retrieval rounds per question (1-10)",
			Value: 3,
		},
		&cli.IntFlag{
			Name:  "top-k",
			Usage: "Results per retrieval call (1-20)",
			Value: 3,
		},
		&cli.BoolFlag{
			Name:  "no-web",
			Usage: "Disable web search even when a SearXNG URL is set",
		},
	}
}

func buildEngine(c *cli.Context) (*lexquery.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ollama-host")),
		ai.WithModel(c.String("model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	retrievalConfig := qdrant.NewConfig(
		qdrant.WithURL(c.String("qdrant-url")),
		qdrant.WithCollection(c.String("collection")),
		qdrant.WithEmbedding(c.String("ollama-host"), c.String("embedding-model")),
	)
	if err := retrievalConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retrieval configuration: %w", err)
	}

	agentConfig := agent.DefaultConfig()
	if c.IsSet("max-iterations") {
		agentConfig.MaxIterations = c.Int("max-iterations")
	}
	if c.IsSet("top-k") {
		agentConfig.TopK = c.Int("top-k")
	}
	if c.Bool("no-web") {
		agentConfig.EnableWebSearch = false
	}

	opts := []lexquery.EngineOption{
		lexquery.WithAIConfig(aiConfig),
		lexquery.WithRetrievalConfig(retrievalConfig),
		lexquery.WithAgentConfig(agentConfig),
	}
	if url := c.String("searxng-url"); url != "" {
		opts = append(opts, lexquery.WithWebSearch(url))
	}
	if dir := c.String("cache-dir"); dir != "" {
		opts = append(opts, lexquery.WithCache(dir))
	}

	return lexquery.NewEngine(opts...)
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("question is required")
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	response, err := engine.Query(context.Background(), question)
	if err != nil {
		return err
	}

	fmt.Println(response.Answer)
	fmt.Fprintf(os.Stderr, "\niterations: %d, internal results: %d, web results: %d, query used: %q\n",
		response.Iterations, len(response.SearchResults), len(response.WebResults), response.QueryUsed)
	return nil
}

// batchResult is one JSON line of batch output.
type batchResult struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Iterations int    `json:"iterations"`
	QueryUsed  string `json:"query_used"`
	Error      string `json:"error,omitempty"`
}

func batchCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("questions file is required")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open questions file: %w", err)
	}
	defer file.Close()

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	workers := c.Int("workers")
	if workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	ctx := context.Background()
	encoder := json.NewEncoder(os.Stdout)
	var outMu sync.Mutex
	var wg sync.WaitGroup

	pool, err := ants.NewPoolWithFunc(workers, func(payload any) {
		defer wg.Done()
		question := payload.(string)

		result := batchResult{Question: question}
		response, err := engine.Query(ctx, question)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Answer = response.Answer
			result.Iterations = response.Iterations
			result.QueryUsed = response.QueryUsed
		}

		outMu.Lock()
		defer outMu.Unlock()
		if err := encoder.Encode(result); err != nil {
			slog.Error("failed to write result", "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	scanner := bufio.NewScanner(file)
	submitted := 0
	for scanner.Scan() {
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		wg.Add(1)
		if err := pool.Invoke(question); err != nil {
			wg.Done()
			return fmt.Errorf("failed to submit question: %w", err)
		}
		submitted++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read questions file: %w", err)
	}

	wg.Wait()
	fmt.Fprintf(os.Stderr, "answered %d questions\n", submitted)
	return nil
}

func healthCommand(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	failed := false

	if err := probe(ctx, c.String("ollama-host")+"/api/tags"); err != nil {
		fmt.Fprintf(os.Stderr, "ollama: %v\n", err)
		failed = true
	} else {
		fmt.Println("ollama: ok")
	}

	if err := probe(ctx, c.String("qdrant-url")+"/collections/"+c.String("collection")); err != nil {
		fmt.Fprintf(os.Stderr, "qdrant: %v\n", err)
		failed = true
	} else {
		fmt.Println("qdrant: ok")
	}

	if url := c.String("searxng-url"); url != "" {
		client, err := searxng.NewClient(url)
		if err != nil {
			return err
		}
		if err := client.Health(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "searxng: %v\n", err)
			failed = true
		} else {
			fmt.Println("searxng: ok")
		}
	}

	if failed {
		return fmt.Errorf("one or more backends unavailable")
	}
	return nil
}

func probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
