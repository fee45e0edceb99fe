package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
	"github.com/kdduha/gemini-relay/internal/models"
	"github.com/kdduha/gemini-relay/internal/service"
	"golang.org/x/sync/errgroup"
)

var modes = []string{service.ModeStructured, service.ModeChat}

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/gemini-proxy", "relay endpoint")
	dataDir := flag.String("data", "data", "directory with structured/ and chat/ prompt files")
	concurrency := flag.Int("concurrency", 4, "max in-flight requests")
	flag.Parse()

	ctx := context.Background()

	var (
		mu      sync.Mutex
		results []BenchResult
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	for _, mode := range modes {
		prompts, _ := filepath.Glob(filepath.Join(*dataDir, mode, "*.txt"))

		for _, promptPath := range prompts {
			g.Go(func() error {
				res := benchmarkPrompt(ctx, *endpoint, mode, promptPath)

				if res.Err != nil {
					log.Println("ERR:", res.File, res.Err)
				} else {
					log.Printf("OK %s %d %v", res.File, res.Status, res.Duration)
				}

				mu.Lock()
				results = append(results, res)
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()

	printMarkdown(results)
}

func benchmarkPrompt(ctx context.Context, endpoint, mode, promptPath string) BenchResult {
	start := time.Now()
	res := BenchResult{File: filepath.Base(promptPath), Mode: mode}

	prompt, err := os.ReadFile(promptPath)
	if err != nil {
		res.Err = err
		return res
	}

	req := models.ProxyRequest{
		Prompt: strings.TrimSpace(string(prompt)),
		IsChat: mode == service.ModeChat,
	}

	if image, ok := readImage(promptPath); ok {
		req.ImageBase64Data = base64.StdEncoding.EncodeToString(image)
		res.Size += int64(len(image))
	}
	res.Size += int64(len(prompt))

	status, body, err := send(ctx, endpoint, req)
	res.Status = status
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}

	res.Valid = validate(mode, body)
	return res
}

// readImage looks for a JPEG next to the prompt file with the same base name.
func readImage(promptPath string) ([]byte, bool) {
	base := strings.TrimSuffix(promptPath, filepath.Ext(promptPath))
	for _, ext := range []string{".jpg", ".jpeg"} {
		if data, err := os.ReadFile(base + ext); err == nil {
			return data, true
		}
	}
	return nil, false
}

func send(ctx context.Context, endpoint string, req models.ProxyRequest) (int, []byte, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var envelope models.ErrorResponse
		_ = sonic.Unmarshal(b, &envelope)
		return resp.StatusCode, b, fmt.Errorf("bad status %d: %s %v",
			resp.StatusCode,
			envelope.Message,
			envelope.Error,
		)
	}
	return resp.StatusCode, b, nil
}

// validate checks that structured replies carry a complete answer and chat
// replies carry any text at all.
func validate(mode string, body []byte) bool {
	var resp generateContentResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return false
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return false
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if mode == service.ModeChat {
		return strings.TrimSpace(text) != ""
	}

	var answer models.Answer
	if err := sonic.UnmarshalString(text, &answer); err != nil {
		return false
	}
	return answer.SimplifiedQuestion != "" &&
		answer.SolutionSteps != "" &&
		answer.FinalAnswer != "" &&
		answer.Recommendations != ""
}

func aggregate(results []BenchResult) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		a := m[r.Mode]
		a.Count++
		if r.Valid {
			a.Valid++
		}
		a.TotalBytes += r.Size
		a.Total += r.Duration
		m[r.Mode] = a
	}
	return m
}

func printMarkdown(results []BenchResult) {
	fmt.Print("\n## Benchmark Results\n\n")
	fmt.Println("| Mode | Requests | Valid | Avg Time | Total Time | Avg Payload |")
	fmt.Println("|------|----------|-------|----------|------------|-------------|")

	agg := aggregate(results)

	keys := make([]string, 0, len(agg))
	for mode := range agg {
		keys = append(keys, mode)
	}
	sort.Strings(keys)

	var (
		totalCount    int
		totalValid    int
		totalDuration time.Duration
		totalBytes    int64
	)

	for _, mode := range keys {
		a := agg[mode]
		avg := a.Total / time.Duration(a.Count)
		avgSize := a.TotalBytes / int64(a.Count)
		fmt.Printf("| %s | %d | %d | %v | %v | %s |\n",
			mode,
			a.Count,
			a.Valid,
			avg.Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			humanize.IBytes(uint64(avgSize)),
		)
		totalCount += a.Count
		totalValid += a.Valid
		totalDuration += a.Total
		totalBytes += a.TotalBytes
	}

	if totalCount > 0 {
		mean := totalDuration / time.Duration(totalCount)
		avgSize := totalBytes / int64(totalCount)
		fmt.Printf("| **ALL** | %d | %d | %v | %v | %s |\n",
			totalCount,
			totalValid,
			mean.Round(time.Millisecond),
			totalDuration.Round(time.Millisecond),
			humanize.IBytes(uint64(avgSize)),
		)
	}
}
