package main

import "time"

type BenchResult struct {
	File     string
	Mode     string
	Duration time.Duration
	Status   int
	Valid    bool
	Err      error
	Size     int64
}

type Agg struct {
	Count      int
	Valid      int
	Total      time.Duration
	TotalBytes int64
}

// generateContentResponse is the subset of the Gemini reply the benchmark inspects.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
