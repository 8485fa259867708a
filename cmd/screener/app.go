package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/decode"
	"github.com/jonathan/candidate-screener/internal/extraction"
	"github.com/jonathan/candidate-screener/internal/storage"
	"github.com/jonathan/candidate-screener/internal/types"
)

// newStore builds the blob store selected by the configuration.
func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendS3:
		return storage.NewS3Store(ctx, storage.S3Config{
			Bucket:     cfg.Storage.Bucket,
			Region:     cfg.Storage.Region,
			Endpoint:   cfg.Storage.Endpoint,
			AccessKey:  cfg.Storage.AccessKey,
			SecretKey:  cfg.Storage.SecretKey,
			PresignTTL: time.Duration(cfg.Storage.PresignTTL),
		})
	default:
		return storage.NewMemoryStore(), nil
	}
}

// newService wires the analysis service from the configuration.
func newService(ctx context.Context, cfg *config.Config) (*analysis.Service, error) {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}
	return analysis.New(store,
		analysis.WithLogger(log),
		analysis.WithExtractor(extraction.New(extraction.WithMaxLines(cfg.MaxLines))),
		analysis.WithHistory(analysis.NewHistory(cfg.HistorySize)),
		analysis.WithMaxInputBytes(cfg.MaxInputBytes),
		analysis.WithKeyPrefix(cfg.Storage.Prefix),
		analysis.WithWorkers(cfg.Workers),
	), nil
}

func readDocument(path string) (analysis.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return analysis.Document{}, fmt.Errorf("failed to read input file: %w", err)
	}
	return analysis.Document{Filename: filepath.Base(path), Data: data}, nil
}

// loadJob reads a requirement file; an empty path means no requirement.
func loadJob(path string) (*types.JobRequirement, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job requirement: %w", err)
	}
	job, err := decode.JobRequirement(data, decode.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid job requirement %s: %w", path, err)
	}
	return &job, nil
}

// loadCandidate reads a candidate or assessment file; an empty path means none.
func loadCandidate(path string) (*types.Candidate, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate: %w", err)
	}
	candidate, err := decode.Candidate(data, decode.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid candidate %s: %w", path, err)
	}
	return &candidate, nil
}

// writeJSON writes v indented to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err = w.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
