// cmd/transferctl is the one-shot CLI companion to the gateway service.
//
// Usage:
//
//	transferctl submit -file payload.json
//	transferctl boundbook -o account.pdf
//
// Credentials come from the same config.yaml / environment variables as the
// service (FASTBOUND_ACCOUNT, FASTBOUND_API_KEY, FASTBOUND_AUDIT_USER).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"fastbound-gateway/config"
	"fastbound-gateway/internal/transfer"
	repoBolt "fastbound-gateway/internal/transfer/repository/bolt"
	"fastbound-gateway/internal/transfer/usecase"
	"fastbound-gateway/pkg/fastbound"
	pkgLog "fastbound-gateway/pkg/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: transferctl <submit|boundbook> [flags]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := fastbound.New(cfg.FastBound.Account, cfg.FastBound.APIKey)
	if err != nil {
		log.Fatalf("Failed to create FastBound client: %v", err)
	}
	if cfg.FastBound.BaseURL != "" {
		client.WithBaseURL(cfg.FastBound.BaseURL)
	}
	client.WithHTTPClient(&http.Client{Timeout: 60 * time.Second})

	if !fastbound.APIKeyLooksValid(cfg.FastBound.APIKey) {
		fmt.Fprintln(os.Stderr, "Warning: your API key doesn't look right--did you copy only part of the key?")
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "submit":
		runSubmit(ctx, cfg, client, os.Args[2:])
	case "boundbook":
		runBoundBook(ctx, cfg, client, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}

// runSubmit reads a submission document from a JSON file and pushes it
// through the same use case as the service, journal included.
func runSubmit(ctx context.Context, cfg *config.Config, client *fastbound.Client, args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	file := fs.String("file", "", "path to the transfer submission JSON file")
	fs.Parse(args)

	if *file == "" {
		log.Fatal("submit: -file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %q: %v", *file, err)
	}

	var input transfer.SubmitInput
	if err := json.Unmarshal(data, &input); err != nil {
		log.Fatalf("Failed to parse %q: %v", *file, err)
	}

	journal, err := repoBolt.New(cfg.Journal.Path, pkgLog.Init(pkgLog.ZapConfig{Level: "warn"}))
	if err != nil {
		log.Fatalf("Failed to open submission journal: %v", err)
	}
	defer journal.Close()

	uc := usecase.New(pkgLog.Init(pkgLog.ZapConfig{Level: "warn"}), client, journal, usecase.Config{
		RetryAttempts:   cfg.Submit.RetryAttempts,
		RetryDelay:      cfg.Submit.RetryDelay,
		MaxTotalTimeout: cfg.Submit.MaxTotalTimeout,
	})

	out, err := uc.Submit(ctx, input)
	if err != nil {
		log.Fatalf("Submission failed: %v", err)
	}

	fmt.Printf("Idempotency Key: %s\n", out.Record.IdempotencyKey)
	if out.Replayed {
		fmt.Println("Already accepted - replayed journaled outcome, nothing pushed.")
	}
	fmt.Printf("HTTP Code: %d\n", out.Record.HTTPStatus)
	fmt.Println("Response:", out.Record.ResponseBody)
	fmt.Printf("Status: %s (attempts: %d)\n", out.Record.Status, out.Record.Attempts)
}

// runBoundBook downloads the account's compliant A&D bound book.
func runBoundBook(ctx context.Context, cfg *config.Config, client *fastbound.Client, args []string) {
	fs := flag.NewFlagSet("boundbook", flag.ExitOnError)
	output := fs.String("o", "", "output file path (defaults to ACCOUNT.pdf)")
	auditUser := fs.String("audit-user", cfg.FastBound.AuditUser, "email address of a valid FastBound user")
	fs.Parse(args)

	if *auditUser == "" {
		log.Fatal("boundbook: -audit-user (or fastbound.audit_user in config) is required")
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("./%s.pdf", cfg.FastBound.Account)
	}

	url, err := client.RequestBoundBook(ctx, *auditUser)
	if err != nil {
		if errors.Is(err, fastbound.ErrBoundBookNotReady) {
			fmt.Fprintln(os.Stderr, "Bound book is not ready. Try again tomorrow.")
			os.Exit(1)
		}
		log.Fatalf("Download failed: %v", err)
	}

	data, err := client.FetchDocument(ctx, url)
	if err != nil {
		log.Fatalf("Download failed: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Failed to write %q: %v", path, err)
	}

	fmt.Printf("Download successful: %s\n", path)
}
