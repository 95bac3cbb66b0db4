package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"catalog-sync/core/config"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/upstream"
	catalogreconcile "catalog-sync/feature/catalog/reconcile"
)

// Fetches one page, normalizes every detail and prints the plan as JSON.
// Usage: debug_fetch [limit] [offset]
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	limit, offset := 5, 0
	if len(os.Args) > 1 {
		if limit, err = strconv.Atoi(os.Args[1]); err != nil {
			log.Fatalf("invalid limit %q: %v", os.Args[1], err)
		}
	}
	if len(os.Args) > 2 {
		if offset, err = strconv.Atoi(os.Args[2]); err != nil {
			log.Fatalf("invalid offset %q: %v", os.Args[2], err)
		}
	}

	client := upstream.NewClient(cfg.Upstream)
	defer client.Close()

	// No database: the plan never reaches Commit
	adapter := catalogreconcile.NewAdapter(client, nil)
	ctx := context.Background()

	fmt.Printf("=== Fetching %s limit=%d offset=%d ===\n", cfg.Upstream.BaseURL+cfg.Upstream.ListPath, limit, offset)
	plan, err := reconcile.Plan(ctx, &reconcile.Spec{Adapter: adapter, Limit: limit, Offset: offset})
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
