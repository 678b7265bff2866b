package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"demo/catalog/internal/config"
	"demo/catalog/internal/gen"
)

type client struct {
	base string
	http *http.Client
}

func main() {
	gen.SeedOnce()

	base := strings.TrimRight(config.GetEnvStr("SERVICE_URL", "http://localhost:8080"), "/")
	glob := config.GetEnvStr("DATA_GLOB", "data/*.json")
	c := &client{base: base, http: &http.Client{Timeout: 10 * time.Second}}
	log.Printf("service=%s glob=%s", base, glob)

	paths, err := filepath.Glob(glob)
	if err != nil {
		log.Fatalf("glob %s: %v", glob, err)
	}

	ctx := context.Background()

	// No files: generate products first, then orders referencing them.
	if len(paths) == 0 {
		n := config.GetEnvInt("GEN_COUNT", 1)
		gap := config.GetEnvDuration("GEN_INTERVAL", 0)
		var ids []string
		for i := 0; i < n; i++ {
			id, err := c.post(ctx, "products", gen.FakeProduct())
			if err != nil {
				log.Fatalf("seed product: %v", err)
			}
			ids = append(ids, id)
		}
		for i := 0; i < n; i++ {
			if _, err := c.post(ctx, "orders", gen.FakeOrder(pick(ids, i))); err != nil {
				log.Fatalf("seed order: %v", err)
			}
			if gap > 0 {
				time.Sleep(gap)
			}
		}
		log.Printf("seeded %d product(s) and %d order(s)", n, n)
		return
	}

	total := 0
	for _, p := range paths {
		n, err := c.postFile(ctx, p)
		if err != nil {
			log.Printf("file %s: %v", p, err)
		}
		total += n
	}
	log.Printf("done: posted=%d from %d files", total, len(paths))
}

// pick returns up to three ids starting at offset i.
func pick(ids []string, i int) []string {
	if len(ids) == 0 {
		return nil
	}
	n := min(3, len(ids))
	out := make([]string, 0, n)
	for j := 0; j < n; j++ {
		out = append(out, ids[(i+j)%len(ids)])
	}
	return out
}

// postFile sends the object or array of objects in path. A file named
// products*.json goes to /products, anything else to /orders.
func (c *client) postFile(ctx context.Context, path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read: %w", err)
	}
	collection := "orders"
	if strings.HasPrefix(filepath.Base(path), "products") {
		collection = "products"
	}

	var one map[string]any
	if err := json.Unmarshal(b, &one); err == nil && len(one) > 0 {
		if _, err := c.post(ctx, collection, one); err != nil {
			return 0, err
		}
		return 1, nil
	}
	var many []map[string]any
	if err := json.Unmarshal(b, &many); err == nil && len(many) > 0 {
		sum := 0
		for _, obj := range many {
			if _, err := c.post(ctx, collection, obj); err != nil {
				log.Printf("post: %v", err)
				continue
			}
			sum++
		}
		return sum, nil
	}
	return 0, fmt.Errorf("invalid JSON in %s: must be object or array of objects", path)
}

func (c *client) post(ctx context.Context, collection string, body map[string]any) (string, error) {
	val, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", collection, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/"+collection, bytes.NewReader(val))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Printf("close body: %v", err)
		}
	}()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("POST /%s: %s: %s", collection, res.Status, bytes.TrimSpace(raw))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	log.Printf("posted %s id=%s", collection, out.ID)
	return out.ID, nil
}
