// smoke: calls a handful of read-only endpoints on mainnet and testnet in
// parallel against the live API and prints a summary table. Needs an API
// key in KAIASCAN_API_KEY (or API_KEY, or a .env file).
//
// Run from the module root:
//
//	go run ./scripts/smoke
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/Mohsinsiddi/kaiascan/internal/credentials"
	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/joho/godotenv"
)

// ── config ────────────────────────────────────────────────────────────────────

// probe is one call made on each network.
type probe struct {
	name string
	args kaiascan.Args
}

var probes = []probe{
	{kaiascan.EPKaiaInfo, nil},
	{kaiascan.EPLatestBlock, nil},
	{kaiascan.EPLatestBlockBurns, kaiascan.Args{"page": 1, "size": 5}},
	{kaiascan.EPAccount, kaiascan.Args{"accountAddress": "0x0000000000000000000000000000000000000000"}},
}

const callTimeout = 15 * time.Second

// ── types ─────────────────────────────────────────────────────────────────────

type result struct {
	network  string
	endpoint string
	elapsed  time.Duration
	status   string
	note     string
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	_ = godotenv.Load()
	key, source, err := credentials.Resolve("", nil)
	if err != nil || source == credentials.SourceNone {
		fmt.Fprintln(os.Stderr, "smoke: set KAIASCAN_API_KEY (or API_KEY) first")
		os.Exit(2)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []result
	)

	for _, network := range []kaiascan.Network{kaiascan.Mainnet, kaiascan.Testnet} {
		client := kaiascan.New(network, key)
		for _, p := range probes {
			wg.Add(1)
			go func(network kaiascan.Network, p probe) {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
				defer cancel()

				start := time.Now()
				resp, err := kaiascan.Invoke[json.RawMessage](ctx, client, p.name, p.args)
				r := result{
					network:  network.String(),
					endpoint: p.name,
					elapsed:  time.Since(start).Round(time.Millisecond),
				}
				if err != nil {
					r.status, r.note = classify(err), shortErr(err)
				} else {
					r.status, r.note = "ok", fmt.Sprintf("%d bytes", len(resp.Data))
				}

				mu.Lock()
				results = append(results, r)
				mu.Unlock()
			}(network, p)
		}
	}

	wg.Wait()

	if failed := printTable(results); failed > 0 {
		os.Exit(1)
	}
}

// ── output ────────────────────────────────────────────────────────────────────

func printTable(results []result) (failed int) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.network != b.network {
			return a.network < b.network
		}
		return a.endpoint < b.endpoint
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NETWORK\tENDPOINT\tSTATUS\tTIME\tNOTE")
	fmt.Fprintln(w, strings.Repeat("-", 8)+"\t"+
		strings.Repeat("-", 20)+"\t"+
		strings.Repeat("-", 9)+"\t"+
		strings.Repeat("-", 8)+"\t"+
		strings.Repeat("-", 24))

	for _, r := range results {
		if r.status != "ok" {
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.network, r.endpoint, r.status, r.elapsed, r.note)
	}
	w.Flush()
	return failed
}

// ── helpers ───────────────────────────────────────────────────────────────────

func classify(err error) string {
	switch {
	case errors.Is(err, kaiascan.ErrAPI):
		return "api"
	case errors.Is(err, kaiascan.ErrEnvelope):
		return "envelope"
	case errors.Is(err, kaiascan.ErrValidation):
		return "invalid"
	default:
		return "transport"
	}
}

func shortErr(err error) string {
	s := err.Error()
	if len(s) > 48 {
		return s[:48] + "…"
	}
	return s
}
