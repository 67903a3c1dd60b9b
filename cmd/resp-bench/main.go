// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command resp-bench drives concurrent PING traffic through a single
// respkit.Client behind a pool.Dispatcher, to exercise the dispatcher's
// admission control under load.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"code.hybscloud.com/respkit"
	"code.hybscloud.com/respkit/command"
	"code.hybscloud.com/respkit/pool"
)

var (
	benchAddr        string
	benchConcurrency int
	benchDuration    time.Duration
	benchMaxInFlight int64
)

var rootCmd = &cobra.Command{
	Use:   "resp-bench",
	Short: "Load-generate PING traffic through a respkit Dispatcher",
	RunE:  runBenchmark,
}

func init() {
	rootCmd.Flags().StringVar(&benchAddr, "addr", "127.0.0.1:6379", "server address")
	rootCmd.Flags().IntVar(&benchConcurrency, "concurrency", 16, "number of goroutines issuing PING concurrently")
	rootCmd.Flags().DurationVar(&benchDuration, "duration", 5*time.Second, "how long to run")
	rootCmd.Flags().Int64Var(&benchMaxInFlight, "max-in-flight", 32, "dispatcher admission limit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := respkit.Dial(ctx, benchAddr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", benchAddr, err)
	}
	defer client.Close()

	disp := pool.NewDispatcher(client, benchMaxInFlight, int64(benchConcurrency))
	defer disp.Close()

	var succeeded, failed int64
	deadline := time.Now().Add(benchDuration)

	var wg sync.WaitGroup
	for i := 0; i < benchConcurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				_, err := disp.Do(ctx, command.Ping{})
				if err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}
				atomic.AddInt64(&succeeded, 1)
			}
		}()
	}
	wg.Wait()

	total := succeeded + failed
	fmt.Printf("total=%d succeeded=%d failed=%d rps=%.1f\n",
		total, succeeded, failed, float64(total)/benchDuration.Seconds())
	return nil
}
