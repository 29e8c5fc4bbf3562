package cmd

import (
	"fmt"
	"time"

	sim "github.com/wlan-sim/wlan-sim/sim"
)

// PrintResult displays one run's aggregated metrics. Formatting lives here,
// outside the core: the simulator hands over a sim.Result and nothing else.
func PrintResult(res sim.Result, elapsed time.Duration) {
	fmt.Printf("=== Results for %d station(s) ===\n", res.Stations)
	if res.Aborted {
		fmt.Println("Run aborted: simulated clock exceeded ceiling during backoff (partial metrics)")
	}
	fmt.Printf("Throughput        : %.2f Mbps\n", res.ThroughputBps/1e6)
	fmt.Printf("Average Latency   : %.6f ms\n", res.AvgLatency*1e3)
	fmt.Printf("P95 Latency       : %.6f ms\n", res.P95Latency*1e3)
	fmt.Printf("Maximum Latency   : %.6f ms\n", res.MaxLatency*1e3)
	fmt.Printf("Transmitted       : %d\n", res.Transmitted)
	fmt.Printf("Dropped Packets   : %d\n", res.Dropped)
	fmt.Printf("Simulated Time    : %.6f s\n", res.SimTime)
	fmt.Printf("Wall Time         : %v\n", elapsed)
	fmt.Println("-----------------------------------")
}
