// Command generator produces random delivery-list JSON instances consumable
// by cmd/solver: uniform coordinates in a box around a depot, uniform demand
// sizes, uuid-based instance identifiers.
//
// Usage:
//
//	generator [-n 5] [-cap 10] [-maxSize 3] [-count 1] [-seed 1]
//	          [-lat 51.5] [-lng -0.12] [-spread 0.1] [-outputDir .]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/qroute/cvrp"
)

func main() {
	n := flag.Int("n", 5, "Number of deliveries per instance")
	capacity := flag.Int("cap", 10, "Vehicle capacity")
	maxSize := flag.Int("maxSize", 3, "Maximum demand size per delivery")
	count := flag.Int("count", 1, "Number of instances to generate")
	seed := flag.Int64("seed", 1, "RNG seed")
	lat := flag.Float64("lat", 51.5074, "Depot latitude")
	lng := flag.Float64("lng", -0.1278, "Depot longitude")
	spread := flag.Float64("spread", 0.1, "Half-width of the coordinate box in degrees")
	outputDir := flag.String("outputDir", ".", "Output directory")
	flag.Parse()

	if *n <= 0 || *capacity <= 0 || *maxSize <= 0 || *count <= 0 {
		fmt.Fprintln(os.Stderr, "n, cap, maxSize and count must all be positive")
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))

	var instance int
	for instance = 0; instance < *count; instance++ {
		file := cvrp.DeliveryList{
			Name:            uuid.NewString(),
			Origin:          cvrp.Point{Lat: *lat, Lng: *lng},
			VehicleCapacity: *capacity,
			Deliveries:      make([]cvrp.Delivery, 0, *n),
		}
		var i int
		for i = 0; i < *n; i++ {
			file.Deliveries = append(file.Deliveries, cvrp.Delivery{
				Point: cvrp.Point{
					Lat: *lat + (rng.Float64()*2-1)**spread,
					Lng: *lng + (rng.Float64()*2-1)**spread,
				},
				Size: 1 + rng.Intn(*maxSize),
			})
		}

		raw, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal instance %d: %s\n", instance, err)
			os.Exit(1)
		}
		name := fmt.Sprintf("cvrp_n%d_%02d.json", *n, instance)
		path := filepath.Join(*outputDir, name)
		if err = os.WriteFile(path, raw, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %s\n", path, err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
}
