package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"cityforge/internal/build"
	"cityforge/internal/city"
	"cityforge/internal/terrain"
	"cityforge/internal/wfc"
)

func main() {
	genType := flag.String("type", build.GeneratorWFC,
		fmt.Sprintf("generator type (%s)", strings.Join(build.GeneratorNames(), ", ")))
	seed := flag.Int("seed", 0, "random seed (0 = random)")
	size := flag.String("size", "800x600", "canvas size as WxH in pixels")
	name := flag.String("name", "cityforge", "city name")
	water := flag.Float64("water", 0.3, "water coverage fraction [0,1]")
	mode := flag.String("mode", string(terrain.ModeLake), "water mode (lake, river, bay)")
	catalogFile := flag.String("catalog", "", "tile catalog JSON (default: built-in)")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	known := false
	for _, n := range build.GeneratorNames() {
		if *genType == n {
			known = true
			break
		}
	}
	if !known {
		fmt.Fprintf(os.Stderr, "Error: unknown generator type %q (available: %s)\n",
			*genType, strings.Join(build.GeneratorNames(), ", "))
		os.Exit(1)
	}

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = int(time.Now().UnixNano() % (1 << 31))
	}

	opts := build.DefaultOptions(*seed)
	opts.Name = *name
	opts.Generator = *genType
	opts.Terrain.Width = w
	opts.Terrain.Height = h
	opts.Terrain.WaterCoverage = *water
	opts.Terrain.Mode = terrain.Mode(*mode)
	opts.Collapse.CanvasWidth = w
	opts.Collapse.CanvasHeight = h
	opts.Layout.Width = w
	opts.Layout.Height = h

	if *catalogFile != "" {
		cat, err := wfc.LoadCatalogOrDefault(osfs.New("."), *catalogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Catalog %s unusable: %v — using built-in catalog\n", *catalogFile, err)
		}
		opts.Catalog = cat
	}

	fmt.Fprintf(os.Stderr, "Generating %dx%d city %q with %s (seed %d)...\n",
		w, h, *name, *genType, *seed)

	snap, err := build.City(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := snap.MarshalIndent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(data)
		os.Stdout.WriteString("\n")
	} else {
		if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", *out, len(data))
	}

	printSummary(snap)
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 100 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 100)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 100 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 100)", parts[1])
	}
	return w, h, nil
}

func printSummary(snap *city.Snapshot) {
	if st := snap.Stats.Solver; st != nil {
		fmt.Fprintf(os.Stderr, "Solver: %d iterations, %d collapsed, %d uncollapsed, %d contradictions\n",
			st.Iterations, st.Collapsed, st.Uncollapsed, st.Contradictions)
		if st.BudgetExhausted {
			fmt.Fprintln(os.Stderr, "Solver: iteration budget exhausted before convergence")
		}
	}
	fmt.Fprintf(os.Stderr, "Terrain: %d water cells, %d oceans, %d lakes, %d coastlines\n",
		snap.Stats.WaterCells, snap.Stats.Oceans, snap.Stats.Lakes, snap.Stats.Coastlines)

	counts := make(map[string]int)
	for _, b := range snap.Buildings {
		counts[b.Category]++
	}
	total := len(snap.Buildings)
	if total == 0 {
		fmt.Fprintln(os.Stderr, "No buildings placed.")
		return
	}
	fmt.Fprintf(os.Stderr, "\nBuilding distribution (%d buildings, %d roads, %d parks):\n",
		total, len(snap.Roads), len(snap.Parks))
	for _, cat := range []string{"residential", "commercial", "industrial"} {
		if c, ok := counts[cat]; ok {
			fmt.Fprintf(os.Stderr, "  %-12s %5d (%5.1f%%)\n", cat, c, float64(c)/float64(total)*100)
		}
	}
}
