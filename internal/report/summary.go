package report

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/term"

	"github.com/rcegan/Splunk-MITRE-Generator/internal/aggregate"
)

const navigatorURL = "https://mitre-attack.github.io/attack-navigator/"

const topTechniques = 5

// PrintSummary writes the human-readable coverage statistics block for
// one processed file. The decorative framing is dropped when stdout is
// not a terminal so piped output stays clean.
func PrintSummary(cov *aggregate.Coverage, outputPath string) {
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	if interactive {
		fmt.Println()
		fmt.Println("═══ MITRE Coverage Statistics ═══════════════════════")
	} else {
		fmt.Println()
		fmt.Println("=== MITRE Coverage Statistics ===")
	}

	fmt.Println()
	fmt.Println("Total Coverage:")
	fmt.Printf("- Rules with MITRE mappings: %d\n", len(cov.Rules))
	fmt.Printf("- Unique techniques covered: %d\n", len(cov.TechniqueCounts))
	fmt.Printf("- Unique tactics covered: %d\n", len(cov.TacticCounts))

	fmt.Println()
	fmt.Printf("Top %d techniques by implementation:\n", topTechniques)
	for _, id := range TopTechniques(cov, topTechniques) {
		fmt.Printf("  • %s: %d rules\n", id, cov.TechniqueCounts[id])
	}

	fmt.Println()
	fmt.Printf("Layer file saved as: %s\n", outputPath)
	fmt.Printf("You can visualize this layer at: %s\n", navigatorURL)
}

// TopTechniques returns up to n technique IDs ordered by descending
// count. Ties keep first-seen order; no further tie-break is defined.
func TopTechniques(cov *aggregate.Coverage, n int) []string {
	ids := append([]string(nil), cov.Techniques()...)
	sort.SliceStable(ids, func(i, j int) bool {
		return cov.TechniqueCounts[ids[i]] > cov.TechniqueCounts[ids[j]]
	})
	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}
