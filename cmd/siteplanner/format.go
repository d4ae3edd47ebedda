package main

import (
	"fmt"

	"github.com/ParixJ/Site-generator/pkg/selector"
)

func printRankedLayouts(layouts []selector.RankedLayout) {
	if len(layouts) == 0 {
		fmt.Println("No layouts generated.")
		return
	}

	fmt.Printf("%-5s %12s %6s %6s %6s %10s %8s %s\n",
		"Rank", "Score", "Bldgs", "TypeA", "TypeB", "Area", "Valid", "Violations")
	fmt.Printf("%-5s %12s %6s %6s %6s %10s %8s %s\n",
		"-----", "------------", "------", "------", "------", "----------", "--------", "----------")

	for _, l := range layouts {
		fmt.Printf("%-5d %12.0f %6d %6d %6d %10.0f %8v %d\n",
			l.DisplayRank, l.Score,
			l.Stats.BuildingCount, l.Stats.TypeACount, l.Stats.TypeBCount,
			l.Stats.TotalArea, l.Stats.IsValid, len(l.Report.Violations))
	}

	best := layouts[0]
	if !best.Report.Valid {
		fmt.Println()
		fmt.Printf("Top layout: INVALID (%s)\n", best.Report.Summary)
		for _, v := range best.Report.Violations {
			fmt.Printf("  [%s] %s\n", v.Kind, v.Message)
		}
	}
}
